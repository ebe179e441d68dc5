package lights

import "errors"

var (
	// ErrNegativeAttenuation is returned when an attenuation coefficient is negative
	ErrNegativeAttenuation = errors.New("negative attenuation coefficient")

	// ErrZeroAttenuation is returned when every attenuation coefficient is zero
	ErrZeroAttenuation = errors.New("zero attenuation")
)

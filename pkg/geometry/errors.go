package geometry

import "errors"

var (
	// ErrDegenerateSegment is returned when a line has coincident endpoints
	ErrDegenerateSegment = errors.New("degenerate segment")

	// ErrDegenerateTexCoords is returned when a textured line has equal endpoint
	// texture coordinates, which leaves ComputePoint without an inverse
	ErrDegenerateTexCoords = errors.New("degenerate texture coordinates")

	// ErrNonPositiveThickness is returned when a line capture radius is not positive
	ErrNonPositiveThickness = errors.New("non-positive thickness")

	// ErrNonPositiveRadius is returned when a quartic radius is not positive
	ErrNonPositiveRadius = errors.New("non-positive radius")

	// ErrUnknownQuarticType is returned for a quartic family without an implementation
	ErrUnknownQuarticType = errors.New("unknown quartic type")
)

package lights

// PointLightOption configures a PointLight during creation.
//
// Example:
//
//	// Constant intensity regardless of distance
//	sun := lights.NewPointLight(position, color, lights.WithAttenuation(1, 0, 0))
type PointLightOption func(*pointLightOptions)

type pointLightOptions struct {
	constant  float64
	linear    float64
	quadratic float64
}

// defaultPointLightOptions falls off with the inverse square of the distance
func defaultPointLightOptions() pointLightOptions {
	return pointLightOptions{constant: 0, linear: 0, quadratic: 1}
}

// WithAttenuation sets the falloff to 1 / (constant + linear·d + quadratic·d²)
func WithAttenuation(constant, linear, quadratic float64) PointLightOption {
	return func(o *pointLightOptions) {
		o.constant = constant
		o.linear = linear
		o.quadratic = quadratic
	}
}

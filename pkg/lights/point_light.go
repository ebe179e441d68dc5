package lights

import (
	"errors"
	"fmt"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
)

// PointLight represents an omnidirectional light at a single position
type PointLight struct {
	position  core.Vec3 // Light position in world space
	color     core.Vec3 // Light intensity/color
	constant  float64
	linear    float64
	quadratic float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, opts ...PointLightOption) *PointLight {
	options := defaultPointLightOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pl := &PointLight{
		position:  position,
		color:     color,
		constant:  options.constant,
		linear:    options.linear,
		quadratic: options.quadratic,
	}

	if err := pl.Validate(); err != nil {
		core.Logger().Warn("invalid point light", "position", position, "error", err)
	}
	return pl
}

// Validate reports attenuation coefficients that make the falloff undefined
func (pl *PointLight) Validate() error {
	var errs []error
	for _, coefficient := range []struct {
		name  string
		value float64
	}{
		{"constant", pl.constant},
		{"linear", pl.linear},
		{"quadratic", pl.quadratic},
	} {
		if coefficient.value < 0 {
			errs = append(errs, fmt.Errorf("%s attenuation %g: %w", coefficient.name, coefficient.value, ErrNegativeAttenuation))
		}
	}
	if pl.constant == 0 && pl.linear == 0 && pl.quadratic == 0 {
		errs = append(errs, ErrZeroAttenuation)
	}
	return errors.Join(errs...)
}

// Position returns the light position, the same from every point
func (pl *PointLight) Position(point core.Vec3) core.Vec3 {
	return pl.position
}

// Color returns the unattenuated light color
func (pl *PointLight) Color() core.Vec3 {
	return pl.color
}

// Attenuation returns the constant, linear and quadratic falloff coefficients
func (pl *PointLight) Attenuation() (float64, float64, float64) {
	return pl.constant, pl.linear, pl.quadratic
}

// ComputeLightRay returns the attenuated light color reaching the hit point, or
// black when the point faces away from the light or something blocks it
func (pl *PointLight) ComputeLightRay(ray core.Ray, hit geometry.IntersectPoint, normal core.Vec3, discard geometry.Object, occluder Occluder) core.Vec3 {
	toLight := pl.position.Subtract(hit.Point)
	distance := toLight.Length()
	if distance < core.Epsilon {
		return core.Vec3{}
	}
	direction := toLight.Multiply(1 / distance)

	// Orient the normal toward the side the ray arrived from
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate()
	}
	if normal.Dot(direction) <= 0 {
		return core.Vec3{}
	}

	if occluder != nil && occluder.Occluded(core.NewRay(hit.Point, direction), distance, discard) {
		return core.Vec3{}
	}

	return pl.color.Multiply(1 / pl.falloff(distance))
}

func (pl *PointLight) falloff(distance float64) float64 {
	return pl.constant + pl.linear*distance + pl.quadratic*distance*distance
}

package material

import (
	"github.com/df07/go-surface-raytracer/pkg/core"
)

// ColorSource yields the base color of a surface point. Planar patterns read the
// texture coordinates, solid patterns read the world-space point.
//
// Implementations are immutable values safe for concurrent use.
type ColorSource interface {
	Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3
}

// SolidColor is a ColorSource with one color everywhere
type SolidColor core.Vec3

// Evaluate returns the color unchanged
func (c SolidColor) Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3 {
	return core.Vec3(c)
}

// Material is the shading parameter bundle shared by primitives.
//
// Primitives hold a *Material without owning it: many primitives may point at the
// same Material and the scene keeps it alive. The shading coefficients are opaque
// to the geometry layer; only Evaluate is used there.
type Material struct {
	Name  string
	Color ColorSource // Base color (solid or texture driven)

	Ambient      float64
	Diffuse      float64
	Specular     float64
	Shininess    float64
	Reflection   float64
	Transmission float64
	IOR          float64 // Index of refraction for transmitted rays
}

// NewMaterial creates a material with a solid base color and diffuse defaults
func NewMaterial(color core.Vec3) *Material {
	return NewTexturedMaterial(SolidColor(color))
}

// NewTexturedMaterial creates a material whose base color comes from a color source
func NewTexturedMaterial(source ColorSource) *Material {
	return &Material{
		Color:     source,
		Ambient:   0.1,
		Diffuse:   0.9,
		Shininess: 1,
		IOR:       1,
	}
}

// Evaluate returns the base color at the given texture coordinates and point.
// A material without a color source is white.
func (m *Material) Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3 {
	if m == nil || m.Color == nil {
		return core.NewVec3(1, 1, 1)
	}
	return m.Color.Evaluate(uv, point)
}

package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
	"github.com/df07/go-surface-raytracer/pkg/lights"
	"github.com/df07/go-surface-raytracer/pkg/material"
)

// ErrUnknownScene is returned when no preset has the requested name
var ErrUnknownScene = errors.New("unknown scene")

// Preset describes a built-in scene
type Preset struct {
	Name        string
	Description string
	Build       func() *Scene
}

var presets = []Preset{
	{Name: "torus", Description: "Two crossing tori with checkerboard and gradient materials", Build: NewTorusScene},
	{Name: "wireframe", Description: "A torus drawn with colored and textured lines along its parameter grid", Build: NewWireframeScene},
	{Name: "mixed", Description: "A solid torus circled by a ring of lines", Build: NewMixedScene},
}

// Presets returns the built-in scenes in display order
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// NewPresetScene builds the preset with the given name
func NewPresetScene(name string) (*Scene, error) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset.Build(), nil
		}
	}
	return nil, fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
}

// addDefaultLights adds a warm key light and a dim blue fill light
func addDefaultLights(s *Scene) {
	s.AddLight(
		lights.NewPointLight(core.NewVec3(5, 8, 10), core.NewVec3(150, 140, 120)),
		lights.NewPointLight(core.NewVec3(-6, 2, 6), core.NewVec3(0.2, 0.25, 0.5), lights.WithAttenuation(1, 0, 0.01)),
	)
}

// NewTorusScene creates two crossing tori tilted toward a camera on +Z
func NewTorusScene() *Scene {
	s := NewScene()

	checker := material.NewTexturedMaterial(material.NewCheckerboard(16, 4,
		core.NewVec3(0.8, 0.3, 0.2), core.NewVec3(0.9, 0.9, 0.85)))
	gradient := material.NewTexturedMaterial(material.NewGradient(
		core.NewVec3(0.1, 0.3, 0.8), core.NewVec3(0.6, 0.9, 1.0)))

	s.Add(
		geometry.NewTorus(core.NewVec3(-1, 0, 0), 2, 0.6, checker,
			geometry.WithAxis(core.NewVec3(0, 1, 0.8))),
		geometry.NewTorus(core.NewVec3(1.2, 0, 0), 1.6, 0.35, gradient,
			geometry.WithAxis(core.NewVec3(0, 0.3, -1))),
	)
	addDefaultLights(s)
	return s
}

// NewWireframeScene creates a torus drawn as lines: meridians carry a color
// gradient around the tube, parallels carry the torus texture coordinates
func NewWireframeScene() *Scene {
	s := NewScene()
	reference := geometry.NewTorus(core.Vec3{}, 2, 0.7, nil, geometry.WithAxis(core.NewVec3(0, 1, 0.8)))
	s.Add(torusWireframe(reference, 24, 12, 0.02)...)
	addDefaultLights(s)
	return s
}

// NewMixedScene creates a solid torus circled by a ring of colored lines
func NewMixedScene() *Scene {
	s := NewScene()

	torus := geometry.NewTorus(core.Vec3{}, 1.5, 0.5,
		material.NewTexturedMaterial(material.NewCheckerboard(12, 6,
			core.NewVec3(0.2, 0.6, 0.3), core.NewVec3(0.9, 0.9, 0.9))),
		geometry.WithAxis(core.NewVec3(0, 1, 1)))
	s.Add(torus)

	// Ring vertices lie on the outer equator of a thin reference torus
	ring := geometry.NewTorus(core.Vec3{}, 3, 0.1, nil, geometry.WithAxis(core.NewVec3(0, 1, 1)))
	const segments = 48
	for k := 0; k < segments; k++ {
		u1 := float64(k) / segments
		u2 := float64(k+1) / segments
		p1 := ring.ComputePoint(core.NewTexCoord(u1, 0))
		p2 := ring.ComputePoint(core.NewTexCoord(u2, 0))
		s.Add(geometry.NewColoredLine(p1, p2,
			ring.ComputeNormal(p1), ring.ComputeNormal(p2),
			core.NewVec3(1, u1, 0), core.NewVec3(1, u2, 0),
			nil, geometry.WithThickness(0.03)))
	}

	addDefaultLights(s)
	return s
}

// torusWireframe samples the torus on a rings × sides grid and connects
// neighbouring samples with lines
func torusWireframe(torus *geometry.Quartic, rings, sides int, thickness float64) []geometry.Object {
	uvMaterial := material.NewTexturedMaterial(material.UVColor{})
	objects := make([]geometry.Object, 0, 2*rings*sides)

	at := func(k, j int) (core.TexCoord, core.Vec3, core.Vec3) {
		uv := core.NewTexCoord(float64(k)/float64(rings), float64(j)/float64(sides))
		p := torus.ComputePoint(uv)
		return uv, p, torus.ComputeNormal(p)
	}

	for k := 0; k < rings; k++ {
		for j := 0; j < sides; j++ {
			uv, p, n := at(k, j)

			// Meridian segment around the tube
			uvNext, pNext, nNext := at(k, j+1)
			objects = append(objects, geometry.NewColoredLine(p, pNext, n, nNext,
				core.NewVec3(uv.V, 0.4, 1-uv.V), core.NewVec3(uvNext.V, 0.4, 1-uvNext.V),
				nil, geometry.WithThickness(thickness)))

			// Parallel segment around the axis
			uvNext, pNext, nNext = at(k+1, j)
			objects = append(objects, geometry.NewTexturedLine(p, pNext, n, nNext, uv, uvNext,
				uvMaterial, geometry.WithThickness(thickness)))
		}
	}
	return objects
}

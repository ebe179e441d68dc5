package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
	"github.com/df07/go-surface-raytracer/pkg/lights"
)

// Scene holds the objects and lights rays are traced against.
//
// Populate it with Add and AddLight before tracing. Once populated every query
// is read-only and safe for concurrent use.
type Scene struct {
	Objects []geometry.Object // Objects in the scene
	Lights  []lights.Light    // Lights in the scene
}

// NewScene creates a scene holding the given objects
func NewScene(objects ...geometry.Object) *Scene {
	s := &Scene{}
	s.Add(objects...)
	return s
}

// Add appends objects to the scene. Nil objects are skipped.
func (s *Scene) Add(objects ...geometry.Object) {
	for _, object := range objects {
		if object == nil {
			core.Logger().Warn("skipping nil object")
			continue
		}
		s.Objects = append(s.Objects, object)
		core.Logger().Debug("object added", "type", fmt.Sprintf("%T", object), "objects", len(s.Objects))
	}
}

// AddLight appends lights to the scene. Nil lights are skipped.
func (s *Scene) AddLight(sceneLights ...lights.Light) {
	for _, light := range sceneLights {
		if light == nil {
			core.Logger().Warn("skipping nil light")
			continue
		}
		s.Lights = append(s.Lights, light)
		core.Logger().Debug("light added", "type", fmt.Sprintf("%T", light), "lights", len(s.Lights))
	}
}

// Validate reports every object or light constructed with invalid parameters
func (s *Scene) Validate() error {
	var errs []error
	for i, object := range s.Objects {
		if v, ok := object.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("object %d: %w", i, err))
			}
		}
	}
	for i, light := range s.Lights {
		if v, ok := light.(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("light %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Intersect returns the nearest hit over every object
func (s *Scene) Intersect(ray core.Ray, doubleSided bool) (geometry.IntersectPoint, bool) {
	var closest geometry.IntersectPoint
	hitAnything := false

	for _, object := range s.Objects {
		hit, ok := object.ComputeIntersection(ray, doubleSided)
		if ok && (!hitAnything || hit.Distance < closest.Distance) {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Occluded reports whether an object other than discard blocks the ray before
// maxDistance. Both faces of every object block.
func (s *Scene) Occluded(ray core.Ray, maxDistance float64, discard geometry.Object) bool {
	for _, object := range s.Objects {
		if object == discard {
			continue
		}
		if hit, ok := object.ComputeIntersection(ray, true); ok && hit.Distance < maxDistance-core.Epsilon {
			return true
		}
	}
	return false
}

// LightContribution sums the light every light sends to the hit point, with the
// hit object excluded from its own shadow test
func (s *Scene) LightContribution(ray core.Ray, hit geometry.IntersectPoint) core.Vec3 {
	if hit.Object == nil {
		return core.Vec3{}
	}

	normal := hit.Object.ComputeNormal(hit.Point)
	total := core.Vec3{}
	for _, light := range s.Lights {
		total = total.Add(light.ComputeLightRay(ray, hit, normal, hit.Object, s))
	}
	return total
}

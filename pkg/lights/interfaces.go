package lights

import (
	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
)

// Light is a light source queried for the light reaching a surface point
type Light interface {
	// Position returns where the light is seen from the given point
	Position(point core.Vec3) core.Vec3

	// Color returns the unattenuated light color
	Color() core.Vec3

	// ComputeLightRay returns the light intensity arriving at hit, seen along ray.
	// discard is skipped by the shadow test, usually the object that was hit.
	// A nil occluder disables shadows.
	ComputeLightRay(ray core.Ray, hit geometry.IntersectPoint, normal core.Vec3, discard geometry.Object, occluder Occluder) core.Vec3
}

// Occluder answers shadow queries against the rest of the scene
type Occluder interface {
	// Occluded reports whether any object other than discard blocks ray closer
	// than maxDistance
	Occluded(ray core.Ray, maxDistance float64, discard geometry.Object) bool
}

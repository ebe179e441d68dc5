package geometry

import (
	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/material"
)

// Object is the contract every ray-traceable primitive implements.
//
// All methods are read-only and safe for concurrent use. The point passed to the
// surface queries must lie on the surface (typically IntersectPoint.Point);
// results for other points are undefined.
type Object interface {
	// ComputeIntersection returns the nearest hit in front of the ray origin.
	// doubleSided accepts hits on the back of one-sided primitives.
	ComputeIntersection(ray core.Ray, doubleSided bool) (IntersectPoint, bool)

	// ComputeTexCoord maps a surface point to texture coordinates
	ComputeTexCoord(point core.Vec3) core.TexCoord

	// ComputePoint maps texture coordinates back to a surface point
	ComputePoint(texcoord core.TexCoord) core.Vec3

	// ComputeNormal returns the unit outward normal at a surface point
	ComputeNormal(point core.Vec3) core.Vec3

	// ComputeTangent and ComputeBinormal complete the orthonormal frame with the
	// normal, binormal = tangent × normal
	ComputeTangent(point core.Vec3) core.Vec3
	ComputeBinormal(point core.Vec3) core.Vec3

	// ComputeColor returns the base surface color at a surface point
	ComputeColor(point core.Vec3) core.Vec3

	// Material returns the shared material, possibly nil
	Material() *material.Material
}

// IntersectPoint contains information about a ray-object intersection.
// It is only meaningful when ComputeIntersection reports a hit.
type IntersectPoint struct {
	Point     core.Vec3     // Point of intersection, on the surface
	Distance  float64       // Parameter t along the ray, nearest positive root
	Object    Object        // Primitive that was hit
	Local     core.TexCoord // Surface parameters of the hit: (t, 0) on a line, (u, v) on a quartic
	FrontFace bool          // Whether the ray approached from the side the normal points to
}

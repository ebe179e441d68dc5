package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/material"
	"github.com/df07/go-surface-raytracer/pkg/polynomial"
)

// QuarticType selects the algebraic family of a Quartic
type QuarticType int

const (
	// QuarticTorus is a ring torus: a is the major (ring) radius, b the minor (tube) radius
	QuarticTorus QuarticType = iota + 1
)

// String returns the name of the quartic family
func (t QuarticType) String() string {
	switch t {
	case QuarticTorus:
		return "torus"
	default:
		return fmt.Sprintf("QuarticType(%d)", int(t))
	}
}

// canonicalAxis is the axis of revolution of every family in its local frame
var canonicalAxis = core.NewVec3(0, 1, 0)

// quarticFamily implements the surface of one QuarticType in its local frame:
// centered at the origin with +Y as axis of revolution.
type quarticFamily interface {
	// coefficients of the quartic in the ray parameter, highest degree first
	coefficients(origin, direction core.Vec3) [5]float64

	// gradient of the implicit function (unnormalized outward normal)
	gradient(p core.Vec3) core.Vec3

	// point evaluates the parametric surface at (u, v) in [0,1)²
	point(uv core.TexCoord) core.Vec3

	// parameters inverts point for a surface point
	parameters(p core.Vec3) core.TexCoord

	// partials returns ∂P/∂u and ∂P/∂v at (u, v)
	partials(uv core.TexCoord) (core.Vec3, core.Vec3)

	// boundingRadius of a sphere around the origin enclosing the surface
	boundingRadius() float64
}

// Quartic represents an algebraic surface of degree four.
//
// Squared parameters and the family implementation are derived at construction
// and never change afterwards.
type Quartic struct {
	center      core.Vec3
	quarticType QuarticType
	a, b        float64
	material    *material.Material

	// Cached derived values
	squareA, squareB float64
	family           quarticFamily
	axis             core.Vec3
	oriented         bool       // Axis differs from the canonical +Y
	toWorld          mgl64.Quat // Rotates the local frame onto the world axis
	toLocal          mgl64.Quat
}

// NewQuartic creates a quartic surface of the given type around center
func NewQuartic(center core.Vec3, a, b float64, quarticType QuarticType, mat *material.Material, opts ...QuarticOption) *Quartic {
	options := defaultQuarticOptions()
	for _, opt := range opts {
		opt(&options)
	}

	q := &Quartic{
		center:      center,
		quarticType: quarticType,
		a:           a,
		b:           b,
		material:    mat,
		squareA:     a * a,
		squareB:     b * b,
		axis:        options.axis,
		toWorld:     mgl64.QuatIdent(),
		toLocal:     mgl64.QuatIdent(),
	}
	q.family = newQuarticFamily(quarticType, q.a, q.b, q.squareA, q.squareB)

	if !options.axis.Equals(canonicalAxis) {
		q.oriented = true
		q.toWorld = mgl64.QuatBetweenVectors(toMgl(canonicalAxis), toMgl(options.axis))
		q.toLocal = q.toWorld.Conjugate()
	}

	if err := q.Validate(); err != nil {
		core.Logger().Warn("invalid quartic", "type", quarticType, "a", a, "b", b, "error", err)
	}
	return q
}

// NewTorus creates a torus around center with major radius a and minor radius b
func NewTorus(center core.Vec3, a, b float64, mat *material.Material, opts ...QuarticOption) *Quartic {
	return NewQuartic(center, a, b, QuarticTorus, mat, opts...)
}

func newQuarticFamily(quarticType QuarticType, a, b, squareA, squareB float64) quarticFamily {
	switch quarticType {
	case QuarticTorus:
		return torus{a: a, b: b, squareA: squareA, squareB: squareB}
	default:
		return emptySurface{}
	}
}

// Validate reports construction parameters that leave the surface undefined
func (q *Quartic) Validate() error {
	var errs []error
	if _, ok := q.family.(emptySurface); ok {
		errs = append(errs, fmt.Errorf("quartic %v: %w", q.quarticType, ErrUnknownQuarticType))
	}
	if !(q.a > 0) {
		errs = append(errs, fmt.Errorf("quartic %v radius a=%g: %w", q.quarticType, q.a, ErrNonPositiveRadius))
	}
	if !(q.b > 0) {
		errs = append(errs, fmt.Errorf("quartic %v radius b=%g: %w", q.quarticType, q.b, ErrNonPositiveRadius))
	}
	return errors.Join(errs...)
}

// Center returns the center of the surface
func (q *Quartic) Center() core.Vec3 {
	return q.center
}

// Type returns the algebraic family
func (q *Quartic) Type() QuarticType {
	return q.quarticType
}

// Parameters returns a and b (major and minor radius for a torus)
func (q *Quartic) Parameters() (float64, float64) {
	return q.a, q.b
}

// Axis returns the unit axis of revolution
func (q *Quartic) Axis() core.Vec3 {
	return q.axis
}

// Material returns the shared material of the surface
func (q *Quartic) Material() *material.Material {
	return q.material
}

// ComputeIntersection returns the smallest positive root of the quartic obtained by
// substituting the ray into the surface equation. The surface has no single
// facing, so doubleSided has no effect.
func (q *Quartic) ComputeIntersection(ray core.Ray, doubleSided bool) (IntersectPoint, bool) {
	origin := q.toLocalPoint(ray.Origin)
	direction := q.toLocalVector(ray.Direction)

	dirLengthSquared := direction.LengthSquared()
	if dirLengthSquared == 0 {
		return IntersectPoint{}, false
	}

	// Reject rays missing the bounding sphere
	radius := q.family.boundingRadius()
	closest := -origin.Dot(direction) / dirLengthSquared
	if origin.Add(direction.Multiply(closest)).LengthSquared() > radius*radius {
		return IntersectPoint{}, false
	}

	// Start from the bounding sphere: a distant origin makes the coefficients
	// ill-conditioned
	offset := closest - radius/math.Sqrt(dirLengthSquared)
	if offset > 0 {
		origin = origin.Add(direction.Multiply(offset))
	} else {
		offset = 0
	}

	c := q.family.coefficients(origin, direction)
	roots := polynomial.SolveQuartic(c[0], c[1], c[2], c[3], c[4])

	// Roots are ascending: the first positive one is the nearest hit
	for _, root := range roots {
		t := root + offset
		if t <= core.Epsilon {
			continue
		}

		point := ray.At(t)
		local := q.toLocalPoint(point)
		normal := q.toWorldVector(q.family.gradient(local).Normalize())

		return IntersectPoint{
			Point:     point,
			Distance:  t,
			Object:    q,
			Local:     q.family.parameters(local),
			FrontFace: ray.Direction.Dot(normal) < 0,
		}, true
	}

	return IntersectPoint{}, false
}

// ComputeTexCoord returns the surface parameters of the point
func (q *Quartic) ComputeTexCoord(point core.Vec3) core.TexCoord {
	return q.family.parameters(q.toLocalPoint(point))
}

// ComputePoint evaluates the parametric surface at the texture coordinates
func (q *Quartic) ComputePoint(texcoord core.TexCoord) core.Vec3 {
	return q.toWorldPoint(q.family.point(texcoord))
}

// ComputeNormal returns the normalized gradient of the implicit surface
func (q *Quartic) ComputeNormal(point core.Vec3) core.Vec3 {
	return q.toWorldVector(q.family.gradient(q.toLocalPoint(point)).Normalize())
}

// ComputeTangent returns ∂P/∂u orthonormalized against the normal
func (q *Quartic) ComputeTangent(point core.Vec3) core.Vec3 {
	_, tangent, _ := q.localFrame(q.toLocalPoint(point))
	return q.toWorldVector(tangent)
}

// ComputeBinormal returns ∂P/∂v orthonormalized against the normal and tangent
func (q *Quartic) ComputeBinormal(point core.Vec3) core.Vec3 {
	_, _, binormal := q.localFrame(q.toLocalPoint(point))
	return q.toWorldVector(binormal)
}

// ComputeColor evaluates the material at the point's texture coordinates
func (q *Quartic) ComputeColor(point core.Vec3) core.Vec3 {
	return q.material.Evaluate(q.ComputeTexCoord(point), point)
}

// localFrame builds normal, tangent and binormal in the local frame by Gram-Schmidt
// on the parametric partial derivatives
func (q *Quartic) localFrame(local core.Vec3) (normal, tangent, binormal core.Vec3) {
	normal = q.family.gradient(local).Normalize()
	du, dv := q.family.partials(q.family.parameters(local))

	tangent = du.RejectFrom(normal)
	if tangent.LengthSquared() < parallelEpsilon {
		tangent = core.Perpendicular(normal)
	} else {
		tangent = tangent.Normalize()
	}

	binormal = dv.RejectFrom(normal).RejectFrom(tangent)
	if binormal.LengthSquared() < parallelEpsilon || binormal.Dot(tangent.Cross(normal)) < 0 {
		binormal = tangent.Cross(normal)
	}
	return normal, tangent, binormal.Normalize()
}

func (q *Quartic) toLocalPoint(p core.Vec3) core.Vec3 {
	return q.toLocalVector(p.Subtract(q.center))
}

func (q *Quartic) toLocalVector(v core.Vec3) core.Vec3 {
	if !q.oriented {
		return v
	}
	return fromMgl(q.toLocal.Rotate(toMgl(v)))
}

func (q *Quartic) toWorldPoint(p core.Vec3) core.Vec3 {
	return q.toWorldVector(p).Add(q.center)
}

func (q *Quartic) toWorldVector(v core.Vec3) core.Vec3 {
	if !q.oriented {
		return v
	}
	return fromMgl(q.toWorld.Rotate(toMgl(v)))
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// emptySurface stands in for unknown quartic types: it is never hit
type emptySurface struct{}

func (emptySurface) coefficients(origin, direction core.Vec3) [5]float64 { return [5]float64{} }
func (emptySurface) gradient(p core.Vec3) core.Vec3                      { return core.Vec3{} }
func (emptySurface) point(uv core.TexCoord) core.Vec3                    { return core.Vec3{} }
func (emptySurface) parameters(p core.Vec3) core.TexCoord                { return core.TexCoord{} }
func (emptySurface) partials(uv core.TexCoord) (core.Vec3, core.Vec3)    { return core.Vec3{}, core.Vec3{} }
func (emptySurface) boundingRadius() float64                             { return 0 }

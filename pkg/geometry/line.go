package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/material"
)

const (
	// parallelEpsilon rejects rays (nearly) parallel to the segment, relative to |d|²|v|²
	parallelEpsilon = 1e-12

	// segmentSlack widens the accepted segment parameter range before clamping
	segmentSlack = 1e-9
)

// Line represents a finite segment with interpolated normals, swept with a small
// capture radius so rays can hit it.
//
// Every per-endpoint attribute is interpolated by the segment parameter t of
// point(t) = p1 + t·(p2 - p1), t in [0,1].
type Line struct {
	p1, p2     core.Vec3
	n1, n2     core.Vec3
	attributes LineAttributes
	thickness  float64
	material   *material.Material

	// Cached derived values
	segment       core.Vec3 // p2 - p1
	lengthSquared float64   // |p2 - p1|²
	tangent       core.Vec3 // Unit vector from p1 to p2
}

// NewLine creates a line with per-endpoint normals only
func NewLine(p1, p2, n1, n2 core.Vec3, mat *material.Material, opts ...LineOption) *Line {
	return NewLineWithAttributes(p1, p2, n1, n2, NoAttributes{}, mat, opts...)
}

// NewColoredLine creates a line whose color is interpolated from c1 to c2
func NewColoredLine(p1, p2, n1, n2, c1, c2 core.Vec3, mat *material.Material, opts ...LineOption) *Line {
	return NewLineWithAttributes(p1, p2, n1, n2, ColorPair{C1: c1, C2: c2}, mat, opts...)
}

// NewTexturedLine creates a line whose texture coordinates run from t1 to t2
func NewTexturedLine(p1, p2, n1, n2 core.Vec3, t1, t2 core.TexCoord, mat *material.Material, opts ...LineOption) *Line {
	return NewLineWithAttributes(p1, p2, n1, n2, TexCoordPair{T1: t1, T2: t2}, mat, opts...)
}

// NewLineWithAttributes creates a line with an explicit attribute mode.
// A nil attributes value means NoAttributes.
func NewLineWithAttributes(p1, p2, n1, n2 core.Vec3, attributes LineAttributes, mat *material.Material, opts ...LineOption) *Line {
	options := defaultLineOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if attributes == nil {
		attributes = NoAttributes{}
	}

	segment := p2.Subtract(p1)
	l := &Line{
		p1:            p1,
		p2:            p2,
		n1:            n1,
		n2:            n2,
		attributes:    attributes,
		thickness:     options.thickness,
		material:      mat,
		segment:       segment,
		lengthSquared: segment.LengthSquared(),
		tangent:       segment.Normalize(),
	}

	if err := l.Validate(); err != nil {
		core.Logger().Warn("invalid line", "p1", p1, "p2", p2, "thickness", options.thickness, "error", err)
	}
	return l
}

// Validate reports construction parameters that leave the line's queries undefined
func (l *Line) Validate() error {
	var errs []error
	if l.lengthSquared == 0 {
		errs = append(errs, fmt.Errorf("line %v-%v: %w", l.p1, l.p2, ErrDegenerateSegment))
	}
	if pair, ok := l.attributes.(TexCoordPair); ok && pair.T1.Equals(pair.T2) {
		errs = append(errs, fmt.Errorf("line texcoords %v-%v: %w", pair.T1, pair.T2, ErrDegenerateTexCoords))
	}
	if !(l.thickness > 0) {
		errs = append(errs, fmt.Errorf("line thickness %g: %w", l.thickness, ErrNonPositiveThickness))
	}
	return errors.Join(errs...)
}

// Endpoints returns the two endpoints of the segment
func (l *Line) Endpoints() (core.Vec3, core.Vec3) {
	return l.p1, l.p2
}

// Normals returns the normals given for the two endpoints
func (l *Line) Normals() (core.Vec3, core.Vec3) {
	return l.n1, l.n2
}

// Attributes returns the attribute mode of the line
func (l *Line) Attributes() LineAttributes {
	return l.attributes
}

// Thickness returns the capture radius
func (l *Line) Thickness() float64 {
	return l.thickness
}

// Material returns the shared material of the line
func (l *Line) Material() *material.Material {
	return l.material
}

// ComputeIntersection intersects the ray with the segment.
//
// The ray parameter s and the segment parameter t are solved together as the
// closest approach between the ray and the segment's carrier line. The ray hits
// when that closest approach lies within the segment, in front of the origin and
// no farther than the thickness from it. The reported point lies on the segment.
func (l *Line) ComputeIntersection(ray core.Ray, doubleSided bool) (IntersectPoint, bool) {
	// Minimize |w0 + s·d - t·v|² for ray direction d and segment vector v
	w0 := ray.Origin.Subtract(l.p1)
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(l.segment)
	c := l.lengthSquared
	d := ray.Direction.Dot(w0)
	e := l.segment.Dot(w0)

	denom := a*c - b*b
	if denom <= parallelEpsilon*a*c {
		// Ray is parallel to the segment (or either is degenerate)
		return IntersectPoint{}, false
	}

	s := (b*e - c*d) / denom
	t := (a*e - b*d) / denom

	if s <= core.Epsilon {
		return IntersectPoint{}, false
	}
	if t < -segmentSlack || t > 1+segmentSlack {
		return IntersectPoint{}, false
	}
	t = clamp01(t)

	point := l.pointAt(t)
	if ray.At(s).Subtract(point).Length() > l.thickness {
		return IntersectPoint{}, false
	}

	normal := l.normalAt(t)
	frontFace := ray.Direction.Dot(normal) < 0
	if !frontFace && !doubleSided {
		return IntersectPoint{}, false
	}

	return IntersectPoint{
		Point:     point,
		Distance:  s,
		Object:    l,
		Local:     core.NewTexCoord(t, 0),
		FrontFace: frontFace,
	}, true
}

// ComputeTexCoord interpolates the endpoint texture coordinates at the point
func (l *Line) ComputeTexCoord(point core.Vec3) core.TexCoord {
	t1, t2 := l.texCoords()
	return t1.Lerp(t2, l.parameterOf(point))
}

// ComputePoint finds the segment parameter of the texture coordinates and
// evaluates the segment there. Equal endpoint texture coordinates (reported by
// Validate) map every input to p1.
func (l *Line) ComputePoint(texcoord core.TexCoord) core.Vec3 {
	t1, t2 := l.texCoords()
	delta := t2.Subtract(t1)
	deltaSquared := delta.Dot(delta)
	if deltaSquared == 0 {
		return l.p1
	}
	return l.pointAt(clamp01(texcoord.Subtract(t1).Dot(delta) / deltaSquared))
}

// ComputeNormal returns the interpolated normal with its component along the
// segment removed, so it is always perpendicular to the tangent
func (l *Line) ComputeNormal(point core.Vec3) core.Vec3 {
	return l.normalAt(l.parameterOf(point))
}

// ComputeTangent returns the segment direction
func (l *Line) ComputeTangent(point core.Vec3) core.Vec3 {
	return l.tangent
}

// ComputeBinormal returns tangent × normal
func (l *Line) ComputeBinormal(point core.Vec3) core.Vec3 {
	return l.tangent.Cross(l.ComputeNormal(point)).Normalize()
}

// ComputeColor interpolates the endpoint colors of a colored line. Other lines
// take their color from the material at the point's texture coordinates.
func (l *Line) ComputeColor(point core.Vec3) core.Vec3 {
	if colors, ok := l.attributes.(ColorPair); ok {
		return colors.C1.Lerp(colors.C2, l.parameterOf(point))
	}
	return l.material.Evaluate(l.ComputeTexCoord(point), point)
}

// pointAt evaluates the segment at parameter t
func (l *Line) pointAt(t float64) core.Vec3 {
	return l.p1.Add(l.segment.Multiply(t))
}

// parameterOf projects a point onto the segment and returns its parameter
func (l *Line) parameterOf(point core.Vec3) float64 {
	if l.lengthSquared == 0 {
		return 0
	}
	return clamp01(point.Subtract(l.p1).Dot(l.segment) / l.lengthSquared)
}

func (l *Line) normalAt(t float64) core.Vec3 {
	normal := l.n1.Lerp(l.n2, t).RejectFrom(l.tangent)
	if normal.LengthSquared() < parallelEpsilon {
		// Normals given along the segment: any perpendicular is as good
		return core.Perpendicular(l.tangent)
	}
	return normal.Normalize()
}

// texCoords returns the endpoint texture coordinates, (0,0) and (1,0) when the
// line carries none so that u equals the segment parameter
func (l *Line) texCoords() (core.TexCoord, core.TexCoord) {
	if pair, ok := l.attributes.(TexCoordPair); ok {
		return pair.T1, pair.T2
	}
	return core.NewTexCoord(0, 0), core.NewTexCoord(1, 0)
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}

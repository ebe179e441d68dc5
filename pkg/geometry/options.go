package geometry

import (
	"github.com/df07/go-surface-raytracer/pkg/core"
)

// DefaultLineThickness is the default capture radius of a line: rays passing
// closer than this to the segment hit it.
const DefaultLineThickness = 1e-3

// LineOption configures a Line during creation.
//
// Example:
//
//	edge := geometry.NewLine(p1, p2, n1, n2, mat, geometry.WithThickness(0.05))
type LineOption func(*lineOptions)

type lineOptions struct {
	thickness float64
}

func defaultLineOptions() lineOptions {
	return lineOptions{thickness: DefaultLineThickness}
}

// WithThickness sets the capture radius used by line intersection
func WithThickness(radius float64) LineOption {
	return func(o *lineOptions) {
		o.thickness = radius
	}
}

// QuarticOption configures a Quartic during creation.
//
// Example:
//
//	// Torus lying in the XY plane
//	ring := geometry.NewQuartic(center, 2, 0.5, geometry.QuarticTorus, mat,
//	    geometry.WithAxis(core.NewVec3(0, 0, 1)))
type QuarticOption func(*quarticOptions)

type quarticOptions struct {
	axis core.Vec3
}

func defaultQuarticOptions() quarticOptions {
	return quarticOptions{axis: canonicalAxis}
}

// WithAxis sets the axis of revolution. The default is +Y.
func WithAxis(axis core.Vec3) QuarticOption {
	return func(o *quarticOptions) {
		if !axis.IsZero() {
			o.axis = axis.Normalize()
		}
	}
}

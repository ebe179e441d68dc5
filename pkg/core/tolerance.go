package core

import "gonum.org/v1/gonum/floats/scalar"

const (
	// Epsilon is the smallest ray parameter accepted as a hit. Roots at or below it
	// are treated as the ray origin lying on the surface.
	Epsilon = 1e-6

	// Tolerance is the comparison tolerance used by Equals on vectors and texcoords
	Tolerance = 1e-6
)

// ApproxEqual reports whether a and b differ by at most tol
func ApproxEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

// Package polynomial finds the real roots of low-degree polynomials in closed form.
//
// Coefficients are passed highest degree first. Every solver returns its real roots
// in ascending order with near-duplicates merged, so a tangent (double) root is
// reported once.
package polynomial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// zeroEpsilon decides when a term vanishes relative to the terms it is compared with
	zeroEpsilon = 1e-12

	// duplicateTolerance merges roots closer than this, relative to the root spread
	duplicateTolerance = 1e-7

	// polishIterations bounds the Newton refinement applied to quartic roots
	polishIterations = 2
)

// isZero reports whether x is negligible against magnitude
func isZero(x, magnitude float64) bool {
	return math.Abs(x) <= zeroEpsilon*magnitude
}

// SolveQuadratic returns the real roots of a·x² + b·x + c = 0.
// A zero leading coefficient degrades to the linear equation.
func SolveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	// Normal form x² + 2p·x + q = 0
	p := b / (2 * a)
	q := c / a
	discriminant := p*p - q

	if isZero(discriminant, max(p*p, math.Abs(q))) {
		return []float64{-p}
	}
	if discriminant < 0 {
		return nil
	}

	// Avoid cancellation: compute the larger-magnitude root first
	sqrtD := math.Sqrt(discriminant)
	var r1 float64
	if p > 0 {
		r1 = -p - sqrtD
	} else {
		r1 = -p + sqrtD
	}
	if r1 == 0 {
		return []float64{0}
	}
	r2 := q / r1
	return normalizeRoots([]float64{r1, r2}, math.Abs(r1))
}

// SolveCubic returns the real roots of a·x³ + b·x² + c·x + d = 0 using Cardano's
// method with the trigonometric form for three real roots.
func SolveCubic(a, b, c, d float64) []float64 {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}

	// Normal form x³ + A·x² + B·x + C = 0
	A := b / a
	B := c / a
	C := d / a

	// Substitute x = y - A/3 to eliminate the quadratic term: y³ + 3p·y + 2q = 0
	sqA := A * A
	p := (-sqA/3 + B) / 3
	q := (2.0/27*A*sqA - A*B/3 + C) / 2
	shift := A / 3

	// Terms that cancel down to rounding noise are exact zeros
	if isZero(p, max(sqA, math.Abs(B))) {
		p = 0
	}
	if isZero(q, max(math.Abs(A*sqA), math.Abs(A*B), math.Abs(C))) {
		q = 0
	}

	// Substitute y = s·w so the larger of p and q has unit magnitude
	s := max(math.Sqrt(math.Abs(p)), math.Cbrt(math.Abs(q)))
	if s == 0 {
		// One triple root
		return []float64{-shift}
	}
	p /= s * s
	q /= s * s * s

	cbP := p * p * p
	discriminant := q*q + cbP

	var roots []float64
	switch {
	case isZero(discriminant, 1):
		// One single and one double root
		u := math.Cbrt(-q)
		roots = []float64{2 * u, -u}
	case discriminant < 0:
		// Three distinct real roots
		phi := math.Acos(clamp(-q/math.Sqrt(-cbP), -1, 1)) / 3
		t := 2 * math.Sqrt(-p)
		roots = []float64{
			t * math.Cos(phi),
			-t * math.Cos(phi+math.Pi/3),
			-t * math.Cos(phi-math.Pi/3),
		}
	default:
		// One real root
		sqrtD := math.Sqrt(discriminant)
		u := math.Cbrt(sqrtD - q)
		v := -math.Cbrt(sqrtD + q)
		roots = []float64{u + v}
	}

	for i := range roots {
		roots[i] = s*roots[i] - shift
	}
	return normalizeRoots(roots, s)
}

// SolveQuartic returns the real roots of a·x⁴ + b·x³ + c·x² + d·x + e = 0.
//
// The quartic is depressed and rescaled so that its roots spread over unit
// magnitude, then factored into two quadratics through the largest real root of
// its resolvent cubic (Ferrari). Each root is refined with a bounded number of
// Newton steps against the undepressed polynomial. Results do not depend on the
// overall scale of the roots or on how tightly they cluster around their mean.
func SolveQuartic(a, b, c, d, e float64) []float64 {
	if a == 0 {
		return SolveCubic(b, c, d, e)
	}

	// Normal form x⁴ + A·x³ + B·x² + C·x + D = 0
	A := b / a
	B := c / a
	C := d / a
	D := e / a

	// Substitute x = y - A/4: y⁴ + p·y² + q·y + r = 0
	sqA := A * A
	p := -3.0/8*sqA + B
	q := 1.0/8*sqA*A - 0.5*A*B + C
	r := -3.0/256*sqA*sqA + 1.0/16*sqA*B - 0.25*A*C + D
	shift := A / 4

	if isZero(p, max(sqA, math.Abs(B))) {
		p = 0
	}
	if isZero(q, max(math.Abs(sqA*A), math.Abs(A*B), math.Abs(C))) {
		q = 0
	}
	if isZero(r, max(sqA*sqA, math.Abs(sqA*B), math.Abs(A*C), math.Abs(D))) {
		r = 0
	}

	// Substitute y = s·w so the depressed coefficients are at most unit magnitude
	s := max(math.Sqrt(math.Abs(p)), math.Cbrt(math.Abs(q)), math.Sqrt(math.Sqrt(math.Abs(r))))
	if s == 0 {
		// One quadruple root
		return []float64{-shift}
	}

	roots := solveDepressedQuartic(p/(s*s), q/(s*s*s), r/(s*s*s*s))
	for i := range roots {
		roots[i] = polish(s*roots[i]-shift, a, b, c, d, e)
	}
	return normalizeRoots(roots, s)
}

// solveDepressedQuartic returns the real roots of w⁴ + p·w² + q·w + r = 0 for
// coefficients of at most unit magnitude
func solveDepressedQuartic(p, q, r float64) []float64 {
	if isZero(r, 1) {
		// w·(w³ + p·w + q) = 0
		return append(SolveCubic(1, 0, p, q), 0)
	}

	// Resolvent cubic: z³ - p/2·z² - r·z + (r·p/2 - q²/8) = 0. Its largest root
	// satisfies 2z ≥ p and z² ≥ r, so the factorization below is real.
	k := 0.5*r*p - 0.125*q*q
	resolvent := SolveCubic(1, -0.5*p, -r, k)
	if len(resolvent) == 0 {
		return nil
	}
	z := polish(resolvent[len(resolvent)-1], 0, 1, -0.5*p, -r, k)

	// w⁴ + p·w² + q·w + r = (w² + z)² - (v·w - u)² with v² = 2z - p, u² = z² - r
	// and 2uv = q. The larger square is taken directly, the other follows from q.
	v2 := 2*z - p
	u2 := z*z - r
	var u, v float64
	if v2 >= u2 {
		v = math.Sqrt(max(v2, 0))
		if v > 0 {
			u = q / (2 * v)
		}
	} else {
		u = math.Sqrt(max(u2, 0))
		if u > 0 {
			v = q / (2 * u)
		}
	}

	return append(SolveQuadratic(1, v, z-u), SolveQuadratic(1, -v, z+u)...)
}

// EvaluateQuartic returns a·x⁴ + b·x³ + c·x² + d·x + e using Horner's scheme
func EvaluateQuartic(x, a, b, c, d, e float64) float64 {
	return (((a*x+b)*x+c)*x+d)*x + e
}

// polish refines a root of a quartic (or, with a = 0, a cubic) with Newton's
// method, keeping the estimate with the smallest residual.
func polish(x, a, b, c, d, e float64) float64 {
	best := x
	bestResidual := math.Abs(EvaluateQuartic(x, a, b, c, d, e))
	for iter := 0; iter < polishIterations; iter++ {
		f := EvaluateQuartic(x, a, b, c, d, e)
		df := ((4*a*x+3*b)*x+2*c)*x + d
		if df == 0 {
			break
		}
		x -= f / df
		residual := math.Abs(EvaluateQuartic(x, a, b, c, d, e))
		if residual < bestResidual {
			best, bestResidual = x, residual
		}
	}
	return best
}

// normalizeRoots drops NaNs, sorts ascending and merges roots closer than
// duplicateTolerance·scale
func normalizeRoots(roots []float64, scale float64) []float64 {
	valid := roots[:0]
	for _, root := range roots {
		if !math.IsNaN(root) && !math.IsInf(root, 0) {
			valid = append(valid, root)
		}
	}
	if len(valid) < 2 {
		return valid
	}
	sort.Float64s(valid)

	merged := valid[:1]
	for _, root := range valid[1:] {
		last := merged[len(merged)-1]
		if scalar.EqualWithinAbs(root, last, duplicateTolerance*scale) {
			continue
		}
		merged = append(merged, root)
	}
	return merged
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}

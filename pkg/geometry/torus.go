package geometry

import (
	"math"

	"github.com/df07/go-surface-raytracer/pkg/core"
)

// torus is the QuarticTorus family. In the local frame the ring lies in the XZ
// plane with radius a and the tube has radius b:
//
//	(|p|² - a² - b²)² + 4a²(p_y² - b²) = 0
//
// Its parametric form, with φ = 2πu around the axis and θ = 2πv around the tube:
//
//	P(φ, θ) = ((a + b·cosθ)·cosφ, b·sinθ, (a + b·cosθ)·sinφ)
type torus struct {
	a, b             float64
	squareA, squareB float64
}

func (t torus) coefficients(origin, direction core.Vec3) [5]float64 {
	sumDD := direction.Dot(direction)
	e := origin.Dot(origin) - t.squareA - t.squareB
	f := origin.Dot(direction)
	fourA2 := 4 * t.squareA

	return [5]float64{
		sumDD * sumDD,
		4 * sumDD * f,
		2*sumDD*e + 4*f*f + fourA2*direction.Y*direction.Y,
		4*f*e + 2*fourA2*origin.Y*direction.Y,
		e*e - fourA2*(t.squareB-origin.Y*origin.Y),
	}
}

func (t torus) gradient(p core.Vec3) core.Vec3 {
	k := 4 * (p.LengthSquared() - t.squareA - t.squareB)
	return core.NewVec3(k*p.X, k*p.Y+8*t.squareA*p.Y, k*p.Z)
}

func (t torus) point(uv core.TexCoord) core.Vec3 {
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * uv.U)
	sinTheta, cosTheta := math.Sincos(2 * math.Pi * uv.V)
	ring := t.a + t.b*cosTheta
	return core.NewVec3(ring*cosPhi, t.b*sinTheta, ring*sinPhi)
}

func (t torus) parameters(p core.Vec3) core.TexCoord {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Atan2(p.Y, math.Hypot(p.X, p.Z)-t.a)
	return core.NewTexCoord(wrapUnit(phi/(2*math.Pi)), wrapUnit(theta/(2*math.Pi)))
}

func (t torus) partials(uv core.TexCoord) (core.Vec3, core.Vec3) {
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * uv.U)
	sinTheta, cosTheta := math.Sincos(2 * math.Pi * uv.V)
	ring := t.a + t.b*cosTheta

	du := core.NewVec3(-ring*sinPhi, 0, ring*cosPhi)
	dv := core.NewVec3(-t.b*sinTheta*cosPhi, t.b*cosTheta, -t.b*sinTheta*sinPhi)
	return du, dv
}

func (t torus) boundingRadius() float64 {
	return t.a + t.b
}

// wrapUnit maps x into [0,1)
func wrapUnit(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}

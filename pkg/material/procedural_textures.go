package material

import (
	"math"

	"github.com/df07/go-surface-raytracer/pkg/core"
)

// Checkerboard alternates two colors over a grid in texture space
type Checkerboard struct {
	Color1, Color2 core.Vec3
	ChecksU        int // Number of checks along U
	ChecksV        int // Number of checks along V
}

// NewCheckerboard creates a checkerboard with the given number of checks per axis
func NewCheckerboard(checksU, checksV int, color1, color2 core.Vec3) *Checkerboard {
	return &Checkerboard{
		Color1:  color1,
		Color2:  color2,
		ChecksU: max(1, checksU),
		ChecksV: max(1, checksV),
	}
}

// Evaluate picks the check containing uv; coordinates outside [0,1) wrap
func (c *Checkerboard) Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3 {
	checkU := int(math.Floor(uv.U * float64(c.ChecksU)))
	checkV := int(math.Floor(uv.V * float64(c.ChecksV)))
	if (checkU+checkV)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}

// UVColor shows texture coordinates as colors
// U maps to red channel, V maps to green channel
type UVColor struct{}

// Evaluate returns (u, v, 0)
func (UVColor) Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3 {
	return core.NewVec3(uv.U, uv.V, 0)
}

// Gradient blends from Color1 (v=0) to Color2 (v=1)
type Gradient struct {
	Color1, Color2 core.Vec3
}

// NewGradient creates a gradient along the V texture axis
func NewGradient(color1, color2 core.Vec3) *Gradient {
	return &Gradient{Color1: color1, Color2: color2}
}

// Evaluate interpolates along v, clamped to [0,1]
func (g *Gradient) Evaluate(uv core.TexCoord, point core.Vec3) core.Vec3 {
	t := max(0, min(1, uv.V))
	return g.Color1.Lerp(g.Color2, t)
}

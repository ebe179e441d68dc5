package geometry

import (
	"github.com/df07/go-surface-raytracer/pkg/core"
)

// LineAttributes selects what a Line interpolates besides its normals.
// The set of implementations is closed: NoAttributes, ColorPair and TexCoordPair.
type LineAttributes interface {
	lineAttributes()
}

// NoAttributes marks a line carrying normals only
type NoAttributes struct{}

// ColorPair carries one color per endpoint
type ColorPair struct {
	C1, C2 core.Vec3
}

// TexCoordPair carries one texture coordinate per endpoint
type TexCoordPair struct {
	T1, T2 core.TexCoord
}

func (NoAttributes) lineAttributes() {}
func (ColorPair) lineAttributes()    {}
func (TexCoordPair) lineAttributes() {}

package core

// TexCoord represents a 2D texture coordinate
type TexCoord struct {
	U, V float64
}

// NewTexCoord creates a new TexCoord
func NewTexCoord(u, v float64) TexCoord {
	return TexCoord{U: u, V: v}
}

// Add returns the sum of two texture coordinates
func (t TexCoord) Add(other TexCoord) TexCoord {
	return TexCoord{t.U + other.U, t.V + other.V}
}

// Subtract returns the difference of two texture coordinates
func (t TexCoord) Subtract(other TexCoord) TexCoord {
	return TexCoord{t.U - other.U, t.V - other.V}
}

// Multiply returns the texture coordinate scaled by a scalar
func (t TexCoord) Multiply(scalar float64) TexCoord {
	return TexCoord{t.U * scalar, t.V * scalar}
}

// Dot returns the dot product of two texture coordinates
func (t TexCoord) Dot(other TexCoord) float64 {
	return t.U*other.U + t.V*other.V
}

// Lerp linearly interpolates from t (s=0) to other (s=1)
func (t TexCoord) Lerp(other TexCoord, s float64) TexCoord {
	return t.Add(other.Subtract(t).Multiply(s))
}

// Equals reports whether both components are within Tolerance of other
func (t TexCoord) Equals(other TexCoord) bool {
	return ApproxEqual(t.U, other.U, Tolerance) && ApproxEqual(t.V, other.V, Tolerance)
}

package geom

import "math"

// Mat2D is a 2D affine transform stored as a row-major 2x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//
// which maps a point as
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// This is also the coefficient order used on the renderer command table.
type Mat2D struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transform.
func Identity() Mat2D {
	return Mat2D{A: 1, E: 1}
}

// Translate returns a translation transform.
func Translate(x, y float32) Mat2D {
	return Mat2D{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling transform.
func Scale(x, y float32) Mat2D {
	return Mat2D{A: x, E: y}
}

// Rotate returns a rotation transform; angle is in radians.
func Rotate(angle float32) Mat2D {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Mat2D{A: c, B: -s, D: s, E: c}
}

// FromValues builds a transform from six coefficients in row-major order.
func FromValues(v [6]float32) Mat2D {
	return Mat2D{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}
}

// Values returns the six coefficients in row-major order.
func (m Mat2D) Values() [6]float32 {
	return [6]float32{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Multiply returns m * other, i.e. other is applied first.
func (m Mat2D) Multiply(other Mat2D) Mat2D {
	return Mat2D{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Mat2D) TransformPoint(p Vec2D) Vec2D {
	return Vec2D{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector maps p through m without translation.
func (m Mat2D) TransformVector(p Vec2D) Vec2D {
	return Vec2D{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse transform and whether m was invertible.
// A singular m yields the identity.
func (m Mat2D) Invert() (Mat2D, bool) {
	det := float64(m.A)*float64(m.E) - float64(m.B)*float64(m.D)
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	inv := 1.0 / det
	a, b, c := float64(m.A), float64(m.B), float64(m.C)
	d, e, f := float64(m.D), float64(m.E), float64(m.F)
	return Mat2D{
		A: float32(e * inv),
		B: float32(-b * inv),
		C: float32((b*f - c*e) * inv),
		D: float32(-d * inv),
		E: float32(a * inv),
		F: float32((c*d - a*f) * inv),
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Mat2D) IsIdentity() bool {
	return m == Identity()
}

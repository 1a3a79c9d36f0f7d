package oge

import "math"

// Matrix2 is a 2x2 linear map stored as two basis columns.
//
// Applying the matrix to v yields I*v.X + J*v.Y.
type Matrix2 struct {
	I, J Vector2
}

// Identity2 returns the identity matrix.
func Identity2() Matrix2 {
	return Matrix2{I: Vector2{X: 1}, J: Vector2{Y: 1}}
}

// Rotation returns a matrix that turns vectors by angle radians along the
// bearing convention used by [Vector2.Direction]: Up is mapped to the vector
// whose direction is angle.
func Rotation(angle float32) Matrix2 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Matrix2{
		I: Vector2{X: c, Y: -s},
		J: Vector2{X: s, Y: c},
	}
}

// Stretch returns a matrix scaling X by x and Y by y.
func Stretch(x, y float32) Matrix2 {
	return Matrix2{I: Vector2{X: x}, J: Vector2{Y: y}}
}

// Scale returns a uniform scaling matrix.
func Scale(s float32) Matrix2 {
	return Stretch(s, s)
}

// ShearX returns a matrix shifting X by k for every unit of Y.
func ShearX(k float32) Matrix2 {
	return Matrix2{I: Vector2{X: 1}, J: Vector2{X: k, Y: 1}}
}

// ShearY returns a matrix shifting Y by k for every unit of X.
func ShearY(k float32) Matrix2 {
	return Matrix2{I: Vector2{X: 1, Y: k}, J: Vector2{Y: 1}}
}

// Apply transforms v by the matrix.
func (m Matrix2) Apply(v Vector2) Vector2 {
	return m.I.Scale(v.X).Add(m.J.Scale(v.Y))
}

// Compose returns the linear map that applies rhs first, then m.
func (m Matrix2) Compose(rhs Matrix2) Matrix2 {
	return Matrix2{I: m.Apply(rhs.I), J: m.Apply(rhs.J)}
}

// ReverseCompose returns the linear map that applies m first, then lhs.
func (m Matrix2) ReverseCompose(lhs Matrix2) Matrix2 {
	return lhs.Compose(m)
}

// Determinant returns the signed area scale of the matrix.
func (m Matrix2) Determinant() float32 {
	return m.I.X*m.J.Y - m.J.X*m.I.Y
}

// Approx reports whether both columns are equal within epsilon.
func (m Matrix2) Approx(o Matrix2, epsilon float32) bool {
	return m.I.Approx(o.I, epsilon) && m.J.Approx(o.J, epsilon)
}

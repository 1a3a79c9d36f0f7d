package oge

import "math"

// Vector2 is a 2D vector in world units.
// The same type is used for positions, displacements and texture coordinates.
type Vector2 struct {
	X, Y float32
}

// Common directions.
var (
	Up    = Vector2{X: 0, Y: 1}
	Right = Vector2{X: 1, Y: 0}
)

// V2 is a convenience function to create a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewEuclidean creates a vector from a bearing (0 = up, clockwise positive)
// and a length.
func NewEuclidean(direction, magnitude float32) Vector2 {
	sin, cos := math.Sincos(float64(direction))
	return Vector2{X: magnitude * float32(sin), Y: magnitude * float32(cos)}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Magnitude returns the length of the vector.
func (v Vector2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// DistanceTo returns the distance between two positions.
func (v Vector2) DistanceTo(w Vector2) float32 {
	return w.Sub(v).Magnitude()
}

// Direction returns the signed bearing of the vector in (-π, π].
// Zero points up and positive angles turn towards +X.
func (v Vector2) Direction() float32 {
	d := float32(math.Atan2(float64(v.X), float64(v.Y)))
	if d == -pi32 {
		return pi32
	}
	return d
}

// RelativeDirection returns the bearing from v towards w.
func (v Vector2) RelativeDirection(w Vector2) float32 {
	return w.Sub(v).Direction()
}

// WithMagnitude returns the vector rescaled to length m.
// The zero vector has no direction and yields NaN components.
func (v Vector2) WithMagnitude(m float32) Vector2 {
	return v.Scale(m / v.Magnitude())
}

// Approx reports whether two vectors are equal within epsilon per component.
func (v Vector2) Approx(w Vector2, epsilon float32) bool {
	return abs32(v.X-w.X) <= epsilon && abs32(v.Y-w.Y) <= epsilon
}

// IsFinite reports whether both components are finite.
func (v Vector2) IsFinite() bool {
	return !math.IsInf(float64(v.X), 0) && !math.IsNaN(float64(v.X)) &&
		!math.IsInf(float64(v.Y), 0) && !math.IsNaN(float64(v.Y))
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

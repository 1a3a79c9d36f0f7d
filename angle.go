package oge

import "math"

const (
	pi32  = float32(math.Pi)
	tau32 = float32(2 * math.Pi)
)

// WrapAngle maps an angle in radians into (-π, π], removing any number of
// full turns. Non-finite input yields NaN.
func WrapAngle(a float32) float32 {
	if math.IsInf(float64(a), 0) || math.IsNaN(float64(a)) {
		return float32(math.NaN())
	}
	if a > tau32 || a < -tau32 {
		a = float32(math.Mod(float64(a), 2*math.Pi))
	}
	for a > pi32 {
		a -= tau32
	}
	for a <= -pi32 {
		a += tau32
	}
	return a
}

// AngleBetween returns the signed turn from the bearing of from to the
// bearing of to, wrapped into (-π, π].
func AngleBetween(from, to Vector2) float32 {
	return WrapAngle(to.Direction() - from.Direction())
}

package oge

// Affine2 is a linear map followed by a translation: p' = Matrix*p + Translation.
//
// The zero value has a zero matrix and collapses every point; use
// [IdentityAffine2] or [NewAffine2] to build a usable transform.
type Affine2 struct {
	Matrix      Matrix2
	Translation Vector2
}

// IdentityAffine2 returns the identity transform.
func IdentityAffine2() Affine2 {
	return Affine2{Matrix: Identity2()}
}

// NewAffine2 creates a transform from a matrix and a translation.
func NewAffine2(m Matrix2, translation Vector2) Affine2 {
	return Affine2{Matrix: m, Translation: translation}
}

// Translation2 returns a pure translation.
func Translation2(t Vector2) Affine2 {
	return Affine2{Matrix: Identity2(), Translation: t}
}

// Apply transforms p.
func (a Affine2) Apply(p Vector2) Vector2 {
	return a.Matrix.Apply(p).Add(a.Translation)
}

// Compose combines two transforms. The matrices compose as "rhs then a",
// while the translations are summed as-is: rhs.Translation is not mapped
// through a.Matrix. Sprite placement and viewport mapping rely on this.
func (a Affine2) Compose(rhs Affine2) Affine2 {
	return Affine2{
		Matrix:      a.Matrix.Compose(rhs.Matrix),
		Translation: a.Translation.Add(rhs.Translation),
	}
}

// ComposeAssign replaces a with a.Compose(rhs).
func (a *Affine2) ComposeAssign(rhs Affine2) {
	*a = a.Compose(rhs)
}

// ReverseCompose returns lhs.Compose(a).
func (a Affine2) ReverseCompose(lhs Affine2) Affine2 {
	return lhs.Compose(a)
}

// Approx reports whether two transforms are equal within epsilon.
func (a Affine2) Approx(o Affine2, epsilon float32) bool {
	return a.Matrix.Approx(o.Matrix, epsilon) && a.Translation.Approx(o.Translation, epsilon)
}

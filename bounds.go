package oge

// Bounds is an axis-aligned region given by its bottom-left and top-right
// corners. Inverted corners give negative extents.
type Bounds struct {
	BottomLeft, TopRight Vector2
}

// NewBounds creates bounds from two corners.
func NewBounds(bottomLeft, topRight Vector2) Bounds {
	return Bounds{BottomLeft: bottomLeft, TopRight: topRight}
}

// CenteredBounds creates bounds of the given size centered on the origin.
func CenteredBounds(width, height float32) Bounds {
	return Bounds{
		BottomLeft: Vector2{X: -width / 2, Y: -height / 2},
		TopRight:   Vector2{X: width / 2, Y: height / 2},
	}
}

// Width returns TopRight.X - BottomLeft.X.
func (b Bounds) Width() float32 { return b.TopRight.X - b.BottomLeft.X }

// Height returns TopRight.Y - BottomLeft.Y.
func (b Bounds) Height() float32 { return b.TopRight.Y - b.BottomLeft.Y }

// Center returns the midpoint of the region.
func (b Bounds) Center() Vector2 {
	return b.BottomLeft.Add(Vector2{X: b.Width() / 2, Y: b.Height() / 2})
}

// Contains reports whether p lies inside the region, edges included.
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= b.BottomLeft.X && p.X <= b.TopRight.X &&
		p.Y >= b.BottomLeft.Y && p.Y <= b.TopRight.Y
}

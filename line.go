package oge

// Line is an infinite line through Position along Direction.
type Line struct {
	Position  Vector2
	Direction Vector2
}

// Connect returns the line through a and b, directed from a to b.
func Connect(a, b Vector2) Line {
	return Line{Position: a, Direction: b.Sub(a)}
}

// Shift returns the line moved by offset.
func (l Line) Shift(offset Vector2) Line {
	return Line{Position: l.Position.Add(offset), Direction: l.Direction}
}

// Intersection returns the point where l and o cross.
// It returns false when the lines are parallel.
func (l Line) Intersection(o Line) (Vector2, bool) {
	d1, d2 := l.Direction, o.Direction
	den := d1.Y*d2.X - d1.X*d2.Y
	if den == 0 {
		return Vector2{}, false
	}
	p := o.Position.Sub(l.Position)
	t := (d1.X*p.Y - d1.Y*p.X) / den
	return d2.Scale(t).Add(o.Position), true
}

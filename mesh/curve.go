package mesh

import (
	"fmt"

	"github.com/gogpu/oge"
)

// CurveStyle selects how interior points of a curve ribbon are joined.
type CurveStyle uint8

const (
	// PreserveAngles joins segments with a true miter at every point.
	// Acute turns produce long spikes.
	PreserveAngles CurveStyle = iota

	// DoubleJointed splits every interior point into two points a short
	// distance along the incoming and outgoing segments, leaving a small
	// flat bevel instead of a spike.
	DoubleJointed

	// Bezier is reserved for smoothed curves and is not implemented.
	Bezier
)

// String returns the style name.
func (s CurveStyle) String() string {
	switch s {
	case PreserveAngles:
		return "PreserveAngles"
	case DoubleJointed:
		return "DoubleJointed"
	case Bezier:
		return "Bezier"
	default:
		return fmt.Sprintf("CurveStyle(%d)", uint8(s))
	}
}

// JointOffset is the distance from an interior point at which
// DoubleJointed places its two replacement points.
const JointOffset = 0.01

// Line returns a ribbon mesh of the given width following points.
//
// Neighbouring segments meet at the intersection of their offset edges.
// Where two segments are collinear the edges never cross and the joint
// emits no vertices; the ribbon simply continues to the next joint.
// The end points are capped square using their single segment.
//
// Line panics with fewer than 2 points, with the Bezier style, or when the
// ribbon needs more vertices than 16-bit indices can address.
func Line(width float32, points []oge.Vector2, style CurveStyle) *Mesh {
	if len(points) < 2 {
		panic(fmt.Sprintf("mesh: line needs at least 2 points, got %d", len(points)))
	}

	switch style {
	case PreserveAngles:
	case DoubleJointed:
		points = DoubleJoint(points)
	case Bezier:
		panic("mesh: Bezier curve style is not implemented")
	default:
		panic(fmt.Sprintf("mesh: unknown curve style %d", uint8(style)))
	}

	if 2*len(points) > 1<<16 {
		panic(fmt.Sprintf("mesh: %d points exceed the 16-bit index range", len(points)))
	}

	return miter(width/2, points)
}

// DoubleJoint replaces every interior point p with p-in*JointOffset and
// p+out*JointOffset, where in and out are the unit directions of the
// incoming and outgoing segments. The result has 2(n-2)+2 points.
func DoubleJoint(points []oge.Vector2) []oge.Vector2 {
	if len(points) < 3 {
		return append([]oge.Vector2(nil), points...)
	}
	out := make([]oge.Vector2, 0, 2*(len(points)-2)+2)
	out = append(out, points[0])
	for j := 1; j < len(points)-1; j++ {
		p := points[j]
		in := p.Sub(points[j-1]).WithMagnitude(JointOffset)
		next := points[j+1].Sub(p).WithMagnitude(JointOffset)
		out = append(out, p.Sub(in), p.Add(next))
	}
	return append(out, points[len(points)-1])
}

// edges holds the two offset lines of one segment.
type edges struct {
	left, right oge.Line
	normal      oge.Vector2
}

func segmentEdges(a, b oge.Vector2, half float32) edges {
	d := b.Sub(a)
	n := oge.V2(-d.Y, d.X).WithMagnitude(half)
	center := oge.Connect(a, b)
	return edges{
		left:   center.Shift(n),
		right:  center.Shift(n.Neg()),
		normal: n,
	}
}

func miter(half float32, points []oge.Vector2) *Mesh {
	segs := make([]edges, len(points)-1)
	for i := range segs {
		segs[i] = segmentEdges(points[i], points[i+1], half)
	}

	vertices := make([]Vertex, 0, 2*len(points))
	emit := func(left, right oge.Vector2) {
		vertices = append(vertices, Vertex{Position: left}, Vertex{Position: right})
	}

	first, last := points[0], points[len(points)-1]
	emit(first.Add(segs[0].normal), first.Sub(segs[0].normal))

	// skipped counts joints that emitted nothing, so that triangles only
	// ever reference vertices that exist.
	skipped := 0
	for j := 1; j < len(points)-1; j++ {
		in, out := segs[j-1], segs[j]
		left, ok := in.left.Intersection(out.left)
		if !ok {
			skipped++
			continue
		}
		right, ok := in.right.Intersection(out.right)
		if !ok {
			skipped++
			continue
		}
		emit(left, right)
	}

	end := segs[len(segs)-1].normal
	emit(last.Add(end), last.Sub(end))

	joints := len(points) - skipped
	indices := make([]uint16, 0, 6*(joints-1))
	for m := 0; m < joints-1; m++ {
		l0, r0 := uint16(2*m), uint16(2*m+1)   //nolint:gosec // bounded by Line
		l1, r1 := uint16(2*m+2), uint16(2*m+3) //nolint:gosec // bounded by Line
		indices = append(indices, r0, r1, l1, r0, l1, l0)
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Shape:    oge.IdentityAffine2(),
	}
}

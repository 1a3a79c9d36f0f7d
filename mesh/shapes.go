package mesh

import (
	"fmt"
	"math"

	"github.com/gogpu/oge"
)

// Rectangle returns an axis-aligned quad of the given size centered on the
// origin, split into two triangles.
func Rectangle(width, height float32) *Mesh {
	x, y := width/2, height/2
	return &Mesh{
		Vertices: []Vertex{
			{Position: oge.V2(-x, -y)},
			{Position: oge.V2(x, -y)},
			{Position: oge.V2(x, y)},
			{Position: oge.V2(-x, y)},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
		Shape:   oge.IdentityAffine2(),
	}
}

// Ellipse returns a triangle fan approximating an ellipse with semi-axes a
// and b using detail rim vertices.
//
// The vertices lie on the unit circle, starting at Up and turning
// counter-clockwise. The a/b scale is stored in Shape as a stretch.
// Ellipse panics if detail is below 3 or above the 16-bit index range.
func Ellipse(a, b float32, detail int) *Mesh {
	if detail < 3 {
		panic(fmt.Sprintf("mesh: ellipse needs at least 3 vertices, got %d", detail))
	}
	if detail > math.MaxUint16+1 {
		panic(fmt.Sprintf("mesh: ellipse detail %d exceeds the 16-bit index range", detail))
	}

	step := oge.Rotation(-2 * math.Pi / float32(detail))
	vertices := make([]Vertex, detail)
	p := oge.Up
	for i := range vertices {
		vertices[i].Position = p
		p = step.Apply(p)
	}

	indices := make([]uint16, 0, 3*(detail-2))
	for i := 1; i < detail-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1)) //nolint:gosec // detail checked above
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Shape:    oge.NewAffine2(oge.Stretch(a, b), oge.Vector2{}),
	}
}

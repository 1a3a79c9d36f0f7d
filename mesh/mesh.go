package mesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/oge"
)

// Errors returned by Validate.
var (
	ErrIndexCount      = errors.New("mesh: index count is not a multiple of 3")
	ErrIndexOutOfRange = errors.New("mesh: index references a missing vertex")
)

// Vertex is a mesh vertex in local coordinates with its texture coordinate.
type Vertex struct {
	Position oge.Vector2
	UV       oge.Vector2
}

// Mesh is an indexed triangle list.
//
// Shape is the baseline transform of the geometry, applied before any
// instance transform. Generators that bake their size into the vertices
// leave it at identity.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	Shape    oge.Affine2
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index list forms whole triangles and only
// references existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIndexCount, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndexOutOfRange, i, idx, len(m.Vertices))
		}
	}
	return nil
}

// Bounds returns the axis-aligned box of the vertices referenced by the
// index list. Vertices that no triangle uses do not contribute.
// A mesh without indices has zero bounds.
func (m *Mesh) Bounds() oge.Bounds {
	if len(m.Indices) == 0 {
		return oge.Bounds{}
	}
	first := m.Vertices[m.Indices[0]].Position
	lo, hi := first, first
	for _, idx := range m.Indices[1:] {
		p := m.Vertices[idx].Position
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return oge.Bounds{BottomLeft: lo, TopRight: hi}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint16(nil), m.Indices...),
		Shape:    m.Shape,
	}
}

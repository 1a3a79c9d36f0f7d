package mesh

import "fmt"

// ProjectionMethod selects how texture coordinates are assigned to a mesh.
type ProjectionMethod uint8

const (
	// ScaleToFit covers the texture with the mesh box using a uniform
	// scale, keeping the box center at UV (0.5, 0.5). The overflowing axis
	// is clipped by the sampler address mode.
	ScaleToFit ProjectionMethod = iota

	// SingleColor leaves every UV at zero. Used with 1x1 color textures
	// where the sample does not depend on the coordinate.
	SingleColor
)

// String returns the method name.
func (p ProjectionMethod) String() string {
	switch p {
	case ScaleToFit:
		return "ScaleToFit"
	case SingleColor:
		return "SingleColor"
	default:
		return fmt.Sprintf("ProjectionMethod(%d)", uint8(p))
	}
}

// Project assigns texture coordinates for a texture of texWidth x texHeight
// pixels.
//
// For ScaleToFit the mesh aspect ratio is compared to the texture's: a mesh
// relatively wider than the texture is scaled by its height, otherwise by
// its width. V grows downwards as in texture space.
func (m *Mesh) Project(method ProjectionMethod, texWidth, texHeight uint32) {
	switch method {
	case ScaleToFit:
		m.scaleToFit(texWidth, texHeight)
	case SingleColor:
		for i := range m.Vertices {
			m.Vertices[i].UV.X, m.Vertices[i].UV.Y = 0, 0
		}
	default:
		panic(fmt.Sprintf("mesh: unknown projection method %d", uint8(method)))
	}
}

func (m *Mesh) scaleToFit(texWidth, texHeight uint32) {
	b := m.Bounds()
	w, h := b.Width(), b.Height()
	meshAspect := w / h
	texAspect := float32(texWidth) / float32(texHeight)

	var sf float32
	if meshAspect > texAspect {
		sf = 1 / h
	} else {
		sf = 1 / w
	}

	c := b.Center()
	for i := range m.Vertices {
		p := m.Vertices[i].Position.Sub(c)
		m.Vertices[i].UV.X = p.X*sf + 0.5
		m.Vertices[i].UV.Y = -p.Y*sf + 0.5
	}
}

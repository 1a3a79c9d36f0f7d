package sprite

import (
	"fmt"
	"slices"

	"github.com/gogpu/oge"
	"github.com/gogpu/oge/mesh"
	"github.com/gogpu/oge/render"
)

// CurveConfig describes a curve.
type CurveConfig struct {
	Label   string
	Width   float32
	Points  []oge.Vector2
	Style   mesh.CurveStyle
	Texture TextureConfig
	Z       render.ZIndex
	Opacity float32
}

// Curve is a ribbon sprite following an editable list of points.
//
// Every mutation marks the mesh dirty. Mesh, Sprite and DrawSource rebuild
// it only when dirty; repeated reads return the cached mesh. Once GetMut
// has handed out a pointer, reads also compare the points with those the
// mesh was built from, so writes through it are picked up whenever they
// happen.
type Curve struct {
	width  float32
	points []oge.Vector2
	style  mesh.CurveStyle
	sprite *Sprite
	dirty  bool

	built []oge.Vector2 // points of the cached mesh, tracked once lent
	lent  bool
}

// NewCurve creates a curve. It panics with fewer than 2 points and returns
// an error wrapping one of the texture errors when the texture cannot be
// loaded.
func NewCurve(cfg CurveConfig) (*Curve, error) {
	if len(cfg.Points) < 2 {
		panic(fmt.Sprintf("sprite: curve needs at least 2 points, got %d", len(cfg.Points)))
	}
	points := append([]oge.Vector2(nil), cfg.Points...)
	s, err := New(Config{
		Label:   cfg.Label,
		Mesh:    mesh.Line(cfg.Width, points, cfg.Style),
		Texture: cfg.Texture,
		Z:       cfg.Z,
		Opacity: cfg.Opacity,
	})
	if err != nil {
		return nil, err
	}
	return &Curve{
		width:  cfg.Width,
		points: points,
		style:  cfg.Style,
		sprite: s,
		built:  slices.Clone(points),
	}, nil
}

// Len returns the number of points.
func (c *Curve) Len() int { return len(c.points) }

// Points returns a copy of the points.
func (c *Curve) Points() []oge.Vector2 {
	return append([]oge.Vector2(nil), c.points...)
}

// Get returns point i.
func (c *Curve) Get(i int) oge.Vector2 { return c.points[i] }

// GetMut returns a pointer to point i. Writes through it mark the mesh
// dirty. The pointer is invalidated by Push, Insert and Remove.
func (c *Curve) GetMut(i int) *oge.Vector2 {
	c.lent = true
	return &c.points[i]
}

// Set replaces point i.
func (c *Curve) Set(i int, p oge.Vector2) {
	c.points[i] = p
	c.dirty = true
}

// Push appends p.
func (c *Curve) Push(p oge.Vector2) {
	c.points = append(c.points, p)
	c.dirty = true
}

// Insert inserts p before index i. Insert(Len(), p) appends.
func (c *Curve) Insert(i int, p oge.Vector2) {
	if i < 0 || i > len(c.points) {
		panic(fmt.Sprintf("sprite: insert index %d out of range [0, %d]", i, len(c.points)))
	}
	c.points = append(c.points, oge.Vector2{})
	copy(c.points[i+1:], c.points[i:])
	c.points[i] = p
	c.dirty = true
}

// Remove deletes and returns point i. It panics if the curve would be left
// with fewer than 2 points.
func (c *Curve) Remove(i int) oge.Vector2 {
	if len(c.points) <= 2 {
		panic("sprite: curve cannot have fewer than 2 points")
	}
	p := c.points[i]
	c.points = append(c.points[:i], c.points[i+1:]...)
	c.dirty = true
	return p
}

// Width returns the ribbon width.
func (c *Curve) Width() float32 { return c.width }

// SetWidth changes the ribbon width.
func (c *Curve) SetWidth(w float32) {
	c.width = w
	c.dirty = true
}

// Style returns the join style.
func (c *Curve) Style() mesh.CurveStyle { return c.style }

// SetStyle changes the join style.
func (c *Curve) SetStyle(s mesh.CurveStyle) {
	c.style = s
	c.dirty = true
}

// Dirty reports whether the mesh is stale.
func (c *Curve) Dirty() bool {
	if c.lent && !c.dirty && !slices.Equal(c.points, c.built) {
		c.dirty = true
	}
	return c.dirty
}

// NearestJoint returns the index of the point closest to p and its
// distance. Ties go to the lowest index.
func (c *Curve) NearestJoint(p oge.Vector2) (int, float32) {
	best, bestDist := 0, c.points[0].DistanceTo(p)
	for i := 1; i < len(c.points); i++ {
		if d := c.points[i].DistanceTo(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

func (c *Curve) refresh() {
	if !c.Dirty() {
		return
	}
	c.sprite.mesh = mesh.Line(c.width, c.points, c.style)
	c.sprite.project()
	c.built = append(c.built[:0], c.points...)
	c.dirty = false
	oge.Logger().Debug("sprite: curve mesh rebuilt",
		"label", c.sprite.label, "points", len(c.points), "vertices", len(c.sprite.mesh.Vertices))
}

// Mesh returns the current ribbon mesh.
func (c *Curve) Mesh() *mesh.Mesh {
	c.refresh()
	return c.sprite.mesh
}

// Sprite returns the underlying sprite with an up-to-date mesh.
// Transforms, z-index and opacity are set through it.
func (c *Curve) Sprite() *Sprite {
	c.refresh()
	return c.sprite
}

// DrawSource implements render.Drawable.
func (c *Curve) DrawSource(dev render.Device) (render.Source, error) {
	return c.Sprite().DrawSource(dev)
}

var _ render.Drawable = (*Curve)(nil)

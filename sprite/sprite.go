package sprite

import (
	"fmt"

	"github.com/gogpu/oge"
	"github.com/gogpu/oge/mesh"
	"github.com/gogpu/oge/render"
)

// Config describes a sprite.
type Config struct {
	Label   string
	Mesh    *mesh.Mesh
	Texture TextureConfig
	Z       render.ZIndex

	// Opacity multiplies the texture alpha. Zero means fully opaque;
	// use SetOpacity to make a visible sprite transparent.
	Opacity float32
}

// Sprite is a textured mesh placed in the world.
type Sprite struct {
	label    string
	mesh     *mesh.Mesh
	texture  *Texture
	instance oge.Affine2
	z        render.ZIndex
	opacity  float32
}

// New creates a sprite from a copy of cfg.Mesh whose UVs are projected
// onto the texture. cfg.Mesh itself is left untouched.
// It returns an error wrapping one of the texture errors when the texture
// cannot be loaded; no sprite is created in that case.
func New(cfg Config) (*Sprite, error) {
	if cfg.Mesh == nil {
		panic("sprite: nil mesh")
	}
	tex, err := NewTexture(cfg.Texture)
	if err != nil {
		return nil, err
	}
	opacity := cfg.Opacity
	if opacity == 0 {
		opacity = 1
	}
	s := &Sprite{
		label:    cfg.Label,
		mesh:     cfg.Mesh.Clone(),
		texture:  tex,
		instance: oge.IdentityAffine2(),
		z:        cfg.Z,
		opacity:  opacity,
	}
	s.project()
	return s, nil
}

func (s *Sprite) project() {
	w, h := s.texture.Size()
	s.mesh.Project(s.texture.cfg.Projection, w, h)
}

// Label returns the sprite label.
func (s *Sprite) Label() string { return s.label }

// Mesh returns the sprite mesh.
func (s *Sprite) Mesh() *mesh.Mesh { return s.mesh }

// Texture returns the sprite texture.
func (s *Sprite) Texture() *Texture { return s.texture }

// Position returns the instance translation.
func (s *Sprite) Position() oge.Vector2 { return s.instance.Translation }

// SetPosition places the sprite at p.
func (s *Sprite) SetPosition(p oge.Vector2) {
	s.instance.Translation = p
}

// Transform queues m on top of the current instance transform. Following
// [oge.Matrix2.Compose], m acts on the geometry before the transforms
// already queued.
func (s *Sprite) Transform(m oge.Matrix2) {
	s.instance.ComposeAssign(oge.NewAffine2(m, oge.Vector2{}))
}

// SetTransformation replaces the instance matrix with m, keeping the
// position. The mesh shape transform is not affected.
func (s *Sprite) SetTransformation(m oge.Matrix2) {
	s.instance = oge.NewAffine2(m, s.instance.Translation)
}

// Instance returns the instance transform.
func (s *Sprite) Instance() oge.Affine2 { return s.instance }

// LocalTransform returns the shape transform followed by the instance
// transform.
func (s *Sprite) LocalTransform() oge.Affine2 {
	return s.instance.Compose(s.mesh.Shape)
}

// Z returns the z-index.
func (s *Sprite) Z() render.ZIndex { return s.z }

// SetZIndex sets the z-index.
func (s *Sprite) SetZIndex(z render.ZIndex) { s.z = z }

// Opacity returns the opacity.
func (s *Sprite) Opacity() float32 { return s.opacity }

// SetOpacity sets the opacity in [0, 1].
func (s *Sprite) SetOpacity(o float32) { s.opacity = o }

// DrawSource implements render.Drawable.
func (s *Sprite) DrawSource(dev render.Device) (render.Source, error) {
	tex, smp, err := s.texture.Upload(dev)
	if err != nil {
		return render.Source{}, fmt.Errorf("sprite %q: %w", s.label, err)
	}
	return render.Source{
		Label:      s.label,
		Vertices:   s.mesh.VertexBytes(),
		Indices:    s.mesh.IndexBytes(),
		IndexCount: s.mesh.IndexCount(),
		Texture:    tex,
		Sampler:    smp,
		Transform:  s.LocalTransform(),
		Opacity:    s.opacity,
		Z:          s.z,
	}, nil
}

// Release frees the GPU texture copies.
func (s *Sprite) Release() {
	s.texture.Release()
}

var _ render.Drawable = (*Sprite)(nil)

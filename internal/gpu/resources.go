//go:build !nogpu

package gpu

import (
	"github.com/gogpu/oge/render"
	"github.com/gogpu/wgpu/hal"
)

// buffer is a HAL buffer handed out by Device.CreateBuffer.
type buffer struct {
	device hal.Device
	buf    hal.Buffer
	size   uint64
}

func (b *buffer) Size() uint64 { return b.size }

func (b *buffer) Release() {
	if b.buf == nil {
		return
	}
	b.device.DestroyBuffer(b.buf)
	b.buf = nil
}

// texture is a sampled RGBA texture and its view.
type texture struct {
	device hal.Device
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

func (t *texture) Width() uint32  { return t.width }
func (t *texture) Height() uint32 { return t.height }

func (t *texture) Release() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

type sampler struct {
	device  hal.Device
	sampler hal.Sampler
}

func (s *sampler) Release() {
	if s.sampler == nil {
		return
	}
	s.device.DestroySampler(s.sampler)
	s.sampler = nil
}

type bindGroup struct {
	device hal.Device
	group  hal.BindGroup
}

func (g *bindGroup) Release() {
	if g.group == nil {
		return
	}
	g.device.DestroyBindGroup(g.group)
	g.group = nil
}

var (
	_ render.Buffer    = (*buffer)(nil)
	_ render.Texture   = (*texture)(nil)
	_ render.Sampler   = (*sampler)(nil)
	_ render.BindGroup = (*bindGroup)(nil)
)

package sprite

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge/render"
)

type fakeResource struct{ released bool }

func (r *fakeResource) Release() { r.released = true }

type fakeTexture struct {
	fakeResource
	w, h   uint32
	pixels []byte
}

func (t *fakeTexture) Width() uint32  { return t.w }
func (t *fakeTexture) Height() uint32 { return t.h }

type fakeSampler struct {
	fakeResource
	cfg render.SamplerConfig
}

type fakeDevice struct {
	textures []*fakeTexture
	samplers []*fakeSampler
}

func (d *fakeDevice) CreateBuffer(string, gputypes.BufferUsage, []byte) (render.Buffer, error) {
	panic("not used")
}

func (d *fakeDevice) CreateTexture(_ string, rgba []byte, w, h uint32) (render.Texture, error) {
	t := &fakeTexture{w: w, h: h, pixels: rgba}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) CreateSampler(_ string, cfg render.SamplerConfig) (render.Sampler, error) {
	s := &fakeSampler{cfg: cfg}
	d.samplers = append(d.samplers, s)
	return s, nil
}

func (d *fakeDevice) CreateBindGroup(string, render.Texture, render.Sampler, render.Buffer) (render.BindGroup, error) {
	panic("not used")
}

func (d *fakeDevice) AcquireFrame() (render.Frame, error) {
	return nil, render.ErrNoCurrentFrame
}

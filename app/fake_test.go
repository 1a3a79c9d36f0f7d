package app

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge/render"
)

type nopResource struct{}

func (nopResource) Release() {}

type fakeBuffer struct {
	nopResource
	n uint64
}

func (b fakeBuffer) Size() uint64 { return b.n }

type fakeFrame struct {
	labels    []string
	presented bool
}

func (f *fakeFrame) Draw(call render.DrawCall) error {
	f.labels = append(f.labels, call.Label)
	return nil
}

func (f *fakeFrame) Present() error {
	f.presented = true
	return nil
}

type fakeDevice struct {
	noFrame    bool
	frames     []*fakeFrame
	configured []render.PipelineConfig
	events     *[]string
}

func (d *fakeDevice) CreateBuffer(_ string, _ gputypes.BufferUsage, contents []byte) (render.Buffer, error) {
	return fakeBuffer{n: uint64(len(contents))}, nil
}

func (d *fakeDevice) CreateTexture(string, []byte, uint32, uint32) (render.Texture, error) {
	return nil, nil
}

func (d *fakeDevice) CreateSampler(string, render.SamplerConfig) (render.Sampler, error) {
	return nopResource{}, nil
}

func (d *fakeDevice) CreateBindGroup(string, render.Texture, render.Sampler, render.Buffer) (render.BindGroup, error) {
	return nopResource{}, nil
}

func (d *fakeDevice) AcquireFrame() (render.Frame, error) {
	if d.events != nil {
		*d.events = append(*d.events, "acquire")
	}
	if d.noFrame {
		return nil, render.ErrNoCurrentFrame
	}
	f := &fakeFrame{}
	d.frames = append(d.frames, f)
	return f, nil
}

func (d *fakeDevice) Configure(cfg render.PipelineConfig) error {
	if d.events != nil {
		*d.events = append(*d.events, "configure")
	}
	d.configured = append(d.configured, cfg)
	return nil
}

// plainDevice hides Configure.
type plainDevice struct{ render.Device }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"
)

type fakeBuffer struct {
	label    string
	usage    gputypes.BufferUsage
	data     []byte
	released bool
}

func (b *fakeBuffer) Size() uint64 { return uint64(len(b.data)) }
func (b *fakeBuffer) Release()     { b.released = true }

type fakeTexture struct{ w, h uint32 }

func (t *fakeTexture) Width() uint32  { return t.w }
func (t *fakeTexture) Height() uint32 { return t.h }
func (t *fakeTexture) Release()       {}

type fakeSampler struct{ cfg SamplerConfig }

func (s *fakeSampler) Release() {}

type fakeBindGroup struct {
	label    string
	uniform  *fakeBuffer
	released bool
}

func (g *fakeBindGroup) Release() { g.released = true }

type fakeFrame struct {
	calls     []DrawCall
	presented bool
	drawErr   error
}

func (f *fakeFrame) Draw(call DrawCall) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeFrame) Present() error {
	f.presented = true
	return nil
}

// fakeDevice records every resource it hands out.
type fakeDevice struct {
	buffers    []*fakeBuffer
	bindGroups []*fakeBindGroup
	frame      *fakeFrame
	noFrame    bool
	bufferErr  error
	configured []PipelineConfig
}

func (d *fakeDevice) CreateBuffer(label string, usage gputypes.BufferUsage, contents []byte) (Buffer, error) {
	if d.bufferErr != nil {
		return nil, d.bufferErr
	}
	b := &fakeBuffer{label: label, usage: usage, data: append([]byte(nil), contents...)}
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDevice) CreateTexture(_ string, _ []byte, w, h uint32) (Texture, error) {
	return &fakeTexture{w: w, h: h}, nil
}

func (d *fakeDevice) CreateSampler(_ string, cfg SamplerConfig) (Sampler, error) {
	return &fakeSampler{cfg: cfg}, nil
}

func (d *fakeDevice) CreateBindGroup(label string, _ Texture, _ Sampler, uniform Buffer) (BindGroup, error) {
	ub, ok := uniform.(*fakeBuffer)
	if !ok {
		return nil, errors.New("foreign uniform buffer")
	}
	g := &fakeBindGroup{label: label, uniform: ub}
	d.bindGroups = append(d.bindGroups, g)
	return g, nil
}

func (d *fakeDevice) AcquireFrame() (Frame, error) {
	if d.noFrame {
		return nil, ErrNoCurrentFrame
	}
	d.frame = &fakeFrame{}
	return d.frame, nil
}

func (d *fakeDevice) Configure(cfg PipelineConfig) error {
	d.configured = append(d.configured, cfg)
	return nil
}

var (
	_ Device       = (*fakeDevice)(nil)
	_ Configurable = (*fakeDevice)(nil)
)

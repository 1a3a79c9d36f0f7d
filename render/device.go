// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// ErrNoCurrentFrame is returned by [Device.AcquireFrame] when the surface
// has no frame to draw into, for example after the surface was lost.
// The caller skips drawing for that frame and tries again on the next.
var ErrNoCurrentFrame = errors.New("render: no current frame")

// Buffer is a GPU buffer created from raw bytes.
type Buffer interface {
	// Size returns the buffer size in bytes.
	Size() uint64

	// Release frees the GPU memory. Release is idempotent.
	Release()
}

// Texture is a sampled RGBA8 texture.
type Texture interface {
	Width() uint32
	Height() uint32
	Release()
}

// Sampler is a texture sampler.
type Sampler interface {
	Release()
}

// BindGroup binds a texture, a sampler and a uniform buffer for one draw.
type BindGroup interface {
	Release()
}

// SamplerConfig describes sampler filtering and addressing.
type SamplerConfig struct {
	Filter  gputypes.FilterMode
	Address gputypes.AddressMode
}

// DrawCall is one indexed draw of the sprite pipeline.
type DrawCall struct {
	Label      string
	Vertices   Buffer
	Indices    Buffer
	IndexCount uint32
	BindGroup  BindGroup
}

// Frame is an acquired surface frame. Draw records draws in call order;
// Present submits them and shows the frame.
type Frame interface {
	Draw(call DrawCall) error
	Present() error
}

// Device is the GPU service used by the compositor and sprites.
type Device interface {
	// CreateBuffer allocates a buffer initialized with contents.
	CreateBuffer(label string, usage gputypes.BufferUsage, contents []byte) (Buffer, error)

	// CreateTexture uploads tightly packed RGBA8 pixels.
	CreateTexture(label string, rgba []byte, width, height uint32) (Texture, error)

	// CreateSampler creates a sampler.
	CreateSampler(label string, cfg SamplerConfig) (Sampler, error)

	// CreateBindGroup binds tex and s together with a uniform buffer.
	CreateBindGroup(label string, tex Texture, s Sampler, uniform Buffer) (BindGroup, error)

	// AcquireFrame returns the frame to draw into, or an error wrapping
	// ErrNoCurrentFrame when none is available.
	AcquireFrame() (Frame, error)
}

// Configurable is implemented by devices whose pipeline can be rebuilt
// with a new configuration.
type Configurable interface {
	Configure(cfg PipelineConfig) error
}

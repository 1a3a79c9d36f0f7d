// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge"
)

// Source is what a drawable object contributes to one frame.
type Source struct {
	Label      string
	Vertices   []byte
	Indices    []byte
	IndexCount uint32
	Texture    Texture
	Sampler    Sampler

	// Transform is the object's local transform, world units.
	Transform oge.Affine2
	Opacity   float32
	Z         ZIndex
}

// Drawable is implemented by objects the compositor can draw.
// DrawSource may create GPU resources on dev the first time it is called.
type Drawable interface {
	DrawSource(dev Device) (Source, error)
}

// Bundle is a draw prepared for one frame: geometry bytes, texture and
// the packed device-space uniform block.
type Bundle struct {
	Label      string
	Vertices   []byte
	Indices    []byte
	IndexCount uint32
	Texture    Texture
	Sampler    Sampler
	Transform  oge.Affine2
	Uniform    []byte
	Z          ZIndex
}

// Equal reports whether b and o describe the same draw.
func (b *Bundle) Equal(o *Bundle) bool {
	return b.Z.Compare(o.Z) == 0 &&
		b.IndexCount == o.IndexCount &&
		b.Texture == o.Texture &&
		b.Sampler == o.Sampler &&
		bytes.Equal(b.Uniform, o.Uniform) &&
		bytes.Equal(b.Vertices, o.Vertices) &&
		bytes.Equal(b.Indices, o.Indices)
}

// Compositor collects bundles for a frame and submits them in z order.
// It is not safe for concurrent use.
type Compositor struct {
	viewport *Viewport
	device   Device
	bundles  []Bundle
}

// NewCompositor creates a compositor mapping through vp and allocating on dev.
func NewCompositor(vp *Viewport, dev Device) *Compositor {
	return &Compositor{viewport: vp, device: dev}
}

// Device returns the device used for resource creation.
func (c *Compositor) Device() Device { return c.device }

// Viewport returns the viewport used for mapping.
func (c *Compositor) Viewport() *Viewport { return c.viewport }

// Add prepares d for the current frame.
func (c *Compositor) Add(d Drawable) error {
	src, err := d.DrawSource(c.device)
	if err != nil {
		return fmt.Errorf("render: draw source: %w", err)
	}
	c.AddSource(src)
	return nil
}

// AddSource records a bundle for src.
func (c *Compositor) AddSource(src Source) {
	device := c.viewport.ToDevice(src.Transform)
	c.bundles = append(c.bundles, Bundle{
		Label:      src.Label,
		Vertices:   src.Vertices,
		Indices:    src.Indices,
		IndexCount: src.IndexCount,
		Texture:    src.Texture,
		Sampler:    src.Sampler,
		Transform:  device,
		Uniform:    PackUniform(device, src.Opacity),
		Z:          src.Z,
	})
}

// Len returns the number of bundles collected for this frame.
func (c *Compositor) Len() int { return len(c.bundles) }

// Sorted stable-sorts the collected bundles by z-index and returns them.
// Bundles with equal z-index keep the order in which they were added.
// The slice is owned by the compositor and valid until the next Submit
// or Reset.
func (c *Compositor) Sorted() []Bundle {
	slices.SortStableFunc(c.bundles, func(a, b Bundle) int {
		return a.Z.Compare(b.Z)
	})
	return c.bundles
}

// Reset discards the collected bundles.
func (c *Compositor) Reset() {
	clear(c.bundles)
	c.bundles = c.bundles[:0]
}

// Submit draws the collected bundles on frame in z order and presents it.
// Per-bundle GPU resources are released after presentation and the
// compositor is reset, whether or not an error occurred.
func (c *Compositor) Submit(frame Frame) error {
	defer c.Reset()

	var res frameResources
	defer res.release()

	var errs []error
	for i := range c.Sorted() {
		b := &c.bundles[i]
		call, err := res.prepare(c.device, b)
		if err != nil {
			errs = append(errs, fmt.Errorf("prepare %q: %w", b.Label, err))
			continue
		}
		if err := frame.Draw(call); err != nil {
			errs = append(errs, fmt.Errorf("draw %q: %w", b.Label, err))
		}
	}
	if err := frame.Present(); err != nil {
		errs = append(errs, fmt.Errorf("present: %w", err))
	}
	return errors.Join(errs...)
}

// frameResources tracks buffers and bind groups created for one frame.
type frameResources struct {
	buffers    []Buffer
	bindGroups []BindGroup
}

func (r *frameResources) prepare(dev Device, b *Bundle) (DrawCall, error) {
	vb, err := dev.CreateBuffer(b.Label+" vertices", gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst, b.Vertices)
	if err != nil {
		return DrawCall{}, fmt.Errorf("create vertex buffer: %w", err)
	}
	r.buffers = append(r.buffers, vb)

	ib, err := dev.CreateBuffer(b.Label+" indices", gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst, b.Indices)
	if err != nil {
		return DrawCall{}, fmt.Errorf("create index buffer: %w", err)
	}
	r.buffers = append(r.buffers, ib)

	ub, err := dev.CreateBuffer(b.Label+" uniforms", gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst, b.Uniform)
	if err != nil {
		return DrawCall{}, fmt.Errorf("create uniform buffer: %w", err)
	}
	r.buffers = append(r.buffers, ub)

	bg, err := dev.CreateBindGroup(b.Label, b.Texture, b.Sampler, ub)
	if err != nil {
		return DrawCall{}, fmt.Errorf("create bind group: %w", err)
	}
	r.bindGroups = append(r.bindGroups, bg)

	return DrawCall{
		Label:      b.Label,
		Vertices:   vb,
		Indices:    ib,
		IndexCount: b.IndexCount,
		BindGroup:  bg,
	}, nil
}

// release frees resources in reverse creation order.
func (r *frameResources) release() {
	for _, bg := range slices.Backward(r.bindGroups) {
		bg.Release()
	}
	for _, b := range slices.Backward(r.buffers) {
		b.Release()
	}
	r.buffers, r.bindGroups = nil, nil
}

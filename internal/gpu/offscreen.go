//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// OffscreenTarget is a SurfaceTarget backed by a texture owned by the
// target. It is used for headless rendering.
type OffscreenTarget struct {
	device    hal.Device
	tex       hal.Texture
	view      hal.TextureView
	width     uint32
	height    uint32
	format    gputypes.TextureFormat
	suspended bool
	presented int
}

// NewOffscreenTarget creates a width x height color texture usable as a
// render attachment and copy source.
func NewOffscreenTarget(device hal.Device, width, height uint32, format gputypes.TextureFormat) (*OffscreenTarget, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	t := &OffscreenTarget{device: device, format: format}
	if err := t.Resize(width, height); err != nil {
		return nil, err
	}
	return t, nil
}

// Resize recreates the texture at the new size.
func (t *OffscreenTarget) Resize(width, height uint32) error {
	t.Destroy()
	if width == 0 || height == 0 {
		return fmt.Errorf("gpu: offscreen target size %dx%d", width, height)
	}
	tex, err := t.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "offscreen_color",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("gpu: create offscreen texture: %w", err)
	}
	view, err := t.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "offscreen_color_view",
	})
	if err != nil {
		t.device.DestroyTexture(tex)
		return fmt.Errorf("gpu: create offscreen view: %w", err)
	}
	t.tex, t.view = tex, view
	t.width, t.height = width, height
	return nil
}

// Suspend makes AcquireView report no frame until it is called with false.
func (t *OffscreenTarget) Suspend(suspended bool) { t.suspended = suspended }

// AcquireView implements SurfaceTarget.
func (t *OffscreenTarget) AcquireView() (hal.TextureView, uint32, uint32, error) {
	if t.suspended || t.view == nil {
		return nil, 0, 0, nil
	}
	return t.view, t.width, t.height, nil
}

// Present implements SurfaceTarget.
func (t *OffscreenTarget) Present() error {
	t.presented++
	return nil
}

// Presented returns the number of presented frames.
func (t *OffscreenTarget) Presented() int { return t.presented }

// Texture returns the color texture.
func (t *OffscreenTarget) Texture() hal.Texture { return t.tex }

// Destroy releases the texture.
func (t *OffscreenTarget) Destroy() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

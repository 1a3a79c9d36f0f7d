//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// msaaTarget is the multisampled color texture resolved into the surface
// view at the end of each pass. It is unused when the sample count is 1.
type msaaTarget struct {
	tex     hal.Texture
	view    hal.TextureView
	width   uint32
	height  uint32
	samples uint32
	format  gputypes.TextureFormat
}

// ensure creates or recreates the texture when the size, sample count or
// format differ from the current one. It is a no-op otherwise.
func (t *msaaTarget) ensure(device hal.Device, w, h, samples uint32, format gputypes.TextureFormat) error {
	if t.tex != nil && t.width == w && t.height == h && t.samples == samples && t.format == format {
		return nil
	}
	t.destroy(device)

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_msaa_color",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("gpu: create MSAA color texture: %w", err)
	}
	t.tex = tex

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "sprite_msaa_color_view",
	})
	if err != nil {
		t.destroy(device)
		return fmt.Errorf("gpu: create MSAA color view: %w", err)
	}
	t.view = view

	t.width, t.height, t.samples, t.format = w, h, samples, format
	slogger().Debug("gpu: MSAA target created", "width", w, "height", h, "samples", samples)
	return nil
}

func (t *msaaTarget) destroy(device hal.Device) {
	if t.view != nil {
		device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		device.DestroyTexture(t.tex)
		t.tex = nil
	}
	t.width, t.height, t.samples = 0, 0, 0
}

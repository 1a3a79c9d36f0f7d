//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/oge/render"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by Device.
var (
	// ErrNilDevice is returned when a nil HAL device or queue is supplied.
	ErrNilDevice = errors.New("gpu: nil HAL device or queue")

	// ErrNilTarget is returned when no surface target is supplied.
	ErrNilTarget = errors.New("gpu: nil surface target")

	// ErrForeignResource is returned when a resource created by another
	// device is passed to CreateBindGroup or Frame.Draw.
	ErrForeignResource = errors.New("gpu: resource not created by this device")

	// ErrFrameInProgress is returned by AcquireFrame while the previous
	// frame has not been presented.
	ErrFrameInProgress = errors.New("gpu: previous frame not presented")

	// ErrTextureSize is returned for textures with a zero side or pixel
	// data that does not match width*height*4 bytes.
	ErrTextureSize = errors.New("gpu: texture data does not match size")
)

// SurfaceTarget supplies the texture view each frame is resolved into.
//
// AcquireView returns a nil view and a nil error when no frame is
// available, for example while the window is minimized. The view stays
// owned by the target. Present is called after the frame's commands have
// completed.
type SurfaceTarget interface {
	AcquireView() (view hal.TextureView, width, height uint32, err error)
	Present() error
}

// Options configures a Device.
type Options struct {
	// Format is the surface texture format. Defaults to BGRA8Unorm.
	Format gputypes.TextureFormat

	// Pipeline is the initial pipeline configuration.
	Pipeline render.PipelineConfig

	// SPIRV compiles the sprite shader to SPIR-V with naga instead of
	// passing WGSL to the backend.
	SPIRV bool
}

// Device implements render.Device and render.Configurable on a HAL device.
type Device struct {
	device hal.Device
	queue  hal.Queue
	target SurfaceTarget

	format   gputypes.TextureFormat
	spirv    bool
	config   render.PipelineConfig
	pipeline *spritePipeline
	msaa     msaaTarget
	frame    *frame
}

// New creates a device and its sprite pipeline. The HAL device and queue
// stay owned by the caller.
func New(device hal.Device, queue hal.Queue, target SurfaceTarget, opts Options) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if opts.Format == 0 {
		opts.Format = gputypes.TextureFormatBGRA8Unorm
	}
	d := &Device{
		device: device,
		queue:  queue,
		target: target,
		format: opts.Format,
		spirv:  opts.SPIRV,
	}
	if err := d.Configure(opts.Pipeline); err != nil {
		return nil, err
	}
	return d, nil
}

// Config returns the active pipeline configuration.
func (d *Device) Config() render.PipelineConfig { return d.config }

// Format returns the color target format.
func (d *Device) Format() gputypes.TextureFormat { return d.format }

// Configure rebuilds the sprite pipeline for cfg. It is a no-op when the
// current pipeline already matches. Configure must not be called while a
// frame is being recorded.
func (d *Device) Configure(cfg render.PipelineConfig) error {
	if d.frame != nil {
		return ErrFrameInProgress
	}
	if d.pipeline != nil && d.pipeline.matches(cfg, d.format) {
		d.config = cfg
		return nil
	}
	p, err := newSpritePipeline(d.device, d.format, cfg.AntiAliasing.SampleCount(), d.spirv)
	if err != nil {
		return err
	}
	if d.pipeline != nil {
		d.pipeline.destroy(d.device)
	}
	d.pipeline = p
	d.config = cfg
	slogger().Info("gpu: sprite pipeline created",
		"format", d.format, "samples", p.sampleCount, "spirv", d.spirv)
	return nil
}

// CreateBuffer creates a buffer of len(contents) bytes rounded up to a
// multiple of 4 and uploads contents.
func (d *Device) CreateBuffer(label string, usage gputypes.BufferUsage, contents []byte) (render.Buffer, error) {
	size := alignUp4(uint64(len(contents)))
	if size == 0 {
		size = 4
	}
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create buffer %q: %w", label, err)
	}
	if len(contents) > 0 {
		data := contents
		if uint64(len(data)) != size {
			data = make([]byte, size)
			copy(data, contents)
		}
		if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
			d.device.DestroyBuffer(buf)
			return nil, fmt.Errorf("gpu: write buffer %q: %w", label, err)
		}
	}
	return &buffer{device: d.device, buf: buf, size: size}, nil
}

// CreateTexture creates an sRGB RGBA8 texture and uploads rgba, which
// holds width*height tightly packed pixels.
func (d *Device) CreateTexture(label string, rgba []byte, width, height uint32) (render.Texture, error) {
	if width == 0 || height == 0 || uint64(len(rgba)) != uint64(width)*uint64(height)*4 {
		return nil, fmt.Errorf("%w: %q %dx%d with %d bytes", ErrTextureSize, label, width, height, len(rgba))
	}
	size := hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8UnormSrgb,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture %q: %w", label, err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        gputypes.TextureFormatRGBA8UnormSrgb,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: create texture view %q: %w", label, err)
	}
	err = d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		rgba,
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: width * 4, RowsPerImage: height},
		&size,
	)
	if err != nil {
		d.device.DestroyTextureView(view)
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("gpu: write texture %q: %w", label, err)
	}
	slogger().Debug("gpu: texture uploaded", "label", label, "width", width, "height", height)
	return &texture{device: d.device, tex: tex, view: view, width: width, height: height}, nil
}

// CreateSampler creates a sampler using cfg for every axis and filter.
func (d *Device) CreateSampler(label string, cfg render.SamplerConfig) (render.Sampler, error) {
	s, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        label,
		AddressModeU: cfg.Address,
		AddressModeV: cfg.Address,
		AddressModeW: cfg.Address,
		MagFilter:    cfg.Filter,
		MinFilter:    cfg.Filter,
		MipmapFilter: cfg.Filter,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create sampler %q: %w", label, err)
	}
	return &sampler{device: d.device, sampler: s}, nil
}

// CreateBindGroup binds uniform, tex and s to the sprite bind layout.
// All three must have been created by d.
func (d *Device) CreateBindGroup(label string, tex render.Texture, s render.Sampler, uniform render.Buffer) (render.BindGroup, error) {
	t, ok1 := tex.(*texture)
	smp, ok2 := s.(*sampler)
	ub, ok3 := uniform.(*buffer)
	if !ok1 || !ok2 || !ok3 || t.device != d.device || smp.device != d.device || ub.device != d.device {
		return nil, fmt.Errorf("%w: bind group %q", ErrForeignResource, label)
	}
	group, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label,
		Layout: d.pipeline.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: ub.buf.NativeHandle(), Offset: 0, Size: render.UniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: t.view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: smp.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create bind group %q: %w", label, err)
	}
	return &bindGroup{device: d.device, group: group}, nil
}

// AcquireFrame acquires the next surface view and begins recording.
// It returns render.ErrNoCurrentFrame when the target has no view.
func (d *Device) AcquireFrame() (render.Frame, error) {
	if d.frame != nil {
		return nil, ErrFrameInProgress
	}
	view, w, h, err := d.target.AcquireView()
	if err != nil {
		return nil, fmt.Errorf("gpu: acquire surface view: %w", err)
	}
	if view == nil || w == 0 || h == 0 {
		return nil, render.ErrNoCurrentFrame
	}

	samples := d.pipeline.sampleCount
	attachment := hal.RenderPassColorAttachment{
		View:       view,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}
	if samples > 1 {
		if err := d.msaa.ensure(d.device, w, h, samples, d.format); err != nil {
			return nil, err
		}
		attachment.View = d.msaa.view
		attachment.ResolveTarget = view
	} else {
		d.msaa.destroy(d.device)
	}

	f, err := beginFrame(d, attachment)
	if err != nil {
		return nil, err
	}
	d.frame = f
	return f, nil
}

// Destroy releases the pipeline and the MSAA target. Resources handed out
// by the device must be released by their owners.
func (d *Device) Destroy() {
	if d.frame != nil {
		d.frame.discard()
	}
	d.msaa.destroy(d.device)
	if d.pipeline != nil {
		d.pipeline.destroy(d.device)
		d.pipeline = nil
	}
}

func alignUp4(n uint64) uint64 { return (n + 3) &^ 3 }

var (
	_ render.Device       = (*Device)(nil)
	_ render.Configurable = (*Device)(nil)
)

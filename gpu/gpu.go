//go:build !nogpu

// Package gpu creates a render.Device on the GPU device of a host window
// library.
//
// The host supplies a gpucontext.DeviceProvider that also exposes its HAL
// objects, plus a SurfaceTarget that hands out the swapchain view for each
// frame:
//
//	dev, err := gpu.NewDevice(provider, surface)
//	if err != nil {
//	    return err
//	}
//	defer dev.Destroy()
//	e, err := app.New(dev)
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	gpuimpl "github.com/gogpu/oge/internal/gpu"
	"github.com/gogpu/oge/render"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoHAL is returned when the provider does not expose HAL types.
var ErrNoHAL = errors.New("gpu: provider does not expose HAL device and queue")

// SurfaceTarget supplies the texture view each frame is resolved into.
// See internal/gpu for the contract.
type SurfaceTarget = gpuimpl.SurfaceTarget

// OffscreenTarget is a SurfaceTarget backed by its own texture.
type OffscreenTarget = gpuimpl.OffscreenTarget

// Device is a render.Device backed by the provider's GPU.
type Device = gpuimpl.Device

// halProvider is implemented by providers that share their HAL objects.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// Option configures NewDevice.
type Option func(*gpuimpl.Options)

// WithPipelineConfig sets the initial pipeline configuration.
func WithPipelineConfig(cfg render.PipelineConfig) Option {
	return func(o *gpuimpl.Options) {
		o.Pipeline = cfg
	}
}

// WithSPIRV compiles the sprite shader to SPIR-V before handing it to the
// backend.
func WithSPIRV() Option {
	return func(o *gpuimpl.Options) {
		o.SPIRV = true
	}
}

// NewDevice creates a device sharing the provider's HAL device and queue.
// The color target uses the provider's surface format.
func NewDevice(provider gpucontext.DeviceProvider, target SurfaceTarget, opts ...Option) (*Device, error) {
	device, queue, err := halObjects(provider)
	if err != nil {
		return nil, err
	}
	o := gpuimpl.Options{Format: provider.SurfaceFormat()}
	for _, opt := range opts {
		opt(&o)
	}
	return gpuimpl.New(device, queue, target, o)
}

// NewOffscreenTarget creates an offscreen target on the provider's device
// in the provider's surface format.
func NewOffscreenTarget(provider gpucontext.DeviceProvider, width, height uint32) (*OffscreenTarget, error) {
	device, _, err := halObjects(provider)
	if err != nil {
		return nil, err
	}
	return gpuimpl.NewOffscreenTarget(device, width, height, provider.SurfaceFormat())
}

func halObjects(provider gpucontext.DeviceProvider) (hal.Device, hal.Queue, error) {
	if provider == nil {
		return nil, nil, fmt.Errorf("%w: nil provider", ErrNoHAL)
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return device, queue, nil
}

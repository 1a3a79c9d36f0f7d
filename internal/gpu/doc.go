//go:build !nogpu

// Package gpu implements render.Device on top of wgpu/hal.
//
// A Device owns the sprite pipeline and the multisampled color target.
// Each frame is recorded into a single render pass whose color attachment
// resolves into the view supplied by a SurfaceTarget. Buffers, textures,
// samplers and bind groups handed out by the device wrap HAL objects and
// are destroyed by Release.
//
// The package is not safe for concurrent use. All calls must come from
// the goroutine that drives the frame loop.
package gpu

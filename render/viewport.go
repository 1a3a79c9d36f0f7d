// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/oge"

// Viewport maps between world coordinates, device coordinates and physical
// window pixels.
//
// Both transforms are recomputed whenever the viewable region or the pixel
// size changes. A zero-sized region yields infinite or NaN scales; the
// values propagate unchecked.
type Viewport struct {
	bounds  oge.Bounds
	pixelW  uint32
	pixelH  uint32
	forward oge.Affine2
	reverse oge.Affine2
	resized bool
}

// NewViewport creates a viewport showing bounds in a window of
// pixelW x pixelH physical pixels. The first call to Resized reports true
// so that the initial size is handled like any later resize.
func NewViewport(bounds oge.Bounds, pixelW, pixelH uint32) *Viewport {
	v := &Viewport{bounds: bounds, pixelW: pixelW, pixelH: pixelH, resized: true}
	v.recompute()
	return v
}

// SetViewableRegion sets the world region shown in the window. Keeping its
// aspect ratio equal to the window's is up to the caller.
func (v *Viewport) SetViewableRegion(b oge.Bounds) {
	v.bounds = b
	v.recompute()
}

// Resize records a new physical window size.
func (v *Viewport) Resize(pixelW, pixelH uint32) {
	v.pixelW, v.pixelH = pixelW, pixelH
	v.resized = true
	v.recompute()
}

// Resized reports whether Resize was called since the last call to
// Resized, and clears the flag.
func (v *Viewport) Resized() bool {
	r := v.resized
	v.resized = false
	return r
}

// Bounds returns the viewable region.
func (v *Viewport) Bounds() oge.Bounds { return v.bounds }

// PixelSize returns the physical window size.
func (v *Viewport) PixelSize() (width, height uint32) { return v.pixelW, v.pixelH }

// Forward returns the world to device transform:
// Matrix = diag(2/width, 2/height), Translation = -center.
func (v *Viewport) Forward() oge.Affine2 { return v.forward }

// Reverse returns the pixel to world transform:
// Matrix = diag(width/pixelW, -height/pixelH), Translation = (-width/2, height/2).
func (v *Viewport) Reverse() oge.Affine2 { return v.reverse }

func (v *Viewport) recompute() {
	w, h := v.bounds.Width(), v.bounds.Height()
	v.forward = oge.NewAffine2(oge.Stretch(2/w, 2/h), v.bounds.Center().Neg())
	v.reverse = oge.NewAffine2(
		oge.Stretch(w/float32(v.pixelW), -h/float32(v.pixelH)),
		oge.V2(-w/2, h/2),
	)
}

// ToDevice maps a local object transform into device space. The object
// transform applies first, then the viewport mapping; the object's
// translation is shifted by -center before the viewport scale.
func (v *Viewport) ToDevice(local oge.Affine2) oge.Affine2 {
	a := v.forward.Compose(local)
	a.Translation = v.forward.Matrix.Apply(a.Translation)
	return a
}

// DevicePosition maps a world position into device coordinates.
func (v *Viewport) DevicePosition(world oge.Vector2) oge.Vector2 {
	return v.ToDevice(oge.Translation2(world)).Translation
}

// PhysicalPosition maps a world position to physical pixels.
func (v *Viewport) PhysicalPosition(world oge.Vector2) oge.Vector2 {
	d := v.DevicePosition(world)
	return oge.V2(
		(d.X+1)/2*float32(v.pixelW),
		(1-d.Y)/2*float32(v.pixelH),
	)
}

// RealPosition maps a physical pixel position, such as the cursor, into
// world coordinates.
//
// The reverse transform is relative to the region's center: for a region
// centered on (cx, cy) the result is offset by (-cx, -cy) from the world
// point that PhysicalPosition started from.
func (v *Viewport) RealPosition(pixel oge.Vector2) oge.Vector2 {
	return v.reverse.Apply(pixel)
}

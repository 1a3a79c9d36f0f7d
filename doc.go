// Package oge is the scene geometry core of a small 2D GPU renderer.
//
// # Overview
//
// The root package holds the algebra shared by every other package:
// [Vector2], [Matrix2], [Affine2], [Bounds] and [Line]. Geometry is
// float32 throughout because vertices and uniforms are uploaded as f32.
//
// # Architecture
//
// The module is organized leaves first:
//   - oge: vectors, matrices, affine transforms, angles, logging
//   - mesh: rectangle, ellipse and curve ribbon meshes, UV projection
//   - sprite: textured sprites and the editable Curve entity
//   - render: z-ordering, viewport mapping, uniform packing, compositor
//   - input, app: per-frame input state and the engine loop
//   - gpu: a render.Device backed by gogpu/wgpu
//
// # Coordinate Systems
//
// World coordinates are y-up. The [render.Viewport] maps a world region
// onto normalized device coordinates in [-1, 1] and maps physical pixels
// (y-down, origin top-left) back into the world for cursor picking.
//
// # Composition
//
// [Affine2.Compose] composes matrices as "rhs then receiver" but adds
// translations without mapping them through the receiver's matrix:
//
//	a := oge.NewAffine2(oge.Scale(2), oge.V2(1, 0))
//	b := oge.NewAffine2(oge.Identity2(), oge.V2(0, 3))
//	c := a.Compose(b) // Matrix = 2*I, Translation = (1, 3)
package oge

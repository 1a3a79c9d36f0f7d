// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns sprites into ordered GPU draw calls.
//
// # Key Principle
//
// render RECEIVES a GPU device from the host, it does NOT create one.
// The [Device] and [Frame] interfaces are the whole boundary; the gpu
// package provides the HAL-backed implementation.
//
// # Per-Frame Flow
//
//   - The host updates the [Viewport] on resize.
//   - Game logic hands [Drawable] values to a [Compositor].
//   - The compositor maps each local transform into device space, packs
//     the uniform block and records a [Bundle].
//   - [Compositor.Submit] stable-sorts bundles by [ZIndex] and draws them
//     in order on the acquired [Frame].
//
// # Coordinate Systems
//
// World space is y-up inside the viewable region. Device space is the
// [-1, 1] square. Physical pixels are y-down from the top-left corner.
package render

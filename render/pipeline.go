// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "fmt"

// AntiAliasing selects the multisample count of the sprite pipeline.
type AntiAliasing uint8

const (
	// AntiAliasingMSAA4x renders with 4 samples per pixel.
	AntiAliasingMSAA4x AntiAliasing = iota

	// AntiAliasingNone renders with a single sample per pixel.
	AntiAliasingNone
)

// SampleCount returns the multisample count.
func (a AntiAliasing) SampleCount() uint32 {
	switch a {
	case AntiAliasingNone:
		return 1
	case AntiAliasingMSAA4x:
		return 4
	default:
		panic(fmt.Sprintf("render: invalid anti-aliasing mode %d", uint8(a)))
	}
}

// String returns the mode name.
func (a AntiAliasing) String() string {
	switch a {
	case AntiAliasingNone:
		return "None"
	case AntiAliasingMSAA4x:
		return "MSAA4x"
	default:
		return fmt.Sprintf("AntiAliasing(%d)", uint8(a))
	}
}

// PipelineConfig configures the sprite render pipeline.
// The zero value enables 4x MSAA.
type PipelineConfig struct {
	AntiAliasing AntiAliasing
}

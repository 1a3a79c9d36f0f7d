package app

import (
	"log/slog"
	"time"

	"github.com/gogpu/oge"
	"github.com/gogpu/oge/render"
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := app.New(dev,
//	    app.WithPixelSize(1024, 576),
//	    app.WithBounds(oge.CenteredBounds(16, 9)),
//	)
type Option func(*options)

type options struct {
	bounds   oge.Bounds
	pixelW   uint32
	pixelH   uint32
	now      func() time.Time
	pipeline *render.PipelineConfig
	logger   *slog.Logger
}

// Default window size, matching a 16:9 window of 1024x576 pixels.
const (
	DefaultPixelWidth  = 16 << 6
	DefaultPixelHeight = 9 << 6
)

func defaultOptions() options {
	return options{
		bounds: oge.CenteredBounds(DefaultPixelWidth, DefaultPixelHeight),
		pixelW: DefaultPixelWidth,
		pixelH: DefaultPixelHeight,
		now:    time.Now,
	}
}

// WithBounds sets the initial viewable region.
// Defaults to one world unit per pixel, centered on the origin.
func WithBounds(b oge.Bounds) Option {
	return func(o *options) {
		o.bounds = b
	}
}

// WithPixelSize sets the initial physical window size.
func WithPixelSize(width, height uint32) Option {
	return func(o *options) {
		o.pixelW, o.pixelH = width, height
	}
}

// WithClock replaces time.Now for delta-time measurement.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPipelineConfig configures the device pipeline before the first frame.
// It has no effect on devices that do not implement render.Configurable.
func WithPipelineConfig(cfg render.PipelineConfig) Option {
	return func(o *options) {
		o.pipeline = &cfg
	}
}

// WithLogger sets the engine logger. Defaults to oge.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

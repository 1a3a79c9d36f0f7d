package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/oge"
	"github.com/gogpu/oge/input"
	"github.com/gogpu/oge/render"
)

// Engine owns the scripts and per-frame state of an application.
// It is single-threaded: all methods must be called from the thread that
// drives the frame loop.
type Engine struct {
	device     render.Device
	viewport   *render.Viewport
	compositor *render.Compositor
	input      input.State
	scripts    []Script
	queued     []render.PipelineConfig

	now    func() time.Time
	last   time.Time
	dt     float32
	frames uint64
	log    *slog.Logger
}

// New creates an engine drawing on dev.
func New(dev render.Device, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = oge.Logger()
	}

	vp := render.NewViewport(o.bounds, o.pixelW, o.pixelH)
	e := &Engine{
		device:     dev,
		viewport:   vp,
		compositor: render.NewCompositor(vp, dev),
		now:        o.now,
		log:        o.logger,
	}
	if o.pipeline != nil {
		if err := e.configure(*o.pipeline); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Load runs the loaders in order and appends the scripts they return,
// then calls Start on each new script that implements Starter.
// Loading stops at the first failure.
func (e *Engine) Load(loaders ...Loader) error {
	ctx := e.context()
	first := len(e.scripts)
	for i, load := range loaders {
		s, err := load(ctx)
		if err != nil {
			return fmt.Errorf("app: load script %d: %w", i, err)
		}
		e.scripts = append(e.scripts, s)
	}
	for i, s := range e.scripts[first:] {
		if st, ok := s.(Starter); ok {
			if err := st.Start(ctx); err != nil {
				return fmt.Errorf("app: start script %d: %w", first+i, err)
			}
		}
	}
	e.log.Debug("app: scripts loaded", "count", len(e.scripts))
	return nil
}

// Viewport returns the viewport.
func (e *Engine) Viewport() *render.Viewport { return e.viewport }

// Input returns the input state.
func (e *Engine) Input() *input.State { return &e.input }

// Resize forwards a window resize.
func (e *Engine) Resize(width, height uint32) { e.viewport.Resize(width, height) }

// KeyEvent forwards a key press or release.
func (e *Engine) KeyEvent(k input.Key, down bool) { e.input.KeyEvent(k, down) }

// MouseEvent forwards a mouse button press or release.
func (e *Engine) MouseEvent(b input.MouseButton, down bool) { e.input.MouseEvent(b, down) }

// CursorMoved forwards a cursor move in physical pixels.
func (e *Engine) CursorMoved(pixel oge.Vector2) { e.input.CursorMoved(pixel) }

func (e *Engine) context() *Context { return &Context{e: e} }

func (e *Engine) tick() {
	t := e.now()
	if e.frames > 0 {
		e.dt = float32(t.Sub(e.last).Microseconds()) / 1e6
	}
	e.last = t
	e.frames++
}

// Frame runs one frame. Errors from Render hooks and draw submission are
// joined and returned; they do not stop later phases. A missing surface
// frame is not an error: the draw phase is skipped and logged.
func (e *Engine) Frame() error {
	e.tick()
	ctx := e.context()

	for _, s := range e.scripts {
		s.Update(ctx)
	}

	var errs []error
	for _, s := range e.scripts {
		if r, ok := s.(Renderer); ok {
			if err := r.Render(ctx, e.compositor); err != nil {
				errs = append(errs, err)
			}
		}
	}
	e.input.Advance()

	if err := e.draw(); err != nil {
		errs = append(errs, err)
	}

	for _, cfg := range e.queued {
		if err := e.configure(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	e.queued = e.queued[:0]

	return errors.Join(errs...)
}

func (e *Engine) draw() error {
	frame, err := e.device.AcquireFrame()
	if errors.Is(err, render.ErrNoCurrentFrame) {
		e.log.Warn("app: frame skipped", "frame", e.frames, "bundles", e.compositor.Len(), "err", err)
		e.compositor.Reset()
		return nil
	}
	if err != nil {
		e.compositor.Reset()
		return fmt.Errorf("app: acquire frame: %w", err)
	}
	if err := e.compositor.Submit(frame); err != nil {
		return fmt.Errorf("app: submit: %w", err)
	}
	return nil
}

func (e *Engine) configure(cfg render.PipelineConfig) error {
	c, ok := e.device.(render.Configurable)
	if !ok {
		e.log.Warn("app: device does not support pipeline configuration")
		return nil
	}
	if err := c.Configure(cfg); err != nil {
		return fmt.Errorf("app: configure pipeline: %w", err)
	}
	e.log.Info("app: pipeline configured", "antiAliasing", cfg.AntiAliasing.String())
	return nil
}

// Run calls Frame for every tick until ctx is done or ticks is closed.
// Frame errors are logged and do not stop the loop.
func (e *Engine) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := e.Frame(); err != nil {
				e.log.Error("app: frame failed", "frame", e.frames, "err", err)
			}
		}
	}
}

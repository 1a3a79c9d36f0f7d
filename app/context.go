package app

import (
	"github.com/gogpu/oge"
	"github.com/gogpu/oge/input"
	"github.com/gogpu/oge/render"
)

// Context is the view of the engine handed to scripts.
type Context struct {
	e *Engine
}

// DeltaTime returns the seconds between the start of the previous frame
// and the start of the current one. It is zero on the first frame.
func (c *Context) DeltaTime() float32 { return c.e.dt }

// Frame returns the number of frames started so far, counting the current one.
func (c *Context) Frame() uint64 { return c.e.frames }

// Input returns the input state.
func (c *Context) Input() *input.State { return &c.e.input }

// Viewport returns the viewport.
func (c *Context) Viewport() *render.Viewport { return c.e.viewport }

// Device returns the render device.
func (c *Context) Device() render.Device { return c.e.device }

// SetViewableRegion sets the world region shown in the window.
func (c *Context) SetViewableRegion(b oge.Bounds) { c.e.viewport.SetViewableRegion(b) }

// Resized reports whether the window was resized since the last call.
func (c *Context) Resized() bool { return c.e.viewport.Resized() }

// CursorPosition returns the cursor position in world coordinates.
func (c *Context) CursorPosition() oge.Vector2 {
	return c.e.viewport.RealPosition(c.e.input.Cursor())
}

// QueuePipelineConfig schedules a pipeline change. It is applied after the
// current frame has been submitted.
func (c *Context) QueuePipelineConfig(cfg render.PipelineConfig) {
	c.e.queued = append(c.e.queued, cfg)
}

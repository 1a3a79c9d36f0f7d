package app

import (
	"github.com/gogpu/oge"
	"github.com/gogpu/oge/render"
)

// Script is a unit of game logic updated once per frame.
type Script interface {
	Update(ctx *Context)
}

// Renderer is implemented by scripts that draw. Render runs after every
// script has been updated.
type Renderer interface {
	Render(ctx *Context, c *render.Compositor) error
}

// Starter is implemented by scripts that need a hook after every loader
// has run and before the first frame.
type Starter interface {
	Start(ctx *Context) error
}

// Loader creates a script. Loaders run once in order when the engine
// loads them, and may already create sprites on ctx.Device().
type Loader func(ctx *Context) (Script, error)

// Load wraps a script value as a Loader.
func Load(s Script) Loader {
	return func(*Context) (Script, error) { return s, nil }
}

// ScriptFunc adapts a function to the Script interface.
type ScriptFunc func(ctx *Context)

// Update calls f(ctx).
func (f ScriptFunc) Update(ctx *Context) { f(ctx) }

// WindowHandler keeps the viewable region centered on the origin and
// sized to the window, UnitsPerPixel world units per physical pixel.
type WindowHandler struct {
	UnitsPerPixel float32
}

// Update resets the viewable region after a resize.
func (w WindowHandler) Update(ctx *Context) {
	if !ctx.Resized() {
		return
	}
	units := w.UnitsPerPixel
	if units == 0 {
		units = 1
	}
	pw, ph := ctx.Viewport().PixelSize()
	ctx.SetViewableRegion(oge.CenteredBounds(float32(pw)*units, float32(ph)*units))
}

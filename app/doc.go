// Package app runs the per-frame loop that ties scripts, input, the
// viewport and the compositor together.
//
// # Scripts
//
// Game logic is written as [Script] values. Every script has an Update
// hook; scripts that also draw implement [Renderer]. Scripts are created
// by [Loader] functions when the engine starts.
//
// # Frame
//
// [Engine.Frame] runs one frame:
//
//  1. measure the time since the previous frame
//  2. Update every script in load order
//  3. Render every script that implements Renderer
//  4. advance the input state
//  5. acquire the surface frame and submit the z-sorted bundles;
//     when no frame is available the draw phase is skipped
//  6. apply queued pipeline configuration
//
// The host owns the window and forwards its events through
// [Engine.Resize], [Engine.KeyEvent], [Engine.MouseEvent] and
// [Engine.CursorMoved].
package app

// Package input tracks keyboard, mouse and cursor state between frames.
//
// The host feeds window events into a [State]; game logic reads button
// status during the update phase. [State.Advance] is called once at the end
// of every frame, after which just-pressed and just-released transitions
// settle into pressed and released.
package input

import (
	"fmt"

	"github.com/gogpu/oge"
)

// Key is a keyboard key code in [0, 255].
type Key uint8

// MouseButton is a mouse button code in [0, 63].
type MouseButton uint8

// Standard mouse buttons.
const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)

// MaxMouseButton is the highest tracked mouse button code.
const MaxMouseButton MouseButton = 63

// ButtonStatus is the state of a button relative to the previous frame.
// Bit 0 is "down this frame", bit 1 is "down last frame".
type ButtonStatus uint8

const (
	Released     ButtonStatus = 0b00
	JustPressed  ButtonStatus = 0b01
	JustReleased ButtonStatus = 0b10
	Pressed      ButtonStatus = 0b11
)

func newStatus(was, is bool) ButtonStatus {
	var s ButtonStatus
	if is {
		s |= 0b01
	}
	if was {
		s |= 0b10
	}
	return s
}

// IsDown reports whether the button is held this frame.
func (s ButtonStatus) IsDown() bool { return s&0b01 != 0 }

// JustPressed reports whether the button went down this frame.
func (s ButtonStatus) JustPressed() bool { return s == JustPressed }

// JustReleased reports whether the button went up this frame.
func (s ButtonStatus) JustReleased() bool { return s == JustReleased }

// String returns the status name.
func (s ButtonStatus) String() string {
	switch s {
	case Released:
		return "Released"
	case JustPressed:
		return "JustPressed"
	case JustReleased:
		return "JustReleased"
	case Pressed:
		return "Pressed"
	default:
		return fmt.Sprintf("ButtonStatus(%d)", uint8(s))
	}
}

// keySet is a 256-bit set of key codes.
type keySet [4]uint64

func (k *keySet) set(key Key, down bool) {
	chunk, mask := key>>6, uint64(1)<<(key&63)
	if down {
		k[chunk] |= mask
	} else {
		k[chunk] &^= mask
	}
}

func (k *keySet) has(key Key) bool {
	return k[key>>6]&(uint64(1)<<(key&63)) != 0
}

// State is the input state seen by game logic. The zero value has
// nothing pressed and the cursor at the origin.
type State struct {
	keys, prevKeys   keySet
	mouse, prevMouse uint64
	cursor           oge.Vector2
}

// KeyEvent records a key press or release.
func (s *State) KeyEvent(k Key, down bool) {
	s.keys.set(k, down)
}

// MouseEvent records a mouse button press or release. Buttons above
// MaxMouseButton are ignored.
func (s *State) MouseEvent(b MouseButton, down bool) {
	if b > MaxMouseButton {
		return
	}
	mask := uint64(1) << b
	if down {
		s.mouse |= mask
	} else {
		s.mouse &^= mask
	}
}

// CursorMoved records the cursor position in physical pixels.
func (s *State) CursorMoved(pixel oge.Vector2) {
	s.cursor = pixel
}

// Key returns the status of key k.
func (s *State) Key(k Key) ButtonStatus {
	return newStatus(s.prevKeys.has(k), s.keys.has(k))
}

// KeyDown reports whether key k is held.
func (s *State) KeyDown(k Key) bool { return s.keys.has(k) }

// Mouse returns the status of mouse button b.
func (s *State) Mouse(b MouseButton) ButtonStatus {
	if b > MaxMouseButton {
		return Released
	}
	mask := uint64(1) << b
	return newStatus(s.prevMouse&mask != 0, s.mouse&mask != 0)
}

// MouseDown reports whether mouse button b is held.
func (s *State) MouseDown(b MouseButton) bool { return s.Mouse(b).IsDown() }

// Cursor returns the cursor position in physical pixels.
// Use render.Viewport.RealPosition to map it into the world.
func (s *State) Cursor() oge.Vector2 { return s.cursor }

// Advance ends the frame: the current button state becomes the previous one.
func (s *State) Advance() {
	s.prevKeys = s.keys
	s.prevMouse = s.mouse
}

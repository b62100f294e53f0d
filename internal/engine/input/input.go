// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input polls SDL events once per frame and exposes the distilled state the
// game loop cares about: quit/resize, relative mouse motion, edit clicks and
// held movement keys.
type Input struct {
	quit bool

	resized          bool
	width, height    int
	mouseDX, mouseDY float32

	leftClick  bool
	rightClick bool

	held map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events for this frame. Returns true if the application
// should quit.
func (i *Input) Update() bool {
	i.resized = false
	i.mouseDX, i.mouseDY = 0, 0
	i.leftClick, i.rightClick = false, false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
					i.quit = true
				}
				i.held[e.Keysym.Scancode] = true
			case sdl.KEYUP:
				i.held[e.Keysym.Scancode] = false
			}

		case *sdl.MouseMotionEvent:
			// Relative mode: XRel/YRel accumulate across events in a frame.
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				switch e.Button {
				case sdl.BUTTON_LEFT:
					i.leftClick = true
				case sdl.BUTTON_RIGHT:
					i.rightClick = true
				}
			}
		}
	}

	return i.quit
}

// Resized returns the new window size if a resize happened this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}

// MouseDelta returns the relative mouse motion accumulated this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}

// LeftClicked reports a left mouse button press this frame.
func (i *Input) LeftClicked() bool {
	return i.leftClick
}

// RightClicked reports a right mouse button press this frame.
func (i *Input) RightClicked() bool {
	return i.rightClick
}

// IsKeyHeld reports whether a key is currently held down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// MoveAxes maps WASD/space/shift to movement axes in -1..1.
func (i *Input) MoveAxes() (forward, right, up float32) {
	if i.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if i.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if i.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if i.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if i.IsKeyHeld(sdl.SCANCODE_SPACE) {
		up++
	}
	if i.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
		up--
	}
	return forward, right, up
}

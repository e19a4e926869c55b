// Package event defines the input events delivered to applications by
// the engine's frame loop. Events originate from an input source (the
// terminal adapter in production, a scripted source in tests) and are
// forwarded to the application's event handler during the input phase
// of each frame.
package event

import "github.com/gdamore/tcell/v2"

// Event is a single input occurrence.
type Event interface {
	isEvent()
}

// Key reports a key press.
type Key struct {
	Code tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// Mouse reports pointer position and button state.
type Mouse struct {
	X, Y    int
	Buttons tcell.ButtonMask
}

// Resize reports a new surface size in cells.
type Resize struct {
	Width  int
	Height int
}

// Quit requests loop termination. The frame loop consumes Quit itself;
// it is never forwarded to the application's handler.
type Quit struct{}

func (Key) isEvent()    {}
func (Mouse) isEvent()  {}
func (Resize) isEvent() {}
func (Quit) isEvent()   {}

// AnyKey reports whether ev is a key press of any kind.
func AnyKey(ev Event) bool {
	_, ok := ev.(Key)
	return ok
}

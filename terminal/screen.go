// Package terminal adapts tcell to the engine's Renderer and input
// boundaries: a Screen that implements render.Renderer on a terminal,
// and an Input that pumps tcell events into the frame loop's
// non-blocking drain.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/render"
)

// Screen renders cells to a tcell terminal screen.
type Screen struct {
	tc tcell.Screen
}

// NewScreen initializes the terminal, enables mouse reporting, and
// sets the window title when the emulator supports it.
func NewScreen(title string) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(tcell.StyleDefault)
	tc.EnableMouse()
	if title != "" {
		tc.SetTitle(title)
	}
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// SetCell writes one cell. tcell ignores out-of-range writes.
func (s *Screen) SetCell(x, y int, c render.Cell) {
	s.tc.SetContent(x, y, c.Rune, nil, c.Style)
}

// Clear erases the pending frame.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Present flushes the pending frame to the terminal.
func (s *Screen) Present() {
	s.tc.Show()
}

// SetTitle updates the terminal window title.
func (s *Screen) SetTitle(title string) {
	s.tc.SetTitle(title)
}

// Fini restores the terminal. The event pump's PollEvent unblocks with
// nil once the screen is finalized.
func (s *Screen) Fini() {
	s.tc.Fini()
}

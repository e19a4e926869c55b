package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/event"
)

// Input pumps tcell events into a buffered channel so the frame loop
// can drain pending input without blocking. The pump goroutine is an
// implementation detail of this adapter; the engine core stays
// single-threaded.
type Input struct {
	events chan event.Event
}

// NewInput starts the event pump for the given screen.
func NewInput(s *Screen) *Input {
	in := &Input{events: make(chan event.Event, 128)}
	go in.pump(s.tc)
	return in
}

func (in *Input) pump(tc tcell.Screen) {
	for {
		ev := tc.PollEvent()
		if ev == nil {
			// Screen finalized.
			close(in.events)
			return
		}
		if converted, ok := Translate(ev); ok {
			in.events <- converted
		}
	}
}

// Poll returns the next pending event without blocking.
func (in *Input) Poll() (event.Event, bool) {
	select {
	case ev, ok := <-in.events:
		if !ok {
			return nil, false
		}
		return ev, true
	default:
		return nil, false
	}
}

// Translate converts a tcell event to an engine event. Ctrl-C is the
// terminal's quit signal; events with no engine equivalent report ok
// false.
func Translate(ev tcell.Event) (event.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return event.Quit{}, true
		}
		return event.Key{Code: ev.Key(), Rune: ev.Rune(), Mods: ev.Modifiers()}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		return event.Mouse{X: x, Y: y, Buttons: ev.Buttons()}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return event.Resize{Width: w, Height: h}, true
	}
	return nil, false
}

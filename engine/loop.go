package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/event"
)

// App receives the mandatory per-frame update. Update runs exactly
// once per iteration, whether or not any events arrived.
type App interface {
	Update(e *Engine)
}

// Drawer is implemented by apps that draw each frame. The surface is
// cleared before Draw and presented after it; apps without Draw still
// get the clear and present.
type Drawer interface {
	Draw(e *Engine)
}

// EventHandler is implemented by apps that consume input. Quit is
// never forwarded; it belongs to the loop.
type EventHandler interface {
	HandleEvent(e *Engine, ev event.Event)
}

// Stop makes the current Run iteration the last one. The iteration
// still finishes its update and draw phases before the loop returns.
func (e *Engine) Stop() {
	e.assertAlive()
	e.running = false
}

// Run drives the frame loop at the configured rate until a quit event
// arrives or the app calls Stop. Each iteration timestamps the frame
// start, drains pending input, updates once, clears, draws, presents,
// then sleeps off whatever remains of the frame budget. A slow frame
// is not compensated for: the next one starts immediately and runs
// full length.
func (e *Engine) Run(app App) {
	e.assertAlive()
	if app == nil {
		e.fatal("run called with nil app")
	}
	drawer, _ := app.(Drawer)
	handler, _ := app.(EventHandler)

	budget := time.Second / time.Duration(e.cfg.FPS)
	e.running = true
	for e.running {
		start := e.clock.Now()

		for e.running {
			ev, ok := e.input.Poll()
			if !ok {
				break
			}
			switch ev := ev.(type) {
			case event.Quit:
				// Consumes the quit and abandons anything still
				// queued behind it.
				e.running = false
			case event.Mouse:
				e.mouseX, e.mouseY = ev.X, ev.Y
				if handler != nil {
					handler.HandleEvent(e, ev)
				}
			default:
				if handler != nil {
					handler.HandleEvent(e, ev)
				}
			}
		}

		app.Update(e)

		e.renderer.Clear()
		if drawer != nil {
			drawer.Draw(e)
		}
		e.renderer.Present()

		if wait := budget - e.clock.Now().Sub(start); wait > 0 {
			e.clock.Sleep(wait)
		}
	}
	e.log.Debug("frame loop stopped", zap.Int("fps", e.cfg.FPS))
}

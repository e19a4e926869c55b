// Package engine owns the runtime context: the render surface, the
// input source, the entity registries, and the fixed-cadence frame
// loop that drives input dispatch, update and draw.
package engine

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/audio"
	"github.com/lixenwraith/cellforge/event"
	"github.com/lixenwraith/cellforge/registry"
	"github.com/lixenwraith/cellforge/render"
	"github.com/lixenwraith/cellforge/terminal"
)

// Exactly one engine may be live in a process. New claims the slot,
// Shutdown releases it.
var active atomic.Bool

// InputSource supplies pending input events without blocking.
type InputSource interface {
	Poll() (event.Event, bool)
}

type nullInput struct{}

func (nullInput) Poll() (event.Event, bool) { return nil, false }

// Engine is the runtime context: it owns all registries, the renderer
// and the input source. Every operation goes through it; there is no
// package-level registry state. The engine is single-threaded: no
// operation may be invoked from more than one goroutine.
type Engine struct {
	cfg      Config
	renderer render.Renderer
	input    InputSource
	clock    Clock
	log      *zap.Logger
	sound    *audio.Engine
	soundUp  bool

	textures  *registry.Registry[*render.Texture]
	objects   *registry.ObjectRegistry
	templates *registry.TemplateRegistry
	fonts     *registry.Registry[*render.Font]
	sounds    *registry.Registry[*audio.Sound]

	alive   bool
	running bool
	mouseX  int
	mouseY  int
}

// Option overrides a default collaborator.
type Option func(*Engine)

// WithLogger replaces the default production logger. Install a zap
// fatal hook here to intercept the terminate-on-error policy when
// embedding.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock replaces the real clock, for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRenderer replaces the terminal screen with another render
// target, for headless runs and tests.
func WithRenderer(r render.Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithInput replaces the terminal input source.
func WithInput(in InputSource) Option {
	return func(e *Engine) { e.input = in }
}

// New validates cfg, claims the process's single engine slot, and
// wires collaborators. Without options it initializes the terminal
// screen and its input pump. Initializing a second engine before
// Shutdown, or an invalid config, is fatal.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		textures:  registry.New[*render.Texture](nil),
		objects:   registry.NewObjectRegistry(),
		templates: registry.NewTemplateRegistry(),
		fonts:     registry.New[*render.Font](nil),
		sounds:    registry.New[*audio.Sound](nil),
		sound:     audio.NewEngine(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.Must(zap.NewProduction())
	}
	if err := cfg.Validate(); err != nil {
		e.log.Fatal("invalid engine config", zap.Error(err))
	}
	if !active.CompareAndSwap(false, true) {
		e.log.Fatal("engine already initialized")
	}
	if e.clock == nil {
		e.clock = NewMonotonicClock()
	}
	if e.renderer == nil {
		scr, err := terminal.NewScreen(cfg.Title)
		if err != nil {
			active.Store(false)
			e.log.Fatal("failed to initialize terminal", zap.Error(err))
		}
		e.renderer = scr
		if e.input == nil {
			e.input = terminal.NewInput(scr)
		}
	}
	if e.input == nil {
		e.input = nullInput{}
	}
	e.alive = true
	return e
}

// Shutdown restores the terminal, closes audio, and releases the
// active-engine slot. Loaded resources are dropped with the engine;
// any operation after Shutdown is fatal.
func (e *Engine) Shutdown() {
	e.assertAlive()
	if f, ok := e.renderer.(interface{ Fini() }); ok {
		f.Fini()
	}
	if e.soundUp {
		e.sound.Close()
	}
	_ = e.log.Sync()
	e.alive = false
	active.Store(false)
}

// assertAlive terminates on use before New or after Shutdown.
func (e *Engine) assertAlive() {
	if e == nil || !e.alive {
		fatalLog.Fatal("engine not initialized")
	}
}

// fatal reports a diagnostic and terminates (or runs the logger's
// fatal hook).
func (e *Engine) fatal(msg string, fields ...zap.Field) {
	e.log.Fatal(msg, fields...)
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Renderer exposes the render target for direct drawing.
func (e *Engine) Renderer() render.Renderer {
	e.assertAlive()
	return e.renderer
}

// Size returns the current surface dimensions in cells.
func (e *Engine) Size() (int, int) {
	e.assertAlive()
	return e.renderer.Size()
}

// SetTitle updates the window title where the surface supports one.
func (e *Engine) SetTitle(title string) {
	e.assertAlive()
	if t, ok := e.renderer.(interface{ SetTitle(string) }); ok {
		t.SetTitle(title)
	}
}

// MousePosition returns the pointer position from the most recent
// mouse event, (0, 0) before any arrives.
func (e *Engine) MousePosition() (int, int) {
	e.assertAlive()
	return e.mouseX, e.mouseY
}

// Objects exposes the object registry.
func (e *Engine) Objects() *registry.ObjectRegistry {
	e.assertAlive()
	return e.objects
}

// Templates exposes the template registry.
func (e *Engine) Templates() *registry.TemplateRegistry {
	e.assertAlive()
	return e.templates
}

package engine

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/asset"
	"github.com/lixenwraith/cellforge/render"
)

// LoadFont parses a glyph font file and registers it under name at the
// given size. Load failure is fatal; use asset.LoadFont directly to
// handle errors.
func (e *Engine) LoadFont(name, path string, size int) *render.Font {
	e.assertAlive()
	f, err := asset.LoadFont(path, size)
	if err != nil {
		e.fatal("failed to load font", zap.String("name", name), zap.Error(err))
	}
	f.Name = name
	e.fonts.Insert(name, f)
	return f
}

// RegisterFont adds an externally built font, such as the compiled-in
// one, to the registry.
func (e *Engine) RegisterFont(name string, f *render.Font) {
	e.assertAlive()
	e.fonts.Insert(name, f)
}

// Font returns the first registered font with the given name. A miss
// is fatal.
func (e *Engine) Font(name string) *render.Font {
	e.assertAlive()
	f, ok := e.fonts.Find(name)
	if !ok {
		e.fatal("font lookup failed", zap.Error(&NotFoundError{Kind: "font", Name: name}))
	}
	return f
}

// LookupFont is the non-terminating variant of Font.
func (e *Engine) LookupFont(name string) (*render.Font, bool) {
	e.assertAlive()
	return e.fonts.Find(name)
}

// CloseFont removes the first font registered under name.
func (e *Engine) CloseFont(name string) {
	e.assertAlive()
	e.fonts.RemoveFirst(name)
}

// CloseAllFonts removes every registered font.
func (e *Engine) CloseAllFonts() {
	e.assertAlive()
	e.fonts.Clear()
}

// DrawText renders text in the named font at (x, y), positioned by the
// anchor. An unknown font is fatal.
func (e *Engine) DrawText(fontName, text string, x, y int, style tcell.Style, anchor render.Anchor) {
	e.assertAlive()
	render.DrawText(e.renderer, e.Font(fontName), text, x, y, ink(style), anchor)
}

// TextSize returns the rendered cell dimensions of text in the named
// font.
func (e *Engine) TextSize(fontName, text string) (width, height int) {
	e.assertAlive()
	return e.Font(fontName).TextSize(text)
}

package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/render"
)

// Geometry drawn through the engine stamps a full block so the style's
// foreground color reads as solid ink.
const inkRune = '█'

func ink(style tcell.Style) render.Cell {
	return render.Cell{Rune: inkRune, Style: style}
}

// SetCell writes one cell on the render surface.
func (e *Engine) SetCell(x, y int, c render.Cell) {
	e.assertAlive()
	e.renderer.SetCell(x, y, c)
}

// DrawLine draws a line from (x1, y1) to (x2, y2).
func (e *Engine) DrawLine(x1, y1, x2, y2 int, style tcell.Style) {
	e.assertAlive()
	render.DrawLine(e.renderer, x1, y1, x2, y2, ink(style))
}

// DrawLineThick draws a line widened to thickness cells.
func (e *Engine) DrawLineThick(x1, y1, x2, y2, thickness int, style tcell.Style) {
	e.assertAlive()
	render.DrawLineThick(e.renderer, x1, y1, x2, y2, thickness, ink(style))
}

// DrawRect draws a rectangle outline with corners (x1, y1), (x2, y2).
func (e *Engine) DrawRect(x1, y1, x2, y2 int, style tcell.Style) {
	e.assertAlive()
	render.DrawRect(e.renderer, x1, y1, x2, y2, ink(style))
}

// DrawRectThick draws a rectangle outline with thick edges.
func (e *Engine) DrawRectThick(x1, y1, x2, y2, thickness int, style tcell.Style) {
	e.assertAlive()
	render.DrawRectThick(e.renderer, x1, y1, x2, y2, thickness, ink(style))
}

// FillRect fills the rectangle with corners (x1, y1), (x2, y2).
func (e *Engine) FillRect(x1, y1, x2, y2 int, style tcell.Style) {
	e.assertAlive()
	render.FillRect(e.renderer, x1, y1, x2, y2, ink(style))
}

// DrawCircle draws a circle outline centered at (cx, cy).
func (e *Engine) DrawCircle(cx, cy, radius int, style tcell.Style) {
	e.assertAlive()
	render.DrawCircle(e.renderer, cx, cy, radius, ink(style))
}

// DrawCircleThick draws a circle outline thickened inward.
func (e *Engine) DrawCircleThick(cx, cy, radius, thickness int, style tcell.Style) {
	e.assertAlive()
	render.DrawCircleThick(e.renderer, cx, cy, radius, thickness, ink(style))
}

// DrawEllipse draws an axis-aligned ellipse outline.
func (e *Engine) DrawEllipse(cx, cy, rx, ry int, style tcell.Style) {
	e.assertAlive()
	render.DrawEllipse(e.renderer, cx, cy, rx, ry, ink(style))
}

// DrawEllipseThick draws an ellipse outline thickened inward.
func (e *Engine) DrawEllipseThick(cx, cy, rx, ry, thickness int, style tcell.Style) {
	e.assertAlive()
	render.DrawEllipseThick(e.renderer, cx, cy, rx, ry, thickness, ink(style))
}

// Package render defines the engine's drawing boundary: cell grids
// (textures, tile atlases), the Surface/Renderer interfaces the frame
// loop draws through, region blitting, geometry primitives and glyph
// text.
package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell. A zero Rune marks the cell transparent;
// blits skip it.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Texture is a named grid of cells, row-major. The engine's texture
// registry holds loaded textures; drawing scales them into destination
// rects without mutating them.
type Texture struct {
	Name   string
	Width  int
	Height int
	Cells  []Cell
}

// NewTexture allocates a transparent texture of the given size.
func NewTexture(name string, width, height int) *Texture {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Texture{
		Name:   name,
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// At returns the cell at (x, y). Out-of-range coordinates return a
// transparent cell.
func (t *Texture) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return Cell{}
	}
	return t.Cells[y*t.Width+x]
}

// Set writes the cell at (x, y). Out-of-range coordinates are ignored.
func (t *Texture) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	t.Cells[y*t.Width+x] = c
}

// Size returns the texture dimensions. Together with SetCell it makes
// a Texture a Surface, so the geometry primitives can draw into one.
func (t *Texture) Size() (int, int) {
	return t.Width, t.Height
}

// SetCell writes the cell at (x, y), ignoring out-of-range writes.
func (t *Texture) SetCell(x, y int, c Cell) {
	t.Set(x, y, c)
}

// Fill sets every cell in the given rect of the texture.
func (t *Texture) Fill(r Rect, c Cell) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t.Set(x, y, c)
		}
	}
}

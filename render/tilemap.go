package render

import "fmt"

// Tilemap is a texture sliced into a fixed grid: tile dimensions, the
// spacing between tiles, and the grid's row/column count.
type Tilemap struct {
	Texture    *Texture
	TileWidth  int
	TileHeight int
	Spacing    int
	Rows       int
	Cols       int
}

// NewTilemap wraps an atlas texture with grid geometry.
func NewTilemap(tex *Texture, tileWidth, tileHeight, spacing, rows, cols int) *Tilemap {
	return &Tilemap{
		Texture:    tex,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Spacing:    spacing,
		Rows:       rows,
		Cols:       cols,
	}
}

// Tile addresses one tile of a tilemap. It is an independent value;
// discarding a Tile never affects the Tilemap it points into.
type Tile struct {
	Tilemap *Tilemap
	Row     int
	Col     int
}

// Tile returns the tile at (row, col). Addresses at or past the grid's
// row/column count are rejected; lower bounds are not checked.
func (m *Tilemap) Tile(row, col int) (Tile, error) {
	if row >= m.Rows || col >= m.Cols {
		return Tile{}, fmt.Errorf("tile (%d,%d) out of bounds for %dx%d tilemap", row, col, m.Rows, m.Cols)
	}
	return Tile{Tilemap: m, Row: row, Col: col}, nil
}

// SrcRect returns the tile's region within the atlas texture,
// accounting for inter-tile spacing.
func (t Tile) SrcRect() Rect {
	m := t.Tilemap
	return Rect{
		X: t.Col * (m.TileWidth + m.Spacing),
		Y: t.Row * (m.TileHeight + m.Spacing),
		W: m.TileWidth,
		H: m.TileHeight,
	}
}

// Draw blits the tile at (x, y) at its native size.
func (t Tile) Draw(s Surface, x, y int) {
	m := t.Tilemap
	CopyRegion(s, m.Texture, t.SrcRect(), Rect{X: x, Y: y, W: m.TileWidth, H: m.TileHeight})
}

// DrawSized blits the tile scaled into an arbitrary destination rect.
func (t Tile) DrawSized(s Surface, x, y, width, height int) {
	CopyRegion(s, t.Tilemap.Texture, t.SrcRect(), Rect{X: x, Y: y, W: width, H: height})
}

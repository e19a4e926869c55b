package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/render"
)

// Tilemap wraps a registered texture as a tile atlas. The texture must
// already be registered; a miss is fatal.
func (e *Engine) Tilemap(textureName string, tileWidth, tileHeight, spacing, rows, cols int) *render.Tilemap {
	e.assertAlive()
	return render.NewTilemap(e.Texture(textureName), tileWidth, tileHeight, spacing, rows, cols)
}

// Tile returns the addressed tile of a tilemap. An out-of-bounds
// address is fatal; use Tilemap.Tile directly to handle the error.
func (e *Engine) Tile(m *render.Tilemap, row, col int) render.Tile {
	e.assertAlive()
	t, err := m.Tile(row, col)
	if err != nil {
		e.fatal("tile lookup failed", zap.Error(err))
	}
	return t
}

// DrawTile blits a tile at (x, y) at native tile size.
func (e *Engine) DrawTile(t render.Tile, x, y int) {
	e.assertAlive()
	t.Draw(e.renderer, x, y)
}

// DrawTileFrom draws the addressed tile of m at (x, y) without an
// intermediate Tile value. Out-of-bounds addresses are fatal.
func (e *Engine) DrawTileFrom(m *render.Tilemap, row, col, x, y int) {
	e.Tile(m, row, col).Draw(e.renderer, x, y)
}

// DrawTileSized blits a tile scaled into an arbitrary rect.
func (e *Engine) DrawTileSized(t render.Tile, x, y, width, height int) {
	e.assertAlive()
	t.DrawSized(e.renderer, x, y, width, height)
}

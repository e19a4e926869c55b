// Command atlas-sandbox fills the screen with Perlin-noise terrain
// drawn from a generated tile atlas. Space reseeds, q or Escape quits.
package main

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/asset"
	"github.com/lixenwraith/cellforge/engine"
	"github.com/lixenwraith/cellforge/event"
	"github.com/lixenwraith/cellforge/render"
)

const (
	tileSize  = 2
	spacing   = 1
	noiseFreq = 0.07
)

// One atlas row, water through snow.
var terrainColors = []tcell.Color{
	tcell.ColorNavy,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorGreen,
	tcell.ColorDarkGreen,
	tcell.ColorGray,
	tcell.ColorWhite,
}

type sandbox struct {
	noise *perlin.Perlin
	tiles []render.Tile
	seed  int64
}

func main() {
	cfg := engine.DefaultConfig()
	cfg.Title = "atlas-sandbox"

	e := engine.New(cfg)
	defer e.Shutdown()

	e.RegisterFont("ui", asset.BuiltinFont(1))
	e.RegisterTexture("terrain", terrainAtlas())
	m := e.Tilemap("terrain", tileSize, tileSize, spacing, 1, len(terrainColors))

	s := &sandbox{seed: time.Now().UnixNano()}
	for col := range terrainColors {
		s.tiles = append(s.tiles, e.Tile(m, 0, col))
	}
	s.reseed()

	e.Run(s)
}

// terrainAtlas builds a single-row atlas with one solid tile per
// terrain band, separated by spacing so slicing is visible in the
// geometry.
func terrainAtlas() *render.Texture {
	w := len(terrainColors)*(tileSize+spacing) - spacing
	tex := render.NewTexture("terrain", w, tileSize)
	for i, color := range terrainColors {
		c := render.Cell{Rune: ' ', Style: tcell.StyleDefault.Background(color)}
		tex.Fill(render.Rect{X: i * (tileSize + spacing), W: tileSize, H: tileSize}, c)
	}
	return tex
}

func (s *sandbox) reseed() {
	s.noise = perlin.NewPerlin(2, 2, 3, s.seed)
}

func (s *sandbox) HandleEvent(e *engine.Engine, ev event.Event) {
	key, ok := ev.(event.Key)
	if !ok {
		return
	}
	switch {
	case key.Rune == 'q' || key.Code == tcell.KeyEscape:
		e.Stop()
	case key.Rune == ' ':
		s.seed++
		s.reseed()
	}
}

func (s *sandbox) Update(*engine.Engine) {}

func (s *sandbox) Draw(e *engine.Engine) {
	w, h := e.Size()
	cols := w / tileSize
	rows := h / tileSize
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			n := s.noise.Noise2D(float64(tx)*noiseFreq, float64(ty)*noiseFreq)
			band := int((n + 1) / 2 * float64(len(s.tiles)))
			if band >= len(s.tiles) {
				band = len(s.tiles) - 1
			}
			if band < 0 {
				band = 0
			}
			e.DrawTile(s.tiles[band], tx*tileSize, ty*tileSize)
		}
	}
	e.DrawText("ui", "SPACE RESEED", 1, h-6,
		tcell.StyleDefault.Foreground(tcell.ColorWhite), render.AnchorTopLeft)
}

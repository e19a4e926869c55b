// Package asset loads the external resources the engine registers:
// images decoded into cell-grid textures, TOML glyph fonts, and WAV
// sound clips. Loaders return errors; the engine's accessors decide
// whether a failure is fatal.
package asset

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/render"
)

// Widest texture produced from an image. Larger sources are
// downsampled; drawing scales textures into destination rects anyway.
const maxTextureWidth = 64

// Terminal cells are roughly twice as tall as wide; halving the row
// count keeps image proportions on screen.
const cellAspect = 2

// LoadImage decodes the image at path into a background-colored cell
// grid. Each cell averages its source pixel block; mostly-transparent
// blocks become transparent cells.
func LoadImage(path string) (*render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return ConvertImage(img, path), nil
}

// ConvertImage downsamples a decoded image into a texture.
func ConvertImage(img image.Image, name string) *render.Texture {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return render.NewTexture(name, 0, 0)
	}

	w := srcW
	if w > maxTextureWidth {
		w = maxTextureWidth
	}
	h := srcH * w / srcW / cellAspect
	if h < 1 {
		h = 1
	}

	tex := render.NewTexture(name, w, h)
	for cy := 0; cy < h; cy++ {
		y0 := bounds.Min.Y + cy*srcH/h
		y1 := bounds.Min.Y + (cy+1)*srcH/h
		for cx := 0; cx < w; cx++ {
			x0 := bounds.Min.X + cx*srcW/w
			x1 := bounds.Min.X + (cx+1)*srcW/w

			r, g, b, a, n := blockAverage(img, x0, y0, x1, y1)
			if n == 0 || a < 128 {
				continue // transparent cell
			}
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			tex.Set(cx, cy, render.Cell{Rune: ' ', Style: style})
		}
	}
	return tex
}

// blockAverage averages the 8-bit RGBA channels over a pixel block.
func blockAverage(img image.Image, x0, y0, x1, y1 int) (r, g, b, a uint32, n int) {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var sr, sg, sb, sa uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			sr += uint64(pr >> 8)
			sg += uint64(pg >> 8)
			sb += uint64(pb >> 8)
			sa += uint64(pa >> 8)
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	return uint32(sr / uint64(n)), uint32(sg / uint64(n)), uint32(sb / uint64(n)), uint32(sa / uint64(n)), n
}

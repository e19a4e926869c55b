package asset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cellforge/render"
)

// fontFile is the on-disk TOML shape of a glyph font:
//
//	height = 5
//	[glyphs]
//	"A" = [".#.", "#.#", "###", "#.#", "#.#"]
type fontFile struct {
	Height int                 `toml:"height"`
	Glyphs map[string][]string `toml:"glyphs"`
}

// LoadFont parses a TOML glyph font. size is the integer cell scale
// applied when drawing; sizes below 1 are clamped to 1.
func LoadFont(path string, size int) (*render.Font, error) {
	var ff fontFile
	if _, err := toml.DecodeFile(path, &ff); err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if ff.Height <= 0 {
		return nil, fmt.Errorf("font %s: height must be positive, got %d", path, ff.Height)
	}
	if size < 1 {
		size = 1
	}

	glyphs := make(map[rune][]string, len(ff.Glyphs))
	for key, rows := range ff.Glyphs {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("font %s: glyph key %q must be a single rune", path, key)
		}
		if len(rows) != ff.Height {
			return nil, fmt.Errorf("font %s: glyph %q has %d rows, want %d", path, key, len(rows), ff.Height)
		}
		width := len([]rune(rows[0]))
		for _, row := range rows[1:] {
			if len([]rune(row)) != width {
				return nil, fmt.Errorf("font %s: glyph %q has uneven row widths", path, key)
			}
		}
		glyphs[runes[0]] = rows
	}

	return &render.Font{
		Name:   path,
		Height: ff.Height,
		Scale:  size,
		Glyphs: glyphs,
	}, nil
}

package render

// Font is a bitmap glyph font. Each glyph is Height rows of equal
// width; a '#' marks an on cell, anything else is off. Scale is the
// integer size factor applied on both axes when drawing.
type Font struct {
	Name   string
	Height int
	Scale  int
	Glyphs map[rune][]string
}

// Anchor positions drawn text relative to the draw point.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// Unknown glyphs render as blank space of this width.
const fallbackGlyphWidth = 3

func (f *Font) glyphWidth(r rune) int {
	rows, ok := f.Glyphs[r]
	if !ok || len(rows) == 0 {
		return fallbackGlyphWidth
	}
	return len([]rune(rows[0]))
}

// scale returns the effective size factor, at least 1.
func (f *Font) scale() int {
	if f.Scale < 1 {
		return 1
	}
	return f.Scale
}

// TextSize returns the rendered cell dimensions of s, including the
// inter-glyph spacing.
func (f *Font) TextSize(s string) (width, height int) {
	sc := f.scale()
	for _, r := range s {
		if width > 0 {
			width += sc // inter-glyph gap
		}
		width += f.glyphWidth(r) * sc
	}
	return width, f.Height * sc
}

// DrawText renders text at (x, y), shifted by the anchor relative to
// the rendered size, stamping c for every on cell.
func DrawText(s Surface, f *Font, text string, x, y int, c Cell, anchor Anchor) {
	if f == nil || text == "" {
		return
	}
	w, h := f.TextSize(text)

	switch anchor {
	case AnchorTop, AnchorCenter, AnchorBottom:
		x -= w / 2
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		x -= w
	}
	switch anchor {
	case AnchorLeft, AnchorCenter, AnchorRight:
		y -= h / 2
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		y -= h
	}

	sc := f.scale()
	penX := x
	for _, r := range text {
		rows, ok := f.Glyphs[r]
		gw := f.glyphWidth(r)
		if ok {
			drawGlyph(s, rows, penX, y, sc, c)
		}
		penX += (gw + 1) * sc
	}
}

func drawGlyph(s Surface, rows []string, x, y, sc int, c Cell) {
	for gy, row := range rows {
		gx := 0
		for _, mark := range row {
			if mark == '#' {
				for dy := 0; dy < sc; dy++ {
					for dx := 0; dx < sc; dx++ {
						s.SetCell(x+gx*sc+dx, y+gy*sc+dy, c)
					}
				}
			}
			gx++
		}
	}
}

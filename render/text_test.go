package render

import "testing"

func testFont(scale int) *Font {
	return &Font{
		Name:   "test",
		Height: 3,
		Scale:  scale,
		Glyphs: map[rune][]string{
			'I': {"#", "#", "#"},
			'L': {"#..", "#..", "###"},
		},
	}
}

func TestTextSize(t *testing.T) {
	f := testFont(1)
	tests := []struct {
		text  string
		wantW int
	}{
		{"", 0},
		{"I", 1},
		{"L", 3},
		{"IL", 1 + 1 + 3}, // glyph, gap, glyph
		{"Z", 3},          // unknown glyph gets fallback width
	}
	for _, tt := range tests {
		w, h := f.TextSize(tt.text)
		if w != tt.wantW {
			t.Errorf("TextSize(%q) width = %d, want %d", tt.text, w, tt.wantW)
		}
		if h != 3 {
			t.Errorf("TextSize(%q) height = %d, want 3", tt.text, h)
		}
	}
}

func TestTextSizeScales(t *testing.T) {
	f := testFont(2)
	w, h := f.TextSize("IL")
	if w != 10 || h != 6 {
		t.Errorf("scaled TextSize = %dx%d, want 10x6", w, h)
	}
}

func TestDrawTextTopLeft(t *testing.T) {
	buf := NewMemBuffer(20, 20)
	DrawText(buf, testFont(1), "L", 2, 3, solid('#'), AnchorTopLeft)

	for y := 3; y <= 5; y++ {
		if buf.At(2, y).Rune != '#' {
			t.Fatalf("L stem missing at y=%d", y)
		}
	}
	if buf.At(3, 5).Rune != '#' || buf.At(4, 5).Rune != '#' {
		t.Error("L foot missing")
	}
	if buf.At(3, 3).Rune != 0 {
		t.Error("off glyph cell drawn")
	}
}

func TestDrawTextScale(t *testing.T) {
	buf := NewMemBuffer(20, 20)
	DrawText(buf, testFont(2), "I", 0, 0, solid('#'), AnchorTopLeft)

	for y := 0; y < 6; y++ {
		for x := 0; x < 2; x++ {
			if buf.At(x, y).Rune != '#' {
				t.Fatalf("scaled I missing cell (%d, %d)", x, y)
			}
		}
	}
}

func TestDrawTextAnchors(t *testing.T) {
	f := testFont(1)
	// "I" is 1x3; anchoring at (10, 10) shifts the glyph origin.
	tests := []struct {
		anchor Anchor
		x, y   int // expected top-left of the stem
	}{
		{AnchorTopLeft, 10, 10},
		{AnchorTopRight, 9, 10},
		{AnchorBottomLeft, 10, 7},
		{AnchorBottomRight, 9, 7},
		{AnchorCenter, 10, 9}, // w/2 = 0, h/2 = 1
	}
	for _, tt := range tests {
		buf := NewMemBuffer(20, 20)
		DrawText(buf, f, "I", 10, 10, solid('#'), tt.anchor)
		if buf.At(tt.x, tt.y).Rune != '#' {
			t.Errorf("anchor %d: stem top not at (%d, %d)", tt.anchor, tt.x, tt.y)
		}
	}
}

func TestDrawTextUnknownGlyphAdvancesPen(t *testing.T) {
	buf := NewMemBuffer(20, 20)
	DrawText(buf, testFont(1), "ZI", 0, 0, solid('#'), AnchorTopLeft)

	// Z is blank fallback width 3, plus gap, then the I stem.
	if buf.At(4, 0).Rune != '#' {
		t.Error("pen did not advance past unknown glyph")
	}
	for x := 0; x < 4; x++ {
		if buf.At(x, 0).Rune != 0 {
			t.Errorf("unknown glyph drew at x=%d", x)
		}
	}
}

func TestDrawTextNilFont(t *testing.T) {
	buf := NewMemBuffer(5, 5)
	DrawText(buf, nil, "X", 0, 0, solid('#'), AnchorTopLeft)
	if countSet(buf) != 0 {
		t.Error("nil font drew cells")
	}
}

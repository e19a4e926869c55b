package asset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFont(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "font.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFont(t *testing.T) {
	path := writeFont(t, `
height = 3

[glyphs]
"I" = ["#", "#", "#"]
"L" = ["#..", "#..", "###"]
`)
	f, err := LoadFont(path, 2)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Height != 3 || f.Scale != 2 {
		t.Errorf("font = height %d scale %d, want 3, 2", f.Height, f.Scale)
	}
	if rows, ok := f.Glyphs['L']; !ok || len(rows) != 3 || rows[2] != "###" {
		t.Errorf("glyph L = %v", rows)
	}
}

func TestLoadFontClampsSize(t *testing.T) {
	path := writeFont(t, "height = 1\n[glyphs]\n\"A\" = [\"#\"]\n")
	f, err := LoadFont(path, 0)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if f.Scale != 1 {
		t.Errorf("Scale = %d, want 1", f.Scale)
	}
}

func TestLoadFontRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero height", "height = 0\n[glyphs]\n\"A\" = []\n"},
		{"multi-rune key", "height = 1\n[glyphs]\n\"AB\" = [\"#\"]\n"},
		{"row count mismatch", "height = 2\n[glyphs]\n\"A\" = [\"#\"]\n"},
		{"uneven rows", "height = 2\n[glyphs]\n\"A\" = [\"#\", \"##\"]\n"},
		{"not toml", "height = = =\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFont(writeFont(t, tt.body), 1); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestLoadFontMissingFile(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "nope.toml"), 1); err == nil {
		t.Error("want error for missing file")
	}
}

func TestBuiltinFont(t *testing.T) {
	f := BuiltinFont(0)
	if f.Height != 5 || f.Scale != 1 {
		t.Errorf("builtin = height %d scale %d, want 5, 1", f.Height, f.Scale)
	}
	for _, r := range "0123456789ABCXYZ-:!?. " {
		rows, ok := f.Glyphs[r]
		if !ok {
			t.Errorf("builtin font missing glyph %q", r)
			continue
		}
		if len(rows) != 5 {
			t.Errorf("glyph %q has %d rows", r, len(rows))
		}
	}
}

package asset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/cellforge/audio"
)

// LoadSound decodes the WAV file at path into a fully buffered clip.
func LoadSound(path string) (*audio.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	return audio.NewSound(filepath.Base(path), format, streamer), nil
}

package engine

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the surface and pacing settings for an Engine.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

// DefaultConfig returns the settings used when nothing is configured:
// an 80x24 surface paced at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Title:  "cellforge",
		Width:  80,
		Height: 24,
		FPS:    60,
	}
}

// LoadConfig reads a TOML config file. Absent fields keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the frame loop cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

package engine

import (
	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/lixenwraith/cellforge/asset"
	"github.com/lixenwraith/cellforge/audio"
)

// ensureAudio opens the speaker on first use. Missing audio hardware
// degrades to silence rather than killing the run, so headless and CI
// environments work.
func (e *Engine) ensureAudio() {
	if e.soundUp {
		return
	}
	if err := e.sound.Initialize(); err != nil {
		e.log.Warn("audio unavailable, continuing silent", zap.Error(err))
		return
	}
	e.soundUp = true
}

// LoadSound decodes the WAV file at path and registers it under name.
// Load failure is fatal; use asset.LoadSound directly to handle
// errors.
func (e *Engine) LoadSound(name, path string) *audio.Sound {
	e.assertAlive()
	s, err := asset.LoadSound(path)
	if err != nil {
		e.fatal("failed to load sound", zap.String("name", name), zap.Error(err))
	}
	s.Name = name
	e.sounds.Insert(name, s)
	return s
}

// RegisterSound adds an externally built clip to the registry.
func (e *Engine) RegisterSound(name string, s *audio.Sound) {
	e.assertAlive()
	e.sounds.Insert(name, s)
}

// PlaySound plays the first registered sound with the given name. An
// unknown name is fatal; playback on a machine without audio is a
// silent no-op.
func (e *Engine) PlaySound(name string) {
	e.assertAlive()
	s, ok := e.sounds.Find(name)
	if !ok {
		e.fatal("sound lookup failed", zap.Error(&NotFoundError{Kind: "sound", Name: name}))
	}
	e.ensureAudio()
	e.sound.Play(s)
}

// LookupSound is the non-terminating variant of the sound lookup.
func (e *Engine) LookupSound(name string) (*audio.Sound, bool) {
	e.assertAlive()
	return e.sounds.Find(name)
}

// PlayStreamer mixes an arbitrary streamer, for generated tones.
func (e *Engine) PlayStreamer(s beep.Streamer) {
	e.assertAlive()
	e.ensureAudio()
	e.sound.PlayStreamer(s)
}

// CloseSound removes the first sound registered under name.
func (e *Engine) CloseSound(name string) {
	e.assertAlive()
	e.sounds.RemoveFirst(name)
}

// CloseAllSounds removes every registered sound.
func (e *Engine) CloseAllSounds() {
	e.assertAlive()
	e.sounds.Clear()
}

// Package audio plays buffered sounds through the system speaker. The
// engine keeps loaded sounds in a named registry and triggers playback
// from game callbacks; everything here mixes into one speaker stream.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// All playback is resampled to this rate.
const sampleRate = beep.SampleRate(48000)

// Sound is a fully buffered audio clip.
type Sound struct {
	Name   string
	buffer *beep.Buffer
}

// NewSound buffers the entire streamer into a playable clip.
func NewSound(name string, format beep.Format, s beep.Streamer) *Sound {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Sound{Name: name, buffer: buf}
}

// Duration returns the clip length.
func (s *Sound) Duration() time.Duration {
	return s.buffer.Format().SampleRate.D(s.buffer.Len())
}

// Engine owns the speaker and the mixer all sounds play through.
// Initialization failure is non-fatal: an uninitialized engine accepts
// Play calls and drops them.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an audio engine. Call Initialize before playing.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer stream.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play mixes one playback of s into the speaker stream. Clips recorded
// at other sample rates are resampled.
func (e *Engine) Play(s *Sound) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	streamer := s.buffer.Streamer(0, s.buffer.Len())
	format := s.buffer.Format()

	speaker.Lock()
	if format.SampleRate == sampleRate {
		e.mixer.Add(streamer)
	} else {
		e.mixer.Add(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	}
	speaker.Unlock()
}

// PlayStreamer mixes an arbitrary streamer, for generated tones.
func (e *Engine) PlayStreamer(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer and shuts the speaker down.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	e.initialized = false
}

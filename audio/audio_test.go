package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func testFormat() beep.Format {
	return beep.Format{SampleRate: 48000, NumChannels: 2, Precision: 2}
}

func TestNewSoundBuffersWholeStreamer(t *testing.T) {
	format := testFormat()
	s := NewSound("half-second", format, beep.Silence(format.SampleRate.N(500*time.Millisecond)))

	if got := s.Duration(); got != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", got)
	}
}

func TestUninitializedEngineDropsPlayback(t *testing.T) {
	e := NewEngine()

	// No speaker: Play and Close must be safe no-ops.
	e.Play(NewSound("clip", testFormat(), beep.Silence(10)))
	e.Play(nil)
	e.PlayStreamer(beep.Silence(10))
	e.Close()
}

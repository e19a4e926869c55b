package engine

import (
	"testing"
	"time"
)

func TestMockClockSleepAdvancesAndRecords(t *testing.T) {
	c := NewMockClock(time.Unix(100, 0))
	c.Sleep(time.Second)
	c.Sleep(500 * time.Millisecond)

	if got := c.Now(); !got.Equal(time.Unix(101, int64(500*time.Millisecond))) {
		t.Errorf("Now = %v", got)
	}
	if len(c.Slept) != 2 || c.Slept[0] != time.Second {
		t.Errorf("Slept = %v", c.Slept)
	}
}

func TestMockClockAdvanceDoesNotRecord(t *testing.T) {
	c := NewMockClock(time.Unix(0, 0))
	c.Advance(time.Minute)
	if len(c.Slept) != 0 {
		t.Errorf("Advance recorded a sleep: %v", c.Slept)
	}
	if !c.Now().Equal(time.Unix(60, 0)) {
		t.Errorf("Now = %v", c.Now())
	}
}

func TestMonotonicClockMovesForward(t *testing.T) {
	c := NewMonotonicClock()
	a := c.Now()
	c.Sleep(time.Millisecond)
	if !c.Now().After(a) {
		t.Error("clock did not advance across a sleep")
	}
}

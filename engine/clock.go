package engine

import (
	"sync"
	"time"
)

// Clock abstracts frame timing so the loop can run against the real
// monotonic clock in production and a controllable one in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock is the real system clock.
type MonotonicClock struct{}

// NewMonotonicClock creates the production clock.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with a monotonic reading.
func (*MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d.
func (*MonotonicClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockClock is a controllable time source for tests. Sleep advances
// the mock time instead of blocking and records each requested
// duration.
type MockClock struct {
	mu    sync.Mutex
	now   time.Time
	Slept []time.Duration
}

// NewMockClock creates a mock clock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time.
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep records d and advances the mocked time by it.
func (c *MockClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Slept = append(c.Slept, d)
	c.now = c.now.Add(d)
}

// Advance moves the mocked time forward without recording a sleep.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

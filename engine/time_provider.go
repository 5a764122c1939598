package engine

import (
	"sync"
	"time"
)

// Clock is the time source the scheduler and input tracker read
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock driven frame by frame, for tests and scripted replays.
// It never moves backward.
type ManualClock struct {
	mu    sync.Mutex
	now   time.Time
	frame time.Duration
}

// NewManualClock creates a clock reading start that moves by frame on each Step
func NewManualClock(start time.Time, frame time.Duration) *ManualClock {
	return &ManualClock{now: start, frame: frame}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Step advances one frame and returns the elapsed time, ready to hand to a TickFunc
func (c *ManualClock) Step() time.Duration {
	c.Advance(c.frame)
	return c.frame
}

// Advance moves the clock by d and returns the new reading. Negative d is ignored.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return c.now
}

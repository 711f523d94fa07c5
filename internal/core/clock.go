package core

import "time"

// Clock is a source of monotonic time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (which carries a monotonic reading).
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// Used to drive stopwatches deterministically in tests and tools.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(1_700_000_000, 0)}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Stopwatch measures elapsed time since its last restart.
// It is polled, never scheduled: callers compare Elapsed against thresholds.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// NewStopwatch creates a stopwatch started now.
func NewStopwatch(clock Clock) Stopwatch {
	return Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the last restart.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}

// Restart resets the stopwatch and returns the time elapsed before the reset.
func (s *Stopwatch) Restart() time.Duration {
	now := s.clock.Now()
	elapsed := now.Sub(s.start)
	s.start = now
	return elapsed
}

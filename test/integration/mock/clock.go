package mock

import "time"

// Clock is a controllable adapter.Clock implementation.
type Clock struct {
	current time.Time
}

// NewClock creates a clock frozen at the given time.
func NewClock(current time.Time) *Clock {
	return &Clock{current: current}
}

// SetCurrentTime moves the clock.
func (c *Clock) SetCurrentTime(current time.Time) {
	c.current = current
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Now returns the frozen time.
func (c *Clock) Now() time.Time {
	return c.current
}

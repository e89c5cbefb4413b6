package adapter

import "time"

// Clock abstracts "now" so period-close decisions and the anti-backdating
// clamp are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

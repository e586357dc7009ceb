package clock

import "time"

// Clock provides the current time; swapped for a mock in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to the second, which is
// the precision shown on the dashboard
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

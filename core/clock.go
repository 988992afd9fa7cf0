package core

import "time"

// Clock abstracts monotonic time and timed suspension
// Animations sleep through the clock so tests can run them instantly
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock with monotonic readings
type SystemClock struct{}

// NewSystemClock creates a real clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration
func (c *SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

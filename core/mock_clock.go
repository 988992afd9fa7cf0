package core

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Sleep advances the mock time instead of blocking
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	slept       time.Duration
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// Sleep advances the mocked time without blocking
func (c *MockClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
	c.slept += d
}

// SetTime sets the current time for the mock
func (c *MockClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

// Advance advances the current time by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

// Slept returns total time consumed through Sleep
func (c *MockClock) Slept() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.slept
}

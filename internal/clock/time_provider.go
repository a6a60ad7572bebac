// Package clock supplies per-step time deltas to the simulation driver.
package clock

import (
	"sync"
	"time"
)

// TimeProvider returns the current time.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// MockTimeProvider is a controllable time source for tests.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d.
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

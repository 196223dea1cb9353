package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually stepped clock for tests and headless bot runs
type MockTimeProvider struct {
	epoch   time.Time
	elapsed atomic.Int64 // nanoseconds since epoch
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.elapsed.Load()))
}

// SetTime jumps to t; moving backwards is allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.elapsed.Store(int64(t.Sub(m.epoch)))
}

// Advance steps the clock by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.epoch.Add(time.Duration(m.elapsed.Add(int64(d))))
}

package engine

import (
	"sync"
	"time"
)

// PausableClock is game time: the underlying clock minus every pause
// The terminal front end pauses it; the scheduler skips ticks while paused
type PausableClock struct {
	mu       sync.Mutex
	real     TimeProvider
	paused   bool
	pausedAt time.Time     // real time the current pause began
	held     time.Duration // completed pauses
}

// NewPausableClock wraps real, or wall time when real is nil
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	return &PausableClock{real: real}
}

// Now returns game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return pc.pausedAt.Add(-pc.held)
	}
	return pc.real.Now().Add(-pc.held)
}

func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		pc.paused, pc.pausedAt = true, pc.real.Now()
	}
}

func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		pc.held += pc.real.Now().Sub(pc.pausedAt)
		pc.paused = false
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	now := pc.real.Now()
	if pc.paused {
		pc.held += now.Sub(pc.pausedAt)
	} else {
		pc.pausedAt = now
	}
	pc.paused = !pc.paused
	return pc.paused
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration includes an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return pc.held + pc.real.Now().Sub(pc.pausedAt)
	}
	return pc.held
}

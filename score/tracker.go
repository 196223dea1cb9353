package score

import "sync"

// Snapshot is the immutable result of a round's scoring
type Snapshot struct {
	Score      int
	ShotsFired int
}

// Listener is notified after every score mutation
type Listener func(score, delta int)

// Tracker holds the running score, shot counter and hit streak
// Only hit resolution mutates the streak
type Tracker struct {
	mu        sync.RWMutex
	score     int
	shots     int
	combo     int
	bestCombo int
	listeners []Listener
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Add applies a signed delta and notifies subscribers outside the lock
func (t *Tracker) Add(points int) {
	t.mu.Lock()
	t.score += points
	score := t.score
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(score, points)
	}
}

// RecordShot counts a fired shot for accuracy
func (t *Tracker) RecordShot() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shots++
}

// Reset zeroes score, shots and streak and publishes the zero score
func (t *Tracker) Reset() {
	t.mu.Lock()
	prev := t.score
	t.score = 0
	t.shots = 0
	t.combo = 0
	t.bestCombo = 0
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(0, -prev)
	}
}

// IncrementCombo extends the streak by one and returns it
func (t *Tracker) IncrementCombo() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.combo++
	if t.combo > t.bestCombo {
		t.bestCombo = t.combo
	}
	return t.combo
}

// ResetCombo breaks the streak, returning the streak that was broken
func (t *Tracker) ResetCombo() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.combo
	t.combo = 0
	return prev
}

// Combo returns the current streak
func (t *Tracker) Combo() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.combo
}

// BestCombo returns the longest streak since Reset
func (t *Tracker) BestCombo() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bestCombo
}

// Finalize returns the current totals without mutating them
func (t *Tracker) Finalize() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{Score: t.score, ShotsFired: t.shots}
}

// Score returns the running score
func (t *Tracker) Score() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.score
}

// Subscribe registers a change listener
func (t *Tracker) Subscribe(fn Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Copy on write so Add can iterate without holding the lock
	next := make([]Listener, len(t.listeners), len(t.listeners)+1)
	copy(next, t.listeners)
	t.listeners = append(next, fn)
}

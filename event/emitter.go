package event

import (
	"sync"
	"time"
)

// Emitter is the engine's outbound notification interface
// Emit never blocks and never returns a result; consumers cannot affect engine state
type Emitter interface {
	Emit(t EventType, payload any)
}

// Bus stamps notifications with engine time and pushes them onto a queue
type Bus struct {
	queue *EventQueue
	now   func() time.Time
}

// NewBus creates a bus; now supplies the timestamp, nil uses wall time
func NewBus(queue *EventQueue, now func() time.Time) *Bus {
	if now == nil {
		now = time.Now
	}
	return &Bus{queue: queue, now: now}
}

// Emit queues a notification
func (b *Bus) Emit(t EventType, payload any) {
	b.queue.Push(GameEvent{Type: t, Payload: payload, Time: b.now()})
}

// Queue returns the underlying queue for router attachment
func (b *Bus) Queue() *EventQueue {
	return b.queue
}

// Discard drops every notification
type Discard struct{}

func (Discard) Emit(EventType, any) {}

// Recorder keeps every notification in memory, used by tests and the bot report
type Recorder struct {
	mu     sync.Mutex
	events []GameEvent
}

// Emit records a notification
func (r *Recorder) Emit(t EventType, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, GameEvent{Type: t, Payload: payload})
}

// Events returns a copy of recorded notifications
func (r *Recorder) Events() []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many notifications of type t were recorded
func (r *Recorder) Count(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// Last returns the most recent payload of type t
func (r *Recorder) Last(t EventType) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i].Payload, true
		}
	}
	return nil, false
}

// Reset clears recorded notifications
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = r.events[:0]
}

// Fanout emits to several emitters in order
type Fanout []Emitter

func (f Fanout) Emit(t EventType, payload any) {
	for _, e := range f {
		e.Emit(t, payload)
	}
}

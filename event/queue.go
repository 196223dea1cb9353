package event

import (
	"sync/atomic"

	"github.com/lixenwraith/vr-range/parameter"
)

// slot holds one notification; ready flips after the write completes
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a lock-free ring buffer carrying notifications from the
// session to the dispatch loop
// Any number of goroutines may Push; exactly one may Consume
// When full, the oldest unread notification is overwritten and counted in Dropped
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims the next write position and publishes ev into it
func (eq *EventQueue) Push(ev GameEvent) {
	pos := eq.write.Add(1) - 1
	s := &eq.slots[pos&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Drag the reader forward past anything just overwritten
	for {
		read := eq.read.Load()
		if pos+1-read <= parameter.EventQueueSize {
			return
		}
		if eq.read.CompareAndSwap(read, pos+1-parameter.EventQueueSize) {
			eq.dropped.Add(pos + 1 - parameter.EventQueueSize - read)
			return
		}
	}
}

// Consume returns every published notification in push order
// It stops early at a slot whose writer has not finished
func (eq *EventQueue) Consume() []GameEvent {
	for {
		start, write := eq.read.Load(), eq.write.Load()
		if write == start {
			return nil
		}
		n := min(write-start, parameter.EventQueueSize)
		read := write - n

		out := make([]GameEvent, 0, n)
		for pos := read; pos < write; pos++ {
			s := &eq.slots[pos&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}
		if eq.read.CompareAndSwap(start, read+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the approximate number of unread notifications
func (eq *EventQueue) Len() int {
	read, write := eq.read.Load(), eq.write.Load()
	if write <= read {
		return 0
	}
	return int(min(write-read, parameter.EventQueueSize))
}

// Dropped counts notifications overwritten before they were consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Reset discards every pending notification and returns how many were dropped
func (eq *EventQueue) Reset() int {
	return len(eq.Consume())
}

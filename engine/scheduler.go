package engine

import (
	"container/heap"
	"time"
)

// OwnerKind groups timers by the subsystem that scheduled them
type OwnerKind uint8

const (
	// OwnerEntity timers die with their entity (expiry, movement, blink)
	OwnerEntity OwnerKind = iota
	// OwnerSpawner timers drive the spawn tick, telegraphs and wave bursts
	OwnerSpawner
	// OwnerHazard timers drive the auxiliary spawners
	OwnerHazard
	// OwnerPowerUp timers expire power-up effects
	OwnerPowerUp
	// OwnerRound timers drive round-wide loops (motion, rhythm, countdown, combo decay)
	OwnerRound
)

// Owner tags a timer for bulk cancellation
type Owner struct {
	Kind OwnerKind
	ID   uint64
}

// EntityOwner is the owner tag for timers bound to one entity
func EntityOwner(id uint64) Owner {
	return Owner{Kind: OwnerEntity, ID: id}
}

// TimerID identifies a scheduled callback; zero is never issued
type TimerID uint64

type timer struct {
	id       TimerID
	owner    Owner
	deadline time.Time
	period   time.Duration
	seq      uint64
	fn       func()
	index    int
}

// timerHeap orders by deadline, then by scheduling order
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Scheduler is a min-heap of deadlines driving every timed behavior of a round
// Callbacks run to completion in deadline order; a callback may schedule or cancel
// timers, including its own. Not safe for concurrent use: the owner serializes access
type Scheduler struct {
	clock  TimeProvider
	now    time.Time
	heap   timerHeap
	timers map[TimerID]*timer
	owners map[Owner]map[TimerID]struct{}
	nextID TimerID
	seq    uint64
	fired  uint64
}

// NewScheduler creates a scheduler reading the given clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock:  clock,
		now:    clock.Now(),
		timers: make(map[TimerID]*timer),
		owners: make(map[Owner]map[TimerID]struct{}),
	}
}

// Now returns scheduler time: the deadline of the callback being dispatched,
// otherwise the time of the last advance
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After schedules fn once, d from now
func (s *Scheduler) After(owner Owner, d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return s.add(owner, s.now.Add(d), 0, fn)
}

// Every schedules fn repeatedly, first at now+period
// Non-positive periods are raised to one millisecond
func (s *Scheduler) Every(owner Owner, period time.Duration, fn func()) TimerID {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(owner, s.now.Add(period), period, fn)
}

func (s *Scheduler) add(owner Owner, deadline time.Time, period time.Duration, fn func()) TimerID {
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		owner:    owner,
		deadline: deadline,
		period:   period,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers[t.id] = t
	set, ok := s.owners[owner]
	if !ok {
		set = make(map[TimerID]struct{})
		s.owners[owner] = set
	}
	set[t.id] = struct{}{}
	heap.Push(&s.heap, t)
	return t.id
}

// Cancel removes a pending timer, returning false if it already fired or was canceled
func (s *Scheduler) Cancel(id TimerID) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	s.forget(t)
	if t.index >= 0 {
		heap.Remove(&s.heap, t.index)
	}
	return true
}

// CancelOwner removes every pending timer of owner and returns how many were removed
func (s *Scheduler) CancelOwner(owner Owner) int {
	set := s.owners[owner]
	n := 0
	for id := range set {
		if s.Cancel(id) {
			n++
		}
	}
	return n
}

// CancelKind removes every pending timer whose owner has the given kind
func (s *Scheduler) CancelKind(kind OwnerKind) int {
	n := 0
	for owner := range s.owners {
		if owner.Kind == kind {
			n += s.CancelOwner(owner)
		}
	}
	return n
}

// CancelAll removes every pending timer
func (s *Scheduler) CancelAll() int {
	n := len(s.timers)
	for _, t := range s.timers {
		t.index = -1
	}
	s.heap = s.heap[:0]
	s.timers = make(map[TimerID]*timer)
	s.owners = make(map[Owner]map[TimerID]struct{})
	return n
}

func (s *Scheduler) forget(t *timer) {
	delete(s.timers, t.id)
	if set, ok := s.owners[t.owner]; ok {
		delete(set, t.id)
		if len(set) == 0 {
			delete(s.owners, t.owner)
		}
	}
}

// Pending returns the number of scheduled timers
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// PendingFor returns the number of scheduled timers of owner
func (s *Scheduler) PendingFor(owner Owner) int {
	return len(s.owners[owner])
}

// NextDeadline returns the earliest pending deadline
func (s *Scheduler) NextDeadline() (time.Time, bool) {
	if len(s.heap) == 0 {
		return time.Time{}, false
	}
	return s.heap[0].deadline, true
}

// Fired returns the total number of callbacks dispatched
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// Advance dispatches every timer due at the clock's current time
func (s *Scheduler) Advance() int {
	return s.AdvanceTo(s.clock.Now())
}

// AdvanceTo dispatches, in deadline order, every timer due at or before target
// Periodic timers catch up one period at a time. Time never moves backwards
func (s *Scheduler) AdvanceTo(target time.Time) int {
	if target.Before(s.now) {
		target = s.now
	}

	n := 0
	for len(s.heap) > 0 && !s.heap[0].deadline.After(target) {
		t := heap.Pop(&s.heap).(*timer)
		if t.deadline.After(s.now) {
			s.now = t.deadline
		}

		if t.period == 0 {
			s.forget(t)
		}

		t.fn()
		n++
		s.fired++

		// Re-arm periodic timers unless canceled during the callback
		if t.period > 0 {
			if _, live := s.timers[t.id]; live {
				t.deadline = t.deadline.Add(t.period)
				s.seq++
				t.seq = s.seq
				heap.Push(&s.heap, t)
			}
		}
	}

	s.now = target
	return n
}

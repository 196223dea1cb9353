package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/status"
)

// Ticker is advanced by the clock scheduler with the current game time
type Ticker interface {
	Tick(now time.Time)
}

// ClockScheduler drives a Ticker on a fixed real-time cadence
// Paused intervals are skipped; late ticks are dropped rather than replayed,
// since each Tick catches the target up to the clock anyway
type ClockScheduler struct {
	target   Ticker
	clock    *PausableClock
	interval time.Duration

	ticks   atomic.Uint64
	running atomic.Bool
	stop    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	// done is signaled (non-blocking) after every tick
	done chan struct{}

	statTicks *atomic.Int64
}

// NewClockScheduler creates a clock scheduler and returns its tick-complete channel
func NewClockScheduler(target Ticker, clock *PausableClock, interval time.Duration, reg *status.Registry) (*ClockScheduler, <-chan struct{}) {
	cs := &ClockScheduler{
		target:    target,
		clock:     clock,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}, 1),
		statTicks: reg.Ints.Get("engine.ticks"),
	}
	return cs, cs.done
}

// Start launches the loop; later calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.loop)
	}
}

// Stop halts the loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.once.Do(func() {
		if cs.running.Swap(false) {
			close(cs.stop)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of processed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.ticks.Load()
}

func (cs *ClockScheduler) loop() {
	defer cs.wg.Done()
	t := time.NewTicker(cs.interval)
	defer t.Stop()

	for {
		select {
		case <-cs.stop:
			return
		case <-t.C:
		}
		if cs.clock.IsPaused() {
			continue
		}
		cs.target.Tick(cs.clock.Now())
		cs.statTicks.Store(int64(cs.ticks.Add(1)))
		select {
		case cs.done <- struct{}{}:
		default:
		}
	}
}

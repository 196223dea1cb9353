package registry

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/status"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recordingHandler struct {
	hits    []component.Cause
	expired int
}

func (h *recordingHandler) ResolveHit(e *component.Entity, res Resolution) {
	h.hits = append(h.hits, res.Cause)
}

func (h *recordingHandler) ResolveExpiry(e *component.Entity) {
	h.expired++
}

func newTestRegistry() (*engine.MockTimeProvider, *engine.Scheduler, *Registry, *event.Recorder, *recordingHandler) {
	tp := engine.NewMockTimeProvider(testEpoch)
	sched := engine.NewScheduler(tp)
	rec := &event.Recorder{}
	reg := New(sched, rec, status.NewRegistry(), zerolog.Nop())
	h := &recordingHandler{}
	reg.SetHandler(h)
	reg.Open()
	return tp, sched, reg, rec, h
}

func newTarget(kind component.Kind, lifetime time.Duration) *component.Entity {
	s := component.StatsOf(kind)
	return &component.Entity{Kind: kind, Points: s.Points, HP: s.HP, MaxHP: s.HP, Radius: s.Radius, Lifetime: lifetime}
}

func TestRegisterAssignsIDAndExpires(t *testing.T) {
	tp, sched, reg, rec, h := newTestRegistry()

	e := newTarget(component.KindStandard, time.Second)
	if !reg.Register(e) {
		t.Fatal("Register() = false, want true")
	}
	if e.ID == 0 {
		t.Error("Register() did not assign an id")
	}
	if e.Phase != component.PhaseLive {
		t.Errorf("Phase = %v, want live", e.Phase)
	}
	if !e.ExpireAt.Equal(testEpoch.Add(time.Second)) {
		t.Errorf("ExpireAt = %v, want %v", e.ExpireAt, testEpoch.Add(time.Second))
	}

	sched.AdvanceTo(tp.Advance(999 * time.Millisecond))
	if !reg.IsLive(e.ID) {
		t.Fatal("entity expired early")
	}
	sched.AdvanceTo(tp.Advance(time.Millisecond))
	if reg.IsLive(e.ID) {
		t.Error("entity still live after lifetime")
	}
	if h.expired != 1 {
		t.Errorf("expired = %d, want 1", h.expired)
	}
	if rec.Count(event.EventSpawn) != 1 || rec.Count(event.EventDespawn) != 1 {
		t.Errorf("spawn/despawn = %d/%d, want 1/1", rec.Count(event.EventSpawn), rec.Count(event.EventDespawn))
	}
}

func TestRegisterDuplicateRejected(t *testing.T) {
	_, _, reg, _, _ := newTestRegistry()

	e := newTarget(component.KindStandard, 0)
	reg.Register(e)
	dup := newTarget(component.KindHeavy, 0)
	dup.ID = e.ID
	if reg.Register(dup) {
		t.Error("Register(duplicate) = true, want false")
	}
	if got, _ := reg.Get(e.ID); got != e {
		t.Error("duplicate replaced the original entity")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	_, sched, reg, rec, h := newTestRegistry()

	e := newTarget(component.KindStandard, 5*time.Second)
	reg.Register(e)
	reg.Every(e.ID, 100*time.Millisecond, func(*component.Entity) {})

	if !reg.Resolve(e.ID, component.CauseHit) {
		t.Fatal("first Resolve() = false, want true")
	}
	if reg.Resolve(e.ID, component.CauseHit) {
		t.Error("second Resolve() = true, want false")
	}
	if reg.Resolve(e.ID, component.CauseExpired) {
		t.Error("Resolve() after hit = true, want false")
	}

	if len(h.hits) != 1 || h.expired != 0 {
		t.Errorf("handler hits=%d expired=%d, want 1/0", len(h.hits), h.expired)
	}
	if rec.Count(event.EventDespawn) != 1 {
		t.Errorf("despawns = %d, want 1", rec.Count(event.EventDespawn))
	}
	if n := sched.PendingFor(engine.EntityOwner(uint64(e.ID))); n != 0 {
		t.Errorf("entity timers = %d, want 0", n)
	}
}

func TestTelegraphRegistersAfterDelay(t *testing.T) {
	tp, sched, reg, rec, _ := newTestRegistry()

	var liveCalls int
	e := newTarget(component.KindSpeed, 0)
	e.Zone = component.ZoneOverhead
	id := reg.Telegraph(e, 500*time.Millisecond, func(*component.Entity) { liveCalls++ })

	if !reg.IsPending(id) || reg.IsLive(id) {
		t.Fatal("entity should be telegraphing")
	}
	if reg.Population(component.KindSpeed) != 1 || reg.Count(component.KindSpeed) != 0 {
		t.Errorf("Population/Count = %d/%d, want 1/0", reg.Population(component.KindSpeed), reg.Count(component.KindSpeed))
	}

	p, ok := rec.Last(event.EventTelegraph)
	if !ok {
		t.Fatal("no telegraph notification")
	}
	sp := p.(*event.SpawnPayload)
	if sp.Indicator != "overhead" || sp.Cue != "high" {
		t.Errorf("indicator/cue = %s/%s, want overhead/high", sp.Indicator, sp.Cue)
	}

	sched.AdvanceTo(tp.Advance(500 * time.Millisecond))
	if !reg.IsLive(id) {
		t.Fatal("entity not live after telegraph delay")
	}
	if liveCalls != 1 {
		t.Errorf("onLive calls = %d, want 1", liveCalls)
	}
	if !e.LiveAt.Equal(testEpoch.Add(500 * time.Millisecond)) {
		t.Errorf("LiveAt = %v, want telegraph deadline", e.LiveAt)
	}
}

func TestStopAllClearsEverything(t *testing.T) {
	tp, sched, reg, rec, h := newTestRegistry()

	for i := 0; i < 3; i++ {
		reg.Register(newTarget(component.KindStandard, time.Second))
	}
	pending := reg.Telegraph(newTarget(component.KindHeavy, 0), time.Second, nil)
	sched.Every(engine.Owner{Kind: engine.OwnerHazard}, time.Second, func() {})

	if n := reg.StopAll(); n != 3 {
		t.Errorf("StopAll() = %d, want 3", n)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sched.Pending())
	}
	if reg.Population() != 0 {
		t.Errorf("Population() = %d, want 0", reg.Population())
	}
	if len(h.hits) != 0 || h.expired != 0 {
		t.Error("forced clear reached the hit handler")
	}
	if rec.Count(event.EventDespawn) != 4 {
		t.Errorf("despawns = %d, want 4", rec.Count(event.EventDespawn))
	}

	sched.AdvanceTo(tp.Advance(10 * time.Second))
	if reg.IsLive(pending) {
		t.Error("telegraphed entity registered after StopAll")
	}
	if reg.Register(newTarget(component.KindStandard, 0)) {
		t.Error("Register() after StopAll = true, want false")
	}
}

func TestScheduleDiesWithEntity(t *testing.T) {
	tp, sched, reg, _, _ := newTestRegistry()

	e := newTarget(component.KindBlink, 0)
	reg.Register(e)
	var ticks int
	reg.Every(e.ID, 100*time.Millisecond, func(*component.Entity) { ticks++ })

	sched.AdvanceTo(tp.Advance(250 * time.Millisecond))
	reg.Resolve(e.ID, component.CauseHit)
	sched.AdvanceTo(tp.Advance(time.Second))

	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
	if _, ok := reg.Schedule(e.ID, time.Second, func(*component.Entity) {}); ok {
		t.Error("Schedule() on resolved entity = true, want false")
	}
}

func TestLiveIsSortedByID(t *testing.T) {
	_, _, reg, _, _ := newTestRegistry()
	for i := 0; i < 5; i++ {
		reg.Register(newTarget(component.KindStandard, 0))
	}
	live := reg.Live()
	for i := 1; i < len(live); i++ {
		if live[i-1].ID >= live[i].ID {
			t.Fatalf("Live() not sorted at %d", i)
		}
	}
	if reg.CountTargets() != 5 {
		t.Errorf("CountTargets() = %d, want 5", reg.CountTargets())
	}
}

func TestCloseBlocksTelegraphLanding(t *testing.T) {
	tp, sched, reg, rec, _ := newTestRegistry()

	e := newTarget(component.KindStandard, time.Second)
	landed := false
	reg.Telegraph(e, 500*time.Millisecond, func(*component.Entity) { landed = true })
	reg.Close()

	sched.AdvanceTo(tp.Advance(time.Second))
	if landed || reg.IsLive(e.ID) {
		t.Error("telegraphed entity went live after Close")
	}
	if rec.Count(event.EventSpawn) != 0 {
		t.Errorf("spawn events = %d, want 0", rec.Count(event.EventSpawn))
	}
	if reg.Register(newTarget(component.KindStandard, time.Second)) {
		t.Error("Register() after Close = true, want false")
	}
}

package registry

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/status"
)

// Resolution describes how an entity left the live set
type Resolution struct {
	Cause  component.Cause
	Damage float64
}

// HitHandler receives scoring-relevant resolutions
type HitHandler interface {
	// ResolveHit handles hit and contact causes
	ResolveHit(e *component.Entity, res Resolution)
	// ResolveExpiry handles automatic expiry
	ResolveExpiry(e *component.Entity)
}

// Registry is the authoritative set of telegraphing and live entities
// Every entity leaves through Resolve exactly once; timers are owned by the entity
type Registry struct {
	sched   *engine.Scheduler
	emit    event.Emitter
	log     zerolog.Logger
	handler HitHandler

	ids     core.EntityAllocator
	live    map[core.Entity]*component.Entity
	pending map[core.Entity]*component.Entity
	active  bool

	statLive       *atomic.Int64
	statPending    *atomic.Int64
	statRegistered *atomic.Int64
	statResolved   *atomic.Int64
}

// New creates a closed registry; Open admits registrations
func New(sched *engine.Scheduler, emit event.Emitter, statusReg *status.Registry, log zerolog.Logger) *Registry {
	if emit == nil {
		emit = event.Discard{}
	}
	if statusReg == nil {
		statusReg = status.NewRegistry()
	}
	return &Registry{
		sched:          sched,
		emit:           emit,
		log:            log,
		live:           make(map[core.Entity]*component.Entity),
		pending:        make(map[core.Entity]*component.Entity),
		statLive:       statusReg.Ints.Get("registry.live"),
		statPending:    statusReg.Ints.Get("registry.pending"),
		statRegistered: statusReg.Ints.Get("registry.registered"),
		statResolved:   statusReg.Ints.Get("registry.resolved"),
	}
}

// SetHandler wires hit resolution
func (r *Registry) SetHandler(h HitHandler) {
	r.handler = h
}

// Open admits registrations for a new round
func (r *Registry) Open() {
	r.active = true
}

// Close stops admitting registrations; live entities and timers stay until StopAll
func (r *Registry) Close() {
	r.active = false
}

// Active reports whether the round admits registrations
func (r *Registry) Active() bool {
	return r.active
}

// NewID allocates an identity, never reused
func (r *Registry) NewID() core.Entity {
	return r.ids.Next()
}

// Now is the scheduler time
func (r *Registry) Now() time.Time {
	return r.sched.Now()
}

// Telegraph records e as telegraphing and registers it after delay if the round is still active
// onLive runs after a successful registration
func (r *Registry) Telegraph(e *component.Entity, delay time.Duration, onLive func(*component.Entity)) core.Entity {
	if !r.active {
		return core.NoEntity
	}
	if e.ID == core.NoEntity {
		e.ID = r.NewID()
	}
	e.Phase = component.PhaseTelegraphing
	e.SpawnTime = r.sched.Now()
	r.pending[e.ID] = e
	r.statPending.Store(int64(len(r.pending)))

	r.emit.Emit(event.EventTelegraph, &event.SpawnPayload{
		Entity:    e.ID,
		Kind:      e.Kind,
		Position:  e.Position,
		Indicator: e.Zone.Indicator(),
		Cue:       e.Zone.Cue(),
		Delay:     delay,
	})

	id := e.ID
	r.sched.After(engine.EntityOwner(uint64(id)), delay, func() {
		if _, ok := r.pending[id]; !ok {
			return
		}
		delete(r.pending, id)
		r.statPending.Store(int64(len(r.pending)))
		if r.Register(e) && onLive != nil {
			onLive(e)
		}
	})
	return id
}

// Register makes e live and schedules its expiry
// Returns false when the round is closed or the id is already live
func (r *Registry) Register(e *component.Entity) bool {
	if !r.active || e.Phase == component.PhaseResolved {
		return false
	}
	if e.ID == core.NoEntity {
		e.ID = r.NewID()
	}
	if _, dup := r.live[e.ID]; dup {
		return false
	}

	now := r.sched.Now()
	if e.SpawnTime.IsZero() {
		e.SpawnTime = now
	}
	e.Phase = component.PhaseLive
	e.LiveAt = now
	r.live[e.ID] = e

	if e.Lifetime > 0 {
		e.ExpireAt = now.Add(e.Lifetime)
		id := e.ID
		r.sched.After(engine.EntityOwner(uint64(id)), e.Lifetime, func() {
			r.Resolve(id, component.CauseExpired)
		})
	}

	r.statLive.Store(int64(len(r.live)))
	r.statRegistered.Add(1)
	r.emit.Emit(event.EventSpawn, &event.SpawnPayload{
		Entity:    e.ID,
		Kind:      e.Kind,
		Position:  e.Position,
		Indicator: e.Zone.Indicator(),
		Cue:       e.Zone.Cue(),
	})
	r.log.Debug().Stringer("entity", e.ID).Stringer("kind", e.Kind).Msg("registered")
	return true
}

// Resolve is ResolveWith using unit damage
func (r *Registry) Resolve(id core.Entity, cause component.Cause) bool {
	return r.ResolveWith(id, Resolution{Cause: cause, Damage: 1})
}

// ResolveWith removes a live entity, cancels its timers, detaches its resources,
// and forwards scoring causes. Unknown or already resolved ids are a no-op
func (r *Registry) ResolveWith(id core.Entity, res Resolution) bool {
	e, ok := r.live[id]
	if !ok {
		return false
	}

	delete(r.live, id)
	e.Phase = component.PhaseResolved
	r.sched.CancelOwner(engine.EntityOwner(uint64(id)))

	r.statLive.Store(int64(len(r.live)))
	r.statResolved.Add(1)
	r.emit.Emit(event.EventDespawn, &event.DespawnPayload{Entity: id, Kind: e.Kind, Cause: res.Cause})
	r.log.Debug().Stringer("entity", id).Stringer("kind", e.Kind).Stringer("cause", res.Cause).Msg("resolved")

	if r.handler == nil {
		return true
	}
	switch res.Cause {
	case component.CauseHit, component.CauseContact:
		r.handler.ResolveHit(e, res)
	case component.CauseExpired:
		r.handler.ResolveExpiry(e)
	}
	return true
}

// Schedule runs fn after d while id stays live; the timer dies with the entity
func (r *Registry) Schedule(id core.Entity, d time.Duration, fn func(*component.Entity)) (engine.TimerID, bool) {
	if _, ok := r.live[id]; !ok {
		return 0, false
	}
	return r.sched.After(engine.EntityOwner(uint64(id)), d, func() {
		if e, ok := r.live[id]; ok {
			fn(e)
		}
	}), true
}

// Every runs fn each period while id stays live
func (r *Registry) Every(id core.Entity, period time.Duration, fn func(*component.Entity)) (engine.TimerID, bool) {
	if _, ok := r.live[id]; !ok {
		return 0, false
	}
	return r.sched.Every(engine.EntityOwner(uint64(id)), period, func() {
		if e, ok := r.live[id]; ok {
			fn(e)
		}
	}), true
}

// StopAll closes the round: live entities resolve as forced clears without scoring,
// telegraphing entities are dropped, and every pending timer is canceled
func (r *Registry) StopAll() int {
	r.active = false

	n := 0
	for _, e := range r.Live() {
		if r.ResolveWith(e.ID, Resolution{Cause: component.CauseForcedClear}) {
			n++
		}
	}

	for _, id := range sortedIDs(r.pending) {
		e := r.pending[id]
		delete(r.pending, id)
		e.Phase = component.PhaseResolved
		r.emit.Emit(event.EventDespawn, &event.DespawnPayload{Entity: id, Kind: e.Kind, Cause: component.CauseForcedClear})
	}
	r.statPending.Store(0)

	canceled := r.sched.CancelAll()
	r.log.Debug().Int("cleared", n).Int("timers", canceled).Msg("stop all")
	return n
}

// Get returns a live entity
func (r *Registry) Get(id core.Entity) (*component.Entity, bool) {
	e, ok := r.live[id]
	return e, ok
}

// IsLive reports whether id is registered
func (r *Registry) IsLive(id core.Entity) bool {
	_, ok := r.live[id]
	return ok
}

// IsPending reports whether id is telegraphing
func (r *Registry) IsPending(id core.Entity) bool {
	_, ok := r.pending[id]
	return ok
}

// Live returns live entities in id order
func (r *Registry) Live() []*component.Entity {
	ids := sortedIDs(r.live)
	out := make([]*component.Entity, len(ids))
	for i, id := range ids {
		out[i] = r.live[id]
	}
	return out
}

// Pending returns telegraphing entities in id order
func (r *Registry) Pending() []*component.Entity {
	ids := sortedIDs(r.pending)
	out := make([]*component.Entity, len(ids))
	for i, id := range ids {
		out[i] = r.pending[id]
	}
	return out
}

// Each visits live entities in id order; fn may resolve entities
func (r *Registry) Each(fn func(*component.Entity)) {
	for _, e := range r.Live() {
		if e.Phase == component.PhaseLive {
			fn(e)
		}
	}
}

// Count returns live entities of the given kinds, all kinds when none are given
func (r *Registry) Count(kinds ...component.Kind) int {
	return countKinds(r.live, kinds)
}

// Population returns live plus telegraphing entities of the given kinds
func (r *Registry) Population(kinds ...component.Kind) int {
	return countKinds(r.live, kinds) + countKinds(r.pending, kinds)
}

// CountTargets returns live plus telegraphing scoring targets
func (r *Registry) CountTargets() int {
	n := 0
	for _, m := range []map[core.Entity]*component.Entity{r.live, r.pending} {
		for _, e := range m {
			if e.Kind.IsTarget() {
				n++
			}
		}
	}
	return n
}

func countKinds(m map[core.Entity]*component.Entity, kinds []component.Kind) int {
	if len(kinds) == 0 {
		return len(m)
	}
	n := 0
	for _, e := range m {
		for _, k := range kinds {
			if e.Kind == k {
				n++
				break
			}
		}
	}
	return n
}

func sortedIDs(m map[core.Entity]*component.Entity) []core.Entity {
	ids := make([]core.Entity, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

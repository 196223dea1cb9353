package weapon

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
)

// PowerUp names a timed effect
type PowerUp string

const (
	DoublePoints PowerUp = "doublePoints"
	TimeFreeze   PowerUp = "timeFreeze"
	MultiShot    PowerUp = "multiShot"
	Shield       PowerUp = "shield"
)

// PowerUpKinds is the random activation pool, in a fixed order for seeded draws
var PowerUpKinds = []PowerUp{DoublePoints, TimeFreeze, MultiShot, Shield}

var powerUpDurations = map[PowerUp]time.Duration{
	DoublePoints: 10 * time.Second,
	TimeFreeze:   5 * time.Second,
	MultiShot:    10 * time.Second,
	Shield:       15 * time.Second,
}

// DoublePointsMultiplier scales awards while DoublePoints is active
const DoublePointsMultiplier = 2.0

// DurationOf returns how long a power-up lasts
func DurationOf(p PowerUp) time.Duration {
	return powerUpDurations[p]
}

// PowerUps tracks active timed effects on the round scheduler
type PowerUps struct {
	sched     *engine.Scheduler
	emit      event.Emitter
	active    map[PowerUp]time.Time
	timers    map[PowerUp]engine.TimerID
	listeners []func(p PowerUp, active bool)
}

// NewPowerUps creates an empty power-up state
func NewPowerUps(sched *engine.Scheduler, emit event.Emitter) *PowerUps {
	if emit == nil {
		emit = event.Discard{}
	}
	return &PowerUps{
		sched:  sched,
		emit:   emit,
		active: make(map[PowerUp]time.Time),
		timers: make(map[PowerUp]engine.TimerID),
	}
}

// Listen registers a transition callback, invoked after notifications
func (p *PowerUps) Listen(fn func(p PowerUp, active bool)) {
	p.listeners = append(p.listeners, fn)
}

func owner(pu PowerUp) engine.Owner {
	for i, k := range PowerUpKinds {
		if k == pu {
			return engine.Owner{Kind: engine.OwnerPowerUp, ID: uint64(i)}
		}
	}
	return engine.Owner{Kind: engine.OwnerPowerUp, ID: uint64(len(PowerUpKinds))}
}

// Activate starts pu, or restarts its timer if already active
// Unknown power-ups are ignored
func (p *PowerUps) Activate(pu PowerUp) bool {
	d, ok := powerUpDurations[pu]
	if !ok {
		return false
	}

	if id, running := p.timers[pu]; running {
		p.sched.Cancel(id)
	}
	p.active[pu] = p.sched.Now().Add(d)
	p.timers[pu] = p.sched.After(owner(pu), d, func() { p.deactivate(pu) })

	p.emit.Emit(event.EventPowerUpActivate, &event.PowerUpPayload{Kind: string(pu), Duration: d})
	for _, fn := range p.listeners {
		fn(pu, true)
	}
	return true
}

// ActivateRandom activates a uniformly drawn power-up
func (p *PowerUps) ActivateRandom(rng *rand.Rand) PowerUp {
	pu := PowerUpKinds[rng.Intn(len(PowerUpKinds))]
	p.Activate(pu)
	return pu
}

func (p *PowerUps) deactivate(pu PowerUp) {
	if _, ok := p.active[pu]; !ok {
		return
	}
	delete(p.active, pu)
	if id, ok := p.timers[pu]; ok {
		p.sched.Cancel(id)
		delete(p.timers, pu)
	}

	p.emit.Emit(event.EventPowerUpDeactivate, &event.PowerUpPayload{Kind: string(pu)})
	for _, fn := range p.listeners {
		fn(pu, false)
	}
}

// IsActive reports whether pu is running
func (p *PowerUps) IsActive(pu PowerUp) bool {
	_, ok := p.active[pu]
	return ok
}

// Remaining returns time left on pu
func (p *PowerUps) Remaining(pu PowerUp) time.Duration {
	exp, ok := p.active[pu]
	if !ok {
		return 0
	}
	if d := exp.Sub(p.sched.Now()); d > 0 {
		return d
	}
	return 0
}

// Active lists running power-ups in name order
func (p *PowerUps) Active() []PowerUp {
	out := make([]PowerUp, 0, len(p.active))
	for pu := range p.active {
		out = append(out, pu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Multiplier is the point factor contributed by active power-ups
func (p *PowerUps) Multiplier() float64 {
	if p.IsActive(DoublePoints) {
		return DoublePointsMultiplier
	}
	return 1
}

// ConsumeShield spends an active shield, reporting whether one absorbed the hit
func (p *PowerUps) ConsumeShield() bool {
	if !p.IsActive(Shield) {
		return false
	}
	p.deactivate(Shield)
	return true
}

// Reset drops every effect and its timer without notifications
func (p *PowerUps) Reset() {
	p.sched.CancelKind(engine.OwnerPowerUp)
	p.active = make(map[PowerUp]time.Time)
	p.timers = make(map[PowerUp]engine.TimerID)
}

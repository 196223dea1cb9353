package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/vmath"
)

var hazardOwner = engine.Owner{Kind: engine.OwnerHazard}

// Hazards runs the auxiliary spawners, each with its own cap and interval
// Caps count live and telegraphing entities
type Hazards struct {
	d      Deps
	run    *RunState
	combat *Combat

	start          time.Time
	lastProjectile time.Time
	lastZone       time.Time
	lastScare      time.Time
	lastLaser      time.Time
	lastMultiplier time.Time
	scareInterval  time.Duration

	statSpawned *atomic.Int64
}

// NewHazards creates the auxiliary spawners; zone damage goes through combat
func NewHazards(d Deps, run *RunState, combat *Combat) *Hazards {
	d = d.withDefaults()
	return &Hazards{
		d:           d,
		run:         run,
		combat:      combat,
		statSpawned: d.Status.Ints.Get("hazard.spawned"),
	}
}

// Begin anchors the intervals at round start and arms the spawner timers
func (h *Hazards) Begin() {
	now := h.d.Sched.Now()
	h.start = now
	h.lastProjectile = time.Time{}
	h.lastZone = now
	h.lastScare = now
	h.lastLaser = now
	h.lastMultiplier = now
	h.scareInterval = h.nextScareInterval()

	chargerEvery := parameter.ChargerInterval
	if h.run.Config().BossMode {
		chargerEvery = parameter.ChargerBossInterval
	}
	h.d.Sched.Every(hazardOwner, chargerEvery, func() { h.TrySpawnCharger() })
	h.d.Sched.Every(hazardOwner, parameter.HazardCheckInterval, h.check)
}

func (h *Hazards) check() {
	if !h.run.Running() {
		return
	}
	h.TrySpawnDangerZone()
	h.TryLaunchScareBall()
	h.TryLaunchLaser()
	h.TrySpawnMultiplierZone()
}

func (h *Hazards) full(kind component.Kind, limit int) bool {
	return h.d.Registry.Population(kind) >= limit
}

func (h *Hazards) telegraph(e *component.Entity, delay time.Duration, onLive func(*component.Entity)) bool {
	if h.d.Registry.Telegraph(e, delay, onLive) == core.NoEntity {
		return false
	}
	h.statSpawned.Add(1)
	return true
}

// TrySpawnCharger places a ground charger behind the player
func (h *Hazards) TrySpawnCharger() bool {
	if !h.run.Running() || h.full(component.KindCharger, parameter.ChargerCap) {
		return false
	}
	pos := ChargerPlacement(h.d.Rng, h.d.poseOrDefault())
	e := &component.Entity{
		Kind:     component.KindCharger,
		Pattern:  component.PatternPursuit,
		Position: pos,
		Origin:   pos,
		HP:       1,
		MaxHP:    1,
		Radius:   parameter.ChargerRadius,
		Scale:    1,
		Points:   parameter.ChargerPoints,
		Speed:    parameter.ChargerSpeed,
		Lifetime: parameter.ChargerTimeout,
		Visible:  true,
	}
	return h.telegraph(e, parameter.ChargerTelegraph, nil)
}

// TrySpawnDangerZone drops a damage-over-time area on the floor
func (h *Hazards) TrySpawnDangerZone() bool {
	now := h.d.Sched.Now()
	interval := parameter.DangerZoneInterval
	if h.run.Config().BossMode {
		interval = parameter.DangerZoneBossInterval
	}
	if !h.run.Running() || now.Sub(h.lastZone) < interval || h.full(component.KindDangerZone, parameter.DangerZoneCap) {
		return false
	}
	h.lastZone = now

	pos := groundPoint(h.d.Rng, parameter.DangerZoneExtent)
	e := &component.Entity{
		Kind:     component.KindDangerZone,
		Position: pos,
		Origin:   pos,
		Radius:   randRange(h.d.Rng, parameter.DangerZoneMinRadius, parameter.DangerZoneMaxRadius),
		Scale:    1,
		Lifetime: parameter.DangerZoneActive,
		Visible:  true,
	}
	return h.telegraph(e, parameter.DangerZoneTelegraph, func(e *component.Entity) {
		h.d.Registry.Every(e.ID, parameter.DangerZoneTick, h.zoneTick)
	})
}

// zoneTick damages a player standing inside the zone, at most once per cooldown
func (h *Hazards) zoneTick(e *component.Entity) {
	pose, ok := h.d.Pose.Pose()
	if !ok || !h.run.Running() {
		return
	}
	now := h.d.Sched.Now()
	if vmath.V3FDistXZ(pose.Head, e.Position) >= e.Radius {
		return
	}
	if !e.Hazard.LastDamage.IsZero() && now.Sub(e.Hazard.LastDamage) < parameter.DangerZoneCooldown {
		return
	}
	e.Hazard.LastDamage = now
	h.combat.damagePlayer(e)
}

func (h *Hazards) nextScareInterval() time.Duration {
	lo, hi := parameter.ScareBallMinInterval, parameter.ScareBallMaxInterval
	if h.run.Combo() >= parameter.ScareBallHotCombo {
		lo, hi = parameter.ScareBallHotMin, parameter.ScareBallHotMax
	}
	return lo + time.Duration(h.d.Rng.Int63n(int64(hi-lo)+1))
}

// TryLaunchScareBall throws a fast ball at the player's face from an arena edge
func (h *Hazards) TryLaunchScareBall() bool {
	now := h.d.Sched.Now()
	if !h.run.Running() || now.Sub(h.start) < parameter.ScareBallGrace {
		return false
	}
	if now.Sub(h.lastScare) < h.scareInterval || h.full(component.KindScareBall, parameter.ScareBallCap) {
		return false
	}
	h.lastScare = now
	h.scareInterval = h.nextScareInterval()

	pose := h.d.poseOrDefault()
	origin := ScareBallOrigin(h.d.Rng, pose)
	face := vmath.V3FAdd(pose.Head, vmath.Vec3F{Y: parameter.ScareBallFaceOffset})
	e := &component.Entity{
		Kind:     component.KindScareBall,
		Pattern:  component.PatternBallistic,
		Position: origin,
		Origin:   origin,
		Radius:   randRange(h.d.Rng, parameter.ScareBallMinRadius, parameter.ScareBallMaxRadius),
		Scale:    1,
		Lifetime: parameter.ScareBallTimeout,
		Visible:  true,
		Hazard: component.Hazard{
			LaunchHead: pose.Head,
			Direction:  vmath.V3FNormalize(vmath.V3FSub(face, origin)),
			Speed:      randRange(h.d.Rng, parameter.ScareBallMinSpeed, parameter.ScareBallMaxSpeed),
		},
	}
	return h.telegraph(e, parameter.ScareBallTelegraph, nil)
}

// LaserInterval is the minimum gap between sweeps, shrinking with wave
func LaserInterval(wave int, boss bool) time.Duration {
	if boss {
		return parameter.LaserBossInterval
	}
	return parameter.LaserBaseInterval - time.Duration(min(wave, parameter.LaserWaveCap))*parameter.LaserWaveStep
}

// TryLaunchLaser sweeps a beam across the arena at head or body height
func (h *Hazards) TryLaunchLaser() bool {
	now := h.d.Sched.Now()
	if !h.run.Running() || now.Sub(h.start) < parameter.LaserGrace {
		return false
	}
	if now.Sub(h.lastLaser) < LaserInterval(h.run.Wave(), h.run.Config().BossMode) ||
		h.full(component.KindLaserSweep, parameter.LaserCap) {
		return false
	}
	h.lastLaser = now

	head := h.d.Rng.Float64() < 0.5
	y := randRange(h.d.Rng, parameter.LaserBodyMinY, parameter.LaserBodyMaxY)
	if head {
		y = randRange(h.d.Rng, parameter.LaserHeadMinY, parameter.LaserHeadMaxY)
	}
	sweep := parameter.LaserMinDuration +
		time.Duration(h.d.Rng.Int63n(int64(parameter.LaserMaxDuration-parameter.LaserMinDuration)+1))
	pos := vmath.Vec3F{X: parameter.LaserStartX, Y: y}
	e := &component.Entity{
		Kind:     component.KindLaserSweep,
		Pattern:  component.PatternSweep,
		Position: pos,
		Origin:   pos,
		Scale:    1,
		Lifetime: sweep + parameter.LaserLinger,
		Visible:  true,
		Hazard: component.Hazard{
			LaserY:    y,
			HeadLaser: head,
			Sweep:     sweep,
		},
	}
	return h.telegraph(e, parameter.LaserTelegraph, nil)
}

// TrySpawnMultiplierZone places a static score multiplier area once unlocked
func (h *Hazards) TrySpawnMultiplierZone() bool {
	now := h.d.Sched.Now()
	if !h.run.Running() || h.run.Wave() < parameter.MultiplierZoneUnlockWave {
		return false
	}
	if now.Sub(h.lastMultiplier) < parameter.MultiplierZoneInterval ||
		h.full(component.KindMultiplierZone, parameter.MultiplierZoneCap) {
		return false
	}
	h.lastMultiplier = now

	pos := groundPoint(h.d.Rng, parameter.MultiplierZoneExtent)
	e := &component.Entity{
		Kind:     component.KindMultiplierZone,
		Position: pos,
		Origin:   pos,
		Radius:   parameter.MultiplierZoneRadius,
		Scale:    1,
		Lifetime: parameter.MultiplierZoneLifetime,
		Visible:  true,
		Hazard:   component.Hazard{Multiplier: parameter.MultiplierZoneFactor},
	}
	return h.telegraph(e, parameter.MultiplierZoneTelegraph, nil)
}

// TryProjectile charges a shot from a live heavy target, or any target in boss mode
func (h *Hazards) TryProjectile() bool {
	now := h.d.Sched.Now()
	if !h.run.Running() || h.full(component.KindProjectile, parameter.ProjectileCap) {
		return false
	}
	if !h.lastProjectile.IsZero() && now.Sub(h.lastProjectile) < parameter.ProjectileMinGap {
		return false
	}

	boss := h.run.Config().BossMode
	var source *component.Entity
	for _, e := range h.d.Registry.Live() {
		if e.Kind == component.KindHeavy || (boss && e.Kind.IsTarget()) {
			source = e
			break
		}
	}
	if source == nil {
		return false
	}
	h.lastProjectile = now

	h.d.Emit.Emit(event.EventTelegraph, &event.SpawnPayload{
		Entity:    source.ID,
		Kind:      component.KindProjectile,
		Position:  source.Position,
		Indicator: "charge",
		Cue:       "charge",
		Delay:     parameter.ProjectileChargeTime,
	})
	// The charge dies with its source
	_, ok := h.d.Registry.Schedule(source.ID, parameter.ProjectileChargeTime, h.launchProjectile)
	return ok
}

func (h *Hazards) launchProjectile(source *component.Entity) {
	if !h.run.Running() {
		return
	}
	pose := h.d.poseOrDefault()
	origin := source.Position
	e := &component.Entity{
		Kind:     component.KindProjectile,
		Pattern:  component.PatternBallistic,
		Position: origin,
		Origin:   origin,
		Radius:   parameter.ProjectileRadius,
		Scale:    1,
		Points:   parameter.ProjectilePoints,
		Lifetime: parameter.ProjectileTimeout,
		Visible:  true,
		Hazard: component.Hazard{
			LaunchHead: pose.Head,
			Direction:  vmath.V3FNormalize(vmath.V3FSub(pose.Head, origin)),
			Speed:      parameter.ProjectileSpeed,
			Source:     source.ID,
		},
	}
	if h.d.Registry.Register(e) {
		h.statSpawned.Add(1)
	}
}

package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/vmath"
)

var spawnerOwner = engine.Owner{Kind: engine.OwnerSpawner}

// SpawnRequest overrides the defaults of one spawn; zero fields use the kind table
type SpawnRequest struct {
	Kind      component.Kind
	Position  vmath.Vec3F
	Placed    bool // Position is authoritative
	Zone      component.HeightZone
	Points    int
	RadiusMul float64
	Pattern   component.Pattern
	Patterned bool // Pattern is authoritative
}

// Spawner decides which target to create next, where, and when
type Spawner struct {
	d       Deps
	run     *RunState
	combat  *Combat
	hazards *Hazards

	statSpawned  *atomic.Int64
	statInterval *atomic.Int64
	statWave     *atomic.Int64
}

// NewSpawner wires the spawn policy; combat receives boss registrations and wave rolls
func NewSpawner(d Deps, run *RunState, combat *Combat, hazards *Hazards) *Spawner {
	d = d.withDefaults()
	s := &Spawner{
		d:            d,
		run:          run,
		combat:       combat,
		hazards:      hazards,
		statSpawned:  d.Status.Ints.Get("spawn.spawned"),
		statInterval: d.Status.Ints.Get("spawn.interval_ms"),
		statWave:     d.Status.Ints.Get("spawn.wave_events"),
	}
	combat.onWave = s.RollWaveEvent
	return s
}

// Begin issues the staggered opening spawns and arms the spawn tick
func (s *Spawner) Begin() {
	for i := 0; i < parameter.InitialSpawnCount; i++ {
		s.d.Sched.After(spawnerOwner, time.Duration(i)*parameter.InitialSpawnStagger, func() {
			s.spawnDefault()
		})
	}
	s.arm()
}

func (s *Spawner) arm() {
	interval := s.EffectiveInterval()
	s.statInterval.Store(interval.Milliseconds())
	s.d.Sched.After(spawnerOwner, interval, s.Tick)
}

// Tick spawns one default target if allowed and re-arms with the current interval
func (s *Spawner) Tick() {
	if !s.run.Running() {
		return
	}
	s.arm()
	s.spawnDefault()
	if s.hazards != nil {
		s.hazards.TryProjectile()
	}
}

// spawnDefault applies the pause, reflex and cap gates before a pool spawn
func (s *Spawner) spawnDefault() bool {
	if !s.run.Running() || s.run.SpawnPaused() {
		return false
	}
	cfg := s.run.Config()
	n := s.d.Registry.CountTargets()
	if cfg.ReflexMode && n > 0 {
		return false
	}
	if n >= s.EffectiveMaxTargets() {
		return false
	}

	kind := s.PickKind()
	if kind == component.KindStandard && !cfg.BossMode && !cfg.ReflexMode &&
		s.d.Rng.Float64() < parameter.MeleeChance {
		kind = component.KindMelee
	}
	return s.Spawn(SpawnRequest{Kind: kind}) != core.NoEntity
}

// ScaleFactor is the wave difficulty factor in [0, 1]
func ScaleFactor(wave int) float64 {
	if wave < 0 {
		wave = 0
	}
	return float64(min(wave, parameter.WaveScaleCeiling)) / parameter.WaveScaleCeiling
}

// EffectiveInterval is the mode interval scaled by wave, floored
func (s *Spawner) EffectiveInterval() time.Duration {
	f := ScaleFactor(s.run.Wave())
	d := time.Duration(float64(s.run.Config().SpawnInterval) * (1 - parameter.WaveIntervalReduction*f))
	return max(d, parameter.MinSpawnInterval)
}

// EffectiveMaxTargets is the mode cap plus the wave bonus
func (s *Spawner) EffectiveMaxTargets() int {
	cfg := s.run.Config()
	if cfg.ReflexMode {
		return 1
	}
	return cfg.MaxTargets + int(math.Floor(parameter.WaveExtraTargets*ScaleFactor(s.run.Wave())))
}

// EffectiveLifetime is the default target lifetime for the current wave
// Reflex mode shortens it per reflex hit instead of per wave
func (s *Spawner) EffectiveLifetime() time.Duration {
	cfg := s.run.Config()
	mul := cfg.Modifiers.LifetimeMul
	if mul <= 0 {
		mul = 1
	}
	if cfg.ReflexMode {
		d := cfg.TargetLifetime - time.Duration(s.run.ReflexHits())*parameter.ReflexLifetimeStep
		return max(time.Duration(float64(max(d, parameter.ReflexMinLifetime))*mul), parameter.MinTargetLifetime)
	}
	f := ScaleFactor(s.run.Wave())
	d := time.Duration(float64(cfg.TargetLifetime) * (1 - parameter.WaveLifetimeReduction*f) * mul)
	return max(d, parameter.MinTargetLifetime)
}

// PickKind draws a target kind from the weighted pool
func (s *Spawner) PickKind() component.Kind {
	cfg := s.run.Config()
	switch {
	case cfg.BossMode:
		return component.KindHeavy
	case cfg.ReflexMode:
		return component.KindStandard
	}
	if k, ok := cfg.Modifiers.ForcedKind(); ok {
		return k
	}

	wave := s.run.Wave()
	weights := make([]float64, len(component.SpawnableKinds))
	total := 0.0
	for i, k := range component.SpawnableKinds {
		st := component.StatsOf(k)
		if wave < st.UnlockWave {
			continue
		}
		weights[i] = st.Weight * cfg.Modifiers.Weight(k)
		total += weights[i]
	}
	if total <= 0 {
		return component.KindStandard
	}

	r := s.d.Rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return component.SpawnableKinds[i]
		}
		r -= w
	}
	return component.KindStandard
}

// Spawn builds a target and telegraphs it; returns NoEntity when the round is closed
func (s *Spawner) Spawn(req SpawnRequest) core.Entity {
	if !s.run.Running() {
		return core.NoEntity
	}
	e := s.build(req)
	delay := parameter.TelegraphDelay
	if e.Kind == component.KindMelee {
		delay = 0
	}
	id := s.d.Registry.Telegraph(e, delay, s.onLive)
	if id != core.NoEntity {
		s.statSpawned.Add(1)
	}
	return id
}

func (s *Spawner) build(req SpawnRequest) *component.Entity {
	cfg := s.run.Config()
	mods := cfg.Modifiers.WithDefaults()
	st := component.StatsOf(req.Kind)
	rng := s.d.Rng

	radiusMul := mods.RadiusMul
	if req.RadiusMul > 0 {
		radiusMul *= req.RadiusMul
	}
	points := st.Points
	if req.Points != 0 {
		points = req.Points
	}

	e := &component.Entity{
		ID:      s.d.Registry.NewID(),
		Kind:    req.Kind,
		HP:      st.HP,
		MaxHP:   st.HP,
		Radius:  st.Radius * radiusMul,
		Scale:   1,
		Points:  int(math.Round(float64(points) * mods.PointsMul)),
		Coins:   st.Coins,
		Speed:   st.Speed,
		Seed:    rng.Float64() * 2 * math.Pi,
		Visible: true,
	}

	if st.Lifetime > 0 {
		e.Lifetime = st.Lifetime
	} else {
		e.Lifetime = s.EffectiveLifetime()
	}

	if cfg.BossMode && req.Kind == component.KindHeavy {
		e.HP = st.HP + s.run.Wave()/parameter.BossHPWaveDivisor
		e.MaxHP = e.HP
		e.Scale = math.Min(1+parameter.BossScalePerWave*float64(s.run.BossWave()), parameter.BossMaxScale)
		e.Boss = true
	}
	if req.Kind == component.KindColorMatch {
		e.Color = component.Palette[rng.Intn(len(component.Palette))]
	}
	if s.run.RhythmActive() && req.Kind != component.KindDecoy {
		e.Rhythm = true
		e.BeatSpawnTime = s.d.Sched.Now()
	}

	pose := s.d.poseOrDefault()
	switch {
	case req.Placed:
		e.Position, e.Zone = req.Position, req.Zone
	case req.Kind == component.KindMelee:
		e.Position = MeleePlacement(rng, pose)
	case req.Kind == component.KindPeripheral:
		e.Position = PeripheralPlacement(rng, pose)
	default:
		e.Position, e.Zone = DefaultPlacement(rng, pose)
	}
	e.Origin = e.Position

	switch {
	case req.Patterned:
		e.Pattern = req.Pattern
	case req.Kind == component.KindMelee, req.Kind == component.KindPeripheral:
		e.Pattern = component.PatternFloat
	default:
		e.Pattern = PickPattern(rng, req.Kind, s.run.Wave())
	}
	if e.Pattern == component.PatternZigzag {
		// Lateral axis relative to the player
		toPlayer := vmath.V3FSub(pose.Head, e.Origin)
		toPlayer.Y = 0
		e.Velocity = vmath.V3FRotateY(vmath.V3FNormalize(toPlayer), math.Pi/2)
	}
	return e
}

// onLive attaches per-kind behavior once a target becomes hittable
func (s *Spawner) onLive(e *component.Entity) {
	if e.Boss {
		s.combat.trackBoss(e)
	}
	if e.Kind == component.KindBlink {
		s.scheduleBlink(e.ID, parameter.BlinkVisible)
	}
	if e.Pattern == component.PatternTeleport {
		s.d.Registry.Every(e.ID, parameter.TeleportEvery*time.Millisecond, s.teleport)
	}
}

// scheduleBlink alternates visibility on entity-owned timers
func (s *Spawner) scheduleBlink(id core.Entity, after time.Duration) {
	s.d.Registry.Schedule(id, after, func(e *component.Entity) {
		e.Visible = !e.Visible
		next := parameter.BlinkHidden
		if e.Visible {
			next = parameter.BlinkVisible
		}
		s.scheduleBlink(e.ID, next)
	})
}

func (s *Spawner) teleport(e *component.Entity) {
	r := parameter.TeleportRange
	e.Position = vmath.Vec3F{
		X: vmath.Clamp(e.Origin.X+randRange(s.d.Rng, -r, r), -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent),
		Y: e.Origin.Y,
		Z: vmath.Clamp(e.Origin.Z+randRange(s.d.Rng, -r, r), -parameter.ArenaHalfExtent, parameter.ArenaHalfExtent),
	}
}

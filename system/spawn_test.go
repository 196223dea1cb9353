package system

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/vmath"
)

func near(got, want time.Duration) bool {
	d := got - want
	return d > -time.Millisecond && d < time.Millisecond
}

func TestWaveScaling(t *testing.T) {
	f := newFixture(20).bare(modeConfig("timeAttack"))

	tests := []struct {
		wave     int
		interval time.Duration
		max      int
		lifetime time.Duration
	}{
		{0, 1500 * time.Millisecond, 8, 5 * time.Second},
		{20, 1200 * time.Millisecond, 10, 4 * time.Second},
		{40, 900 * time.Millisecond, 12, 3 * time.Second},
		{100, 900 * time.Millisecond, 12, 3 * time.Second},
	}
	for _, tt := range tests {
		f.enc.Run.wave = tt.wave
		if got := f.enc.Spawner.EffectiveInterval(); !near(got, tt.interval) {
			t.Errorf("wave %d interval = %v, want %v", tt.wave, got, tt.interval)
		}
		if got := f.enc.Spawner.EffectiveMaxTargets(); got != tt.max {
			t.Errorf("wave %d max targets = %d, want %d", tt.wave, got, tt.max)
		}
		if got := f.enc.Spawner.EffectiveLifetime(); !near(got, tt.lifetime) {
			t.Errorf("wave %d lifetime = %v, want %v", tt.wave, got, tt.lifetime)
		}
	}
}

func TestScalingMonotonic(t *testing.T) {
	f := newFixture(21).bare(modeConfig("survival"))
	prevInterval, prevLifetime, prevMax := time.Duration(math.MaxInt64), time.Duration(math.MaxInt64), 0
	for w := 0; w <= 60; w++ {
		f.enc.Run.wave = w
		iv, lt, mx := f.enc.Spawner.EffectiveInterval(), f.enc.Spawner.EffectiveLifetime(), f.enc.Spawner.EffectiveMaxTargets()
		if iv > prevInterval || lt > prevLifetime || mx < prevMax {
			t.Fatalf("wave %d not monotonic: %v %v %d", w, iv, lt, mx)
		}
		if iv < parameter.MinSpawnInterval || lt < parameter.MinTargetLifetime {
			t.Fatalf("wave %d below floor: %v %v", w, iv, lt)
		}
		prevInterval, prevLifetime, prevMax = iv, lt, mx
	}
}

func TestReflexLifetimeShrinks(t *testing.T) {
	f := newFixture(22).bare(modeConfig("reflexRush"))
	if got := f.enc.Spawner.EffectiveLifetime(); got != 2*time.Second {
		t.Errorf("lifetime = %v, want 2s", got)
	}
	f.enc.Run.reflexHits = 10
	if got := f.enc.Spawner.EffectiveLifetime(); got != 1500*time.Millisecond {
		t.Errorf("lifetime after 10 hits = %v, want 1.5s", got)
	}
	f.enc.Run.reflexHits = 1000
	if got := f.enc.Spawner.EffectiveLifetime(); got < parameter.MinTargetLifetime {
		t.Errorf("lifetime = %v, below floor", got)
	}
	if f.enc.Spawner.EffectiveMaxTargets() != 1 {
		t.Errorf("reflex max targets = %d, want 1", f.enc.Spawner.EffectiveMaxTargets())
	}
}

func TestPickKindModes(t *testing.T) {
	tests := []struct {
		mode string
		want component.Kind
	}{
		{"bossRush", component.KindHeavy},
		{"reflexRush", component.KindStandard},
	}
	for _, tt := range tests {
		f := newFixture(23).bare(modeConfig(tt.mode))
		for i := 0; i < 20; i++ {
			if got := f.enc.Spawner.PickKind(); got != tt.want {
				t.Fatalf("%s PickKind() = %v, want %v", tt.mode, got, tt.want)
			}
		}
	}
}

func TestPickKindRespectsUnlock(t *testing.T) {
	f := newFixture(24).bare(modeConfig("timeAttack"))
	for i := 0; i < 500; i++ {
		k := f.enc.Spawner.PickKind()
		if component.StatsOf(k).UnlockWave > 0 {
			t.Fatalf("PickKind() at wave 0 = %v, unlocks at wave %d", k, component.StatsOf(k).UnlockWave)
		}
	}
}

func TestPickPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	for i := 0; i < 200; i++ {
		if p := PickPattern(rng, component.KindStandard, 0); p != component.PatternFloat {
			t.Fatalf("standard at wave 0 = %v, want float", p)
		}
		if p := PickPattern(rng, component.KindSpeed, 0); p != component.PatternZigzag {
			t.Fatalf("speed at wave 0 = %v, want zigzag", p)
		}
		if p := PickPattern(rng, component.KindHeavy, 30); p == component.PatternTeleport {
			t.Fatal("heavy picked teleport")
		}
		if p := PickPattern(rng, component.KindSpeed, 30); p == component.PatternFloat {
			t.Fatal("speed picked float")
		}
	}
}

func TestPlacementBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(26))
	pose := component.DefaultPose()
	inArena := func(p vmath.Vec3F) bool {
		return math.Abs(p.X) <= parameter.ArenaHalfExtent && math.Abs(p.Z) <= parameter.ArenaHalfExtent
	}

	for i := 0; i < 500; i++ {
		p, zone := DefaultPlacement(rng, pose)
		if !inArena(p) || p.Y < parameter.FloorMinY || p.Y > parameter.OverheadMaxY {
			t.Fatalf("default placement %v (%v) out of bounds", p, zone)
		}
		if d := vmath.V3FDistXZ(p, pose.Head); d < parameter.SpawnMinDistance-1e-9 {
			t.Fatalf("default placement %v too close: %v", p, d)
		}

		m := MeleePlacement(rng, pose)
		if d := vmath.V3FDistXZ(m, pose.Head); d < parameter.MeleeMinDistance-1e-9 || d > parameter.MeleeMaxDistance+1e-9 {
			t.Fatalf("melee distance = %v", d)
		}
		if m.Z >= 0 {
			t.Fatalf("melee placement %v not in front", m)
		}

		c := ChargerPlacement(rng, pose)
		if c.Z <= 0 || !inArena(c) {
			t.Fatalf("charger placement %v not behind", c)
		}

		s := ScareBallOrigin(rng, pose)
		if math.Abs(s.X) != parameter.ScareBallEdge && math.Abs(s.Z) != parameter.ScareBallEdge {
			t.Fatalf("scare ball origin %v not on an edge", s)
		}
	}
}

func TestChargerCap(t *testing.T) {
	f := newFixture(27).bare(modeConfig("zen"))
	spawned := 0
	for i := 0; i < 5; i++ {
		if f.enc.Hazards.TrySpawnCharger() {
			spawned++
		}
	}
	if spawned != parameter.ChargerCap {
		t.Errorf("chargers = %d, want %d", spawned, parameter.ChargerCap)
	}
}

func TestRoundRespectsCaps(t *testing.T) {
	f := newFixture(28).full(modeConfig("zen"))
	caps := []struct {
		kind  component.Kind
		limit int
	}{
		{component.KindCharger, parameter.ChargerCap},
		{component.KindProjectile, parameter.ProjectileCap},
		{component.KindScareBall, parameter.ScareBallCap},
		{component.KindLaserSweep, parameter.LaserCap},
		{component.KindDangerZone, parameter.DangerZoneCap},
	}

	for step := 0; step < 1200; step++ {
		f.advance(100 * time.Millisecond)
		if n := f.reg.CountTargets(); n > f.enc.Spawner.EffectiveMaxTargets() {
			t.Fatalf("step %d: %d targets above cap", step, n)
		}
		for _, c := range caps {
			if n := f.reg.Population(c.kind); n > c.limit {
				t.Fatalf("step %d: %d of %v above cap %d", step, n, c.kind, c.limit)
			}
		}
	}
	if f.rec.Count(event.EventSpawn) == 0 {
		t.Error("nothing spawned in two minutes")
	}
}

func TestReflexOneTargetAtATime(t *testing.T) {
	f := newFixture(29).full(modeConfig("reflexRush"))
	for step := 0; step < 600 && !f.enc.Run.Over(); step++ {
		f.advance(50 * time.Millisecond)
		if n := f.reg.CountTargets(); n > 1 {
			t.Fatalf("step %d: %d targets in reflex mode", step, n)
		}
	}
	if !f.enc.Run.Over() {
		t.Error("unattended reflex round did not run out of lives")
	}
}

func TestEndStopsEverything(t *testing.T) {
	f := newFixture(30).full(modeConfig("timeAttack"))
	f.advance(5 * time.Second)
	f.enc.End()

	score := f.tracker.Score()
	spawns := f.rec.Count(event.EventSpawn)
	f.advance(60 * time.Second)

	if f.sched.Pending() != 0 {
		t.Errorf("Pending() = %d after End, want 0", f.sched.Pending())
	}
	if len(f.reg.Live()) != 0 || len(f.reg.Pending()) != 0 {
		t.Errorf("live=%d pending=%d after End", len(f.reg.Live()), len(f.reg.Pending()))
	}
	if f.tracker.Score() != score || f.rec.Count(event.EventSpawn) != spawns {
		t.Error("round kept running after End")
	}
}

func TestWaveEventBurst(t *testing.T) {
	tests := []struct {
		ev    WaveEvent
		kind  component.Kind
		count int
	}{
		{WaveSwarm, component.KindSpeed, 5},
		{WaveSniper, component.KindStandard, 3},
		{WaveBonusRain, component.KindBonus, 4},
		{WaveShieldWall, component.KindHeavy, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev), func(t *testing.T) {
			f := newFixture(31).bare(modeConfig("zen"))
			f.enc.Spawner.TriggerWaveEvent(tt.ev, 5)
			f.advance(time.Second)
			if n := f.reg.Population(tt.kind); n != tt.count {
				t.Errorf("population = %d, want %d", n, tt.count)
			}
		})
	}
}

func TestWaveEventDue(t *testing.T) {
	for w, want := range map[int]bool{0: false, 4: false, 5: true, 6: false, 10: true, 15: true} {
		if got := WaveEventDue(w); got != want {
			t.Errorf("WaveEventDue(%d) = %v, want %v", w, got, want)
		}
	}
}

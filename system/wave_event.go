package system

import (
	"math"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/parameter"
)

// WaveEvent names a themed burst spawn
type WaveEvent string

const (
	WaveSwarm      WaveEvent = "swarm"
	WaveSniper     WaveEvent = "sniper"
	WaveBonusRain  WaveEvent = "bonusRain"
	WaveShieldWall WaveEvent = "shieldWall"
)

// WaveEvents is the roll table, in a fixed order for seeded draws
var WaveEvents = []WaveEvent{WaveSwarm, WaveSniper, WaveBonusRain, WaveShieldWall}

// WaveEventDue reports whether wave qualifies for a roll
func WaveEventDue(wave int) bool {
	return wave > parameter.WaveEventMinWave && wave%parameter.WaveEventEvery == 0
}

// RollWaveEvent rolls for a themed burst after a wave increment
func (s *Spawner) RollWaveEvent(wave int) (WaveEvent, bool) {
	cfg := s.run.Config()
	if !s.run.Running() || cfg.BossMode || cfg.ReflexMode || !WaveEventDue(wave) {
		return "", false
	}
	if s.d.Rng.Float64() >= parameter.WaveEventChance {
		return "", false
	}
	ev := WaveEvents[s.d.Rng.Intn(len(WaveEvents))]
	s.TriggerWaveEvent(ev, wave)
	return ev, true
}

// TriggerWaveEvent announces ev and bursts it after the announcement delay
func (s *Spawner) TriggerWaveEvent(ev WaveEvent, wave int) {
	s.statWave.Add(1)
	s.d.Emit.Emit(event.EventWaveEvent, &event.WaveEventPayload{
		Name:  string(ev),
		Wave:  wave,
		Delay: parameter.WaveEventDelay,
	})
	s.d.Log.Info().Str("event", string(ev)).Int("wave", wave).Msg("wave event")
	s.d.Sched.After(spawnerOwner, parameter.WaveEventDelay, func() {
		if s.run.Running() {
			s.burst(ev)
		}
	})
}

// burst spawns a formation; bursts bypass the pool cap
func (s *Spawner) burst(ev WaveEvent) {
	pose := s.d.poseOrDefault()
	rng := s.d.Rng

	switch ev {
	case WaveSwarm:
		for i := 0; i < parameter.SwarmCount; i++ {
			t := float64(i)/float64(parameter.SwarmCount-1) - 0.5
			pos := pointAt(pose, t*parameter.SwarmArc, parameter.SwarmDistance,
				randRange(rng, parameter.NormalMinY, parameter.NormalMaxY))
			s.Spawn(SpawnRequest{Kind: component.KindSpeed, Position: pos, Placed: true})
		}

	case WaveSniper:
		for i := 0; i < parameter.SniperCount; i++ {
			angle := randRange(rng, -parameter.FrontArcHalfAngle, parameter.FrontArcHalfAngle)
			dist := randRange(rng, parameter.SniperMinDist, parameter.SniperMaxDist)
			pos := pointAt(pose, angle, dist, randRange(rng, parameter.NormalMinY, parameter.NormalMaxY))
			s.Spawn(SpawnRequest{
				Kind:      component.KindStandard,
				Position:  pos,
				Placed:    true,
				Points:    parameter.SniperEventPoints,
				RadiusMul: parameter.SniperEventRadiusMul,
				Pattern:   component.PatternFloat,
				Patterned: true,
			})
		}

	case WaveBonusRain:
		for i := 0; i < parameter.BonusRainCount; i++ {
			angle := HemisphereAngle(rng)
			dist := randRange(rng, parameter.SpawnMinDistance, parameter.SpawnMaxDistance)
			pos := pointAt(pose, angle, dist, randRange(rng, parameter.OverheadMinY, parameter.OverheadMaxY))
			s.Spawn(SpawnRequest{Kind: component.KindBonus, Position: pos, Placed: true, Zone: component.ZoneOverhead})
		}

	case WaveShieldWall:
		half := float64(parameter.ShieldWallCount-1) / 2
		for i := 0; i < parameter.ShieldWallCount; i++ {
			lateral := (float64(i) - half) * parameter.ShieldWallStride
			angle := math.Atan2(lateral, parameter.ShieldWallDist)
			dist := math.Hypot(lateral, parameter.ShieldWallDist)
			pos := pointAt(pose, -angle, dist, pose.Head.Y)
			s.Spawn(SpawnRequest{
				Kind:      component.KindHeavy,
				Position:  pos,
				Placed:    true,
				Pattern:   component.PatternFloat,
				Patterned: true,
			})
		}
	}
}

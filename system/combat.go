package system

import (
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/registry"
	"github.com/lixenwraith/vr-range/vmath"
)

var roundOwner = engine.Owner{Kind: engine.OwnerRound}

// Combat is hit resolution: the only writer of run state, combo and score
type Combat struct {
	d   Deps
	run *RunState

	comboTimer engine.TimerID
	onWave     func(wave int) (WaveEvent, bool)

	statHits   *atomic.Int64
	statMisses *atomic.Int64
	statDamage *atomic.Int64
}

// NewCombat wires hit resolution into the registry and mirrors score changes as notifications
func NewCombat(d Deps, run *RunState) *Combat {
	d = d.withDefaults()
	c := &Combat{
		d:          d,
		run:        run,
		statHits:   d.Status.Ints.Get("combat.hits"),
		statMisses: d.Status.Ints.Get("combat.misses"),
		statDamage: d.Status.Ints.Get("combat.damage"),
	}
	d.Registry.SetHandler(c)
	d.Tracker.Subscribe(func(score, delta int) {
		c.d.Emit.Emit(event.EventScoreChange, &event.ScorePayload{Score: score, Delta: delta})
	})
	return c
}

// Begin resets the run for cfg and arms the round-wide loops
func (c *Combat) Begin(cfg mode.Config) {
	c.run.reset(cfg)
	c.run.running = true
	c.d.Tracker.Reset()
	c.comboTimer = 0

	c.run.activeColor = component.Palette[c.d.Rng.Intn(len(component.Palette))]
	c.d.Sched.Every(roundOwner, parameter.ColorCycleEvery, c.cycleColor)
	c.d.Sched.Every(roundOwner, parameter.RhythmTickInterval, c.rhythmTick)
}

// End stops accepting hits and closes the registry; timers are canceled by StopAll
func (c *Combat) End() {
	c.run.running = false
	if c.run.endedAt.IsZero() {
		c.run.endedAt = c.d.Sched.Now()
	}
	c.d.Registry.Close()
}

// ApplyHit lands a shot of damage on id
// Multi-HP targets lose HP without resolving until the last point
func (c *Combat) ApplyHit(id core.Entity, damage float64) bool {
	if !c.run.running {
		return false
	}
	e, ok := c.d.Registry.Get(id)
	if !ok || !e.Hittable() {
		return false
	}
	if damage <= 0 {
		damage = 1
	}

	// Penalty shots leave the target in place
	if c.penaltyShot(e) {
		return true
	}

	if e.HP > 1 && damage < float64(e.HP) {
		e.HP -= int(math.Max(1, math.Floor(damage)))
		c.notifyDamaged(e)
		return true
	}
	return c.d.Registry.ResolveWith(id, registry.Resolution{Cause: component.CauseHit, Damage: damage})
}

// penaltyShot applies the ghost and color checks
func (c *Combat) penaltyShot(e *component.Entity) bool {
	switch {
	case e.Kind == component.KindBlink && !e.Visible:
		c.miss(e, "ghost", parameter.GhostPenalty)
		return true
	case e.Kind == component.KindColorMatch && e.Color != c.run.activeColor:
		c.miss(e, "colorMismatch", parameter.ColorMismatchPenalty)
		return true
	}
	return false
}

func (c *Combat) notifyDamaged(e *component.Entity) {
	if e.ID == c.run.boss {
		c.run.bossHP = e.HP
		c.d.Emit.Emit(event.EventBossDamaged, &event.BossPayload{
			Entity: e.ID, HP: e.HP, MaxHP: e.MaxHP, Wave: c.run.wave, BossWave: c.run.bossWave,
		})
		return
	}
	c.d.Emit.Emit(event.EventDamaged, &event.HitPayload{
		Entity: e.ID, Kind: e.Kind, Position: e.Position, HPLeft: e.HP,
	})
}

// Punch resolves melee targets within reach of a fast-moving hand
func (c *Combat) Punch(hand vmath.Vec3F, speed float64) int {
	if !c.run.running || speed <= parameter.MeleePunchSpeed {
		return 0
	}
	n := 0
	for _, e := range c.d.Registry.Live() {
		if e.Kind != component.KindMelee || e.Phase != component.PhaseLive {
			continue
		}
		if vmath.V3FDist(hand, e.Position) < parameter.MeleePunchRadius {
			if c.d.Registry.ResolveWith(e.ID, registry.Resolution{Cause: component.CauseHit, Damage: 1}) {
				n++
			}
		}
	}
	return n
}

// ResolveHit handles hit and contact resolutions forwarded by the registry
func (c *Combat) ResolveHit(e *component.Entity, res registry.Resolution) {
	if !c.run.running {
		return
	}
	if res.Cause == component.CauseContact {
		c.contact(e)
		return
	}
	if e.Kind == component.KindDecoy {
		c.miss(e, "decoy", e.Points)
		return
	}
	c.success(e, res.Damage)
}

// ResolveExpiry breaks the streak when a target escapes; hazard expiry is neutral
func (c *Combat) ResolveExpiry(e *component.Entity) {
	if !c.run.running || !e.Kind.IsTarget() {
		return
	}
	c.miss(e, "expired", 0)
	if e.ID == c.run.boss {
		c.run.clearBoss()
	}
	if !c.run.cfg.InfiniteLives() && e.Kind != component.KindDecoy {
		c.loseLife()
	}
}

// miss applies a penalty, resets the combo and notifies
func (c *Combat) miss(e *component.Entity, reason string, points int) {
	c.statMisses.Add(1)
	if points != 0 {
		c.d.Tracker.Add(points)
	}
	c.resetCombo()
	c.d.Emit.Emit(event.EventMiss, &event.MissPayload{
		Entity: e.ID, Kind: e.Kind, Position: e.Position, Reason: reason, Points: points,
	})
}

func (c *Combat) resetCombo() {
	if c.comboTimer != 0 {
		c.d.Sched.Cancel(c.comboTimer)
		c.comboTimer = 0
	}
	if c.d.Tracker.ResetCombo() != 0 {
		c.d.Emit.Emit(event.EventCombo, &event.ComboPayload{Combo: 0})
	}
}

func (c *Combat) success(e *component.Entity, damage float64) {
	now := c.d.Sched.Now()
	run := c.run
	c.statHits.Add(1)

	run.targetsHit++
	run.wave++
	combo := c.d.Tracker.IncrementCombo()
	if c.comboTimer != 0 {
		c.d.Sched.Cancel(c.comboTimer)
	}
	c.comboTimer = c.d.Sched.After(roundOwner, parameter.ComboDecayWindow, func() {
		c.comboTimer = 0
		if run.running {
			c.resetCombo()
		}
	})

	reaction := now.Sub(e.LiveAt)
	run.reactionTimes = append(run.reactionTimes, reaction)

	reflex := 1.0
	if run.cfg.ReflexMode {
		reflex = ReflexMultiplier(reaction)
		run.reflexHits++
	}
	rhythm, grade := 1.0, ""
	if e.Rhythm {
		rhythm, grade = RhythmMultiplier(e.BeatSpawnTime, now, run.bpm)
	}

	comboCap := run.cfg.Modifiers.ComboCap
	if comboCap <= 0 {
		comboCap = parameter.ComboCap
	}
	mult := float64(min(combo, comboCap)) * damage * c.d.PowerUps.Multiplier() * c.ZoneMultiplier(e.Position) * rhythm * reflex
	points := int(math.Round(float64(e.Points) * mult))
	c.d.Tracker.Add(points)

	if e.Coins > 0 {
		run.coins += e.Coins
	}

	c.d.Emit.Emit(event.EventHit, &event.HitPayload{
		Entity:     e.ID,
		Kind:       e.Kind,
		Position:   e.Position,
		Points:     points,
		Combo:      combo,
		Multiplier: mult,
		Rhythm:     grade,
		Reaction:   reaction,
	})
	if combo >= parameter.ComboCueThreshold {
		c.d.Emit.Emit(event.EventCombo, &event.ComboPayload{Combo: combo})
	}
	if slices.Contains(parameter.ComboMilestones, combo) {
		c.d.Emit.Emit(event.EventComboMilestone, &event.ComboPayload{Combo: combo})
	}
	if combo >= parameter.SlowMotionCombo {
		c.d.Emit.Emit(event.EventSlowMotion, &event.SlowMotionPayload{Duration: parameter.SlowMotionDuration})
	}

	if e.Kind == component.KindPowerUp {
		c.d.PowerUps.ActivateRandom(c.d.Rng)
	}

	if run.cfg.BossMode {
		c.bossKill(e)
	}

	if c.onWave != nil {
		c.onWave(run.wave)
	}
}

// bossKill advances boss-wave progression; every fifth kill pauses spawning
func (c *Combat) bossKill(e *component.Entity) {
	run := c.run
	if e.ID == run.boss {
		run.clearBoss()
		c.d.Emit.Emit(event.EventBossKilled, &event.BossPayload{
			Entity: e.ID, MaxHP: e.MaxHP, Wave: run.wave, BossWave: run.bossWave,
		})
	}

	run.bossWaveKills++
	if run.bossWaveKills < parameter.BossKillsPerWave {
		return
	}
	run.bossWaveKills = 0
	run.bossWave++
	run.spawnPaused = true
	c.d.Emit.Emit(event.EventBossWaveClear, &event.BossPayload{
		Wave: run.wave, BossWave: run.bossWave, Pause: parameter.BossWavePause,
	})
	c.d.Log.Info().Int("boss_wave", run.bossWave).Msg("boss wave cleared")
	c.d.Sched.After(roundOwner, parameter.BossWavePause, func() {
		run.spawnPaused = false
	})
}

// trackBoss makes a freshly live boss the tracked boss
func (c *Combat) trackBoss(e *component.Entity) {
	run := c.run
	run.boss = e.ID
	run.bossHP = e.HP
	run.bossMaxHP = e.MaxHP
	c.d.Emit.Emit(event.EventBossSpawn, &event.BossPayload{
		Entity: e.ID, HP: e.HP, MaxHP: e.MaxHP, Wave: run.wave, BossWave: run.bossWave,
	})
}

// ZoneMultiplier is the best live multiplier zone covering pos on the floor plane
func (c *Combat) ZoneMultiplier(pos vmath.Vec3F) float64 {
	best := 1.0
	for _, z := range c.d.Registry.Live() {
		if z.Kind != component.KindMultiplierZone {
			continue
		}
		if vmath.V3FDistXZ(pos, z.Position) < z.Radius && z.Hazard.Multiplier > best {
			best = z.Hazard.Multiplier
		}
	}
	return best
}

// ReflexMultiplier is the speed tier bonus for a reaction time
func ReflexMultiplier(reaction time.Duration) float64 {
	for _, t := range parameter.ReflexTiers {
		if reaction < t.Under {
			return t.Multiplier
		}
	}
	return 1
}

// contact settles a hazard that reached, missed or was blocked by the player
func (c *Combat) contact(e *component.Entity) {
	switch e.Hazard.Outcome {
	case component.OutcomeDodged:
		reward := parameter.ProjectileDodgeReward
		if e.Kind == component.KindScareBall {
			reward = parameter.ScareDodgeReward
		}
		c.d.Tracker.Add(reward)
		c.d.Emit.Emit(event.EventDodge, &event.DodgePayload{
			Entity: e.ID, Kind: e.Kind, Position: e.Position, Points: reward,
		})
	case component.OutcomeBlocked:
		reward := 0
		if e.Kind == component.KindProjectile {
			reward = parameter.BlockReward
			c.d.Tracker.Add(reward)
		}
		c.d.Emit.Emit(event.EventBlock, &event.DodgePayload{
			Entity: e.ID, Kind: e.Kind, Position: e.Position, Points: reward,
		})
	default:
		c.damagePlayer(e)
	}
}

// DamagePenalty is the score cost of a hazard contact in infinite-lives modes
func DamagePenalty(kind component.Kind) int {
	switch kind {
	case component.KindDangerZone:
		return parameter.ZoneDamagePenalty
	case component.KindScareBall:
		return 0
	}
	return parameter.DamagePenalty
}

// damagePlayer applies hazard damage; an active shield power-up absorbs it
func (c *Combat) damagePlayer(e *component.Entity) {
	if !c.run.running {
		return
	}
	c.statDamage.Add(1)
	p := &event.DamagePayload{Entity: e.ID, Source: e.Kind, Position: e.Position}

	switch {
	case e.Kind != component.KindScareBall && c.d.PowerUps.ConsumeShield():
		p.Absorbed = true
	case c.run.cfg.InfiniteLives():
		p.Penalty = DamagePenalty(e.Kind)
		if p.Penalty != 0 {
			c.d.Tracker.Add(-p.Penalty)
		}
	case e.Kind != component.KindScareBall:
		c.loseLife()
	}
	p.Lives = c.run.lives
	c.d.Emit.Emit(event.EventPlayerDamage, p)
}

// loseLife ends the round at zero lives
func (c *Combat) loseLife() {
	run := c.run
	if run.lives <= 0 {
		return
	}
	run.lives--
	c.d.Emit.Emit(event.EventLifeLost, &event.LivesPayload{Lives: run.lives})
	if run.lives == 0 {
		run.over = true
		c.End()
		c.d.Log.Info().Int("wave", run.wave).Msg("out of lives")
	}
}

// cycleColor rotates the active color-match color
func (c *Combat) cycleColor() {
	if !c.run.running {
		return
	}
	next := c.run.activeColor
	for next == c.run.activeColor {
		next = component.Palette[c.d.Rng.Intn(len(component.Palette))]
	}
	c.run.activeColor = next
	c.d.Emit.Emit(event.EventColorChange, &event.ColorPayload{Color: next})
}

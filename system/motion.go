package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/registry"
	"github.com/lixenwraith/vr-range/vmath"
)

// Motion is the encounter update loop: moves entities and detects terminal conditions
type Motion struct {
	d      Deps
	run    *RunState
	combat *Combat

	prevLeft  vmath.Vec3F
	prevRight vmath.Vec3F
	havePrev  bool

	statTicks *atomic.Int64
}

// NewMotion creates the update loop
func NewMotion(d Deps, run *RunState, combat *Combat) *Motion {
	d = d.withDefaults()
	return &Motion{
		d:         d,
		run:       run,
		combat:    combat,
		statTicks: d.Status.Ints.Get("motion.ticks"),
	}
}

// Begin arms the loop on the round scheduler
func (m *Motion) Begin() {
	m.havePrev = false
	m.d.Sched.Every(roundOwner, parameter.MotionTickInterval, m.Tick)
}

// Tick advances every live entity by one step; skipped while the pose is unavailable
func (m *Motion) Tick() {
	if !m.run.Running() {
		return
	}
	pose, ok := m.d.Pose.Pose()
	if !ok {
		m.havePrev = false
		return
	}
	m.statTicks.Add(1)
	now := m.d.Sched.Now()
	dt := parameter.MotionTickInterval.Seconds()

	m.punches(pose, dt)

	m.d.Registry.Each(func(e *component.Entity) {
		Move(e, pose, now, dt)
		m.detect(e, pose, now)
	})
}

// punches feeds hand speeds to melee resolution
func (m *Motion) punches(pose component.Pose, dt float64) {
	if m.havePrev {
		m.combat.Punch(pose.RightHand, vmath.V3FDist(pose.RightHand, m.prevRight)/dt)
		m.combat.Punch(pose.LeftHand, vmath.V3FDist(pose.LeftHand, m.prevLeft)/dt)
	}
	m.prevLeft, m.prevRight = pose.LeftHand, pose.RightHand
	m.havePrev = true
}

// Move updates e's position for one step of its pattern
func Move(e *component.Entity, pose component.Pose, now time.Time, dt float64) {
	t := now.Sub(e.LiveAt).Seconds()
	rate := 1 + e.Speed*parameter.SpeedRateScale

	switch e.Pattern {
	case component.PatternFloat:
		if e.Kind.IsTarget() {
			bob := math.Sin(2*math.Pi*parameter.FloatFrequency*t+e.Seed) * parameter.FloatAmplitude
			e.Position = vmath.Vec3F{X: e.Origin.X, Y: e.Origin.Y + bob, Z: e.Origin.Z}
		}

	case component.PatternZigzag:
		off := math.Sin(2*math.Pi*parameter.ZigzagFrequency*rate*t+e.Seed) * parameter.ZigzagAmplitude
		e.Position = vmath.V3FAdd(e.Origin, vmath.V3FScale(e.Velocity, off))

	case component.PatternOrbit:
		a := e.Seed + parameter.OrbitAngularRate*rate*t
		e.Position = vmath.Vec3F{
			X: e.Origin.X + math.Cos(a)*parameter.OrbitRadius,
			Y: e.Origin.Y,
			Z: e.Origin.Z + math.Sin(a)*parameter.OrbitRadius,
		}

	case component.PatternDive:
		toward := vmath.V3FSub(pose.Head, e.Origin)
		toward.Y = 0
		depth := parameter.DiveDepth * (1 - math.Cos(2*math.Pi*t/parameter.DivePeriodSec)) / 2
		e.Position = vmath.V3FAdd(e.Origin, vmath.V3FScale(vmath.V3FNormalize(toward), depth))

	case component.PatternPursuit:
		goal := vmath.Vec3F{X: pose.Head.X, Y: e.Position.Y, Z: pose.Head.Z}
		dir := vmath.V3FNormalize(vmath.V3FSub(goal, e.Position))
		e.Position = vmath.V3FAdd(e.Position, vmath.V3FScale(dir, e.Speed*dt))

	case component.PatternBallistic:
		step := e.Hazard.Speed * dt
		e.Position = vmath.V3FAdd(e.Position, vmath.V3FScale(e.Hazard.Direction, step))
		e.Hazard.Travelled += step

	case component.PatternSweep:
		if e.Hazard.Sweep > 0 {
			p := math.Min(now.Sub(e.LiveAt).Seconds()/e.Hazard.Sweep.Seconds(), 1)
			e.Position.X = parameter.LaserStartX + (parameter.LaserEndX-parameter.LaserStartX)*p
		}
	}
}

func (m *Motion) detect(e *component.Entity, pose component.Pose, now time.Time) {
	var outcome component.Outcome
	var done bool

	switch e.Kind {
	case component.KindProjectile:
		outcome, done = ProjectileOutcome(e, pose)
	case component.KindScareBall:
		outcome, done = ScareBallOutcome(e, pose)
		if !done && e.Hazard.Travelled > parameter.ScareBallMaxTravel {
			m.d.Registry.Resolve(e.ID, component.CauseExpired)
			return
		}
	case component.KindCharger:
		foot := vmath.Vec3F{X: pose.Head.X, Y: parameter.ChargerHeight, Z: pose.Head.Z}
		if vmath.V3FDist(e.Position, foot) < parameter.ChargerContactRadius {
			outcome, done = component.OutcomeDamage, true
		}
	case component.KindLaserSweep:
		if now.Sub(e.LiveAt) <= e.Hazard.Sweep {
			outcome, done = LaserOutcome(e, pose)
		}
	}
	if !done {
		return
	}
	e.Hazard.Outcome = outcome
	m.d.Registry.ResolveWith(e.ID, registry.Resolution{Cause: component.CauseContact})
}

// passed reports whether a ballistic hazard has gone beyond the launch-time head
func passed(e *component.Entity, horizon float64) bool {
	return vmath.V3FDot(vmath.V3FSub(e.Position, e.Hazard.LaunchHead), e.Hazard.Direction) > horizon
}

// moved reports whether the player left the launch-time head position
func moved(e *component.Entity, pose component.Pose) bool {
	return vmath.V3FDist(pose.Head, e.Hazard.LaunchHead) > parameter.DodgeMoveThreshold
}

// ProjectileOutcome classifies a projectile against the pose: shield block, head hit or dodge
func ProjectileOutcome(e *component.Entity, pose component.Pose) (component.Outcome, bool) {
	if pose.ShieldUp && vmath.V3FDist(e.Position, pose.ShieldHand()) < parameter.ProjectileShieldRadius {
		return component.OutcomeBlocked, true
	}
	if vmath.V3FDist(e.Position, pose.Head) < parameter.ProjectileHitRadius {
		return component.OutcomeDamage, true
	}
	if passed(e, parameter.ProjectilePassHorizon) && moved(e, pose) {
		return component.OutcomeDodged, true
	}
	return component.OutcomeDamage, false
}

// ScareBallOutcome classifies a scare ball: face hit, shield block or dodge.
// A ball leaving the head inside the near-miss radius counts as dodged
func ScareBallOutcome(e *component.Entity, pose component.Pose) (component.Outcome, bool) {
	if pose.ShieldUp && vmath.V3FDist(e.Position, pose.ShieldHand()) < parameter.ProjectileShieldRadius {
		return component.OutcomeBlocked, true
	}
	dist := vmath.V3FDist(e.Position, pose.Head)
	if dist < parameter.ScareBallHitRadius {
		return component.OutcomeDamage, true
	}
	receding := vmath.V3FDot(vmath.V3FSub(pose.Head, e.Position), e.Hazard.Direction) < 0
	if dist < parameter.ScareBallNearMiss && receding {
		return component.OutcomeDodged, true
	}
	if passed(e, 0) && moved(e, pose) {
		return component.OutcomeDodged, true
	}
	return component.OutcomeDamage, false
}

// LaserOutcome classifies a sweep passing the player: duck or lean dodges, otherwise a hit
func LaserOutcome(e *component.Entity, pose component.Pose) (component.Outcome, bool) {
	if math.Abs(e.Position.X-pose.Head.X) > parameter.LaserCheckWindow {
		return component.OutcomeDamage, false
	}
	y := e.Hazard.LaserY
	ducked := pose.Head.Y < y-parameter.LaserDuckClearance

	if e.Hazard.HeadLaser {
		switch {
		case ducked:
			return component.OutcomeDodged, true
		case math.Abs(pose.Head.Y-y) < parameter.LaserHitBand:
			return component.OutcomeDamage, true
		}
		return component.OutcomeDamage, false
	}

	lean := math.Abs(pose.Head.X - pose.Rig.X)
	switch {
	case lean > parameter.LaserLeanDodge, ducked:
		return component.OutcomeDodged, true
	case lean < parameter.LaserLeanHit && pose.Head.Y > y:
		return component.OutcomeDamage, true
	}
	return component.OutcomeDamage, false
}

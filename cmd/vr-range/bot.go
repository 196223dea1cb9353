package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/system"
	"github.com/lixenwraith/vr-range/vmath"
)

// Bot tuning
const (
	botReaction    = 250 * time.Millisecond
	botAimError    = 0.01 // radians, one standard deviation
	botShieldRange = 1.5
	botPunchRange  = 1.2
	botPunchSpeed  = 3.0
	botLaserWatch  = 3.0
	botLean        = 0.5
	botDuck        = 0.15
)

// Bot plays a round without tracking hardware: it aims at the nearest wanted
// target, raises the shield against incoming hazards, punches melee targets and
// ducks or leans under lasers
type Bot struct {
	session  *game.Session
	pose     *system.PoseHolder
	rng      *rand.Rand
	reaction time.Duration
	aimError float64

	shots int
}

// NewBot drives session through pose; rng seeds the aim error
func NewBot(session *game.Session, pose *system.PoseHolder, rng *rand.Rand) *Bot {
	return &Bot{
		session:  session,
		pose:     pose,
		rng:      rng,
		reaction: botReaction,
		aimError: botAimError,
	}
}

// Step samples the round at now and acts once
func (b *Bot) Step(now time.Time) {
	snap := b.session.Snapshot()
	if !snap.Running {
		return
	}

	pose := component.DefaultPose()
	var aim *component.Entity
	bestDist := math.Inf(1)

	for i := range snap.Entities {
		e := &snap.Entities[i]
		dist := vmath.V3FDist(e.Position, pose.Head)

		switch e.Kind {
		case component.KindProjectile, component.KindScareBall:
			if dist < botShieldRange {
				pose.ShieldUp = true
				pose.LeftHand = e.Position
			}
		case component.KindLaserSweep:
			if math.Abs(e.Position.X-pose.Head.X) < botLaserWatch {
				b.dodgeLaser(&pose, e)
			}
		case component.KindMelee:
			if dist < botPunchRange {
				vel := vmath.V3FScale(vmath.V3FNormalize(vmath.V3FSub(e.Position, pose.RightHand)), botPunchSpeed)
				b.session.Punch(e.Position, vel)
			}
		}

		if !b.wants(e, snap, now) {
			continue
		}
		if dist < bestDist {
			aim, bestDist = e, dist
		}
	}

	b.pose.Set(pose)
	if aim == nil {
		return
	}

	dir := vmath.V3FNormalize(vmath.V3FSub(aim.Position, pose.Head))
	if b.aimError > 0 {
		dir = vmath.V3FRotateY(dir, b.rng.NormFloat64()*b.aimError)
	}
	if res := b.session.Fire(game.FireIntent{Origin: pose.Head, Direction: dir}); res.Fired {
		b.shots++
	}
}

// wants filters targets the bot is willing to shoot
func (b *Bot) wants(e *component.Entity, snap game.Snapshot, now time.Time) bool {
	if !e.Hittable() || now.Sub(e.LiveAt) < b.reaction {
		return false
	}
	switch e.Kind {
	case component.KindDecoy:
		return false
	case component.KindBlink:
		return e.Visible
	case component.KindColorMatch:
		return e.Color == snap.ActiveColor
	}
	return true
}

// dodgeLaser ducks under head-height sweeps and leans away from body sweeps
func (b *Bot) dodgeLaser(pose *component.Pose, e *component.Entity) {
	if e.Hazard.HeadLaser {
		pose.Head.Y = e.Hazard.LaserY - parameter.LaserDuckClearance - botDuck
		return
	}
	pose.Head.X = pose.Rig.X + botLean
}

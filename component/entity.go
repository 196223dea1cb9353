package component

import (
	"time"

	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/vmath"
)

// Phase is the lifecycle state of an entity; transitions only move forward
type Phase uint8

const (
	PhaseTelegraphing Phase = iota
	PhaseLive
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseTelegraphing:
		return "telegraphing"
	case PhaseLive:
		return "live"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// HeightZone is the vertical band of a default spawn
type HeightZone uint8

const (
	ZoneNormal HeightZone = iota
	ZoneFloor
	ZoneOverhead
)

// Indicator names the visual marker shown for the band
func (z HeightZone) Indicator() string {
	switch z {
	case ZoneFloor:
		return "floor"
	case ZoneOverhead:
		return "overhead"
	}
	return "none"
}

// Cue names the audio cue played for the band
func (z HeightZone) Cue() string {
	switch z {
	case ZoneFloor:
		return "low"
	case ZoneOverhead:
		return "high"
	}
	return "mid"
}

// Color tags color-match targets
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// Palette is the cycle of active colors
var Palette = []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	}
	return "none"
}

// Hazard carries the per-kind state of non-target entities
type Hazard struct {
	LaunchHead vmath.Vec3F // player head when launched
	Direction  vmath.Vec3F // unit travel direction
	Speed      float64
	Travelled  float64
	Source     core.Entity // firing target of a projectile

	LaserY    float64
	HeadLaser bool
	Sweep     time.Duration // laser crossing time

	LastDamage time.Time // danger zone cooldown anchor
	Multiplier float64   // multiplier zone factor

	Outcome Outcome // set before a contact resolution
}

// Entity is the plain data record of one encounter entity
// The registry owns it; visuals are derived from it by id
type Entity struct {
	ID      core.Entity
	Kind    Kind
	Pattern Pattern
	Phase   Phase

	Position vmath.Vec3F
	Origin   vmath.Vec3F // anchor for patterned motion
	Velocity vmath.Vec3F

	SpawnTime time.Time // telegraph start
	LiveAt    time.Time // became hittable
	ExpireAt  time.Time
	Lifetime  time.Duration

	Points int
	Coins  int
	HP     int
	MaxHP  int
	Radius float64
	Scale  float64
	Speed  float64
	Seed   float64 // pattern phase offset

	Zone          HeightZone
	Boss          bool
	Rhythm        bool
	BeatSpawnTime time.Time
	Color         Color
	Visible       bool

	Hazard Hazard
}

// Hittable reports whether a shot may resolve the entity now
func (e *Entity) Hittable() bool {
	return e.Phase == PhaseLive && e.Kind.Shootable()
}

// HitRadius is the collision radius including scale
func (e *Entity) HitRadius() float64 {
	if e.Scale > 0 {
		return e.Radius * e.Scale
	}
	return e.Radius
}

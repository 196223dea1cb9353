package event

import (
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/vmath"
)

// RoundPayload identifies a round
type RoundPayload struct {
	RoundID string
	Mode    string
	Score   int
}

// ScorePayload carries a score mutation
type ScorePayload struct {
	Score int
	Delta int
}

// LivesPayload carries remaining lives
type LivesPayload struct {
	Lives int
}

// SpawnPayload describes a telegraphed or live entity
type SpawnPayload struct {
	Entity    core.Entity
	Kind      component.Kind
	Position  vmath.Vec3F
	Indicator string
	Cue       string
	Delay     time.Duration
}

// DespawnPayload detaches resources paired with an entity
type DespawnPayload struct {
	Entity core.Entity
	Kind   component.Kind
	Cause  component.Cause
}

// HitPayload describes a kill or damaging hit
type HitPayload struct {
	Entity     core.Entity
	Kind       component.Kind
	Position   vmath.Vec3F
	Points     int
	Combo      int
	Multiplier float64
	Rhythm     string
	Reaction   time.Duration
	HPLeft     int
}

// MissPayload describes a penalty hit or an expiry
type MissPayload struct {
	Entity   core.Entity
	Kind     component.Kind
	Position vmath.Vec3F
	Reason   string
	Points   int
}

// ComboPayload carries the current combo
type ComboPayload struct {
	Combo int
}

// SlowMotionPayload requests a slow motion effect
type SlowMotionPayload struct {
	Duration time.Duration
}

// BossPayload describes the tracked boss or a boss wave
type BossPayload struct {
	Entity   core.Entity
	HP       int
	MaxHP    int
	Wave     int
	BossWave int
	Pause    time.Duration
}

// PowerUpPayload describes a power-up transition
type PowerUpPayload struct {
	Kind     string
	Duration time.Duration
}

// DodgePayload describes an avoided or blocked hazard
type DodgePayload struct {
	Entity   core.Entity
	Kind     component.Kind
	Position vmath.Vec3F
	Points   int
}

// DamagePayload describes hazard contact with the player
type DamagePayload struct {
	Entity   core.Entity
	Source   component.Kind
	Position vmath.Vec3F
	Penalty  int
	Lives    int
	Absorbed bool
}

// WaveEventPayload announces a themed burst
type WaveEventPayload struct {
	Name  string
	Wave  int
	Delay time.Duration
}

// BeatPayload describes the rhythm tracker state
type BeatPayload struct {
	Active bool
	BPM    int
	Beat   int
}

// ColorPayload carries the active color-match color
type ColorPayload struct {
	Color component.Color
}

package game

import (
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/weapon"
	"github.com/lixenwraith/vr-range/vmath"
)

// EndReason records why a round stopped
type EndReason string

const (
	EndStopped EndReason = "stopped"
	EndTimeUp  EndReason = "timeUp"
	EndNoLives EndReason = "noLives"
)

// Report is the immutable round-end record handed to progression
type Report struct {
	RoundID       string          `yaml:"roundId"`
	Mode          string          `yaml:"mode"`
	Challenge     string          `yaml:"challenge,omitempty"`
	Weapon        string          `yaml:"weapon"`
	Score         int             `yaml:"score"`
	TargetsHit    int             `yaml:"targetsHit"`
	BestCombo     int             `yaml:"bestCombo"`
	CoinsEarned   int             `yaml:"coinsEarned"`
	ReactionTimes []time.Duration `yaml:"reactionTimes,omitempty"`
	ShotsFired    int             `yaml:"shotsFired"`
	Wave          int             `yaml:"wave"`
	BossWave      int             `yaml:"bossWave"`
	LivesLeft     int             `yaml:"livesLeft"`
	Duration      time.Duration   `yaml:"duration"`
	Reason        EndReason       `yaml:"reason"`
	EndedAt       time.Time       `yaml:"endedAt"`
}

// FireIntent is one trigger pull from a tracked controller
type FireIntent struct {
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
	Charge    time.Duration // railgun hold time
}

// ShotResult reports what a trigger pull connected with
// Entity is the first target struck; Hits counts every landed pellet
type ShotResult struct {
	Fired     bool
	Connected bool
	Entity    core.Entity
	Hits      int
}

// Snapshot is a read-only copy of the round for collaborators
type Snapshot struct {
	Running   bool
	Mode      string
	Score     int
	Combo     int
	BestCombo int
	Lives     int
	Infinite  bool // lives mode off; damage costs points
	Wave      int
	BossWave  int
	Timed     bool
	Remaining time.Duration

	BossHP    int
	BossMaxHP int

	PowerUps     []weapon.PowerUp
	ActiveColor  component.Color
	RhythmActive bool
	BPM          int

	Pose       component.Pose
	Entities   []component.Entity
	Telegraphs []component.Entity
}

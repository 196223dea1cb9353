package system

import (
	"time"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/score"
)

// RunState is the per-round progression record
// Combat is its only writer; every other component reads through the accessors
type RunState struct {
	tracker *score.Tracker
	cfg     mode.Config

	running bool
	over    bool
	endedAt time.Time

	wave          int
	targetsHit    int
	coins         int
	reactionTimes []time.Duration

	boss          core.Entity
	bossHP        int
	bossMaxHP     int
	bossWave      int
	bossWaveKills int
	spawnPaused   bool

	lives      int
	reflexHits int

	rhythmActive bool
	bpm          int
	beat         int
	lastBeat     time.Time

	activeColor component.Color
}

// NewRunState creates an idle run bound to the score tracker holding the combo
func NewRunState(tracker *score.Tracker) *RunState {
	return &RunState{tracker: tracker, bpm: parameter.RhythmBPM}
}

func (r *RunState) reset(cfg mode.Config) {
	*r = RunState{
		tracker:     r.tracker,
		cfg:         cfg,
		lives:       cfg.Lives,
		bpm:         parameter.RhythmBPM,
		activeColor: component.ColorNone,
	}
}

func (r *RunState) Config() mode.Config { return r.cfg }
func (r *RunState) Running() bool       { return r.running }

// Over reports a round lost to running out of lives
func (r *RunState) Over() bool { return r.over }

// EndedAt is the scheduler time scoring stopped, zero while the run is going
func (r *RunState) EndedAt() time.Time { return r.endedAt }

func (r *RunState) Combo() int     { return r.tracker.Combo() }
func (r *RunState) BestCombo() int { return r.tracker.BestCombo() }
func (r *RunState) Wave() int      { return r.wave }
func (r *RunState) TargetsHit() int {
	return r.targetsHit
}
func (r *RunState) Coins() int { return r.coins }

// ReactionTimes returns a copy of the recorded reaction times
func (r *RunState) ReactionTimes() []time.Duration {
	out := make([]time.Duration, len(r.reactionTimes))
	copy(out, r.reactionTimes)
	return out
}

// Boss returns the tracked boss, NoEntity when none
func (r *RunState) Boss() (core.Entity, int, int) {
	return r.boss, r.bossHP, r.bossMaxHP
}

// clearBoss drops the tracked boss and its health bar
func (r *RunState) clearBoss() {
	r.boss = core.NoEntity
	r.bossHP = 0
	r.bossMaxHP = 0
}

func (r *RunState) BossWave() int      { return r.bossWave }
func (r *RunState) BossWaveKills() int { return r.bossWaveKills }
func (r *RunState) SpawnPaused() bool  { return r.spawnPaused }

// Lives returns remaining lives, zero in infinite-lives modes
func (r *RunState) Lives() int      { return r.lives }
func (r *RunState) ReflexHits() int { return r.reflexHits }

func (r *RunState) RhythmActive() bool { return r.rhythmActive }
func (r *RunState) BPM() int           { return r.bpm }
func (r *RunState) Beat() int          { return r.beat }

func (r *RunState) ActiveColor() component.Color { return r.activeColor }

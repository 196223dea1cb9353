package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/core"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/registry"
	"github.com/lixenwraith/vr-range/score"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/system"
	"github.com/lixenwraith/vr-range/vmath"
	"github.com/lixenwraith/vr-range/weapon"
)

// ErrRoundActive is returned by Start while a round is running
var ErrRoundActive = errors.New("round already running")

var sessionOwner = engine.Owner{Kind: engine.OwnerRound, ID: 1}

// Config assembles a session; zero fields fall back to defaults
type Config struct {
	Mode      mode.Config
	Challenge string // weekly challenge id, empty for none
	Weapon    string

	Clock  engine.TimeProvider
	Emit   event.Emitter
	Pose   system.PoseSource
	Seed   int64
	Status *status.Registry
	Log    zerolog.Logger
}

// Session runs rounds of one mode and owns every per-round collaborator
// All entry points serialize on one mutex; scheduler callbacks run inside Tick
type Session struct {
	mu sync.Mutex

	cfg       Config
	challenge string

	clock    engine.TimeProvider
	sched    *engine.Scheduler
	reg      *registry.Registry
	tracker  *score.Tracker
	powerUps *weapon.PowerUps
	arsenal  *weapon.Arsenal
	enc      *system.Encounter
	emit     event.Emitter
	pose     system.PoseSource
	log      zerolog.Logger

	roundID   string
	started   time.Time
	running   bool
	remaining time.Duration
	timeUp    bool
	last      Report
	hasReport bool

	onEnd []func(Report)

	statMode     *status.Label
	statRunning  *atomic.Bool
	statAccuracy *status.Gauge
}

// NewSession wires a scheduler, registry, tracker, power-ups, arsenal and encounter for cfg
func NewSession(cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = engine.NewMonotonicTimeProvider()
	}
	if cfg.Emit == nil {
		cfg.Emit = event.Discard{}
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Pose == nil {
		cfg.Pose = system.NewPoseHolder(component.DefaultPose())
	}
	if cfg.Mode.ID == "" {
		cfg.Mode = mode.NewCatalog().Lookup(mode.DefaultMode)
	}
	cfg.Mode = cfg.Mode.WithDefaults()

	challenge := ""
	if ch, ok := mode.LookupChallenge(cfg.Challenge); ok {
		cfg.Mode = mode.WithChallenge(cfg.Mode, ch)
		challenge = ch.ID
	}

	s := &Session{
		cfg:       cfg,
		challenge: challenge,
		clock:     cfg.Clock,
		emit:      cfg.Emit,
		pose:      cfg.Pose,
		log:       cfg.Log.With().Str("mode", cfg.Mode.ID).Logger(),

		statMode:     cfg.Status.Strings.Get("round.mode"),
		statRunning:  cfg.Status.Bools.Get("round.running"),
		statAccuracy: cfg.Status.Floats.Get("round.accuracy"),
	}
	s.sched = engine.NewScheduler(cfg.Clock)
	s.reg = registry.New(s.sched, cfg.Emit, cfg.Status, s.log)
	s.tracker = score.NewTracker()
	s.powerUps = weapon.NewPowerUps(s.sched, cfg.Emit)
	s.arsenal = weapon.NewArsenal(cfg.Weapon, s.powerUps)
	s.enc = system.NewEncounter(system.Deps{
		Sched:    s.sched,
		Registry: s.reg,
		Tracker:  s.tracker,
		PowerUps: s.powerUps,
		Emit:     cfg.Emit,
		Rng:      rand.New(rand.NewSource(cfg.Seed)),
		Pose:     cfg.Pose,
		Status:   cfg.Status,
		Log:      s.log,
	})
	return s
}

// OnEnd registers a callback receiving every final report, outside the session lock
func (s *Session) OnEnd(fn func(Report)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd = append(s.onEnd, fn)
}

// Mode returns the effective mode, challenge modifiers included
func (s *Session) Mode() mode.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Mode
}

// SetMode switches modes between rounds; the session challenge is applied again
func (s *Session) SetMode(m mode.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRoundActive
	}
	m = m.WithDefaults()
	if ch, ok := mode.LookupChallenge(s.challenge); ok {
		m = mode.WithChallenge(m, ch)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("set mode %s: %w", m.ID, err)
	}
	s.cfg.Mode = m
	s.log = s.cfg.Log.With().Str("mode", m.ID).Logger()
	return nil
}

// Weapon returns the equipped weapon
func (s *Session) Weapon() weapon.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arsenal.Current()
}

// SelectWeapon equips id between rounds; unknown ids equip the default
func (s *Session) SelectWeapon(id string) weapon.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arsenal.Select(id)
}

// Start begins a round at the clock's current time
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrRoundActive
	}
	if err := s.cfg.Mode.Validate(); err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	s.sched.AdvanceTo(s.clock.Now())
	s.roundID = uuid.NewString()
	s.started = s.sched.Now()
	s.running = true
	s.timeUp = false
	s.remaining = s.cfg.Mode.Duration
	s.powerUps.Reset()
	s.arsenal.Select(s.arsenal.Current().ID)

	s.statMode.Store(s.cfg.Mode.ID)
	s.statRunning.Store(true)
	s.enc.Begin(s.cfg.Mode)
	if s.cfg.Mode.Timed() {
		s.sched.Every(sessionOwner, parameter.CountdownTickInterval, s.countdown)
	}

	s.emit.Emit(event.EventRoundStart, &event.RoundPayload{RoundID: s.roundID, Mode: s.cfg.Mode.ID})
	s.log.Info().Str("round", s.roundID).Str("challenge", s.challenge).Msg("round started")
	return nil
}

// countdown runs the round timer; an active timeFreeze holds it
func (s *Session) countdown() {
	if !s.running || s.powerUps.IsActive(weapon.TimeFreeze) {
		return
	}
	s.remaining -= parameter.CountdownTickInterval
	if s.remaining <= 0 {
		s.remaining = 0
		s.timeUp = true
		s.enc.Combat.End()
	}
}

// Tick advances the round to now; implements engine.Ticker
func (s *Session) Tick(now time.Time) {
	s.mu.Lock()
	if !s.running {
		s.sched.AdvanceTo(now)
		s.mu.Unlock()
		return
	}
	s.sched.AdvanceTo(now)

	var rep Report
	ended := false
	switch {
	case s.enc.Run.Over():
		rep, ended = s.finish(EndNoLives), true
	case s.timeUp:
		rep, ended = s.finish(EndTimeUp), true
	}
	listeners := s.onEnd
	s.mu.Unlock()

	if ended {
		for _, fn := range listeners {
			fn(rep)
		}
	}
}

// Stop ends the running round; the bool is false when no round was running
func (s *Session) Stop() (Report, bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return Report{}, false
	}
	rep := s.finish(EndStopped)
	listeners := s.onEnd
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(rep)
	}
	return rep, true
}

// finish tears the round down and freezes the report; caller holds the lock
func (s *Session) finish(reason EndReason) Report {
	run := s.enc.Run
	cleared := s.enc.End()
	s.powerUps.Reset()
	s.running = false

	now := s.sched.Now()
	if t := run.EndedAt(); !t.IsZero() {
		now = t
	}
	snap := s.tracker.Finalize()
	rep := Report{
		RoundID:       s.roundID,
		Mode:          s.cfg.Mode.ID,
		Challenge:     s.challenge,
		Weapon:        s.arsenal.Current().ID,
		Score:         snap.Score,
		TargetsHit:    run.TargetsHit(),
		BestCombo:     run.BestCombo(),
		CoinsEarned:   run.Coins(),
		ReactionTimes: run.ReactionTimes(),
		ShotsFired:    snap.ShotsFired,
		Wave:          run.Wave(),
		BossWave:      run.BossWave(),
		LivesLeft:     run.Lives(),
		Duration:      now.Sub(s.started),
		Reason:        reason,
		EndedAt:       now,
	}
	s.last, s.hasReport = rep, true
	s.statRunning.Store(false)
	if rep.ShotsFired > 0 {
		s.statAccuracy.Set(float64(rep.TargetsHit) / float64(rep.ShotsFired))
	}

	s.emit.Emit(event.EventRoundEnd, &event.RoundPayload{RoundID: rep.RoundID, Mode: rep.Mode, Score: rep.Score})
	s.log.Info().
		Str("round", rep.RoundID).
		Str("reason", string(reason)).
		Int("score", rep.Score).
		Int("cleared", cleared).
		Msg("round ended")
	return rep
}

// Running reports whether a round is in progress
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LastReport returns the report of the most recent finished round
func (s *Session) LastReport() (Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasReport
}

// Fire pulls the trigger; bursts fire their remaining rounds on the scheduler
func (s *Session) Fire(in FireIntent) ShotResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || !s.enc.Run.Running() {
		return ShotResult{}
	}
	shot, ok := s.arsenal.Fire(s.sched.Now(), in.Charge)
	if !ok {
		return ShotResult{}
	}
	res := s.volley(in, shot)
	for i := 1; i < shot.Burst; i++ {
		s.sched.After(sessionOwner, time.Duration(i)*shot.BurstDelay, func() {
			if s.running && s.enc.Run.Running() {
				s.volley(in, shot)
			}
		})
	}
	return res
}

// volley fires one round of pellets fanned around the aim direction
func (s *Session) volley(in FireIntent, shot weapon.Shot) ShotResult {
	s.tracker.RecordShot()
	res := ShotResult{Fired: true}

	dir := vmath.V3FNormalize(in.Direction)
	n := max(shot.Projectiles, 1)
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * shot.Spread
		id, ok := s.pick(in.Origin, vmath.V3FRotateY(dir, offset))
		if !ok {
			continue
		}
		if s.enc.Combat.ApplyHit(id, shot.Damage) {
			if !res.Connected {
				res.Connected, res.Entity = true, id
			}
			res.Hits++
		}
	}
	return res
}

// pick returns the nearest hittable entity along the ray
func (s *Session) pick(origin, dir vmath.Vec3F) (core.Entity, bool) {
	best := core.NoEntity
	bestDist := parameter.ShotRange
	for _, e := range s.reg.Live() {
		if !e.Hittable() {
			continue
		}
		if d, ok := vmath.RayHitsSphere(origin, dir, e.Position, e.HitRadius()); ok && d <= bestDist {
			best, bestDist = e.ID, d
		}
	}
	return best, best != core.NoEntity
}

// Punch feeds a hand sample to melee resolution
func (s *Session) Punch(hand, velocity vmath.Vec3F) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0
	}
	return s.enc.Combat.Punch(hand, vmath.V3FMag(velocity))
}

// Snapshot copies the round state for rendering
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	run := s.enc.Run
	_, bossHP, bossMax := run.Boss()
	pose, ok := s.pose.Pose()
	if !ok {
		pose = component.DefaultPose()
	}
	snap := Snapshot{
		Running:      s.running,
		Mode:         s.cfg.Mode.ID,
		Score:        s.tracker.Score(),
		Combo:        run.Combo(),
		BestCombo:    run.BestCombo(),
		Lives:        run.Lives(),
		Infinite:     s.cfg.Mode.InfiniteLives(),
		Wave:         run.Wave(),
		BossWave:     run.BossWave(),
		Timed:        s.cfg.Mode.Timed(),
		Remaining:    s.remaining,
		BossHP:       bossHP,
		BossMaxHP:    bossMax,
		PowerUps:     s.powerUps.Active(),
		ActiveColor:  run.ActiveColor(),
		RhythmActive: run.RhythmActive(),
		BPM:          run.BPM(),
		Pose:         pose,
	}
	live := s.reg.Live()
	snap.Entities = make([]component.Entity, 0, len(live))
	for _, e := range live {
		snap.Entities = append(snap.Entities, *e)
	}
	for _, e := range s.reg.Pending() {
		snap.Telegraphs = append(snap.Telegraphs, *e)
	}
	return snap
}

// Encounter exposes the round systems to drivers and tests
func (s *Session) Encounter() *system.Encounter {
	return s.enc
}

// Registry exposes the entity registry to drivers and tests
func (s *Session) Registry() *registry.Registry {
	return s.reg
}

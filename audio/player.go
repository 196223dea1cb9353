package audio

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/vmath"
)

// Sink receives rendered cues
type Sink interface {
	Play(s beep.Streamer)
}

// Speaker mixes cues into the system audio device
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialized speaker sink
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the device at rate and starts the mixer
func (s *Speaker) Init(rate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play adds a cue to the mixer; dropped before Init
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences the mixer and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// CuePlayer turns outbound notifications into synthesized cues
// It only listens; playback never feeds back into the round
type CuePlayer struct {
	cfg   *Config
	rate  beep.SampleRate
	sink  Sink
	muted atomic.Bool
	log   zerolog.Logger

	statPlayed *atomic.Int64
}

// NewCuePlayer creates a player writing to sink; a nil cfg uses DefaultConfig
func NewCuePlayer(cfg *Config, sink Sink, reg *status.Registry, log zerolog.Logger) *CuePlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	p := &CuePlayer{
		cfg:        cfg,
		rate:       beep.SampleRate(cfg.SampleRate),
		sink:       sink,
		log:        log,
		statPlayed: reg.Ints.Get("audio.cues"),
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// SetMuted toggles playback
func (p *CuePlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// Muted reports whether playback is off
func (p *CuePlayer) Muted() bool {
	return p.muted.Load()
}

// EventTypes implements event.Handler
func (p *CuePlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoundStart,
		event.EventRoundEnd,
		event.EventLifeLost,
		event.EventTelegraph,
		event.EventHit,
		event.EventDamaged,
		event.EventMiss,
		event.EventComboMilestone,
		event.EventBossSpawn,
		event.EventBossKilled,
		event.EventPowerUpActivate,
		event.EventDodge,
		event.EventBlock,
		event.EventPlayerDamage,
		event.EventWaveEvent,
		event.EventRhythmBeat,
	}
}

// HandleEvent implements event.Handler
func (p *CuePlayer) HandleEvent(ev event.GameEvent) {
	cue, pitch, pan := CueFor(ev)
	if cue == CueNone {
		return
	}
	p.Play(cue, pitch, pan)
}

// Play renders cue and hands it to the sink
func (p *CuePlayer) Play(cue Cue, pitch int, pan float64) {
	if p.muted.Load() || p.sink == nil {
		return
	}
	vol := p.cfg.Volume(cue)
	if vol <= 0 {
		return
	}
	st := Render(cue, pitch, vol, p.rate)
	if st == nil {
		return
	}
	if pan != 0 {
		st = &effects.Pan{Streamer: st, Pan: pan}
	}
	p.sink.Play(st)
	p.statPlayed.Add(1)
	p.log.Debug().Str("cue", cue.String()).Int("pitch", pitch).Msg("cue")
}

// CueFor maps a notification to a cue, its transposition and stereo pan
func CueFor(ev event.GameEvent) (cue Cue, pitch int, pan float64) {
	switch ev.Type {
	case event.EventRoundStart:
		return CueRoundStart, 0, 0
	case event.EventRoundEnd:
		return CueRoundEnd, 0, 0
	case event.EventLifeLost:
		return CueLifeLost, 0, 0
	case event.EventTelegraph:
		if pl, ok := ev.Payload.(*event.SpawnPayload); ok {
			if pl.Cue == "charge" {
				return CueCharge, 0, panFor(pl.Position)
			}
			return CueTelegraph, 0, panFor(pl.Position)
		}
		return CueTelegraph, 0, 0
	case event.EventHit:
		if pl, ok := ev.Payload.(*event.HitPayload); ok {
			cue = CueHit
			if pl.Rhythm == "perfect" {
				cue = CuePerfect
			}
			return cue, min(max(pl.Combo-1, 0), parameter.CueMaxPitchSteps), panFor(pl.Position)
		}
		return CueHit, 0, 0
	case event.EventDamaged:
		if pl, ok := ev.Payload.(*event.HitPayload); ok {
			return CueDamaged, 0, panFor(pl.Position)
		}
		return CueDamaged, 0, 0
	case event.EventMiss:
		if pl, ok := ev.Payload.(*event.MissPayload); ok {
			return CueMiss, 0, panFor(pl.Position)
		}
		return CueMiss, 0, 0
	case event.EventComboMilestone:
		if pl, ok := ev.Payload.(*event.ComboPayload); ok {
			return CueMilestone, min(max(slices.Index(parameter.ComboMilestones, pl.Combo), 0)*2, parameter.CueMaxPitchSteps), 0
		}
		return CueMilestone, 0, 0
	case event.EventBossSpawn:
		return CueBoss, 0, 0
	case event.EventBossKilled:
		return CueBossDown, 0, 0
	case event.EventPowerUpActivate:
		return CuePowerUp, 0, 0
	case event.EventDodge:
		if pl, ok := ev.Payload.(*event.DodgePayload); ok {
			return CueDodge, 0, panFor(pl.Position)
		}
		return CueDodge, 0, 0
	case event.EventBlock:
		if pl, ok := ev.Payload.(*event.DodgePayload); ok {
			return CueBlock, 0, panFor(pl.Position)
		}
		return CueBlock, 0, 0
	case event.EventPlayerDamage:
		if pl, ok := ev.Payload.(*event.DamagePayload); ok {
			cue = CueDamage
			if pl.Absorbed {
				cue = CueShield
			}
			return cue, 0, panFor(pl.Position)
		}
		return CueDamage, 0, 0
	case event.EventWaveEvent:
		return CueWave, 0, 0
	case event.EventRhythmBeat:
		return CueBeat, 0, 0
	}
	return CueNone, 0, 0
}

// panFor places a world position in the stereo field, facing -Z
func panFor(pos vmath.Vec3F) float64 {
	return min(max(pos.X/parameter.CuePanDistance, -1), 1)
}

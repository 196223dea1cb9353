package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vr-range/parameter"
)

// Cue identifies a synthesized notification sound
type Cue int

const (
	CueNone Cue = iota
	CueHit
	CuePerfect
	CueDamaged
	CueMiss
	CueMilestone
	CueTelegraph
	CueCharge
	CueDamage
	CueShield
	CueDodge
	CueBlock
	CueLifeLost
	CueBoss
	CueBossDown
	CuePowerUp
	CueWave
	CueBeat
	CueRoundStart
	CueRoundEnd
	cueCount
)

var cueNames = [cueCount]string{
	CueNone:       "none",
	CueHit:        "hit",
	CuePerfect:    "perfect",
	CueDamaged:    "damaged",
	CueMiss:       "miss",
	CueMilestone:  "milestone",
	CueTelegraph:  "telegraph",
	CueCharge:     "charge",
	CueDamage:     "damage",
	CueShield:     "shield",
	CueDodge:      "dodge",
	CueBlock:      "block",
	CueLifeLost:   "lifeLost",
	CueBoss:       "boss",
	CueBossDown:   "bossDown",
	CuePowerUp:    "powerUp",
	CueWave:       "wave",
	CueBeat:       "beat",
	CueRoundStart: "roundStart",
	CueRoundEnd:   "roundEnd",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue returns the cue with the given name
func ParseCue(name string) (Cue, bool) {
	for c, n := range cueNames {
		if n == name && Cue(c) != CueNone {
			return Cue(c), true
		}
	}
	return CueNone, false
}

// note is a single shaped oscillator voice
type note struct {
	freq    float64
	wave    WaveType
	dur     time.Duration
	release time.Duration
	gain    float64
}

// voicing describes a cue as notes played in sequence or stacked
type voicing struct {
	notes   []note
	stacked bool
}

var voicings = [cueCount]voicing{
	CueHit: {notes: []note{
		{freq: 1046.5, wave: WaveSine, dur: parameter.CueShortDuration, release: 80 * time.Millisecond, gain: 0.8},
	}},
	CuePerfect: {stacked: true, notes: []note{
		{freq: 1046.5, wave: WaveSine, dur: parameter.CueShortDuration, release: 80 * time.Millisecond, gain: 0.6},
		{freq: 2093.0, wave: WaveSine, dur: parameter.CueShortDuration, release: 100 * time.Millisecond, gain: 0.3},
	}},
	CueDamaged: {notes: []note{
		{freq: 330, wave: WaveSquare, dur: parameter.CueClickDuration, release: 40 * time.Millisecond, gain: 0.4},
	}},
	CueMiss: {notes: []note{
		{freq: 110, wave: WaveSaw, dur: parameter.CueShortDuration, release: 60 * time.Millisecond, gain: 0.7},
	}},
	CueMilestone: {notes: []note{
		{freq: 659.3, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 40 * time.Millisecond, gain: 0.4},
		{freq: 987.8, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 60 * time.Millisecond, gain: 0.4},
	}},
	CueTelegraph: {notes: []note{
		{freq: 1760, wave: WaveSine, dur: parameter.CueClickDuration, release: 40 * time.Millisecond, gain: 0.3},
	}},
	CueCharge: {notes: []note{
		{freq: 220, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 20 * time.Millisecond, gain: 0.4},
		{freq: 293.7, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 20 * time.Millisecond, gain: 0.4},
		{freq: 392, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 60 * time.Millisecond, gain: 0.5},
	}},
	CueDamage: {stacked: true, notes: []note{
		{freq: 0, wave: WaveNoise, dur: parameter.CueLongDuration, release: 250 * time.Millisecond, gain: 0.6},
		{freq: 80, wave: WaveSine, dur: parameter.CueLongDuration, release: 250 * time.Millisecond, gain: 0.5},
	}},
	CueShield: {notes: []note{
		{freq: 523.3, wave: WaveSine, dur: parameter.CueShortDuration, release: 100 * time.Millisecond, gain: 0.5},
	}},
	CueDodge: {notes: []note{
		{freq: 1, wave: WaveNoise, dur: parameter.CueShortDuration, release: 100 * time.Millisecond, gain: 0.3},
	}},
	CueBlock: {stacked: true, notes: []note{
		{freq: 2, wave: WaveNoise, dur: parameter.CueClickDuration, release: 50 * time.Millisecond, gain: 0.4},
		{freq: 440, wave: WaveSquare, dur: parameter.CueClickDuration, release: 50 * time.Millisecond, gain: 0.3},
	}},
	CueLifeLost: {notes: []note{
		{freq: 392, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 40 * time.Millisecond, gain: 0.5},
		{freq: 261.6, wave: WaveSaw, dur: parameter.CueNoteDuration * 2, release: 150 * time.Millisecond, gain: 0.5},
	}},
	CueBoss: {stacked: true, notes: []note{
		{freq: 55, wave: WaveSaw, dur: parameter.CueLongDuration, release: 200 * time.Millisecond, gain: 0.6},
		{freq: 82.4, wave: WaveSquare, dur: parameter.CueLongDuration, release: 200 * time.Millisecond, gain: 0.3},
	}},
	CueBossDown: {notes: []note{
		{freq: 523.3, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.4},
		{freq: 659.3, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.4},
		{freq: 1046.5, wave: WaveSquare, dur: parameter.CueNoteDuration * 2, release: 150 * time.Millisecond, gain: 0.5},
	}},
	CuePowerUp: {notes: []note{
		{freq: 987.8, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 40 * time.Millisecond, gain: 0.4},
		{freq: 1318.5, wave: WaveSquare, dur: parameter.CueNoteDuration, release: 80 * time.Millisecond, gain: 0.4},
	}},
	CueWave: {notes: []note{
		{freq: 440, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 40 * time.Millisecond, gain: 0.4},
		{freq: 440, wave: WaveSaw, dur: parameter.CueNoteDuration, release: 40 * time.Millisecond, gain: 0.4},
	}},
	CueBeat: {notes: []note{
		{freq: 60, wave: WaveSine, dur: parameter.CueClickDuration, release: 50 * time.Millisecond, gain: 0.7},
	}},
	CueRoundStart: {notes: []note{
		{freq: 440, wave: WaveSine, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.5},
		{freq: 440, wave: WaveSine, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.5},
		{freq: 880, wave: WaveSine, dur: parameter.CueNoteDuration * 2, release: 100 * time.Millisecond, gain: 0.6},
	}},
	CueRoundEnd: {notes: []note{
		{freq: 880, wave: WaveSine, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.5},
		{freq: 659.3, wave: WaveSine, dur: parameter.CueNoteDuration, release: 30 * time.Millisecond, gain: 0.5},
		{freq: 440, wave: WaveSine, dur: parameter.CueNoteDuration * 3, release: 200 * time.Millisecond, gain: 0.6},
	}},
}

// Duration returns the rendered length of c
func (c Cue) Duration() time.Duration {
	if c <= CueNone || c >= cueCount {
		return 0
	}
	var d time.Duration
	v := voicings[c]
	for _, n := range v.notes {
		if v.stacked {
			d = max(d, n.dur)
		} else {
			d += n.dur
		}
	}
	return d
}

// Render synthesizes c transposed by pitch semitones at the given volume
// Returns nil for CueNone or an unknown cue
func Render(c Cue, pitch int, vol float64, rate beep.SampleRate) beep.Streamer {
	if c <= CueNone || c >= cueCount {
		return nil
	}
	v := voicings[c]
	parts := make([]beep.Streamer, 0, len(v.notes))
	for _, n := range v.notes {
		freq := n.freq
		if n.wave != WaveNoise {
			freq = semitone(freq, pitch)
		}
		osc := NewOscillator(freq, n.dur, n.wave, rate)
		shaped := NewEnvelope(osc, n.dur, parameter.CueAttack, n.release, rate)
		parts = append(parts, newVolume(shaped, n.gain))
	}

	var out beep.Streamer
	if v.stacked {
		out = beep.Mix(parts...)
	} else {
		out = beep.Seq(parts...)
	}
	return newVolume(out, vol)
}

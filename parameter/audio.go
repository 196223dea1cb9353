package parameter

import "time"

// Cue Synthesis
const (
	// AudioSampleRate is the default output rate for synthesized cues
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// CueAttack is the fade-in applied to every cue voice
	CueAttack = 5 * time.Millisecond

	// CueClickDuration is the length of beats and telegraph pings
	CueClickDuration = 60 * time.Millisecond

	// CueShortDuration is the length of hit and miss cues
	CueShortDuration = 120 * time.Millisecond

	// CueNoteDuration is the length of one note in a melodic cue
	CueNoteDuration = 100 * time.Millisecond

	// CueLongDuration is the length of damage and boss cues
	CueLongDuration = 350 * time.Millisecond

	// CueMaxPitchSteps bounds the combo pitch rise in semitones
	CueMaxPitchSteps = 12

	// CuePanDistance is the lateral offset that pans a cue fully to one side
	CuePanDistance = 8.0
)

package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vr-range/parameter"
)

// Environment variables read by LoadConfig
const (
	EnvAudioEnabled = "VR_RANGE_AUDIO_ENABLED"
	EnvMasterVolume = "VR_RANGE_MASTER_VOLUME"
	EnvCueVolumes   = "VR_RANGE_CUE_VOLUMES"
	EnvSampleRate   = "VR_RANGE_SAMPLE_RATE"
)

// Config holds cue playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   map[Cue]float64
	SampleRate   int
}

// DefaultConfig enables every cue at full relative volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		CueVolumes:   make(map[Cue]float64, cueCount),
		SampleRate:   parameter.AudioSampleRate,
	}
	for c := CueNone + 1; c < cueCount; c++ {
		cfg.CueVolumes[c] = 1.0
	}
	cfg.CueVolumes[CueBeat] = 0.6
	cfg.CueVolumes[CueTelegraph] = 0.7
	return cfg
}

// Volume returns the effective volume of c
func (c *Config) Volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// LoadConfig applies environment overrides to the defaults
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 mapped to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// JSON object keyed by cue name, e.g. {"beat":0.2,"miss":0}
	if cueVols := os.Getenv(EnvCueVolumes); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for name, v := range volumes {
				if c, ok := ParseCue(name); ok {
					cfg.CueVolumes[c] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

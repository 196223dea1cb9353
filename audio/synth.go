package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// shapes map a phase in [0,1) to a sample in [-1,1]
var shapes = [...]func(phase float64, rng *rand.Rand) float64{
	WaveSine: func(p float64, _ *rand.Rand) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64, _ *rand.Rand) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64, _ *rand.Rand) float64 { return 2*p - 1 },
	WaveNoise: func(_ float64, rng *rand.Rand) float64 { return rng.Float64()*2 - 1 },
}

// NewOscillator streams a mono tone of freq for duration, duplicated on both channels
// Noise seeds from freq so a cue renders identically every time
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := shapes[wave]
	var rng *rand.Rand
	if wave == WaveNoise {
		rng = rand.New(rand.NewSource(int64(freq) + 1))
	}
	step := freq / float64(rate)
	left := rate.N(duration)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n := min(len(samples), left)
		for i := 0; i < n; i++ {
			v := shape(phase, rng)
			samples[i] = [2]float64{v, v}
			_, phase = math.Modf(phase + step)
		}
		left -= n
		return n, n > 0
	})
}

// envelopeGain is the linear attack/sustain/release level at sample pos
func envelopeGain(pos, total, attack, release int) float64 {
	switch {
	case attack > 0 && pos < attack:
		return float64(pos) / float64(attack)
	case release > 0 && pos >= total-release && pos >= attack:
		return max(float64(total-pos)/float64(release), 0)
	}
	return 1
}

// NewEnvelope shapes s with a linear attack and release and cuts it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, att, rel := rate.N(duration), rate.N(attack), rate.N(release)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n, ok := s.Stream(samples[:min(len(samples), total-pos)])
		for i := 0; i < n; i++ {
			g := envelopeGain(pos, total, att, rel)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok
	})
}

// newVolume scales s linearly; zero or less is silent since beep volume is logarithmic
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if vol <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(vol)
	}
	return v
}

// semitone shifts freq by steps equal-tempered semitones
func semitone(freq float64, steps int) float64 {
	return freq * math.Pow(2, float64(steps)/12)
}

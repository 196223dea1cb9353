package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/status"
	"github.com/lixenwraith/vr-range/vmath"
)

type recordSink struct {
	played []beep.Streamer
}

func (r *recordSink) Play(s beep.Streamer) { r.played = append(r.played, s) }

// drain streams s to exhaustion and returns sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, math.Abs(smp[0]), math.Abs(smp[1]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(t, osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("wave %d peak = %f, want (0, 1]", wave, peak)
		}
	}
}

func TestNoiseIsDeterministic(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewOscillator(0, time.Second, WaveNoise, rate).Stream(a)
	NewOscillator(0, time.Second, WaveNoise, rate).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if got := buf[99][0]; got <= 0 || got >= 0.1 {
		t.Errorf("last sample = %f, want a small positive release tail", got)
	}
}

func TestRenderEveryCue(t *testing.T) {
	rate := beep.SampleRate(22050)
	for c := CueNone + 1; c < cueCount; c++ {
		st := Render(c, 3, 1, rate)
		if st == nil {
			t.Errorf("Render(%s) = nil", c)
			continue
		}
		n, peak := drain(t, st)
		want := rate.N(c.Duration())
		if n < want-len(voicings[c].notes) || n > want+512 {
			t.Errorf("Render(%s) streamed %d samples, want about %d", c, n, want)
		}
		if peak == 0 {
			t.Errorf("Render(%s) is silent", c)
		}
	}
	if Render(CueNone, 0, 1, rate) != nil {
		t.Error("Render(CueNone) != nil")
	}
}

func TestRenderZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Render(CueHit, 0, 0, beep.SampleRate(8000)))
	if peak != 0 {
		t.Errorf("peak = %f, want 0", peak)
	}
}

func TestCueDuration(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueHit, 120 * time.Millisecond},
		{CuePerfect, 120 * time.Millisecond},
		{CueMilestone, 200 * time.Millisecond},
		{CueRoundStart, 400 * time.Millisecond},
		{CueNone, 0},
	}
	for _, tt := range tests {
		if got := tt.cue.Duration(); got != tt.want {
			t.Errorf("%s.Duration() = %v, want %v", tt.cue, got, tt.want)
		}
	}
}

func TestParseCue(t *testing.T) {
	for c := CueNone + 1; c < cueCount; c++ {
		got, ok := ParseCue(c.String())
		if !ok || got != c {
			t.Errorf("ParseCue(%q) = %v/%v, want %v", c.String(), got, ok, c)
		}
	}
	if _, ok := ParseCue("none"); ok {
		t.Error("ParseCue(none) ok")
	}
	if _, ok := ParseCue("bogus"); ok {
		t.Error("ParseCue(bogus) ok")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name  string
		ev    event.GameEvent
		cue   Cue
		pitch int
		pan   float64
	}{
		{"hit", event.GameEvent{Type: event.EventHit, Payload: &event.HitPayload{Combo: 4, Position: vmath.Vec3F{X: 4}}}, CueHit, 3, 0.5},
		{"perfect", event.GameEvent{Type: event.EventHit, Payload: &event.HitPayload{Combo: 30, Rhythm: "perfect"}}, CuePerfect, 12, 0},
		{"miss left", event.GameEvent{Type: event.EventMiss, Payload: &event.MissPayload{Position: vmath.Vec3F{X: -20}}}, CueMiss, 0, -1},
		{"milestone", event.GameEvent{Type: event.EventComboMilestone, Payload: &event.ComboPayload{Combo: 15}}, CueMilestone, 4, 0},
		{"charge", event.GameEvent{Type: event.EventTelegraph, Payload: &event.SpawnPayload{Cue: "charge"}}, CueCharge, 0, 0},
		{"telegraph", event.GameEvent{Type: event.EventTelegraph, Payload: &event.SpawnPayload{}}, CueTelegraph, 0, 0},
		{"absorbed", event.GameEvent{Type: event.EventPlayerDamage, Payload: &event.DamagePayload{Absorbed: true}}, CueShield, 0, 0},
		{"damage", event.GameEvent{Type: event.EventPlayerDamage, Payload: &event.DamagePayload{}}, CueDamage, 0, 0},
		{"beat", event.GameEvent{Type: event.EventRhythmBeat}, CueBeat, 0, 0},
		{"unmapped", event.GameEvent{Type: event.EventScoreChange}, CueNone, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, pitch, pan := CueFor(tt.ev)
			if cue != tt.cue || pitch != tt.pitch || pan != tt.pan {
				t.Errorf("CueFor() = %s/%d/%v, want %s/%d/%v", cue, pitch, pan, tt.cue, tt.pitch, tt.pan)
			}
		})
	}
}

func TestCuePlayerRoutes(t *testing.T) {
	sink := &recordSink{}
	reg := status.NewRegistry()
	p := NewCuePlayer(nil, sink, reg, zerolog.Nop())

	q := event.NewEventQueue()
	bus := event.NewBus(q, nil)
	router := event.NewRouter(q)
	router.Register(p)

	bus.Emit(event.EventHit, &event.HitPayload{Combo: 1})
	bus.Emit(event.EventScoreChange, &event.ScorePayload{Score: 10, Delta: 10})
	bus.Emit(event.EventPlayerDamage, &event.DamagePayload{Position: vmath.Vec3F{X: 2}})
	router.DispatchAll()

	if len(sink.played) != 2 {
		t.Fatalf("played %d cues, want 2", len(sink.played))
	}
	if got := reg.Ints.Get("audio.cues").Load(); got != 2 {
		t.Errorf("audio.cues = %d, want 2", got)
	}
}

func TestCuePlayerMute(t *testing.T) {
	sink := &recordSink{}
	p := NewCuePlayer(nil, sink, nil, zerolog.Nop())
	p.SetMuted(true)
	p.Play(CueHit, 0, 0)
	if len(sink.played) != 0 || !p.Muted() {
		t.Errorf("muted player played %d cues", len(sink.played))
	}
	p.SetMuted(false)
	p.Play(CueHit, 0, 0)
	if len(sink.played) != 1 {
		t.Errorf("played %d cues after unmute, want 1", len(sink.played))
	}

	cfg := DefaultConfig()
	cfg.Enabled = false
	if !NewCuePlayer(cfg, sink, nil, zerolog.Nop()).Muted() {
		t.Error("disabled config did not start muted")
	}
}

func TestCuePlayerSkipsSilencedCue(t *testing.T) {
	sink := &recordSink{}
	cfg := DefaultConfig()
	cfg.CueVolumes[CueBeat] = 0
	p := NewCuePlayer(cfg, sink, nil, zerolog.Nop())
	p.Play(CueBeat, 0, 0)
	if len(sink.played) != 0 {
		t.Errorf("silenced cue played")
	}
}

func TestSpeakerDropsBeforeInit(t *testing.T) {
	s := NewSpeaker()
	s.Play(Render(CueHit, 0, 1, beep.SampleRate(8000)))
	s.Close()
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled || cfg.MasterVolume != 0.5 || cfg.SampleRate != 48000 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if got := cfg.Volume(CueHit); got != 0.5 {
		t.Errorf("Volume(hit) = %f, want 0.5", got)
	}
	if got := cfg.Volume(CueBeat); got != 0.3 {
		t.Errorf("Volume(beat) = %f, want 0.3", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvCueVolumes, `{"miss":0.25,"bogus":1,"beat":-1}`)
	t.Setenv(EnvSampleRate, "22050")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled = true, want false")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f, want clamped 1", cfg.MasterVolume)
	}
	if cfg.CueVolumes[CueMiss] != 0.25 || cfg.CueVolumes[CueBeat] != 0 {
		t.Errorf("cue volumes = %v", cfg.CueVolumes)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", cfg.SampleRate)
	}
}

func TestLoadConfigIgnoresMalformed(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvCueVolumes, "{")
	t.Setenv(EnvSampleRate, "-1")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

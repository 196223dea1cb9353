package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/progress"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(o options) bool
	}{
		{"defaults", nil, false, func(o options) bool {
			return o.mode == mode.DefaultMode && o.rounds == 1 && o.limit == 3*time.Minute && o.seed != 0
		}},
		{"explicit seed", []string{"-seed", "42", "-headless"}, false, func(o options) bool {
			return o.seed == 42 && o.headless
		}},
		{"zero rounds", []string{"-rounds", "0"}, true, nil},
		{"negative limit", []string{"-limit", "-1s"}, true, nil},
		{"unknown flag", []string{"-bogus"}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			o, err := parseFlags(tt.args, &stderr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(o) {
				t.Errorf("parseFlags() = %+v", o)
			}
		})
	}
}

func TestResolveChallenge(t *testing.T) {
	weekly := mode.CurrentChallenge(testEpoch).ID
	tests := []struct {
		flag    string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"weekly", weekly, false},
		{mode.Challenges[0].ID, mode.Challenges[0].ID, false},
		{"no_such_challenge", "", true},
	}
	for _, tt := range tests {
		got, err := resolveChallenge(tt.flag, testEpoch)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveChallenge(%q) error = %v, wantErr %v", tt.flag, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveChallenge(%q) = %q, want %q", tt.flag, got, tt.want)
		}
	}
}

// memoryStore swaps the profile store for an in-process backend
func memoryStore(t *testing.T) *progress.MemoryBackend {
	t.Helper()
	backend := progress.NewMemoryBackend()
	prev := openStore
	openStore = func() (*progress.Store, error) { return progress.NewStore(backend), nil }
	t.Cleanup(func() { openStore = prev })
	return backend
}

func TestRunList(t *testing.T) {
	memoryStore(t)
	var out bytes.Buffer
	if err := run(context.Background(), options{list: true}, zerolog.Nop(), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"MODE", "timeAttack", "CHALLENGE", "this week"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunRejectsUnknownMode(t *testing.T) {
	memoryStore(t)
	opts := options{mode: "noSuchMode", profile: "player", rounds: 1, limit: time.Second, headless: true}
	if err := run(context.Background(), opts, zerolog.Nop(), &bytes.Buffer{}); err == nil {
		t.Error("run() with unknown mode succeeded")
	}
}

func TestRunHeadless(t *testing.T) {
	backend := memoryStore(t)
	opts := options{
		mode:     "timeAttack",
		weapon:   "pistol",
		profile:  "bot",
		seed:     7,
		rounds:   2,
		limit:    3 * time.Minute,
		headless: true,
	}
	var out bytes.Buffer
	if err := run(context.Background(), opts, zerolog.Nop(), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if n := strings.Count(out.String(), "events:"); n != 2 {
		t.Errorf("tally lines = %d, want 2:\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "(timeUp)") {
		t.Errorf("output missing time-up reason:\n%s", out.String())
	}

	p, err := progress.NewStore(backend).Load("bot")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", p.GamesPlayed)
	}
	if p.TotalXP == 0 {
		t.Error("TotalXP = 0 after two rounds")
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	memoryStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := options{mode: "zen", weapon: "pistol", profile: "p", seed: 1, rounds: 1, limit: time.Minute, headless: true}
	if err := run(ctx, opts, zerolog.Nop(), &bytes.Buffer{}); err != nil {
		t.Errorf("run() error = %v", err)
	}
}

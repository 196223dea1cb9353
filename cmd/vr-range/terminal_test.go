package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/progress"
)

func newTestController(t *testing.T, level int) (*controller, *engine.MockTimeProvider) {
	t.Helper()
	s, tp, pose := newBotSession(t, "zen")
	clock := engine.NewPausableClock(tp)
	return newController(s, pose, clock, level), tp
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestControllerActions(t *testing.T) {
	c, _ := newTestController(t, 1)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"escape", key(tcell.KeyEscape), actQuit},
		{"ctrl-c", key(tcell.KeyCtrlC), actQuit},
		{"q", runeKey('q'), actQuit},
		{"restart", runeKey('r'), actRestart},
		{"mute", runeKey('m'), actMute},
		{"share", runeKey('c'), actShare},
		{"aim", key(tcell.KeyLeft), actNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.handleKey(tt.ev); got != tt.want {
				t.Errorf("handleKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestControllerAim(t *testing.T) {
	c, _ := newTestController(t, 1)
	if f := c.forward(); f.Z != -1 || f.X != 0 {
		t.Fatalf("initial forward = %+v, want -Z", f)
	}
	c.handleKey(key(tcell.KeyLeft))
	if f := c.forward(); f.X >= 0 {
		t.Errorf("forward after left = %+v, want negative X", f)
	}
	c.handleKey(key(tcell.KeyUp))
	if f := c.forward(); f.Y <= 0 {
		t.Errorf("forward after up = %+v, want positive Y", f)
	}
	for i := 0; i < 100; i++ {
		c.handleKey(key(tcell.KeyDown))
	}
	if c.pitch != -maxPitch {
		t.Errorf("pitch = %v, want clamp at %v", c.pitch, -maxPitch)
	}
}

func TestControllerShieldAndPause(t *testing.T) {
	c, _ := newTestController(t, 1)
	c.handleKey(runeKey('s'))
	p := c.current()
	if !p.ShieldUp || p.LeftHand.Z >= p.Head.Z {
		t.Errorf("shield pose = %+v, want raised in front of head", p)
	}
	c.handleKey(runeKey('p'))
	if !c.clock.IsPaused() {
		t.Error("clock not paused after p")
	}
	c.handleKey(runeKey('p'))
	if c.clock.IsPaused() {
		t.Error("clock still paused after second p")
	}
	c.handleKey(runeKey('a'))
	if !c.autopilot {
		t.Error("autopilot off after a")
	}
}

func TestControllerFire(t *testing.T) {
	c, tp := newTestController(t, 1)
	if err := c.session.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.session.Tick(tp.Now())
	c.handleKey(runeKey(' '))

	c.handleKey(runeKey('p'))
	c.session.Tick(tp.Advance(parameter.GameUpdateInterval))
	c.handleKey(runeKey(' '))

	rep, _ := c.session.Stop()
	if rep.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, want 1 (paused shot ignored)", rep.ShotsFired)
	}
}

func TestControllerWeaponKeys(t *testing.T) {
	c, _ := newTestController(t, 1)
	c.handleKey(runeKey('2'))
	if got := c.session.Weapon().ID; got != "pistol" {
		t.Errorf("weapon at level 1 after 2 = %s, want pistol", got)
	}

	c, _ = newTestController(t, 3)
	c.handleKey(runeKey('2'))
	if got := c.session.Weapon().ID; got != "shotgun" {
		t.Errorf("weapon at level 3 after 2 = %s, want shotgun", got)
	}
}

func TestNotes(t *testing.T) {
	c, _ := newTestController(t, 1)
	a := &app{}
	notes := a.notes(c.session, c.clock, "")
	if len(notes) != 1 || !strings.HasPrefix(notes[0], helpLine) {
		t.Errorf("notes = %q, want help line only", notes)
	}

	c.clock.Pause()
	a.last = &progress.Outcome{Summary: progress.Summary{Score: 40}, NewLevel: 2}
	notes = a.notes(c.session, c.clock, "copied")
	if len(notes) != 4 || notes[0] != "PAUSED" || !strings.HasPrefix(notes[1], "final 40") || notes[2] != "copied" {
		t.Errorf("notes = %q", notes)
	}
}

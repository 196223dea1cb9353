package main

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vr-range/component"
	"github.com/lixenwraith/vr-range/engine"
	"github.com/lixenwraith/vr-range/event"
	"github.com/lixenwraith/vr-range/game"
	"github.com/lixenwraith/vr-range/mode"
	"github.com/lixenwraith/vr-range/parameter"
	"github.com/lixenwraith/vr-range/system"
	"github.com/lixenwraith/vr-range/vmath"
)

func newBotSession(t *testing.T, modeID string) (*game.Session, *engine.MockTimeProvider, *system.PoseHolder) {
	t.Helper()
	tp := engine.NewMockTimeProvider(testEpoch)
	pose := system.NewPoseHolder(component.DefaultPose())
	s := game.NewSession(game.Config{
		Mode:   mode.NewCatalog().Lookup(modeID),
		Weapon: "pistol",
		Clock:  tp,
		Emit:   event.Discard{},
		Pose:   pose,
		Seed:   3,
		Log:    zerolog.Nop(),
	})
	return s, tp, pose
}

func TestBotPlaysTimeAttack(t *testing.T) {
	s, tp, pose := newBotSession(t, "timeAttack")
	bot := NewBot(s, pose, rand.New(rand.NewSource(1)))
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for i := 0; i < 12000 && s.Running(); i++ {
		now := tp.Advance(parameter.GameUpdateInterval)
		s.Tick(now)
		bot.Step(now)
	}
	if s.Running() {
		t.Fatal("round still running past its duration")
	}
	rep, ok := s.LastReport()
	if !ok {
		t.Fatal("LastReport() missing")
	}
	if rep.Reason != game.EndTimeUp {
		t.Errorf("Reason = %s, want %s", rep.Reason, game.EndTimeUp)
	}
	if rep.TargetsHit == 0 {
		t.Errorf("TargetsHit = 0 after %d shots", bot.shots)
	}
}

func TestBotWants(t *testing.T) {
	s, tp, pose := newBotSession(t, "zen")
	bot := NewBot(s, pose, rand.New(rand.NewSource(1)))
	now := tp.Now()
	old := now.Add(-botReaction)
	snap := game.Snapshot{ActiveColor: component.ColorRed}

	tests := []struct {
		name string
		e    component.Entity
		want bool
	}{
		{"standard", component.Entity{Kind: component.KindStandard, Phase: component.PhaseLive, Visible: true, LiveAt: old}, true},
		{"too fresh", component.Entity{Kind: component.KindStandard, Phase: component.PhaseLive, Visible: true, LiveAt: now}, false},
		{"telegraphing", component.Entity{Kind: component.KindStandard, Phase: component.PhaseTelegraphing, Visible: true, LiveAt: old}, false},
		{"decoy", component.Entity{Kind: component.KindDecoy, Phase: component.PhaseLive, Visible: true, LiveAt: old}, false},
		{"wrong color", component.Entity{Kind: component.KindColorMatch, Color: component.ColorGreen, Phase: component.PhaseLive, Visible: true, LiveAt: old}, false},
		{"right color", component.Entity{Kind: component.KindColorMatch, Color: component.ColorRed, Phase: component.PhaseLive, Visible: true, LiveAt: old}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bot.wants(&tt.e, snap, now); got != tt.want {
				t.Errorf("wants() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBotDodgeLaser(t *testing.T) {
	bot := &Bot{}
	p := component.DefaultPose()
	head := &component.Entity{Kind: component.KindLaserSweep}
	head.Hazard.HeadLaser = true
	head.Hazard.LaserY = 1.7
	bot.dodgeLaser(&p, head)
	if p.Head.Y >= head.Hazard.LaserY-parameter.LaserDuckClearance {
		t.Errorf("head Y = %v, not under the duck clearance", p.Head.Y)
	}

	p = component.DefaultPose()
	bot.dodgeLaser(&p, &component.Entity{Kind: component.KindLaserSweep})
	if lean := vmath.V3FDistXZ(p.Head, p.Rig); lean < parameter.LaserLeanDodge {
		t.Errorf("lean = %v, want at least %v", lean, parameter.LaserLeanDodge)
	}
}

package mode

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vr-range/component"
)

func TestLookupFallsBackToTimeAttack(t *testing.T) {
	c := NewCatalog()
	got := c.Lookup("capture-the-flag")
	if got.ID != DefaultMode {
		t.Errorf("Lookup(unknown).ID = %s, want %s", got.ID, DefaultMode)
	}
	if got.Duration != 60*time.Second || !got.InfiniteLives() {
		t.Errorf("timeAttack = %+v", got)
	}
}

func TestBuiltinModes(t *testing.T) {
	c := NewCatalog()
	tests := []struct {
		id         string
		lives      int
		maxTargets int
		boss       bool
		reflex     bool
	}{
		{"timeAttack", 0, 8, false, false},
		{"survival", 3, 6, false, false},
		{"zen", 0, 5, false, false},
		{"bossRush", 5, 4, true, false},
		{"reflexRush", 3, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m := c.Lookup(tt.id)
			if m.Lives != tt.lives || m.MaxTargets != tt.maxTargets || m.BossMode != tt.boss || m.ReflexMode != tt.reflex {
				t.Errorf("Lookup(%s) = %+v", tt.id, m)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if m.Modifiers.ComboCap != 5 {
				t.Errorf("ComboCap = %d, want 5", m.Modifiers.ComboCap)
			}
		})
	}

	ids := c.IDs()
	if len(ids) != 5 || ids[len(ids)-1] != "bossRush" {
		t.Errorf("IDs() = %v, want bossRush last", ids)
	}
	if c.Unlocked("bossRush", 7) || !c.Unlocked("bossRush", 8) {
		t.Error("bossRush unlock level mismatch")
	}
}

func TestValidate(t *testing.T) {
	base := NewCatalog().Lookup("zen")

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"interval", func(c *Config) { c.SpawnInterval = 10 * time.Millisecond }, ErrSpawnInterval},
		{"targets", func(c *Config) { c.MaxTargets = 50 }, ErrMaxTargets},
		{"lifetime", func(c *Config) { c.TargetLifetime = time.Millisecond }, ErrLifetime},
		{"lives", func(c *Config) { c.Lives = -1 }, ErrLives},
		{"conflict", func(c *Config) { c.BossMode, c.ReflexMode = true, true }, ErrModeConflict},
		{"weight", func(c *Config) { c.Modifiers.WeightMul = map[string]float64{"bonus": -1} }, ErrNegativeWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCurrentChallengeByISOWeek(t *testing.T) {
	// 2024-01-01 is ISO week 1
	ch := CurrentChallenge(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	if ch.ID != Challenges[1].ID {
		t.Errorf("CurrentChallenge(week 1) = %s, want %s", ch.ID, Challenges[1].ID)
	}
	// 2024-02-12 is ISO week 7
	ch = CurrentChallenge(time.Date(2024, 2, 12, 12, 0, 0, 0, time.UTC))
	if ch.ID != Challenges[0].ID {
		t.Errorf("CurrentChallenge(week 7) = %s, want %s", ch.ID, Challenges[0].ID)
	}
}

func TestWithChallengeModifiers(t *testing.T) {
	base := NewCatalog().Lookup("timeAttack")

	sharp, _ := LookupChallenge("sharpshooter")
	cfg := WithChallenge(base, sharp)
	if cfg.Modifiers.RadiusMul != 0.6 || cfg.Modifiers.PointsMul != 2 || cfg.Modifiers.LifetimeMul != 1 {
		t.Errorf("sharpshooter modifiers = %+v", cfg.Modifiers)
	}

	heavy, _ := LookupChallenge("heavy_hitter")
	if k, ok := WithChallenge(base, heavy).Modifiers.ForcedKind(); !ok || k != component.KindHeavy {
		t.Errorf("ForcedKind() = %v, %v; want heavy", k, ok)
	}

	frenzy, _ := LookupChallenge("powerup_frenzy")
	mods := WithChallenge(base, frenzy).Modifiers
	if mods.Weight(component.KindPowerUp) != 3 || mods.Weight(component.KindBonus) != 1 {
		t.Errorf("frenzy weights = %+v", mods.WeightMul)
	}

	if _, ok := LookupChallenge("nope"); ok {
		t.Error("LookupChallenge(nope) found a challenge")
	}
}

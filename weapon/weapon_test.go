package weapon

import (
	"testing"
	"time"

	"github.com/lixenwraith/vr-range/engine"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestLookupFallsBackToPistol(t *testing.T) {
	if got := Lookup("bazooka"); got.ID != DefaultWeapon {
		t.Errorf("Lookup(bazooka) = %s, want %s", got.ID, DefaultWeapon)
	}
	if Known("bazooka") || !Known("smg") {
		t.Error("Known() mismatch")
	}
}

func TestUnlockedOrder(t *testing.T) {
	got := Unlocked(5)
	want := []string{"pistol", "shotgun", "sniper"}
	if len(got) != len(want) {
		t.Fatalf("Unlocked(5) = %d weapons, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("Unlocked(5)[%d] = %s, want %s", i, got[i].ID, want[i])
		}
	}
}

func TestArsenalCooldown(t *testing.T) {
	a := NewArsenal("sniper", nil)

	if _, ok := a.Fire(epoch, 0); !ok {
		t.Fatal("first shot refused")
	}
	if _, ok := a.Fire(epoch.Add(time.Second), 0); ok {
		t.Error("shot inside fire rate accepted")
	}
	shot, ok := a.Fire(epoch.Add(1500*time.Millisecond), 0)
	if !ok || shot.Damage != 2 {
		t.Errorf("Fire() after cooldown = %+v, %v; want damage 2", shot, ok)
	}

	// Pistol has no fire rate
	a.Select("pistol")
	for i := 0; i < 3; i++ {
		if _, ok := a.Fire(epoch, 0); !ok {
			t.Errorf("pistol shot %d refused", i)
		}
	}
}

func TestRailgunCharge(t *testing.T) {
	tests := []struct {
		charge time.Duration
		want   float64
	}{
		{0, 1},
		{750 * time.Millisecond, 2},
		{1500 * time.Millisecond, 3},
		{5 * time.Second, 3},
	}

	for _, tt := range tests {
		a := NewArsenal("railgun", nil)
		shot, _ := a.Fire(epoch, tt.charge)
		if shot.Damage != tt.want {
			t.Errorf("charge %v: damage = %v, want %v", tt.charge, shot.Damage, tt.want)
		}
	}
}

func TestMultiShotOnlyForSingleProjectile(t *testing.T) {
	tp := engine.NewMockTimeProvider(epoch)
	pu := NewPowerUps(engine.NewScheduler(tp), nil)
	pu.Activate(MultiShot)

	a := NewArsenal("pistol", pu)
	shot, _ := a.Fire(epoch, 0)
	if shot.Projectiles != MultiShotProjectiles || shot.Spread != MultiShotSpread {
		t.Errorf("pistol with multi-shot = %+v", shot)
	}

	a.Select("shotgun")
	shot, _ = a.Fire(epoch, 0)
	if shot.Projectiles != 5 {
		t.Errorf("shotgun with multi-shot projectiles = %d, want 5", shot.Projectiles)
	}
}

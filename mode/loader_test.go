package mode

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadOverridesKeepUnsetFields(t *testing.T) {
	c := NewCatalog()
	doc := []byte(`
modes:
  survival:
    lives: 5
    spawnInterval: 1800ms
  gauntlet:
    name: Gauntlet
    maxTargets: 10
    targetLifetime: 3s
    modifiers:
      pointsMul: 1.5
`)

	applied, err := c.Load(doc)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(applied) != 2 || applied[0] != "gauntlet" || applied[1] != "survival" {
		t.Errorf("applied = %v, want [gauntlet survival]", applied)
	}

	s := c.Lookup("survival")
	if s.Lives != 5 || s.SpawnInterval != 1800*time.Millisecond {
		t.Errorf("survival override = %+v", s)
	}
	if s.MaxTargets != 6 || s.XPMultiplier != 1.5 {
		t.Errorf("survival lost built-in fields: %+v", s)
	}

	g := c.Lookup("gauntlet")
	if g.ID != "gauntlet" || g.MaxTargets != 10 || g.SpawnInterval != 1500*time.Millisecond || g.Modifiers.PointsMul != 1.5 {
		t.Errorf("gauntlet = %+v", g)
	}
}

func TestLoadRejectsInvalidModeOnly(t *testing.T) {
	c := NewCatalog()
	doc := []byte(`
modes:
  zen:
    maxTargets: 99
  survival:
    lives: 4
`)

	applied, err := c.Load(doc)
	if err == nil {
		t.Fatal("Load() accepted maxTargets 99")
	}
	if len(applied) != 1 || applied[0] != "survival" {
		t.Errorf("applied = %v, want [survival]", applied)
	}
	if c.Lookup("zen").MaxTargets != 5 {
		t.Error("invalid override replaced zen")
	}
}

func TestLoadFileAndMarshalRoundTrip(t *testing.T) {
	c := NewCatalog()
	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "modes.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	fresh := NewCatalog()
	applied, err := fresh.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(applied) != 5 {
		t.Errorf("applied %d modes, want 5", len(applied))
	}
	if !reflect.DeepEqual(fresh.Lookup("reflexRush"), c.Lookup("reflexRush")) {
		t.Error("reflexRush changed across round trip")
	}

	if _, err := fresh.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) returned nil error")
	}
}

func TestIsModeFile(t *testing.T) {
	for path, want := range map[string]bool{
		"modes.yaml":    true,
		"MODES.YML":     true,
		"modes.yaml~":   false,
		"notes.txt":     false,
		".modes.swp":    false,
		"dir/fast.yaml": true,
	} {
		if got := IsModeFile(path); got != want {
			t.Errorf("IsModeFile(%q) = %v, want %v", path, got, want)
		}
	}
}

package status

import (
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	reg := NewRegistry()

	live := reg.Ints.Get("registry.live")
	live.Store(3)
	if again := reg.Ints.Get("registry.live"); again != live {
		t.Fatal("Get returned a different pointer for the same key")
	}

	reg.Floats.Get("run.multiplier").Set(1.5)
	reg.Bools.Get("run.rhythm").Store(true)
	reg.Strings.Get("round.mode").Store("timeAttack")

	if got := reg.TotalCount(); got != 4 {
		t.Errorf("TotalCount() = %d, want 4", got)
	}

	snap := reg.Snapshot()
	want := []Metric{
		{"registry.live", "3"},
		{"round.mode", "timeAttack"},
		{"run.multiplier", "1.50"},
		{"run.rhythm", "true"},
	}
	if len(snap) != len(want) {
		t.Fatalf("Snapshot() = %v, want %v", snap, want)
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Snapshot()[%d] = %v, want %v", i, snap[i], want[i])
		}
	}
}

func TestMetricMapCount(t *testing.T) {
	m := NewMetricMap[Gauge]()
	m.Get("a").Set(1)
	m.Get("a").Set(2)
	m.Get("b")
	if got := m.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if !m.Has("b") || m.Has("c") {
		t.Error("Has() disagrees with registered keys")
	}
	if got := m.Get("a").Get(); got != 2 {
		t.Errorf("Get(a) = %v, want 2", got)
	}
}

func TestLabelZero(t *testing.T) {
	var l Label
	if got := l.Load(); got != "" {
		t.Errorf("zero Label = %q, want empty", got)
	}
	l.Store("a long label that is kept whole")
	if got := l.Load(); got != "a long label that is kept whole" {
		t.Errorf("Load() = %q", got)
	}
}

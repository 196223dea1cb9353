package component

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"standard", KindStandard},
		{"dangerZone", KindDangerZone},
		{"DANGERZONE", KindDangerZone},
		{"colorMatch", KindColorMatch},
		{"mystery", KindStandard},
		{"", KindStandard},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseKind(tt.in); got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindRoundTrip(t *testing.T) {
	for k := KindStandard; k < kindCount; k++ {
		b, _ := k.MarshalText()
		var back Kind
		if err := back.UnmarshalText(b); err != nil || back != k {
			t.Errorf("round trip %v = %v (%v)", k, back, err)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !KindCharger.Shootable() || !KindCharger.IsHazard() {
		t.Error("charger should be shootable hazard")
	}
	if KindMelee.Shootable() {
		t.Error("melee should only yield to punches")
	}
	if KindLaserSweep.Shootable() || KindLaserSweep.IsTarget() {
		t.Error("laser sweep should not be shootable")
	}
	if StatsOf(KindProjectile) != StatsOf(KindStandard) {
		t.Error("non-target stats should fall back to standard")
	}
}

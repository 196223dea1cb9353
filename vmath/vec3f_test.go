package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestYawRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dir  Vec3F
		yaw  float64
	}{
		{"forward", Vec3F{Z: -1}, 0},
		{"left", Vec3F{X: -1}, math.Pi / 2},
		{"right", Vec3F{X: 1}, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Yaw(tt.dir); !near(got, tt.yaw) {
				t.Errorf("Yaw(%v) = %v, want %v", tt.dir, got, tt.yaw)
			}
			back := FromYaw(tt.yaw)
			if !near(back.X, tt.dir.X) || !near(back.Z, tt.dir.Z) {
				t.Errorf("FromYaw(%v) = %v, want %v", tt.yaw, back, tt.dir)
			}
		})
	}
}

func TestRotateYMatchesFromYaw(t *testing.T) {
	fwd := Vec3F{Z: -1}
	for _, a := range []float64{0.3, 1.2, -2.5, math.Pi} {
		got := V3FRotateY(fwd, a)
		want := FromYaw(a)
		if !near(got.X, want.X) || !near(got.Z, want.Z) {
			t.Errorf("V3FRotateY(fwd, %v) = %v, want %v", a, got, want)
		}
	}
}

func TestRayHitsSphere(t *testing.T) {
	origin := Vec3F{Y: 1.6}
	dir := Vec3F{Z: -1}

	if d, ok := RayHitsSphere(origin, dir, Vec3F{Y: 1.6, Z: -5}, 0.3); !ok || !near(d, 4.7) {
		t.Errorf("center hit = (%v, %v), want (4.7, true)", d, ok)
	}
	if _, ok := RayHitsSphere(origin, dir, Vec3F{X: 0.5, Y: 1.6, Z: -5}, 0.3); ok {
		t.Error("offset sphere reported hit")
	}
	if _, ok := RayHitsSphere(origin, dir, Vec3F{Y: 1.6, Z: 5}, 0.3); ok {
		t.Error("sphere behind origin reported hit")
	}
}

func TestDistXZIgnoresHeight(t *testing.T) {
	if got := V3FDistXZ(Vec3F{X: 3, Y: 10}, Vec3F{Z: 4}); !near(got, 5) {
		t.Errorf("V3FDistXZ = %v, want 5", got)
	}
}

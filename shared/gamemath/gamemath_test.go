package gamemath

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPlaneRoundTrip(t *testing.T) {
	v := PlaneToWorld(12, 34, 2)
	if v.Y() != 2 {
		t.Fatalf("height = %v", v.Y())
	}
	x, z := WorldToPlane(v)
	if x != 12 || z != 34 {
		t.Errorf("WorldToPlane = (%v, %v), want (12, 34)", x, z)
	}

	x, z = WorldToPlane(vector.Vector{5})
	if x != 5 || z != 0 {
		t.Errorf("short vector = (%v, %v)", x, z)
	}
	x, z = WorldToPlane(nil)
	if x != 0 || z != 0 {
		t.Errorf("nil vector = (%v, %v)", x, z)
	}
}

func TestCalculateAimDirection(t *testing.T) {
	tests := []struct {
		name           string
		px, pz, tx, tz float64
		fx, fz         float64
		wantX, wantZ   float64
	}{
		{"toward cursor", 0, 0, 3, 4, 1, 0, 0.6, 0.8},
		{"cursor on player uses facing", 5, 5, 5, 5, 0, -2, 0, -1},
		{"no facing defaults right", 5, 5, 5, 5, 0, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, z := CalculateAimDirection(tt.px, tt.pz, tt.tx, tt.tz, tt.fx, tt.fz)
			if !near(x, tt.wantX) || !near(z, tt.wantZ) {
				t.Errorf("got (%v, %v), want (%v, %v)", x, z, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestCalculateSplitVelocity(t *testing.T) {
	x, z := CalculateSplitVelocity(0, 0.5, 1, 3)
	if !near(x, 2) || !near(z, 0) {
		t.Errorf("got (%v, %v), want (2, 0)", x, z)
	}
	x, z = CalculateSplitVelocity(math.Pi/2, 7, 1, 3)
	if !near(math.Hypot(x, z), 3) {
		t.Errorf("speed = %v, want clamped to 3", math.Hypot(x, z))
	}
}

func TestUpdateStamina(t *testing.T) {
	s, exhausted := UpdateStamina(10, 100, 5, 3.7, 1, true)
	if s != 5 || exhausted {
		t.Errorf("drain = %v %v", s, exhausted)
	}
	s, exhausted = UpdateStamina(2, 100, 5, 3.7, 1, true)
	if s != 0 || !exhausted {
		t.Errorf("empty = %v %v", s, exhausted)
	}
	s, _ = UpdateStamina(99, 100, 5, 3.7, 1, false)
	if s != 100 {
		t.Errorf("regen cap = %v", s)
	}
}

func TestCountDownAndClamp(t *testing.T) {
	if got := CountDown(0.1, 0.5); got != 0 {
		t.Errorf("CountDown = %v", got)
	}
	if got := ClampSpeed(-9, 4); got != -4 {
		t.Errorf("ClampSpeed = %v", got)
	}
	if got := Reflect(3, true); got != -3 {
		t.Errorf("Reflect = %v", got)
	}
}

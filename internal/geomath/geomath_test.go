package geomath

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDegreeTrig(t *testing.T) {
	cases := []struct {
		name string
		fn   func(float64) float64
		arg  float64
		want float64
	}{
		{"sin 30", SinDeg, 30, 0.5},
		{"sin 90", SinDeg, 90, 1.0},
		{"cos 60", CosDeg, 60, 0.5},
		{"cos 0", CosDeg, 0, 1.0},
		{"tan 45", TanDeg, 45, 1.0},
		{"cot 45", CotDeg, 45, 1.0},
		{"cot 30", CotDeg, 30, math.Sqrt(3)},
	}
	for _, c := range cases {
		got := c.fn(c.arg)
		if !almostEqual(got, c.want, 1e-9) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestArctanDeg(t *testing.T) {
	if got := ArctanDeg(1); !almostEqual(got, 45, 1e-9) {
		t.Errorf("ArctanDeg(1) = %v, want 45", got)
	}
	// Round trip through tangent for a handful of angles.
	for _, deg := range []float64{5, 20, 35, 60, 85} {
		if got := ArctanDeg(TanDeg(deg)); !almostEqual(got, deg, 1e-9) {
			t.Errorf("ArctanDeg(TanDeg(%v)) = %v", deg, got)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{3.14159, 4, 3.1416},
		{0.787401, 4, 0.7874},
		{1.2364, 2, 1.24},
		{-0.625, 2, -0.63},
		{41.4423, 2, 41.44},
		{5.7, 2, 5.7},
	}
	for _, c := range cases {
		if got := Round(c.v, c.places); !almostEqual(got, c.want, 1e-9) {
			t.Errorf("Round(%v, %d) = %v, want %v", c.v, c.places, got, c.want)
		}
	}
}

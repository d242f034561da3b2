package foundation

import (
	"math"
	"testing"
)

func TestNewSizeValidation(t *testing.T) {
	cases := []struct {
		name    string
		shape   Shape
		d, w, l float64
		wantErr bool
	}{
		{"valid square", Square, 1.5, 2.0, 0, false},
		{"valid strip", Strip, 1.0, 1.2, 0, false},
		{"valid rectangle", Rectangle, 1.5, 1.2, 2.4, false},
		{"rectangle without length", Rectangle, 1.5, 1.2, 0, true},
		{"zero depth", Square, 0, 2.0, 0, true},
		{"negative width", Square, 1.5, -1, 0, true},
		{"unknown shape", Shape("triangle"), 1.5, 2.0, 0, true},
	}
	for _, c := range cases {
		_, err := NewSize(c.shape, c.d, c.w, c.l)
		if (err != nil) != c.wantErr {
			t.Errorf("%s: err = %v, wantErr = %v", c.name, err, c.wantErr)
		}
	}
}

func TestLengthResolution(t *testing.T) {
	sq, _ := NewSize(Square, 1.5, 2.0, 0)
	if sq.Length() != 2.0 {
		t.Errorf("square length = %v, want width", sq.Length())
	}
	circ, _ := NewSize(Circle, 1.5, 1.8, 0)
	if circ.Length() != 1.8 {
		t.Errorf("circle length = %v, want diameter", circ.Length())
	}
	st, _ := NewSize(Strip, 1.0, 1.2, 0)
	if !math.IsInf(st.Length(), 1) {
		t.Errorf("strip length = %v, want +Inf", st.Length())
	}
}

func TestEffectiveWidth(t *testing.T) {
	s, err := NewSize(Square, 1.5, 2.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.EffectiveWidth(); got != 2.0 {
		t.Errorf("effective width = %v, want 2.0", got)
	}
	if err := s.SetEccentricity(0.3); err != nil {
		t.Fatal(err)
	}
	if got := s.EffectiveWidth(); got != 1.4 {
		t.Errorf("effective width = %v, want 1.4", got)
	}
	// Effective width must stay positive.
	if err := s.SetEccentricity(1.0); err == nil {
		t.Error("expected error for eccentricity collapsing the effective width")
	}
	if err := s.SetWidth(0.5); err == nil {
		t.Error("expected error for width collapsing the effective width")
	}
}

func TestFactorShape(t *testing.T) {
	sq, _ := NewSize(Square, 1.5, 2.0, 0)
	if got := sq.FactorShape(); got != Square {
		t.Errorf("concentric square -> %v, want square", got)
	}
	// Eccentricity turns the square into an effective rectangle.
	sq.SetEccentricity(0.2)
	if got := sq.FactorShape(); got != Rectangle {
		t.Errorf("eccentric square -> %v, want rectangle", got)
	}
	st, _ := NewSize(Strip, 1.0, 1.2, 0)
	if got := st.FactorShape(); got != Strip {
		t.Errorf("strip -> %v, want strip", got)
	}
	rect, _ := NewSize(Rectangle, 1.5, 1.2, 2.4)
	if got := rect.FactorShape(); got != Rectangle {
		t.Errorf("rectangle -> %v, want rectangle", got)
	}
}

func TestWaterLevel(t *testing.T) {
	s, _ := NewSize(Square, 1.5, 2.0, 0)
	if _, ok := s.WaterLevel(); ok {
		t.Error("new footing should be dry")
	}
	if err := s.SetWaterLevel(0.4); err != nil {
		t.Fatal(err)
	}
	if lvl, ok := s.WaterLevel(); !ok || lvl != 0.4 {
		t.Errorf("water level = %v, %v", lvl, ok)
	}
	s.ClearWaterLevel()
	if _, ok := s.WaterLevel(); ok {
		t.Error("ClearWaterLevel should mark the profile dry")
	}
	if err := s.SetWaterLevel(-1); err == nil {
		t.Error("expected error for negative water level")
	}
}

func TestNewSoil(t *testing.T) {
	if _, err := NewSoil(20, 20, 18); err != nil {
		t.Errorf("valid soil rejected: %v", err)
	}
	if _, err := NewSoil(-1, 20, 18); err == nil {
		t.Error("negative friction angle accepted")
	}
	if _, err := NewSoil(20, -5, 18); err == nil {
		t.Error("negative cohesion accepted")
	}
	if _, err := NewSoil(20, 20, 0); err == nil {
		t.Error("zero unit weight accepted")
	}
}

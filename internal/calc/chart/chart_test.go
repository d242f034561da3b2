package chart

import (
	"testing"

	bearing "Stratum/internal/calc/bearing"
)

func baseFooting() bearing.Input {
	return bearing.Input{
		Theory:           "hansen",
		Shape:            "square",
		FrictionAngleDeg: 20,
		CohesionKPa:      20,
		UnitWeightKNM3:   18,
		DepthM:           1.5,
		WidthM:           2,
	}
}

func TestCapacityCurve(t *testing.T) {
	pts, err := CapacityCurve(Input{Footing: baseFooting(), MinWidthM: 1, MaxWidthM: 3, Steps: 5})
	if err != nil {
		t.Fatalf("CapacityCurve: %v", err)
	}
	if len(pts) != 5 {
		t.Fatalf("len(pts) = %d, want 5", len(pts))
	}
	if pts[0].X != 1 || pts[4].X != 3 {
		t.Errorf("width range = [%v, %v], want [1, 3]", pts[0].X, pts[4].X)
	}
	for _, pt := range pts {
		if pt.Y <= 0 {
			t.Errorf("capacity at width %v = %v, want > 0", pt.X, pt.Y)
		}
	}
}

func TestCapacityCurveDefaults(t *testing.T) {
	pts, err := CapacityCurve(Input{Footing: baseFooting()})
	if err != nil {
		t.Fatalf("CapacityCurve: %v", err)
	}
	if len(pts) != defaultSteps {
		t.Errorf("len(pts) = %d, want %d", len(pts), defaultSteps)
	}
}

func TestCapacityCurveInvalidFooting(t *testing.T) {
	in := Input{Footing: bearing.Input{Theory: "nope"}}
	if _, err := CapacityCurve(in); err == nil {
		t.Error("expected error for unknown theory")
	}
}

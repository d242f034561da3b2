package batch

import (
	"testing"

	allowable "Stratum/internal/calc/allowable"
	bearing "Stratum/internal/calc/bearing"
)

func TestCalculateBearing(t *testing.T) {
	in := BearingBatchInput{Items: []bearing.Input{
		{Theory: "hansen", Shape: "square", FrictionAngleDeg: 20, CohesionKPa: 20, UnitWeightKNM3: 18, DepthM: 1.5, WidthM: 2.0},
		{Theory: "terzaghi", Shape: "strip", FrictionAngleDeg: 35, CohesionKPa: 15, UnitWeightKNM3: 18, DepthM: 1.0, WidthM: 1.2},
	}}
	out, err := CalculateBearing(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(out.Results))
	}
	for i, r := range out.Results {
		if r.UltimateKPa <= 0 {
			t.Errorf("item %d: q_u = %v", i, r.UltimateKPa)
		}
	}

	if _, err := CalculateBearing(BearingBatchInput{}); err == nil {
		t.Error("empty batch accepted")
	}
	// A bad item fails the whole batch with its index.
	in.Items[1].Theory = "unknown"
	if _, err := CalculateBearing(in); err == nil {
		t.Error("invalid item accepted")
	}
}

func TestCalculateAllowable(t *testing.T) {
	in := AllowableBatchInput{Items: []allowable.Input{
		{Theory: "bowles", FoundationType: "pad", CorrectedN: 12, TolSettlementMM: 20, DepthM: 1.5, WidthM: 1.2},
		{Theory: "meyerhof", FoundationType: "mat", CorrectedN: 15, TolSettlementMM: 25, DepthM: 2.0, WidthM: 3.0},
	}}
	out, err := CalculateAllowable(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(out.Results))
	}
}

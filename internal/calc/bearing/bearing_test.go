package bearing

import (
	"math"
	"testing"

	"Stratum/internal/foundation"
	"Stratum/internal/geomath"
)

// withinPct reports whether got is within pct percent of want.
func withinPct(got, want, pct float64) bool {
	if want == 0 {
		return math.Abs(got) < 1e-9
	}
	return math.Abs(got-want)/math.Abs(want)*100 <= pct
}

func TestHansenFactorsReference(t *testing.T) {
	// Published Hansen values at phi = 20 degrees.
	if nc := HansenNc(20); !withinPct(nc, 14.83, 1) {
		t.Errorf("HansenNc(20) = %v, want ~14.83", nc)
	}
	if nq := HansenNq(20); !withinPct(nq, 6.40, 1) {
		t.Errorf("HansenNq(20) = %v, want ~6.40", nq)
	}
	if ng := HansenNgamma(20); !withinPct(ng, 3.54, 1) {
		t.Errorf("HansenNgamma(20) = %v, want ~3.54", ng)
	}
}

func TestTerzaghiFactorsReference(t *testing.T) {
	// Published Terzaghi values at phi = 35 degrees.
	if nc := TerzaghiNc(35); !withinPct(nc, 57.8, 1) {
		t.Errorf("TerzaghiNc(35) = %v, want ~57.8", nc)
	}
	if nq := TerzaghiNq(35); !withinPct(nq, 41.44, 1) {
		t.Errorf("TerzaghiNq(35) = %v, want ~41.44", nq)
	}
	if ng := TerzaghiNgamma(35); !withinPct(ng, 46.52, 1) {
		t.Errorf("TerzaghiNgamma(35) = %v, want ~46.52", ng)
	}
}

func TestVesicFactors(t *testing.T) {
	if nq, hq := VesicNq(20), HansenNq(20); nq != hq {
		t.Errorf("VesicNq(20) = %v, want Hansen value %v", nq, hq)
	}
	if ng := VesicNgamma(20); !withinPct(ng, 5.39, 1) {
		t.Errorf("VesicNgamma(20) = %v, want ~5.39", ng)
	}
}

func TestZeroFrictionAngleSpecialCases(t *testing.T) {
	if nc := TerzaghiNc(0); nc != 5.7 {
		t.Errorf("TerzaghiNc(0) = %v, want 5.7", nc)
	}
	for name, fn := range map[string]func(float64) float64{
		"hansen": HansenNc, "vesic": VesicNc, "meyerhof": MeyerhofNc,
	} {
		if nc := fn(0); nc != 5.14 {
			t.Errorf("%s Nc(0) = %v, want 5.14", name, nc)
		}
	}
	// Frictionless soils also lose the surcharge exponent entirely.
	if nq := HansenNq(0); nq != 1.0 {
		t.Errorf("HansenNq(0) = %v, want 1.0", nq)
	}
}

func TestNqMonotonicIncreasing(t *testing.T) {
	fns := map[string]func(float64) float64{
		"terzaghi": TerzaghiNq,
		"hansen":   HansenNq,
		"vesic":    VesicNq,
		"meyerhof": MeyerhofNq,
	}
	for name, fn := range fns {
		prev := 0.0
		for phi := 0.0; phi < 50; phi += 0.5 {
			nq := fn(phi)
			if nq < 1 {
				t.Fatalf("%s Nq(%v) = %v < 1", name, phi, nq)
			}
			if nq < prev {
				t.Fatalf("%s Nq not monotonic at phi=%v: %v < %v", name, phi, nq, prev)
			}
			prev = nq
		}
	}
}

func TestInclinationFactors(t *testing.T) {
	ic, iq, ig := inclinationFactors(0, 20)
	if ic != 1 || iq != 1 || ig != 1 {
		t.Errorf("vertical load: got %v %v %v, want all 1", ic, iq, ig)
	}
	ic, iq, ig = inclinationFactors(15, 30)
	want := geomath.Round(math.Pow(1-15.0/90.0, 2), 2)
	if ic != want || iq != want {
		t.Errorf("ic/iq = %v/%v, want %v", ic, iq, want)
	}
	wantG := geomath.Round(math.Pow(1-15.0/30.0, 2), 2)
	if ig != wantG {
		t.Errorf("ig = %v, want %v", ig, wantG)
	}
	// Division guard at phi = 0.
	if _, _, ig := inclinationFactors(10, 0); ig != 1 {
		t.Errorf("ig at phi=0 = %v, want 1", ig)
	}
}

func TestDepthRatioCap(t *testing.T) {
	shallow, _ := foundation.NewSize(foundation.Square, 0.75, 1.5, 0)
	if k := depthRatio(shallow); k != 0.5 {
		t.Errorf("k = %v, want 0.5", k)
	}
	deep, _ := foundation.NewSize(foundation.Square, 3.0, 1.5, 0)
	if k := depthRatio(deep); k != math.Atan(2.0) {
		t.Errorf("k = %v, want atan(2)", k)
	}
}

func TestHansenUltimateBearingCapacityReference(t *testing.T) {
	// phi=20, c=20 kPa, gamma=18 kN/m3, square 2.0 m at 1.5 m depth.
	soil, err := foundation.NewSoil(20, 20, 18)
	if err != nil {
		t.Fatal(err)
	}
	size, err := foundation.NewSize(foundation.Square, 1.5, 2.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	calc, err := New(TheoryHansen, soil, size, false)
	if err != nil {
		t.Fatal(err)
	}
	if qu := calc.BearingCapacity(); !withinPct(qu, 809.36, 1) {
		t.Errorf("q_u = %v, want ~809.36", qu)
	}
}

func TestTerzaghiStripUltimateBearingCapacity(t *testing.T) {
	soil, _ := foundation.NewSoil(35, 15, 18)

	dry, _ := foundation.NewSize(foundation.Strip, 1.0, 1.2, 0)
	calc, err := New(TheoryTerzaghi, soil, dry, false)
	if err != nil {
		t.Fatal(err)
	}
	if qu := calc.BearingCapacity(); !withinPct(qu, 2114.586, 1) {
		t.Errorf("dry strip q_u = %v, want ~2114.586", qu)
	}

	wet, _ := foundation.NewSize(foundation.Strip, 1.5, 2.0, 0)
	if err := wet.SetWaterLevel(0.4); err != nil {
		t.Fatal(err)
	}
	calc, err = New(TheoryTerzaghi, soil, wet, false)
	if err != nil {
		t.Fatal(err)
	}
	if qu := calc.BearingCapacity(); !withinPct(qu, 1993.59, 1) {
		t.Errorf("wet strip q_u = %v, want ~1993.59", qu)
	}
}

func TestWaterCorrectionsDry(t *testing.T) {
	soil, _ := foundation.NewSoil(25, 10, 18)
	size, _ := foundation.NewSize(foundation.Square, 1.5, 2.0, 0)
	calc, _ := New(TheoryVesic, soil, size, false)
	ws, we := calc.waterCorrections()
	if ws != 1 || we != 1 {
		t.Errorf("dry corrections = %v, %v, want 1, 1", ws, we)
	}
	// Water well below the base leaves both terms nearly untouched.
	size.SetWaterLevel(10)
	ws, we = calc.waterCorrections()
	if ws != 1 || we != 1 {
		t.Errorf("deep water corrections = %v, %v, want 1, 1", ws, we)
	}
	// Water above the base reduces the surcharge.
	size.SetWaterLevel(0.5)
	ws, we = calc.waterCorrections()
	if ws >= 1 {
		t.Errorf("surcharge correction = %v, want < 1", ws)
	}
	if we != 0.5 {
		t.Errorf("embedment correction = %v, want 0.5", we)
	}
}

func TestLocalShearAdjustment(t *testing.T) {
	soil, _ := foundation.NewSoil(30, 12, 18)
	size, _ := foundation.NewSize(foundation.Square, 1.5, 2.0, 0)

	raw, _ := New(TheoryHansen, soil, size, false)
	// Round-trip law: without local shear the reported values equal the raw
	// inputs exactly.
	if raw.FrictionAngle() != 30 || raw.Cohesion() != 12 {
		t.Errorf("untransformed calculator reported %v, %v", raw.FrictionAngle(), raw.Cohesion())
	}

	adj, _ := New(TheoryHansen, soil, size, true)
	wantPhi := geomath.ArctanDeg(2.0 / 3.0 * geomath.TanDeg(30))
	if got := adj.FrictionAngle(); math.Abs(got-wantPhi) > 1e-12 {
		t.Errorf("adjusted phi = %v, want %v", got, wantPhi)
	}
	if got := adj.Cohesion(); math.Abs(got-8.0) > 1e-12 {
		t.Errorf("adjusted c = %v, want 8", got)
	}
	// The transform is applied on read, exactly once: repeated reads do not
	// compound it.
	first := adj.FrictionAngle()
	for i := 0; i < 5; i++ {
		if got := adj.FrictionAngle(); got != first {
			t.Fatalf("friction angle drifted on read %d: %v != %v", i, got, first)
		}
	}
	// The transform is not self-inverse, so compounding would be visible.
	double := geomath.ArctanDeg(2.0 / 3.0 * geomath.TanDeg(wantPhi))
	if math.Abs(double-wantPhi) < 1e-6 {
		t.Fatal("local shear transform unexpectedly self-inverse; test is vacuous")
	}
	if adj.BearingCapacity() >= raw.BearingCapacity() {
		t.Error("local shear should reduce the ultimate capacity")
	}
}

func TestBearingCapacityIdempotent(t *testing.T) {
	soil, _ := foundation.NewSoil(20, 20, 18)
	size, _ := foundation.NewSize(foundation.Rectangle, 1.5, 1.5, 2.5)
	size.SetWaterLevel(1.0)
	size.SetLoadAngle(10)
	for _, theory := range []Theory{TheoryTerzaghi, TheoryHansen, TheoryVesic, TheoryMeyerhof} {
		calc, err := New(theory, soil, size, true)
		if err != nil {
			t.Fatal(err)
		}
		a, b := calc.BearingCapacity(), calc.BearingCapacity()
		if a != b {
			t.Errorf("%s: repeated calls differ: %v != %v", theory, a, b)
		}
	}
}

func TestCalculateDispatch(t *testing.T) {
	water := 0.4
	in := Input{
		Theory:           "hansen",
		Shape:            "square",
		FrictionAngleDeg: 20,
		CohesionKPa:      20,
		UnitWeightKNM3:   18,
		DepthM:           1.5,
		WidthM:           2.0,
		WaterLevelM:      &water,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatal(err)
	}
	if res.UltimateKPa <= 0 {
		t.Errorf("q_u = %v, want positive", res.UltimateKPa)
	}
	if res.FactorOfSafety != defaultFactorOfSafety {
		t.Errorf("default FS = %v", res.FactorOfSafety)
	}
	if !withinPct(res.AllowableKPa, res.UltimateKPa/3, 1) {
		t.Errorf("allowable %v inconsistent with ultimate %v", res.AllowableKPa, res.UltimateKPa)
	}

	if _, err := Calculate(Input{Theory: "bowles", Shape: "square", FrictionAngleDeg: 20, CohesionKPa: 20, UnitWeightKNM3: 18, DepthM: 1.5, WidthM: 2}); err == nil {
		t.Error("unknown theory accepted")
	}
	if _, err := Calculate(Input{Theory: "hansen", Shape: "rectangle", FrictionAngleDeg: 20, CohesionKPa: 20, UnitWeightKNM3: 18, DepthM: 1.5, WidthM: 2}); err == nil {
		t.Error("rectangle without length accepted")
	}
}

package bearing

import (
	"fmt"

	"Stratum/internal/foundation"
	"Stratum/internal/geomath"
)

// defaultFactorOfSafety divides the ultimate capacity into a strength-based
// allowable value when the caller does not choose one.
const defaultFactorOfSafety = 3.0

type Input struct {
	Theory           string   `json:"theory"`
	Shape            string   `json:"shape"`
	FrictionAngleDeg float64  `json:"friction_angle_deg"`
	CohesionKPa      float64  `json:"cohesion_kpa"`
	UnitWeightKNM3   float64  `json:"unit_weight_kn_m3"`
	DepthM           float64  `json:"depth_m"`
	WidthM           float64  `json:"width_m"`
	LengthM          float64  `json:"length_m"`
	EccM             float64  `json:"ecc_m"`
	WaterLevelM      *float64 `json:"water_level_m"` // nil means dry
	LoadAngleDeg     float64  `json:"load_angle_deg"`
	LocalShear       bool     `json:"local_shear"`
	FactorOfSafety   float64  `json:"factor_of_safety"`
}

type Result struct {
	UltimateKPa            float64     `json:"ultimate_kpa"`
	AllowableKPa           float64     `json:"allowable_kpa"`
	FactorOfSafety         float64     `json:"factor_of_safety"`
	Factors                Factors     `json:"factors"`
	Corrections            Corrections `json:"corrections"`
	DesignFrictionAngleDeg float64     `json:"design_friction_angle_deg"`
	DesignCohesionKPa      float64     `json:"design_cohesion_kpa"`
	EffectiveWidthM        float64     `json:"effective_width_m"`
	Notes                  string      `json:"notes"`
}

// Calculate validates the request, builds the matching calculator and runs
// it once.
func Calculate(in Input) (Result, error) {
	theory, err := ParseTheory(in.Theory)
	if err != nil {
		return Result{}, err
	}
	soil, err := foundation.NewSoil(in.FrictionAngleDeg, in.CohesionKPa, in.UnitWeightKNM3)
	if err != nil {
		return Result{}, err
	}
	size, err := foundation.NewSize(foundation.Shape(in.Shape), in.DepthM, in.WidthM, in.LengthM)
	if err != nil {
		return Result{}, err
	}
	if in.EccM != 0 {
		if err := size.SetEccentricity(in.EccM); err != nil {
			return Result{}, err
		}
	}
	if in.WaterLevelM != nil {
		if err := size.SetWaterLevel(*in.WaterLevelM); err != nil {
			return Result{}, err
		}
	}
	if in.LoadAngleDeg != 0 {
		if err := size.SetLoadAngle(in.LoadAngleDeg); err != nil {
			return Result{}, err
		}
	}
	fs := in.FactorOfSafety
	if fs == 0 {
		fs = defaultFactorOfSafety
	}
	if fs < 1 {
		return Result{}, fmt.Errorf("factor of safety must be at least 1, got %g", fs)
	}

	calc, err := New(theory, soil, size, in.LocalShear)
	if err != nil {
		return Result{}, err
	}

	qu := calc.BearingCapacity()
	notes := fmt.Sprintf("Ultimate bearing capacity, %s theory, general shear.", theory)
	if in.LocalShear {
		notes = fmt.Sprintf("Ultimate bearing capacity, %s theory, local shear (reduced phi and c).", theory)
	}
	return Result{
		UltimateKPa:            qu,
		AllowableKPa:           geomath.Round(qu/fs, 2),
		FactorOfSafety:         fs,
		Factors:                calc.NFactors(),
		Corrections:            calc.Corrections(),
		DesignFrictionAngleDeg: calc.FrictionAngle(),
		DesignCohesionKPa:      calc.Cohesion(),
		EffectiveWidthM:        size.EffectiveWidth(),
		Notes:                  notes,
	}, nil
}

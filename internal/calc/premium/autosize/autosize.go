package autosize

import (
	"fmt"

	bearing "Stratum/internal/calc/bearing"
)

const (
	minWidthM  = 0.5
	maxWidthM  = 10.0
	widthStepM = 0.05
)

type Input struct {
	Theory           string  `json:"theory"`
	Shape            string  `json:"shape"`
	FrictionAngleDeg float64 `json:"friction_angle_deg"`
	CohesionKPa      float64 `json:"cohesion_kpa"`
	UnitWeightKNM3   float64 `json:"unit_weight_kn_m3"`
	DepthM           float64 `json:"depth_m"`
	LengthToWidth    float64 `json:"length_to_width"` // rectangle aspect ratio, default 1.5
	DemandKPa        float64 `json:"demand_kpa"`      // required allowable bearing pressure
	FactorOfSafety   float64 `json:"factor_of_safety"`
	LocalShear       bool    `json:"local_shear"`
}

type Result struct {
	WidthM       float64 `json:"width_m"`
	LengthM      float64 `json:"length_m"`
	AllowableKPa float64 `json:"allowable_kpa"`
	UltimateKPa  float64 `json:"ultimate_kpa"`
	Notes        string  `json:"notes"`
}

// Size grows the footing width until the allowable bearing pressure meets
// the demand. Wider footings can lose capacity per unit area (the embedment
// term grows but the allowable check is on pressure), so the scan simply
// takes the first width that satisfies the demand.
func Size(in Input) (Result, error) {
	if in.DemandKPa <= 0 {
		return Result{}, fmt.Errorf("demand pressure must be positive, got %g", in.DemandKPa)
	}
	aspect := in.LengthToWidth
	if aspect == 0 {
		aspect = 1.5
	}
	if aspect < 1 {
		return Result{}, fmt.Errorf("length-to-width ratio must be at least 1, got %g", aspect)
	}

	for w := minWidthM; w <= maxWidthM; w += widthStepM {
		calcIn := bearing.Input{
			Theory:           in.Theory,
			Shape:            in.Shape,
			FrictionAngleDeg: in.FrictionAngleDeg,
			CohesionKPa:      in.CohesionKPa,
			UnitWeightKNM3:   in.UnitWeightKNM3,
			DepthM:           in.DepthM,
			WidthM:           w,
			LocalShear:       in.LocalShear,
			FactorOfSafety:   in.FactorOfSafety,
		}
		if in.Shape == "rectangle" {
			calcIn.LengthM = w * aspect
		}
		res, err := bearing.Calculate(calcIn)
		if err != nil {
			return Result{}, err
		}
		if res.AllowableKPa >= in.DemandKPa {
			return Result{
				WidthM:       w,
				LengthM:      calcIn.LengthM,
				AllowableKPa: res.AllowableKPa,
				UltimateKPa:  res.UltimateKPa,
				Notes:        "Smallest width satisfying the allowable bearing pressure demand.",
			}, nil
		}
	}
	return Result{}, fmt.Errorf("no width up to %g m satisfies the demand of %g kPa", maxWidthM, in.DemandKPa)
}

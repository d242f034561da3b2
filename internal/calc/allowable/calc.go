package allowable

import (
	"fmt"

	"Stratum/internal/foundation"
)

type Input struct {
	Theory          string   `json:"theory"`
	FoundationType  string   `json:"foundation_type"`
	Shape           string   `json:"shape"`
	CorrectedN      float64  `json:"corrected_n"`
	TolSettlementMM float64  `json:"tol_settlement_mm"`
	DepthM          float64  `json:"depth_m"`
	WidthM          float64  `json:"width_m"`
	LengthM         float64  `json:"length_m"`
	WaterDepthM     *float64 `json:"water_depth_m"` // Terzaghi only; nil means dry
}

type Result struct {
	AllowableKPa    float64 `json:"allowable_kpa"`
	DepthFactor     float64 `json:"depth_factor"`
	SettlementRatio float64 `json:"settlement_ratio"`
	WaterFactor     float64 `json:"water_factor,omitempty"`
	Notes           string  `json:"notes"`
}

// Calculate validates the request and runs the matching calculator once.
func Calculate(in Input) (Result, error) {
	shape := foundation.Shape(in.Shape)
	if in.Shape == "" {
		shape = foundation.Square
	}
	size, err := foundation.NewSize(shape, in.DepthM, in.WidthM, in.LengthM)
	if err != nil {
		return Result{}, err
	}
	if in.WaterDepthM != nil {
		if err := size.SetWaterLevel(*in.WaterDepthM); err != nil {
			return Result{}, err
		}
	}
	calc, err := New(Theory(in.Theory), FoundationType(in.FoundationType), in.CorrectedN, in.TolSettlementMM, size)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		AllowableKPa:    calc.BearingCapacity(),
		DepthFactor:     calc.depthFactor(),
		SettlementRatio: calc.settlementRatio(),
		Notes:           fmt.Sprintf("Allowable bearing capacity, %s, %s foundation, settlement-limited.", in.Theory, in.FoundationType),
	}
	if calc.theory == TheoryTerzaghi {
		res.WaterFactor = calc.waterFactor()
	}
	return res, nil
}

package spt

import "fmt"

// Reading is one SPT record within the footing influence zone.
type Reading struct {
	DepthM    float64 `json:"depth_m"`
	RecordedN float64 `json:"recorded_n"`
	EopKPa    float64 `json:"eop_kpa"` // effective overburden pressure at the test depth
}

type Input struct {
	Readings         []Reading `json:"readings"`
	HammerEfficiency float64   `json:"hammer_efficiency"`
	BoreholeCor      float64   `json:"borehole_cor"`
	SamplerCor       float64   `json:"sampler_cor"`
	RodLengthCor     float64   `json:"rod_length_cor"`
	OverburdenMethod string    `json:"overburden_method"`
	ApplyDilatancy   bool      `json:"apply_dilatancy"`
	Policy           string    `json:"policy"`
}

type Result struct {
	N60Values       []float64 `json:"n60_values"`
	CorrectedValues []float64 `json:"corrected_values"`
	DesignN         float64   `json:"design_n"`
	Notes           string    `json:"notes"`
}

// Calculate runs the full correction chain over the influence-zone readings
// and reduces them to a design N-value.
func Calculate(in Input) (Result, error) {
	if len(in.Readings) == 0 {
		return Result{}, fmt.Errorf("at least one SPT reading is required")
	}
	if in.HammerEfficiency == 0 {
		in.HammerEfficiency = 0.6 // safety hammer baseline
	}
	if in.BoreholeCor == 0 {
		in.BoreholeCor = 1
	}
	if in.SamplerCor == 0 {
		in.SamplerCor = 1
	}
	if in.RodLengthCor == 0 {
		in.RodLengthCor = 1
	}
	method := OverburdenMethod(in.OverburdenMethod)
	if in.OverburdenMethod == "" {
		method = GibbsHoltz
	}
	policy := DesignPolicy(in.Policy)
	if in.Policy == "" {
		policy = PolicyWeighted
	}

	res := Result{
		N60Values:       make([]float64, 0, len(in.Readings)),
		CorrectedValues: make([]float64, 0, len(in.Readings)),
	}
	for i, rd := range in.Readings {
		n60, err := EnergyCorrection(rd.RecordedN, in.HammerEfficiency, in.BoreholeCor, in.SamplerCor, in.RodLengthCor)
		if err != nil {
			return Result{}, fmt.Errorf("reading %d: %w", i+1, err)
		}
		corrected, err := OverburdenCorrection(method, n60, rd.EopKPa)
		if err != nil {
			return Result{}, fmt.Errorf("reading %d: %w", i+1, err)
		}
		if in.ApplyDilatancy {
			corrected = DilatancyCorrection(corrected)
		}
		res.N60Values = append(res.N60Values, n60)
		res.CorrectedValues = append(res.CorrectedValues, corrected)
	}

	design, err := DesignN(policy, res.CorrectedValues)
	if err != nil {
		return Result{}, err
	}
	res.DesignN = design
	res.Notes = fmt.Sprintf("Design N from %d readings, %s overburden correction, %s policy.", len(in.Readings), method, policy)
	return res, nil
}

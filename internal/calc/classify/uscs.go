// Package classify assigns USCS and AASHTO soil classification symbols from
// laboratory index properties. Informational only: nothing here feeds the
// bearing-capacity numbers.
package classify

import (
	"fmt"
)

// aLine is Casagrande's A-line plasticity index at a given liquid limit.
func aLine(liquidLimit float64) float64 {
	return 0.73 * (liquidLimit - 20)
}

// USCSInput holds the index properties the Unified system needs. Fines, sand
// and gravel are percentages by mass and must sum to ~100. Cu and Cc are the
// gradation coefficients, required only for coarse soils with few fines.
type USCSInput struct {
	LiquidLimit  float64 `json:"liquid_limit"`
	PlasticLimit float64 `json:"plastic_limit"`
	Fines        float64 `json:"fines"`
	Sand         float64 `json:"sand"`
	Gravel       float64 `json:"gravel"`
	Cu           float64 `json:"cu"`
	Cc           float64 `json:"cc"`
	Organic      bool    `json:"organic"`
}

func (in USCSInput) plasticityIndex() float64 {
	return in.LiquidLimit - in.PlasticLimit
}

func (in USCSInput) validate() error {
	if in.LiquidLimit < 0 || in.PlasticLimit < 0 {
		return fmt.Errorf("atterberg limits must be non-negative")
	}
	if in.PlasticLimit > in.LiquidLimit {
		return fmt.Errorf("plastic limit %g cannot exceed liquid limit %g", in.PlasticLimit, in.LiquidLimit)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"fines", in.Fines}, {"sand", in.Sand}, {"gravel", in.Gravel}} {
		if f.v < 0 || f.v > 100 {
			return fmt.Errorf("%s fraction must be within [0, 100] percent, got %g", f.name, f.v)
		}
	}
	total := in.Fines + in.Sand + in.Gravel
	if total < 99 || total > 101 {
		return fmt.Errorf("fines, sand and gravel must sum to 100 percent, got %g", total)
	}
	return nil
}

// ClassifyUSCS returns the USCS group symbol for the sample.
func ClassifyUSCS(in USCSInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	if in.Fines > 50 {
		return fineGrained(in), nil
	}
	return coarseGrained(in)
}

func fineGrained(in USCSInput) string {
	pi := in.plasticityIndex()
	ll := in.LiquidLimit
	if ll < 50 {
		// Low-plasticity side of the chart.
		if in.Organic {
			return "OL"
		}
		switch {
		case pi > 7 && pi >= aLine(ll):
			return "CL"
		case pi >= 4 && pi <= 7 && pi >= aLine(ll):
			return "CL-ML"
		default:
			return "ML"
		}
	}
	if in.Organic {
		return "OH"
	}
	if pi >= aLine(ll) {
		return "CH"
	}
	return "MH"
}

func coarseGrained(in USCSInput) (string, error) {
	prefix := "S"
	if in.Gravel > in.Sand {
		prefix = "G"
	}

	if in.Fines > 12 {
		return prefix + finesSuffix(in), nil
	}

	grading, err := gradingSuffix(prefix, in)
	if err != nil {
		return "", err
	}
	if in.Fines < 5 {
		return prefix + grading, nil
	}
	// Borderline fines content takes a dual symbol, e.g. SW-SM.
	return prefix + grading + "-" + prefix + finesSuffix(in), nil
}

// finesSuffix classifies the plasticity of the fines fraction: C for clayey,
// M for silty, C-M on the border band.
func finesSuffix(in USCSInput) string {
	pi := in.plasticityIndex()
	switch {
	case pi > 7 && pi >= aLine(in.LiquidLimit):
		return "C"
	case pi >= 4 && pi <= 7 && pi >= aLine(in.LiquidLimit):
		return "C-M"
	default:
		return "M"
	}
}

// gradingSuffix distinguishes well (W) from poorly (P) graded soils by the
// uniformity and curvature coefficients.
func gradingSuffix(prefix string, in USCSInput) (string, error) {
	if in.Cu == 0 {
		return "", fmt.Errorf("gradation coefficients (cu, cc) are required for coarse soils with %g%% fines", in.Fines)
	}
	cuLimit := 6.0
	if prefix == "G" {
		cuLimit = 4.0
	}
	if in.Cu >= cuLimit && in.Cc >= 1 && in.Cc <= 3 {
		return "W", nil
	}
	return "P", nil
}

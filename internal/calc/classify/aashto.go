package classify

import (
	"fmt"
	"math"
)

// AASHTOInput holds the properties the AASHTO highway classification needs.
// Fines is the percentage passing the No. 200 sieve.
type AASHTOInput struct {
	LiquidLimit     float64 `json:"liquid_limit"`
	PlasticityIndex float64 `json:"plasticity_index"`
	Fines           float64 `json:"fines"`
}

func (in AASHTOInput) validate() error {
	if in.LiquidLimit < 0 {
		return fmt.Errorf("liquid limit must be non-negative, got %g", in.LiquidLimit)
	}
	if in.PlasticityIndex < 0 {
		return fmt.Errorf("plasticity index must be non-negative, got %g", in.PlasticityIndex)
	}
	if in.Fines < 0 || in.Fines > 100 {
		return fmt.Errorf("fines fraction must be within [0, 100] percent, got %g", in.Fines)
	}
	return nil
}

// groupIndex is the AASHTO group index, clamped at zero and reported as a
// whole number.
func groupIndex(ll, pi, fines float64) float64 {
	gi := (fines-35)*(0.2+0.005*(ll-40)) + 0.01*(fines-15)*(pi-10)
	if gi < 0 {
		return 0
	}
	return math.Round(gi)
}

// ClassifyAASHTO returns the AASHTO group symbol with the group index in
// parentheses, e.g. "A-2-6(1)".
func ClassifyAASHTO(in AASHTOInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}
	ll, pi, fines := in.LiquidLimit, in.PlasticityIndex, in.Fines

	var group string
	var gi float64
	if fines <= 35 {
		// Granular materials. A-1 and A-3 take a zero group index; the A-2
		// subgroups with plastic fines use only the PI term.
		switch {
		case fines <= 15 && pi <= 6:
			group = "A-1-a"
		case fines <= 25 && pi <= 6:
			group = "A-1-b"
		case fines <= 10 && pi == 0:
			group = "A-3"
		case ll <= 40 && pi <= 10:
			group = "A-2-4"
		case ll > 40 && pi <= 10:
			group = "A-2-5"
		case ll <= 40:
			group = "A-2-6"
			gi = math.Max(math.Round(0.01*(fines-15)*(pi-10)), 0)
		default:
			group = "A-2-7"
			gi = math.Max(math.Round(0.01*(fines-15)*(pi-10)), 0)
		}
	} else {
		// Silt-clay materials.
		switch {
		case ll <= 40 && pi <= 10:
			group = "A-4"
		case ll > 40 && pi <= 10:
			group = "A-5"
		case ll <= 40:
			group = "A-6"
		default:
			if pi <= ll-30 {
				group = "A-7-5"
			} else {
				group = "A-7-6"
			}
		}
		gi = groupIndex(ll, pi, fines)
	}
	return fmt.Sprintf("%s(%d)", group, int(gi)), nil
}

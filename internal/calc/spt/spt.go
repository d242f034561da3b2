// Package spt corrects field Standard Penetration Test blow counts and
// reduces a sequence of corrected values within the footing influence zone
// to a single design N-value.
package spt

import (
	"fmt"
	"math"

	"Stratum/internal/geomath"
)

// OverburdenMethod selects the effective-overburden-pressure correction.
type OverburdenMethod string

const (
	GibbsHoltz  OverburdenMethod = "gibbs-holtz"
	BazaraaPeck OverburdenMethod = "bazaraa-peck"
	Peck        OverburdenMethod = "peck"
	LiaoWhitman OverburdenMethod = "liao-whitman"
	Skempton    OverburdenMethod = "skempton"
)

// DesignPolicy selects how the corrected values reduce to one design N.
type DesignPolicy string

const (
	PolicyMin      DesignPolicy = "min"
	PolicyAverage  DesignPolicy = "average"
	PolicyWeighted DesignPolicy = "weighted"
)

// EnergyCorrection normalizes a recorded blow count to 60% hammer energy:
// N60 = E·C_B·C_S·C_R·N / 0.6, with the usual hammer-efficiency, borehole
// diameter, sampler and rod-length multipliers.
func EnergyCorrection(recordedN float64, hammerEff, boreholeCor, samplerCor, rodLengthCor float64) (float64, error) {
	if recordedN <= 0 {
		return 0, fmt.Errorf("recorded SPT N-value must be positive, got %g", recordedN)
	}
	if hammerEff <= 0 || hammerEff > 1 {
		return 0, fmt.Errorf("hammer efficiency must be in (0, 1], got %g", hammerEff)
	}
	n60 := hammerEff * boreholeCor * samplerCor * rodLengthCor * recordedN / 0.6
	return geomath.Round(n60, 2), nil
}

// OverburdenCorrection adjusts N60 for the effective overburden pressure
// (kPa) at the test depth, using the chosen published method.
func OverburdenCorrection(method OverburdenMethod, n60, eopKPa float64) (float64, error) {
	if n60 <= 0 {
		return 0, fmt.Errorf("N60 must be positive, got %g", n60)
	}
	if eopKPa <= 0 {
		return 0, fmt.Errorf("effective overburden pressure must be positive, got %g", eopKPa)
	}

	var corrected float64
	switch method {
	case GibbsHoltz:
		corrected = 350 / (eopKPa + 70) * n60
		// The correction is capped at twice the measured value.
		if corrected > 2*n60 {
			corrected = 2 * n60
		}
	case BazaraaPeck:
		switch {
		case eopKPa < 71.8:
			corrected = 4 * n60 / (1 + 0.0418*eopKPa)
		case eopKPa > 71.8:
			corrected = 4 * n60 / (3.25 + 0.0104*eopKPa)
		default:
			corrected = n60
		}
	case Peck:
		if eopKPa < 24 {
			return 0, fmt.Errorf("peck correction requires an overburden pressure of at least 24 kPa, got %g", eopKPa)
		}
		corrected = 0.77 * math.Log10(2000/eopKPa) * n60
	case LiaoWhitman:
		corrected = math.Sqrt(100/eopKPa) * n60
	case Skempton:
		corrected = 2 / (1 + 0.01045*eopKPa) * n60
	default:
		return 0, fmt.Errorf("unknown overburden correction method %q (supported: gibbs-holtz, bazaraa-peck, peck, liao-whitman, skempton)", method)
	}
	return geomath.Round(corrected, 2), nil
}

// DilatancyCorrection applies the Terzaghi-Peck adjustment for dense
// saturated fine sands, where pore-pressure buildup inflates the blow count:
// values above 15 reduce to 15 + 0.5(N − 15).
func DilatancyCorrection(correctedN float64) float64 {
	if correctedN <= 15 {
		return correctedN
	}
	return geomath.Round(15+0.5*(correctedN-15), 2)
}

// DesignN reduces the corrected N-values within the influence zone (ordered
// from the footing base downward) to one design value. The weighted policy
// favors the shallower values with 1/i² weights.
func DesignN(policy DesignPolicy, correctedValues []float64) (float64, error) {
	if len(correctedValues) == 0 {
		return 0, fmt.Errorf("at least one corrected N-value is required")
	}
	for i, v := range correctedValues {
		if v <= 0 {
			return 0, fmt.Errorf("corrected N-value at position %d must be positive, got %g", i+1, v)
		}
	}
	var design float64
	switch policy {
	case PolicyMin:
		design = correctedValues[0]
		for _, v := range correctedValues[1:] {
			if v < design {
				design = v
			}
		}
	case PolicyAverage:
		var sum float64
		for _, v := range correctedValues {
			sum += v
		}
		design = sum / float64(len(correctedValues))
	case PolicyWeighted:
		var num, den float64
		for i, v := range correctedValues {
			w := 1 / math.Pow(float64(i+1), 2)
			num += w * v
			den += w
		}
		design = num / den
	default:
		return 0, fmt.Errorf("unknown design N policy %q (supported: min, average, weighted)", policy)
	}
	return geomath.Round(design, 2), nil
}

package bearing

import (
	"math"

	"Stratum/internal/geomath"
)

// Bearing-capacity factors Nc, Nq and Ngamma as pure functions of the soil
// friction angle in degrees. Each factor is derived from the unrounded
// surcharge factor and rounded to two decimals only at the boundary, so
// composed results line up with the published tables the calculators are
// checked against.

// Factors bundles the three dimensionless bearing-capacity factors.
type Factors struct {
	Nc     float64 `json:"nc"`
	Nq     float64 `json:"nq"`
	Ngamma float64 `json:"ngamma"`
}

// terzaghiNqRaw is the unrounded Terzaghi surcharge factor.
// Nq = exp((3π/2 − φ)·tanφ) / (2·cos²(45 + φ/2))
func terzaghiNqRaw(phiDeg float64) float64 {
	phiRad := geomath.DegToRad(phiDeg)
	num := math.Exp((3*math.Pi/2 - phiRad) * math.Tan(phiRad))
	den := 2 * math.Pow(geomath.CosDeg(45+phiDeg/2), 2)
	return num / den
}

// TerzaghiNq computes Terzaghi's surcharge factor.
func TerzaghiNq(phiDeg float64) float64 {
	return geomath.Round(terzaghiNqRaw(phiDeg), 2)
}

// TerzaghiNc computes Terzaghi's cohesion factor, Nc = cotφ·(Nq − 1). The
// formula is singular at φ = 0 where the factor takes the classical boundary
// value 5.7.
func TerzaghiNc(phiDeg float64) float64 {
	if phiDeg == 0 {
		return 5.7
	}
	return geomath.Round(geomath.CotDeg(phiDeg)*(terzaghiNqRaw(phiDeg)-1), 2)
}

// TerzaghiNgamma computes Terzaghi's self-weight factor.
// Nγ = (Nq − 1)·tan(1.4φ)
func TerzaghiNgamma(phiDeg float64) float64 {
	return geomath.Round((terzaghiNqRaw(phiDeg)-1)*geomath.TanDeg(1.4*phiDeg), 2)
}

// prandtlNqRaw is the unrounded surcharge factor shared by the Hansen, Vesic
// and Meyerhof theories.
// Nq = tan²(45 + φ/2)·exp(π·tanφ)
func prandtlNqRaw(phiDeg float64) float64 {
	return math.Pow(geomath.TanDeg(45+phiDeg/2), 2) * math.Exp(math.Pi*geomath.TanDeg(phiDeg))
}

// HansenNq computes Hansen's surcharge factor.
func HansenNq(phiDeg float64) float64 {
	return geomath.Round(prandtlNqRaw(phiDeg), 2)
}

// HansenNc computes Hansen's cohesion factor, 5.14 at φ = 0.
func HansenNc(phiDeg float64) float64 {
	if phiDeg == 0 {
		return 5.14
	}
	return geomath.Round(geomath.CotDeg(phiDeg)*(prandtlNqRaw(phiDeg)-1), 2)
}

// HansenNgamma computes Hansen's self-weight factor.
// Nγ = 1.8·(Nq − 1)·tanφ
func HansenNgamma(phiDeg float64) float64 {
	return geomath.Round(1.8*(prandtlNqRaw(phiDeg)-1)*geomath.TanDeg(phiDeg), 2)
}

// VesicNq equals Hansen's surcharge factor.
func VesicNq(phiDeg float64) float64 { return HansenNq(phiDeg) }

// VesicNc equals Hansen's cohesion factor.
func VesicNc(phiDeg float64) float64 { return HansenNc(phiDeg) }

// VesicNgamma computes Vesic's self-weight factor.
// Nγ = 2·(Nq + 1)·tanφ
func VesicNgamma(phiDeg float64) float64 {
	return geomath.Round(2*(prandtlNqRaw(phiDeg)+1)*geomath.TanDeg(phiDeg), 2)
}

// MeyerhofNq shares the Prandtl surcharge factor with Hansen and Vesic.
func MeyerhofNq(phiDeg float64) float64 { return HansenNq(phiDeg) }

// MeyerhofNc computes Meyerhof's cohesion factor, guarded at φ = 0 like the
// other Prandtl-based theories.
func MeyerhofNc(phiDeg float64) float64 { return HansenNc(phiDeg) }

// MeyerhofNgamma matches Vesic's self-weight factor.
func MeyerhofNgamma(phiDeg float64) float64 { return VesicNgamma(phiDeg) }

// NFactors returns all three factors for a theory.
func NFactors(theory Theory, phiDeg float64) (Factors, error) {
	switch theory {
	case TheoryTerzaghi:
		return Factors{Nc: TerzaghiNc(phiDeg), Nq: TerzaghiNq(phiDeg), Ngamma: TerzaghiNgamma(phiDeg)}, nil
	case TheoryHansen:
		return Factors{Nc: HansenNc(phiDeg), Nq: HansenNq(phiDeg), Ngamma: HansenNgamma(phiDeg)}, nil
	case TheoryVesic:
		return Factors{Nc: VesicNc(phiDeg), Nq: VesicNq(phiDeg), Ngamma: VesicNgamma(phiDeg)}, nil
	case TheoryMeyerhof:
		return Factors{Nc: MeyerhofNc(phiDeg), Nq: MeyerhofNq(phiDeg), Ngamma: MeyerhofNgamma(phiDeg)}, nil
	default:
		return Factors{}, errUnknownTheory(theory)
	}
}

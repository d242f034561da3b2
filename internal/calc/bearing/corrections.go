package bearing

import (
	"math"

	"Stratum/internal/foundation"
	"Stratum/internal/geomath"
)

// Shape, depth and inclination correction factors. Terzaghi's theory carries
// no corrections here: its shape effects are the per-footing coefficients
// applied directly in the capacity terms.

// Corrections bundles one theory's correction multipliers.
type Corrections struct {
	Sc float64 `json:"sc"`
	Sq float64 `json:"sq"`
	Sg float64 `json:"sg"`
	Dc float64 `json:"dc"`
	Dq float64 `json:"dq"`
	Dg float64 `json:"dg"`
	Ic float64 `json:"ic"`
	Iq float64 `json:"iq"`
	Ig float64 `json:"ig"`
}

func unityCorrections() Corrections {
	return Corrections{Sc: 1, Sq: 1, Sg: 1, Dc: 1, Dq: 1, Dg: 1, Ic: 1, Iq: 1, Ig: 1}
}

// hansenShapeFactors returns (s_c, s_q, s_γ) from Hansen's constant table.
func hansenShapeFactors(size *foundation.Size) (sc, sq, sg float64) {
	b := size.EffectiveWidth()
	l := size.Length()
	switch size.FactorShape() {
	case foundation.Strip:
		return 1, 1, 1
	case foundation.Square:
		return 1.3, 1.2, 0.8
	case foundation.Circle:
		return 1.3, 1.2, 0.6
	default: // rectangle
		r := b / l
		return geomath.Round(1+0.2*r, 2), geomath.Round(1+0.2*r, 2), geomath.Round(1-0.4*r, 2)
	}
}

// vesicShapeFactors returns (s_c, s_q, s_γ), which for Vesic depend on the
// bearing-capacity factors and friction angle.
func vesicShapeFactors(size *foundation.Size, phiDeg float64) (sc, sq, sg float64) {
	b := size.EffectiveWidth()
	l := size.Length()
	nq := VesicNq(phiDeg)
	nc := VesicNc(phiDeg)
	switch size.FactorShape() {
	case foundation.Strip:
		return 1, 1, 1
	case foundation.Square, foundation.Circle:
		return geomath.Round(1+nq/nc, 2), geomath.Round(1+geomath.TanDeg(phiDeg), 2), 0.6
	default:
		r := b / l
		return geomath.Round(1+r*nq/nc, 2),
			geomath.Round(1+r*geomath.TanDeg(phiDeg), 2),
			geomath.Round(1-0.4*r, 2)
	}
}

// depthRatio returns the embedment ratio k used by the depth factors. Past
// D/B = 1 the ratio is replaced by its arctangent (radians), the classical
// cap for deep embedment.
func depthRatio(size *foundation.Size) float64 {
	r := size.Depth() / size.Width()
	if r <= 1 {
		return r
	}
	return math.Atan(r)
}

// hansenDepthFactors returns (d_c, d_q, d_γ). The d_q form with the
// 2·tanφ·(1−sinφ)² multiplier is the canonical revision here; it reproduces
// the published worked examples the engine is verified against.
func hansenDepthFactors(size *foundation.Size, phiDeg float64) (dc, dq, dg float64) {
	k := depthRatio(size)
	dc = geomath.Round(1+0.4*k, 2)
	m := 2 * geomath.TanDeg(phiDeg) * math.Pow(1-geomath.SinDeg(phiDeg), 2)
	dq = geomath.Round(1+m*k, 2)
	return dc, dq, 1
}

// vesicDepthFactors shares Hansen's canonical depth factors.
func vesicDepthFactors(size *foundation.Size, phiDeg float64) (dc, dq, dg float64) {
	return hansenDepthFactors(size, phiDeg)
}

// inclinationFactors returns (i_c, i_q, i_γ) for a load inclined alphaDeg
// from vertical. i_γ is 1 at φ = 0 to avoid the zero division.
func inclinationFactors(alphaDeg, phiDeg float64) (ic, iq, ig float64) {
	ic = geomath.Round(math.Pow(1-alphaDeg/90, 2), 2)
	iq = ic
	if phiDeg == 0 {
		return ic, iq, 1
	}
	ig = geomath.Round(math.Pow(1-alphaDeg/phiDeg, 2), 2)
	return ic, iq, ig
}

// correctionsFor assembles the full correction set for a theory.
func correctionsFor(theory Theory, size *foundation.Size, phiDeg float64) Corrections {
	if theory == TheoryTerzaghi {
		return unityCorrections()
	}
	var c Corrections
	switch theory {
	case TheoryHansen:
		c.Sc, c.Sq, c.Sg = hansenShapeFactors(size)
		c.Dc, c.Dq, c.Dg = hansenDepthFactors(size, phiDeg)
	default: // vesic and meyerhof share the Vesic factor set
		c.Sc, c.Sq, c.Sg = vesicShapeFactors(size, phiDeg)
		c.Dc, c.Dq, c.Dg = vesicDepthFactors(size, phiDeg)
	}
	c.Ic, c.Iq, c.Ig = inclinationFactors(size.LoadAngle(), phiDeg)
	return c
}

// Package bearing computes the ultimate bearing capacity of shallow
// foundations under the classical Terzaghi, Hansen, Vesic and Meyerhof
// failure theories.
package bearing

import (
	"fmt"
	"math"

	"Stratum/internal/foundation"
	"Stratum/internal/geomath"
)

// Theory names a bearing-capacity failure theory.
type Theory string

const (
	TheoryTerzaghi Theory = "terzaghi"
	TheoryHansen   Theory = "hansen"
	TheoryVesic    Theory = "vesic"
	TheoryMeyerhof Theory = "meyerhof"
)

func errUnknownTheory(t Theory) error {
	return fmt.Errorf("unknown bearing-capacity theory %q (supported: terzaghi, hansen, vesic, meyerhof)", t)
}

// ParseTheory validates a theory name.
func ParseTheory(s string) (Theory, error) {
	switch Theory(s) {
	case TheoryTerzaghi, TheoryHansen, TheoryVesic, TheoryMeyerhof:
		return Theory(s), nil
	default:
		return "", errUnknownTheory(Theory(s))
	}
}

// localShearFraction reduces strength parameters for a local (punching)
// shear failure mode.
const localShearFraction = 2.0 / 3.0

// Calculator computes the ultimate bearing capacity for one theory, soil and
// footing. It holds no derived state: the local-shear-adjusted strength is a
// pure function of the stored raw values, so repeated calls give identical
// results and distinct instances are safe to use concurrently.
type Calculator struct {
	theory          Theory
	soil            foundation.Soil
	size            *foundation.Size
	applyLocalShear bool
}

// New builds a calculator after validating the theory. Soil and size are
// assumed already validated by their constructors.
func New(theory Theory, soil foundation.Soil, size *foundation.Size, applyLocalShear bool) (*Calculator, error) {
	if _, err := ParseTheory(string(theory)); err != nil {
		return nil, err
	}
	if size == nil {
		return nil, fmt.Errorf("foundation size is required")
	}
	return &Calculator{theory: theory, soil: soil, size: size, applyLocalShear: applyLocalShear}, nil
}

func (c *Calculator) Theory() Theory { return c.theory }
func (c *Calculator) Size() *foundation.Size { return c.size }

// RawFrictionAngle reports the friction angle as supplied, in degrees.
func (c *Calculator) RawFrictionAngle() float64 { return c.soil.FrictionAngleDeg }

// RawCohesion reports the cohesion as supplied, in kPa.
func (c *Calculator) RawCohesion() float64 { return c.soil.CohesionKPa }

// FrictionAngle reports the design friction angle: the raw value, or
// arctan(⅔·tanφ) when local shear failure applies.
func (c *Calculator) FrictionAngle() float64 {
	if !c.applyLocalShear {
		return c.soil.FrictionAngleDeg
	}
	return geomath.ArctanDeg(localShearFraction * geomath.TanDeg(c.soil.FrictionAngleDeg))
}

// Cohesion reports the design cohesion: the raw value, or ⅔·c when local
// shear failure applies.
func (c *Calculator) Cohesion() float64 {
	if !c.applyLocalShear {
		return c.soil.CohesionKPa
	}
	return localShearFraction * c.soil.CohesionKPa
}

// NFactors returns the theory's bearing-capacity factors at the design
// friction angle.
func (c *Calculator) NFactors() Factors {
	f, _ := NFactors(c.theory, c.FrictionAngle())
	return f
}

// Corrections returns the theory's shape, depth and inclination factors at
// the design friction angle.
func (c *Calculator) Corrections() Corrections {
	return correctionsFor(c.theory, c.size, c.FrictionAngle())
}

// terzaghiCoefficients are the per-footing coefficients Terzaghi's theory
// applies directly to the cohesion and embedment terms in place of shape
// factors.
func terzaghiCoefficients(size *foundation.Size) (cohesion, embedment float64) {
	switch size.FactorShape() {
	case foundation.Strip:
		return 1.0, 0.5
	case foundation.Square:
		return 1.3, 0.4
	case foundation.Circle:
		return 1.3, 0.3
	default:
		r := size.EffectiveWidth() / size.Length()
		return 1 + 0.3*r, 0.5 * (1 - 0.2*r)
	}
}

// waterCorrections returns the surcharge and embedment reduction factors for
// the ground-water level. A dry profile leaves both terms untouched.
func (c *Calculator) waterCorrections() (surcharge, embedment float64) {
	dw, ok := c.size.WaterLevel()
	if !ok {
		return 1, 1
	}
	d := c.size.Depth()
	surcharge = math.Min(1-0.5*math.Max(d-dw, 0)/d, 1)
	embedment = math.Min(0.5+0.5*math.Max(dw-d, 0)/c.size.EffectiveWidth(), 1)
	return surcharge, embedment
}

// BearingCapacity computes the ultimate bearing capacity q_u in kPa as the
// sum of the cohesion, surcharge and embedment terms, rounded to two
// decimals.
func (c *Calculator) BearingCapacity() float64 {
	phi := c.FrictionAngle()
	coh := c.Cohesion()
	f, _ := NFactors(c.theory, phi)
	cor := correctionsFor(c.theory, c.size, phi)

	cohCoef, embCoef := 1.0, 0.5
	if c.theory == TheoryTerzaghi {
		cohCoef, embCoef = terzaghiCoefficients(c.size)
	}
	wSur, wEmb := c.waterCorrections()

	gamma := c.soil.UnitWeightKNM3
	cohesionTerm := cohCoef * coh * f.Nc * cor.Sc * cor.Dc * cor.Ic
	surchargeTerm := gamma * c.size.Depth() * f.Nq * cor.Sq * cor.Dq * cor.Iq * wSur
	embedmentTerm := embCoef * gamma * c.size.EffectiveWidth() * f.Ngamma * cor.Sg * cor.Dg * cor.Ig * wEmb

	return geomath.Round(cohesionTerm+surchargeTerm+embedmentTerm, 2)
}

// Package allowable computes settlement-limited allowable bearing capacity
// from a corrected SPT N-value, after Bowles, Meyerhof and Terzaghi.
package allowable

import (
	"fmt"
	"math"

	"Stratum/internal/foundation"
	"Stratum/internal/geomath"
)

// Theory names an allowable-bearing-capacity formula set.
type Theory string

const (
	TheoryBowles   Theory = "bowles"
	TheoryMeyerhof Theory = "meyerhof"
	TheoryTerzaghi Theory = "terzaghi"
)

// FoundationType distinguishes isolated pads from mat (raft) foundations.
type FoundationType string

const (
	Pad FoundationType = "pad"
	Mat FoundationType = "mat"
)

// MaxTolSettlementMM is the upper bound on tolerable settlement. The
// empirical charts behind these formulas stop at one inch; larger values are
// rejected, never clamped.
const MaxTolSettlementMM = 25.4

// widthThresholdM separates the narrow- and wide-footing branches of the pad
// formulas.
const widthThresholdM = 1.2

// SettlementError reports a tolerable settlement beyond the supported range.
type SettlementError struct {
	TolSettlementMM float64
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("tolerable settlement %g mm exceeds the maximum of %g mm", e.TolSettlementMM, MaxTolSettlementMM)
}

// Calculator computes allowable bearing capacity for one theory and
// foundation type. Immutable after construction; repeated calls are
// idempotent.
type Calculator struct {
	theory          Theory
	ftype           FoundationType
	correctedN      float64
	tolSettlementMM float64
	size            *foundation.Size
}

// New validates and builds an allowable-bearing-capacity calculator. A
// tolerable settlement above 25.4 mm fails with a *SettlementError at
// construction, not at computation time.
func New(theory Theory, ftype FoundationType, correctedN, tolSettlementMM float64, size *foundation.Size) (*Calculator, error) {
	switch theory {
	case TheoryBowles, TheoryMeyerhof, TheoryTerzaghi:
	default:
		return nil, fmt.Errorf("unknown allowable-bearing-capacity theory %q (supported: bowles, meyerhof, terzaghi)", theory)
	}
	switch ftype {
	case Pad, Mat:
	default:
		return nil, fmt.Errorf("unknown foundation type %q (supported: pad, mat)", ftype)
	}
	if correctedN < 0 {
		return nil, fmt.Errorf("corrected SPT N-value must be non-negative, got %g", correctedN)
	}
	if tolSettlementMM <= 0 {
		return nil, fmt.Errorf("tolerable settlement must be positive, got %g", tolSettlementMM)
	}
	if tolSettlementMM > MaxTolSettlementMM {
		return nil, &SettlementError{TolSettlementMM: tolSettlementMM}
	}
	if size == nil {
		return nil, fmt.Errorf("foundation size is required")
	}
	return &Calculator{
		theory:          theory,
		ftype:           ftype,
		correctedN:      correctedN,
		tolSettlementMM: tolSettlementMM,
		size:            size,
	}, nil
}

// settlementRatio is the tolerable settlement relative to the one-inch chart
// basis.
func (c *Calculator) settlementRatio() float64 {
	return c.tolSettlementMM / MaxTolSettlementMM
}

// depthFactor grows with embedment up to a hard cap.
func (c *Calculator) depthFactor() float64 {
	d, b := c.size.Depth(), c.size.Width()
	if c.theory == TheoryTerzaghi {
		return math.Min(1+0.25*d/b, 1.25)
	}
	return math.Min(1+0.33*d/b, 1.33)
}

// widthTerm is the wide-footing reduction ((3.28B + 1) / 3.28B)^2.
func (c *Calculator) widthTerm() float64 {
	b := c.size.Width()
	return math.Pow((3.28*b+1)/(3.28*b), 2)
}

// waterFactor is Terzaghi's ground-water correction CW. A dry profile takes
// the cap value of 2.
func (c *Calculator) waterFactor() float64 {
	d, b := c.size.Depth(), c.size.Width()
	dw, ok := c.size.WaterLevel()
	if !ok {
		return 2.0
	}
	if dw <= d {
		return math.Min(2-d/(2*b), 2)
	}
	return math.Min(2-dw/(2*b), 2)
}

// BearingCapacity computes the allowable bearing pressure q_a in kPa,
// rounded to two decimals.
func (c *Calculator) BearingCapacity() float64 {
	n := c.correctedN
	fd := c.depthFactor()
	sr := c.settlementRatio()
	b := c.size.Width()

	var qa float64
	switch c.theory {
	case TheoryBowles:
		switch {
		case c.ftype == Mat:
			qa = 11.98 * n * fd * sr
		case b <= widthThresholdM:
			qa = 19.16 * n * fd * sr
		default:
			qa = 11.98 * n * c.widthTerm() * fd * sr
		}
	case TheoryMeyerhof:
		switch {
		case c.ftype == Mat:
			qa = 8 * n * fd * sr
		case b <= widthThresholdM:
			qa = 12 * n * fd * sr
		default:
			qa = 8 * n * c.widthTerm() * fd * sr
		}
	case TheoryTerzaghi:
		cw := c.waterFactor()
		switch {
		case c.ftype == Mat:
			qa = 8 * n / (cw * fd) * sr
		case b <= widthThresholdM:
			qa = 12 * n / (cw * fd) * sr
		default:
			qa = 8 * n * c.widthTerm() / (cw * fd) * sr
		}
	}
	return geomath.Round(qa, 2)
}

// Package foundation models shallow-foundation geometry and the soil
// properties a bearing-capacity calculation needs.
package foundation

import (
	"fmt"
	"math"
)

// Shape is the plan shape of a footing.
type Shape string

const (
	Strip     Shape = "strip"
	Square    Shape = "square"
	Circle    Shape = "circle" // width is the diameter
	Rectangle Shape = "rectangle"
)

// shapeTol is the relative tolerance for treating width and length as equal
// when resolving the shape used for factor lookups.
const shapeTol = 1e-9

// Size describes footing geometry. Construct with NewSize; the setters
// re-validate any later mutation.
type Size struct {
	shape        Shape
	depthM       float64
	widthM       float64
	lengthM      float64
	eccM         float64
	waterLevelM  float64 // depth to ground water from the surface
	hasWater     bool
	loadAngleDeg float64 // inclination of the applied load from vertical
}

// NewSize validates and builds a footing geometry. For Square and Circle the
// length is forced to the width; Strip has no finite length; Rectangle
// requires an explicit positive length.
func NewSize(shape Shape, depthM, widthM, lengthM float64) (*Size, error) {
	if depthM <= 0 {
		return nil, fmt.Errorf("foundation depth must be positive, got %g", depthM)
	}
	if widthM <= 0 {
		return nil, fmt.Errorf("foundation width must be positive, got %g", widthM)
	}
	s := &Size{shape: shape, depthM: depthM, widthM: widthM}
	switch shape {
	case Strip:
		s.lengthM = math.Inf(1)
	case Square, Circle:
		s.lengthM = widthM
	case Rectangle:
		if lengthM <= 0 {
			return nil, fmt.Errorf("rectangular footing requires an explicit positive length, got %g", lengthM)
		}
		s.lengthM = lengthM
	default:
		return nil, fmt.Errorf("unsupported footing shape %q (supported: strip, square, circle, rectangle)", shape)
	}
	return s, nil
}

func (s *Size) Shape() Shape { return s.shape }
func (s *Size) Depth() float64 { return s.depthM }
func (s *Size) Width() float64 { return s.widthM }
func (s *Size) Length() float64 { return s.lengthM }
func (s *Size) Eccentricity() float64 { return s.eccM }
func (s *Size) LoadAngle() float64 { return s.loadAngleDeg }

// EffectiveWidth is the eccentricity-reduced width used in the embedment term
// and in factor lookups.
func (s *Size) EffectiveWidth() float64 {
	return s.widthM - 2*s.eccM
}

// WaterLevel reports the ground-water depth and whether one was set. Absent
// water means a dry profile.
func (s *Size) WaterLevel() (float64, bool) {
	return s.waterLevelM, s.hasWater
}

// SetDepth replaces the embedment depth.
func (s *Size) SetDepth(depthM float64) error {
	if depthM <= 0 {
		return fmt.Errorf("foundation depth must be positive, got %g", depthM)
	}
	s.depthM = depthM
	return nil
}

// SetWidth replaces the footing width, keeping square and circular footings
// consistent and re-checking the effective width.
func (s *Size) SetWidth(widthM float64) error {
	if widthM <= 0 {
		return fmt.Errorf("foundation width must be positive, got %g", widthM)
	}
	if widthM-2*s.eccM <= 0 {
		return fmt.Errorf("effective width %g must remain positive (width %g, eccentricity %g)",
			widthM-2*s.eccM, widthM, s.eccM)
	}
	s.widthM = widthM
	if s.shape == Square || s.shape == Circle {
		s.lengthM = widthM
	}
	return nil
}

// SetEccentricity sets the load eccentricity. The effective width must stay
// positive.
func (s *Size) SetEccentricity(eccM float64) error {
	if eccM < 0 {
		return fmt.Errorf("eccentricity must be non-negative, got %g", eccM)
	}
	if s.widthM-2*eccM <= 0 {
		return fmt.Errorf("effective width %g must remain positive (width %g, eccentricity %g)",
			s.widthM-2*eccM, s.widthM, eccM)
	}
	s.eccM = eccM
	return nil
}

// SetWaterLevel sets the ground-water depth below the surface.
func (s *Size) SetWaterLevel(depthM float64) error {
	if depthM < 0 {
		return fmt.Errorf("ground water level must be non-negative, got %g", depthM)
	}
	s.waterLevelM = depthM
	s.hasWater = true
	return nil
}

// ClearWaterLevel marks the profile dry.
func (s *Size) ClearWaterLevel() {
	s.waterLevelM = 0
	s.hasWater = false
}

// SetLoadAngle sets the load inclination from vertical, in degrees.
func (s *Size) SetLoadAngle(deg float64) error {
	if deg < 0 || deg >= 90 {
		return fmt.Errorf("load angle must be in [0, 90) degrees, got %g", deg)
	}
	s.loadAngleDeg = deg
	return nil
}

// FactorShape resolves the shape used for correction-factor lookups. A
// declared square or circle keeps its shape while width and length agree;
// once they diverge the footing is treated as rectangular.
func (s *Size) FactorShape() Shape {
	if s.shape == Strip {
		return Strip
	}
	// An eccentric square or circle no longer has equal plan dimensions and
	// is treated as rectangular for factor lookups.
	if math.Abs(s.EffectiveWidth()-s.lengthM) <= shapeTol*math.Max(1, s.lengthM) {
		return s.shape
	}
	return Rectangle
}

// Soil holds the index strength properties of the bearing stratum.
type Soil struct {
	FrictionAngleDeg float64 // internal friction angle
	CohesionKPa      float64
	UnitWeightKNM3   float64 // moist unit weight
}

// NewSoil validates the soil properties.
func NewSoil(frictionAngleDeg, cohesionKPa, unitWeightKNM3 float64) (Soil, error) {
	if frictionAngleDeg < 0 || frictionAngleDeg >= 90 {
		return Soil{}, fmt.Errorf("friction angle must be in [0, 90) degrees, got %g", frictionAngleDeg)
	}
	if cohesionKPa < 0 {
		return Soil{}, fmt.Errorf("cohesion must be non-negative, got %g", cohesionKPa)
	}
	if unitWeightKNM3 <= 0 {
		return Soil{}, fmt.Errorf("moist unit weight must be positive, got %g", unitWeightKNM3)
	}
	return Soil{
		FrictionAngleDeg: frictionAngleDeg,
		CohesionKPa:      cohesionKPa,
		UnitWeightKNM3:   unitWeightKNM3,
	}, nil
}

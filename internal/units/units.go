// Package units wraps final numeric results with a display unit. Conversion
// is a pure post-processing step applied after rounding; it never changes
// the computation itself.
package units

import "fmt"

// Quantity is a numeric value tagged with its unit.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// kPaPerUnit maps supported pressure units to their size in kilopascals.
var kPaPerUnit = map[string]float64{
	"kPa":     1,
	"MPa":     1000,
	"kN/m2":   1,
	"ksf":     47.880259,
	"kip/ft2": 47.880259,
	"tsf":     95.760518,
}

// Pressure wraps a kPa value in the requested display unit.
func Pressure(valueKPa float64, unit string) (Quantity, error) {
	factor, ok := kPaPerUnit[unit]
	if !ok {
		return Quantity{}, fmt.Errorf("unsupported pressure unit %q", unit)
	}
	return Quantity{Value: valueKPa / factor, Unit: unit}, nil
}

// DefaultPressureUnit is used when a profile carries no preference.
const DefaultPressureUnit = "kPa"

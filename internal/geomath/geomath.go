// Package geomath provides degree-based trigonometry and rounding helpers
// shared by the geotechnical calculators. Published bearing-capacity tables
// work in degrees and report factors to two decimals, so the calculators do
// the same instead of passing radians around.
package geomath

import "math"

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// SinDeg returns the sine of an angle given in degrees.
func SinDeg(deg float64) float64 {
	return math.Sin(DegToRad(deg))
}

// CosDeg returns the cosine of an angle given in degrees.
func CosDeg(deg float64) float64 {
	return math.Cos(DegToRad(deg))
}

// TanDeg returns the tangent of an angle given in degrees.
func TanDeg(deg float64) float64 {
	return math.Tan(DegToRad(deg))
}

// CotDeg returns the cotangent of an angle given in degrees.
// Undefined at multiples of 180°; callers guard the zero-angle case.
func CotDeg(deg float64) float64 {
	return 1.0 / TanDeg(deg)
}

// ArctanDeg returns the inverse tangent in degrees.
func ArctanDeg(v float64) float64 {
	return RadToDeg(math.Atan(v))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

package chart

import (
	"fmt"
	"image/color"
	"io"

	bearing "Stratum/internal/calc/bearing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type Input struct {
	Footing   bearing.Input `json:"footing"`
	MinWidthM float64       `json:"min_width_m"`
	MaxWidthM float64       `json:"max_width_m"`
	Steps     int           `json:"steps"`
}

const (
	defaultMinWidthM = 0.5
	defaultMaxWidthM = 5.0
	defaultSteps     = 50
)

// CapacityCurve evaluates allowable capacity across the width range.
// Widths where the theory rejects the geometry are skipped.
func CapacityCurve(in Input) (plotter.XYs, error) {
	if in.MinWidthM <= 0 {
		in.MinWidthM = defaultMinWidthM
	}
	if in.MaxWidthM <= in.MinWidthM {
		in.MaxWidthM = defaultMaxWidthM
	}
	if in.Steps < 2 {
		in.Steps = defaultSteps
	}

	step := (in.MaxWidthM - in.MinWidthM) / float64(in.Steps-1)
	var pts plotter.XYs
	for i := 0; i < in.Steps; i++ {
		w := in.MinWidthM + float64(i)*step
		item := in.Footing
		item.WidthM = w
		if item.LengthM > 0 && item.LengthM < w {
			item.LengthM = w
		}
		res, err := bearing.Calculate(item)
		if err != nil {
			continue
		}
		pts = append(pts, plotter.XY{X: w, Y: res.AllowableKPa})
	}
	if len(pts) < 2 {
		return nil, fmt.Errorf("no valid widths in range %.2f-%.2f m", in.MinWidthM, in.MaxWidthM)
	}
	return pts, nil
}

// Render writes the capacity curve as a PNG image.
func Render(in Input, w io.Writer) error {
	pts, err := CapacityCurve(in)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Allowable Bearing Capacity vs Footing Width"
	p.X.Label.Text = "Width (m)"
	p.Y.Label.Text = "Allowable capacity (kPa)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

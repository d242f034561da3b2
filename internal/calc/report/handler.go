package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	bearing "Stratum/internal/calc/bearing"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Footing bearing.Input `json:"footing"`
}

type Handler struct{}

// Generate renders a bearing capacity calculation sheet as PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Bearing Capacity Report"
	}

	res, err := bearing.Calculate(input.Footing)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, fmt.Sprintf("Theory: %s, shape: %s", input.Footing.Theory, input.Footing.Shape))
	line(pdf, fmt.Sprintf("Friction angle: %.1f deg, cohesion: %.1f kPa, unit weight: %.1f kN/m3",
		input.Footing.FrictionAngleDeg, input.Footing.CohesionKPa, input.Footing.UnitWeightKNM3))
	line(pdf, fmt.Sprintf("Depth: %.2f m, width: %.2f m", input.Footing.DepthM, input.Footing.WidthM))
	if input.Footing.WaterLevelM != nil {
		line(pdf, fmt.Sprintf("Water table: %.2f m below grade", *input.Footing.WaterLevelM))
	}
	if input.Footing.LocalShear {
		line(pdf, fmt.Sprintf("Local shear: strength reduced to phi'=%.2f deg, c'=%.2f kPa",
			res.DesignFrictionAngleDeg, res.DesignCohesionKPa))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Bearing capacity factors")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, fmt.Sprintf("Nc = %.2f, Nq = %.2f, Ngamma = %.2f", res.Factors.Nc, res.Factors.Nq, res.Factors.Ngamma))
	c := res.Corrections
	line(pdf, fmt.Sprintf("Shape: sc = %.2f, sq = %.2f, sg = %.2f", c.Sc, c.Sq, c.Sg))
	line(pdf, fmt.Sprintf("Depth: dc = %.2f, dq = %.2f, dg = %.2f", c.Dc, c.Dq, c.Dg))
	line(pdf, fmt.Sprintf("Inclination: ic = %.2f, iq = %.2f, ig = %.2f", c.Ic, c.Iq, c.Ig))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, fmt.Sprintf("Ultimate bearing capacity: %.2f kPa", res.UltimateKPa))
	line(pdf, fmt.Sprintf("Allowable bearing capacity: %.2f kPa (FS = %.1f)", res.AllowableKPa, res.FactorOfSafety))
	if res.Notes != "" {
		line(pdf, res.Notes)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"bearing-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}

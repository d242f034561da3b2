package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	bearing "Stratum/internal/calc/bearing"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type BearingImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []bearing.Result `json:"results"`
}

// Bearing imports one footing per spreadsheet row and evaluates each.
// Expected columns: theory, shape, friction angle, cohesion, unit weight,
// depth, width, length (optional), water level (optional).
func (h *Handler) Bearing(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var out BearingImportResult
	for i := 1; i < len(rows); i++ {
		input, err := parseBearingRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := bearing.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Export evaluates the posted footings and returns a results workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Items []bearing.Input `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Theory", "Shape", "Width (m)", "Depth (m)", "Ultimate (kPa)", "Allowable (kPa)", "FS"}
	for col, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}
	for i, item := range input.Items {
		res, err := bearing.Calculate(item)
		if err != nil {
			http.Error(w, fmt.Sprintf("item %d: %v", i+1, err), http.StatusBadRequest)
			return
		}
		values := []any{item.Theory, item.Shape, item.WidthM, item.DepthM, res.UltimateKPa, res.AllowableKPa, res.FactorOfSafety}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"bearing-capacity.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

func parseBearingRow(row []string) (bearing.Input, error) {
	// expected: theory, shape, phi, cohesion, gamma, depth, width,
	// length(optional), water level(optional)
	if len(row) < 7 {
		return bearing.Input{}, fmt.Errorf("bad row")
	}
	phi, err := toFloat(row[2])
	if err != nil {
		return bearing.Input{}, err
	}
	cohesion, err := toFloat(row[3])
	if err != nil {
		return bearing.Input{}, err
	}
	gamma, err := toFloat(row[4])
	if err != nil {
		return bearing.Input{}, err
	}
	depth, err := toFloat(row[5])
	if err != nil {
		return bearing.Input{}, err
	}
	width, err := toFloat(row[6])
	if err != nil {
		return bearing.Input{}, err
	}
	in := bearing.Input{
		Theory:           row[0],
		Shape:            row[1],
		FrictionAngleDeg: phi,
		CohesionKPa:      cohesion,
		UnitWeightKNM3:   gamma,
		DepthM:           depth,
		WidthM:           width,
	}
	if len(row) > 7 && row[7] != "" {
		in.LengthM, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		if lvl, err := toFloat(row[8]); err == nil {
			in.WaterLevelM = &lvl
		}
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

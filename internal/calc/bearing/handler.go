package bearing

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Factors serves the bare bearing-capacity factors for a theory and friction
// angle, without building a footing.
func (h *Handler) Factors(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Theory           string  `json:"theory"`
		FrictionAngleDeg float64 `json:"friction_angle_deg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.FrictionAngleDeg < 0 || input.FrictionAngleDeg >= 90 {
		http.Error(w, "Friction angle must be in [0, 90) degrees", http.StatusBadRequest)
		return
	}
	theory, err := ParseTheory(input.Theory)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f, _ := NFactors(theory, input.FrictionAngleDeg)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

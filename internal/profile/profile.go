package profile

import (
	"Stratum/internal/auth"
	"Stratum/internal/repo"
	"Stratum/internal/units"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type UpdateProfileRequest struct {
	Email        string `json:"email"`
	PressureUnit string `json:"pressure_unit"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if idStr, ok := vars["id"]; ok && idStr != "" {
		targetID, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		prof, err := h.Repo.GetProfileByID(r.Context(), targetID)
		if err != nil {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(prof)
		return
	}

	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if prof.PressureUnit == "" {
		prof.PressureUnit = units.DefaultPressureUnit
	}

	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.PressureUnit == "" {
		req.PressureUnit = units.DefaultPressureUnit
	}
	if _, err := units.Pressure(0, req.PressureUnit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateProfile(r.Context(), userID, req.Email, req.PressureUnit); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History returns the user's recent saved calculations.
func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}
	calcs, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(calcs)
}

// SaveCalculation stores a tool run against the user's history.
func (h *ProfileHandler) SaveCalculation(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Tool   string          `json:"tool"`
		Input  json.RawMessage `json:"input"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Tool == "" || len(req.Input) == 0 {
		http.Error(w, "Tool and input required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveCalculation(r.Context(), userID, req.Tool, req.Input, req.Result)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

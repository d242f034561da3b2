package classify

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Input struct {
	USCS   *USCSInput   `json:"uscs"`
	AASHTO *AASHTOInput `json:"aashto"`
}

type Result struct {
	USCS   string `json:"uscs,omitempty"`
	AASHTO string `json:"aashto,omitempty"`
	Notes  string `json:"notes"`
}

// Calculate classifies under whichever systems the caller supplied inputs
// for.
func Calculate(in Input) (Result, error) {
	var res Result
	if in.USCS != nil {
		sym, err := ClassifyUSCS(*in.USCS)
		if err != nil {
			return Result{}, err
		}
		res.USCS = sym
	}
	if in.AASHTO != nil {
		sym, err := ClassifyAASHTO(*in.AASHTO)
		if err != nil {
			return Result{}, err
		}
		res.AASHTO = sym
	}
	res.Notes = "Classification is informational and does not enter bearing-capacity results."
	return res, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.USCS == nil && input.AASHTO == nil {
		http.Error(w, "Provide uscs and/or aashto inputs", http.StatusBadRequest)
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

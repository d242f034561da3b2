package chart

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := Render(input, &buf); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

package bearing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	body := `{"theory":"hansen","shape":"square","friction_angle_deg":20,"cohesion_kpa":20,"unit_weight_kn_m3":18,"depth_m":1.5,"width_m":2}`
	req := httptest.NewRequest(http.MethodPost, "/tools/bearing/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.UltimateKPa != 809.36 {
		t.Errorf("UltimateKPa = %v, want 809.36", res.UltimateKPa)
	}
	if res.FactorOfSafety != 3 {
		t.Errorf("FactorOfSafety = %v, want default 3", res.FactorOfSafety)
	}
}

func TestHandlerCalcBadInput(t *testing.T) {
	for name, body := range map[string]string{
		"malformed json":  `{"theory":`,
		"unknown theory":  `{"theory":"nope","shape":"strip","friction_angle_deg":20,"unit_weight_kn_m3":18,"depth_m":1,"width_m":1}`,
		"missing width":   `{"theory":"hansen","shape":"square","friction_angle_deg":20,"unit_weight_kn_m3":18,"depth_m":1}`,
		"negative weight": `{"theory":"hansen","shape":"square","friction_angle_deg":20,"unit_weight_kn_m3":-1,"depth_m":1,"width_m":1}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/tools/bearing/calc", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h := &Handler{}
		h.Calc(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestHandlerFactors(t *testing.T) {
	body := `{"theory":"terzaghi","friction_angle_deg":35}`
	req := httptest.NewRequest(http.MethodPost, "/tools/bearing/factors", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Factors(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var f Factors
	if err := json.Unmarshal(rec.Body.Bytes(), &f); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if f.Nq != 41.44 {
		t.Errorf("Nq = %v, want 41.44", f.Nq)
	}
}

func TestHandlerFactorsRejectsAngleOutOfRange(t *testing.T) {
	body := `{"theory":"terzaghi","friction_angle_deg":95}`
	req := httptest.NewRequest(http.MethodPost, "/tools/bearing/factors", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Factors(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ExoScan/internal/classifier"
	models "ExoScan/internal/domain/models"
	xlogger "ExoScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	h := NewClassifyHandler(l, classifier.New(classifier.DefaultThresholds()), "api-1.0.0")
	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	for _, path := range []string{"/health", "/api/analyze/health"} {
		rec := doJSON(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		var body models.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if body.Status != "ok" {
			t.Fatalf("%s: status %q", path, body.Status)
		}
	}
}

func TestPredictExo(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/predict",
		`{"orbital_period":10,"transit_depth":600,"duration":3,"snr":25,"star_radius":1,"star_temperature":5700,"star_magnitude":12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body models.PredictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Label != models.LabelExo {
		t.Fatalf("expected exo, got %q", body.Label)
	}
}

func TestPredictLowDepthIsNotExo(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/predict",
		`{"orbital_period":10,"transit_depth":150,"duration":3,"snr":25,"star_radius":1,"star_temperature":5700,"star_magnitude":12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body models.PredictResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Label != models.LabelNotExo {
		t.Fatalf("expected not exo, got %q", body.Label)
	}
}

func TestPredictMissingFields(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/predict", `{"orbital_period":10}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "required") {
		t.Fatalf("expected field detail in body: %s", rec.Body.String())
	}
}

func TestPredictRejectsNonPositive(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/predict",
		`{"orbital_period":10,"transit_depth":600,"duration":3,"snr":-5,"star_radius":1,"star_temperature":5700,"star_magnitude":12}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "SNR") {
		t.Fatalf("expected SNR detail in body: %s", rec.Body.String())
	}
}

func TestPredictZeroMagnitudeAllowed(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/predict",
		`{"orbital_period":10,"transit_depth":600,"duration":3,"snr":25,"star_radius":1,"star_temperature":5700,"star_magnitude":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("zero magnitude must be valid, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzeBatchOrderAndPartialFailure(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/analyze", `{"data":[
		{"name":"k1","orbital_period":10,"transit_depth":600,"transit_duration":3,"signal_to_noise_ratio":25,"stellar_radius":1,"stellar_temperature":5700,"stellar_magnitude":12},
		{"name":"broken","orbital_period":10,"transit_depth":600,"transit_duration":3,"signal_to_noise_ratio":25,"stellar_radius":-1,"stellar_temperature":5700,"stellar_magnitude":12},
		{"name":"k3","orbital_period":10,"transit_depth":250,"transit_duration":3,"signal_to_noise_ratio":12,"stellar_radius":1,"stellar_temperature":5700,"stellar_magnitude":12}
	]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Fatalf("success must be false with a failed item")
	}
	if len(body.Predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(body.Predictions))
	}
	if body.Predictions[0].Name != "k1" || body.Predictions[0].Label != models.LabelExo {
		t.Fatalf("prediction 0: %+v", body.Predictions[0])
	}
	if body.Predictions[1].Name != "broken" || body.Predictions[1].Error == "" || body.Predictions[1].Label != "" {
		t.Fatalf("prediction 1 must fail in place: %+v", body.Predictions[1])
	}
	if body.Predictions[2].Name != "k3" || body.Predictions[2].Label != models.LabelCandidate {
		t.Fatalf("prediction 2: %+v", body.Predictions[2])
	}
	if body.ModelVersion != "api-1.0.0" {
		t.Fatalf("model version %q", body.ModelVersion)
	}
}

func TestAnalyzeAllValid(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/analyze", `{"data":[
		{"name":"k1","orbital_period":10,"transit_depth":600,"transit_duration":3,"signal_to_noise_ratio":25,"stellar_radius":1,"stellar_temperature":5700,"stellar_magnitude":12}
	]}`)
	var body models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success")
	}
	if body.Timestamp <= 0 {
		t.Fatalf("expected positive timestamp, got %v", body.Timestamp)
	}
	if body.ProcessingTimeMS < 0 {
		t.Fatalf("negative processing time %v", body.ProcessingTimeMS)
	}
	if body.Insights == nil || body.Recommendations == nil || body.Anomalies == nil {
		t.Fatalf("compat arrays must be present")
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/analyze", `{"data":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatalf("empty batch must succeed")
	}
	if len(body.Predictions) != 0 {
		t.Fatalf("expected no predictions, got %d", len(body.Predictions))
	}
}

func TestAnalyzeModelNameEcho(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(t, e, http.MethodPost, "/api/analyze", `{"data":[],"model_name":"koi-v2"}`)
	var body models.AnalyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ModelVersion != "koi-v2" {
		t.Fatalf("expected echoed model name, got %q", body.ModelVersion)
	}
}

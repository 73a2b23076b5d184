package models

// Requests and responses for the classification HTTP endpoints. Two field-name
// dialects exist for historical reasons: /predict uses the canonical short
// names, /api/analyze accepts the frontend's long names and adapts them to the
// canonical Observation. Validation and classification exist only once; the
// dialects differ in tags and in their Observation() adapters.

// PredictRequest is the canonical single-classification payload.
// StarMagnitude is a pointer because zero is a legitimate magnitude.
type PredictRequest struct {
	OrbitalPeriod   float64  `json:"orbital_period" validate:"required,gt=0"`
	TransitDepth    float64  `json:"transit_depth" validate:"required,gt=0"`
	Duration        float64  `json:"duration" validate:"required,gt=0"`
	SNR             float64  `json:"snr" validate:"required,gt=0"`
	StarRadius      float64  `json:"star_radius" validate:"required,gt=0"`
	StarTemperature float64  `json:"star_temperature" validate:"required,gt=0"`
	StarMagnitude   *float64 `json:"star_magnitude" validate:"required"`
}

// Observation converts the validated request into the canonical feature vector.
func (r *PredictRequest) Observation() Observation {
	return Observation{
		OrbitalPeriod:   r.OrbitalPeriod,
		TransitDepth:    r.TransitDepth,
		Duration:        r.Duration,
		SNR:             r.SNR,
		StarRadius:      r.StarRadius,
		StarTemperature: r.StarTemperature,
		StarMagnitude:   *r.StarMagnitude,
	}
}

// PredictResponse is the single-classification result.
type PredictResponse struct {
	Label Label `json:"label"`
}

// AnalyzeItem mirrors the shape produced by the frontend's formatDataForModel:
// long field names, optional name and metadata. Items are validated
// individually so one bad row never rejects the whole batch.
type AnalyzeItem struct {
	Name               string   `json:"name,omitempty"`
	OrbitalPeriod      float64  `json:"orbital_period" validate:"required,gt=0"`
	TransitDepth       float64  `json:"transit_depth" validate:"required,gt=0"`
	TransitDuration    float64  `json:"transit_duration" validate:"required,gt=0"`
	SignalToNoiseRatio float64  `json:"signal_to_noise_ratio" validate:"required,gt=0"`
	StellarRadius      float64  `json:"stellar_radius" validate:"required,gt=0"`
	StellarTemperature float64  `json:"stellar_temperature" validate:"required,gt=0"`
	StellarMagnitude   *float64 `json:"stellar_magnitude" validate:"required"`
	DateAdded          string   `json:"date_added,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// Observation maps the frontend dialect onto the canonical feature vector:
// transit_duration -> Duration, signal_to_noise_ratio -> SNR, stellar_* -> Star*.
func (it *AnalyzeItem) Observation() Observation {
	return Observation{
		OrbitalPeriod:   it.OrbitalPeriod,
		TransitDepth:    it.TransitDepth,
		Duration:        it.TransitDuration,
		SNR:             it.SignalToNoiseRatio,
		StarRadius:      it.StellarRadius,
		StarTemperature: it.StellarTemperature,
		StarMagnitude:   *it.StellarMagnitude,
	}
}

// AnalyzeRequest is the batch payload. Data may be empty; items are not
// validated here (see AnalyzeItem).
type AnalyzeRequest struct {
	Data         []AnalyzeItem          `json:"data"`
	AnalysisType string                 `json:"analysis_type" default:"classification"`
	Parameters   map[string]interface{} `json:"parameters,omitempty"`
	ModelName    string                 `json:"model_name,omitempty"`
}

// AnalyzePrediction is one batch result entry. Exactly one of Label and Error
// is set; the entry index always matches the input index.
type AnalyzePrediction struct {
	Name  string `json:"name,omitempty"`
	Label Label  `json:"label,omitempty"`
	Error string `json:"error,omitempty"`
}

// AnalyzeResponse is the batch result envelope expected by the frontend.
// Insights, Recommendations and Anomalies are always present (empty) for
// compatibility.
type AnalyzeResponse struct {
	Success          bool                     `json:"success"`
	Predictions      []AnalyzePrediction      `json:"predictions"`
	Insights         []string                 `json:"insights"`
	Recommendations  []string                 `json:"recommendations"`
	Anomalies        []map[string]interface{} `json:"anomalies"`
	ModelVersion     string                   `json:"model_version"`
	Timestamp        float64                  `json:"timestamp"`
	ProcessingTimeMS float64                  `json:"processing_time_ms"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

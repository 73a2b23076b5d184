package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default cutoffs, applied field-by-field when the artifact omits a value.
const (
	DefaultExoSNR         = 20
	DefaultExoDepth       = 500
	DefaultCandidateSNR   = 10
	DefaultCandidateDepth = 200
)

// Thresholds holds the four cutoffs governing label assignment.
// Loaded once at startup and immutable afterwards.
type Thresholds struct {
	ExoSNR         float64
	ExoDepth       float64
	CandidateSNR   float64
	CandidateDepth float64
}

// DefaultThresholds returns the hardcoded fallback cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExoSNR:         DefaultExoSNR,
		ExoDepth:       DefaultExoDepth,
		CandidateSNR:   DefaultCandidateSNR,
		CandidateDepth: DefaultCandidateDepth,
	}
}

// artifact mirrors the JSON document written by the offline exporter.
// Pointer fields distinguish "absent" from zero so fallback is per-field.
type artifact struct {
	Thresholds struct {
		ExoSNR         *float64 `json:"exo_snr"`
		ExoDepth       *float64 `json:"exo_depth"`
		CandidateSNR   *float64 `json:"candidate_snr"`
		CandidateDepth *float64 `json:"candidate_depth"`
	} `json:"thresholds"`
}

// LoadThresholds reads the artifact at path and overlays it on the defaults.
// The returned Thresholds is always usable: a missing, unreadable or
// malformed artifact resolves to the defaults, and the error only describes
// the degradation so callers can log it. The serving path must never be
// blocked by bad configuration.
func LoadThresholds(path string) (Thresholds, error) {
	t := DefaultThresholds()
	if path == "" {
		return t, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return t, fmt.Errorf("parse artifact: %w", err)
	}

	if v := a.Thresholds.ExoSNR; v != nil {
		t.ExoSNR = *v
	}
	if v := a.Thresholds.ExoDepth; v != nil {
		t.ExoDepth = *v
	}
	if v := a.Thresholds.CandidateSNR; v != nil {
		t.CandidateSNR = *v
	}
	if v := a.Thresholds.CandidateDepth; v != nil {
		t.CandidateDepth = *v
	}
	return t, nil
}

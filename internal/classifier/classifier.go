package classifier

import (
	models "ExoScan/internal/domain/models"
)

// Classifier assigns labels by comparing SNR and transit depth against the
// configured thresholds. The thresholds are fixed at construction, so a
// Classifier is safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
}

// New creates a Classifier with the given thresholds.
func New(t Thresholds) *Classifier {
	return &Classifier{thresholds: t}
}

// Thresholds returns the active cutoffs.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify maps one observation to exactly one label. Rule order matters:
// the exo pair is checked first, so an observation meeting both pairs is
// always "exo". Comparisons are inclusive; no other feature is consulted.
func (c *Classifier) Classify(obs models.Observation) models.Label {
	t := c.thresholds
	switch {
	case obs.SNR >= t.ExoSNR && obs.TransitDepth >= t.ExoDepth:
		return models.LabelExo
	case obs.SNR >= t.CandidateSNR && obs.TransitDepth >= t.CandidateDepth:
		return models.LabelCandidate
	default:
		return models.LabelNotExo
	}
}

// BatchItem is one entry of a batch. Err carries a validation failure
// detected at the boundary; such items are passed through unclassified.
type BatchItem struct {
	Name string
	Obs  models.Observation
	Err  string
}

// ClassifyBatch classifies items independently, preserving input order:
// result i always corresponds to items[i]. A failed item never aborts the
// rest of the batch.
func (c *Classifier) ClassifyBatch(items []BatchItem) []models.PredictionResult {
	results := make([]models.PredictionResult, len(items))
	for i, it := range items {
		results[i] = models.PredictionResult{Name: it.Name, Err: it.Err}
		if it.Err == "" {
			results[i].Label = c.Classify(it.Obs)
		}
	}
	return results
}

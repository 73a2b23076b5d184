package models

// Label is the classification verdict for a candidate transit signal.
type Label string

const (
	LabelExo       Label = "exo"
	LabelCandidate Label = "candidate"
	LabelNotExo    Label = "not exo"
)

// Observation is one candidate transit signal's measured feature vector.
// All fields except StarMagnitude must be strictly positive; that invariant
// is enforced at the transport boundary, never here.
type Observation struct {
	OrbitalPeriod   float64 // days
	TransitDepth    float64 // ppm
	Duration        float64 // hours
	SNR             float64
	StarRadius      float64 // solar radii
	StarTemperature float64 // Kelvin
	StarMagnitude   float64 // apparent magnitude, any sign
}

// PredictionResult pairs a caller-supplied name with the assigned label.
// Name is passthrough only and never interpreted. Err is set instead of
// Label when the item failed validation inside a batch.
type PredictionResult struct {
	Name  string
	Label Label
	Err   string
}

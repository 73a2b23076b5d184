package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_artifact.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadThresholdsNoPath(t *testing.T) {
	got, err := LoadThresholds("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultThresholds() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadThresholdsMissingFile(t *testing.T) {
	got, err := LoadThresholds(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected degradation error")
	}
	if got != DefaultThresholds() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadThresholdsMalformed(t *testing.T) {
	path := writeArtifact(t, "not json at all")
	got, err := LoadThresholds(path)
	if err == nil {
		t.Fatalf("expected degradation error")
	}
	if got != DefaultThresholds() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadThresholdsEmptyObject(t *testing.T) {
	path := writeArtifact(t, "{}")
	got, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultThresholds() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadThresholdsPartialOverride(t *testing.T) {
	path := writeArtifact(t, `{"thresholds": {"exo_snr": 15}}`)
	got, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Thresholds{ExoSNR: 15, ExoDepth: 500, CandidateSNR: 10, CandidateDepth: 200}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadThresholdsFullOverride(t *testing.T) {
	path := writeArtifact(t, `{"thresholds": {"exo_snr": 18, "exo_depth": 450, "candidate_snr": 9, "candidate_depth": 180}}`)
	got, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Thresholds{ExoSNR: 18, ExoDepth: 450, CandidateSNR: 9, CandidateDepth: 180}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadThresholdsZeroIsExplicit(t *testing.T) {
	// A present zero is a real value, not "absent".
	path := writeArtifact(t, `{"thresholds": {"candidate_snr": 0}}`)
	got, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CandidateSNR != 0 {
		t.Fatalf("expected explicit zero, got %v", got.CandidateSNR)
	}
	if got.ExoSNR != DefaultExoSNR {
		t.Fatalf("other fields must fall back, got %v", got.ExoSNR)
	}
}

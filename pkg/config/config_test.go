package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("default port, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default log level, got %q", cfg.Logging.Level)
	}
	if cfg.Model.Version != "api-1.0.0" {
		t.Fatalf("default model version, got %q", cfg.Model.Version)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
model:
  artifact_path: model_artifact.json
  version: api-2.0.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port, got %d", cfg.Server.Port)
	}
	if cfg.Model.ArtifactPath != "model_artifact.json" {
		t.Fatalf("artifact path, got %q", cfg.Model.ArtifactPath)
	}
	if cfg.Model.Version != "api-2.0.0" {
		t.Fatalf("version, got %q", cfg.Model.Version)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := writeConfig(t, "environment: test\nserver:\n  port: 70000\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("PORT", "9999")
	t.Setenv("MODEL_ARTIFACT", "alt_artifact.json")
	t.Setenv("MODEL_VERSION", "api-9.9.9")
	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("env port, got %d", cfg.Server.Port)
	}
	if cfg.Model.ArtifactPath != "alt_artifact.json" {
		t.Fatalf("env artifact, got %q", cfg.Model.ArtifactPath)
	}
	if cfg.Model.Version != "api-9.9.9" {
		t.Fatalf("env version, got %q", cfg.Model.Version)
	}
}

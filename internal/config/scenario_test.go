package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenarioConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenario.yaml")

	testYAML := `
cell:
  a: [4.0, 0.0, 0.0]
  b: [0.0, 4.0, 0.0]
  c: [0.0, 0.0, 4.0]
atoms:
  - element: Si
    x: 0.0
    y: 0.0
    z: 0.0
  - element: Si
    x: 2.0
    y: 2.0
    z: 0.0
bondlength: 1.6
`
	if err := os.WriteFile(configPath, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("failed to write test scenario file: %v", err)
	}

	cfg, err := LoadScenarioConfig(configPath)
	if err != nil {
		t.Fatalf("LoadScenarioConfig() error = %v", err)
	}

	if len(cfg.Atoms) != 2 {
		t.Fatalf("got %d atoms, want 2", len(cfg.Atoms))
	}
	if cfg.Atoms[0].Element != "Si" {
		t.Errorf("got element %q, want Si", cfg.Atoms[0].Element)
	}
	if cfg.Bondlength != 1.6 {
		t.Errorf("got bondlength %f, want 1.6", cfg.Bondlength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("a loaded scenario must pass Validate(): %v", err)
	}
}

func TestLoadScenarioConfigRejectsWrongExtension(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenario.json")
	if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("failed to write test scenario file: %v", err)
	}

	if _, err := LoadScenarioConfig(configPath); err == nil {
		t.Fatal("expected an error for a non-YAML extension, got nil")
	}
}

func TestLoadScenarioConfigRejectsEmptyAtoms(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenario.yaml")
	testYAML := `
cell:
  a: [1.0, 0.0, 0.0]
  b: [0.0, 1.0, 0.0]
  c: [0.0, 0.0, 1.0]
atoms: []
bondlength: 1.6
`
	if err := os.WriteFile(configPath, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("failed to write test scenario file: %v", err)
	}

	if _, err := LoadScenarioConfig(configPath); err == nil {
		t.Fatal("expected an error for a scenario with no atoms, got nil")
	}
}

func TestLoadScenarioConfigRejectsNonPositiveBondlength(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "scenario.yaml")
	testYAML := `
cell:
  a: [1.0, 0.0, 0.0]
  b: [0.0, 1.0, 0.0]
  c: [0.0, 0.0, 1.0]
atoms:
  - element: Si
    x: 0.0
    y: 0.0
    z: 0.0
bondlength: 0.0
`
	if err := os.WriteFile(configPath, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("failed to write test scenario file: %v", err)
	}

	if _, err := LoadScenarioConfig(configPath); err == nil {
		t.Fatal("expected an error for a non-positive bondlength, got nil")
	}
}

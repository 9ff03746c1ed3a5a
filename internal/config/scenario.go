// Package config loads the YAML scenario files that describe a crystal
// structure and the search parameters to run against it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxScenarioFileSize bounds how large a scenario file we will read, the
// same defensive cap the teacher's tuning loader applies to its JSON.
const maxScenarioFileSize = 1 * 1024 * 1024

// AtomSpec is one existing atom in the crystal, given in Cartesian
// coordinates (already expanded from fractional coordinates and any
// periodic images the caller cares about).
type AtomSpec struct {
	Element string  `yaml:"element"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Z       float64 `yaml:"z"`
}

// CellSpec is the lattice the structure lives in, needed to convert
// candidate Cartesian sites back to fractional coordinates for display.
type CellSpec struct {
	A [3]float64 `yaml:"a"`
	B [3]float64 `yaml:"b"`
	C [3]float64 `yaml:"c"`
}

// ScenarioConfig is the root of a scenario YAML file: a cell, the atoms
// already placed in it, and the bondlength to search coordination sites
// at.
type ScenarioConfig struct {
	Cell       CellSpec   `yaml:"cell"`
	Atoms      []AtomSpec `yaml:"atoms"`
	Bondlength float64    `yaml:"bondlength"`
}

// LoadScenarioConfig loads a ScenarioConfig from a YAML file. The path
// must carry a .yaml or .yml extension and the file must be under
// maxScenarioFileSize, mirroring the validation the teacher's JSON
// tuning loader applies before ever touching the file contents.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	cleanPath := filepath.Clean(path)
	switch ext := filepath.Ext(cleanPath); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("scenario file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat scenario file: %w", err)
	}
	if fileInfo.Size() > maxScenarioFileSize {
		return nil, fmt.Errorf("scenario file too large: %d bytes (max %d)", fileInfo.Size(), maxScenarioFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable: a positive
// bondlength and at least one atom to search around.
func (c *ScenarioConfig) Validate() error {
	if c.Bondlength <= 0 {
		return fmt.Errorf("bondlength must be positive, got %f", c.Bondlength)
	}
	if len(c.Atoms) == 0 {
		return fmt.Errorf("scenario must contain at least one atom")
	}
	return nil
}

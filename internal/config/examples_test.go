package config

import (
	"path/filepath"
	"testing"
)

// TestAllExamplesLoadSuccessfully tests that all example YAML files can be loaded and validated
func TestAllExamplesLoadSuccessfully(t *testing.T) {
	examples := []struct {
		name string
		file string
	}{
		{"arrange", "../../example/arrange.yaml"},
		{"stacked", "../../example/stacked.yaml"},
	}

	loader := NewLoader()

	for _, tt := range examples {
		t.Run(tt.name, func(t *testing.T) {
			absPath, err := filepath.Abs(tt.file)
			if err != nil {
				t.Fatalf("Failed to get absolute path: %v", err)
			}

			config, err := loader.Load(absPath)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", tt.name, err)
			}

			if err := loader.Validate(config); err != nil {
				t.Fatalf("Example %s is invalid: %v", tt.name, err)
			}

			if !filepath.IsAbs(config.Input) {
				t.Errorf("Input path should be absolute, got %s", config.Input)
			}
		})
	}
}

func TestStackedExample(t *testing.T) {
	absPath, err := filepath.Abs("../../example/stacked.yaml")
	if err != nil {
		t.Fatalf("Failed to get absolute path: %v", err)
	}

	config, err := NewLoader().Load(absPath)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	p := Params(config)
	if !p.Stacking || p.StackColumns != 3 {
		t.Errorf("expected stacking with 3 columns, got %+v", p)
	}
	if p.StartTile != 11 || p.Spacing != 0.02 {
		t.Errorf("unexpected start or spacing: %+v", p)
	}
	if filepath.Base(OutputPath(config)) != "bolts_arranged.obj" {
		t.Errorf("unexpected default output: %s", OutputPath(config))
	}
}

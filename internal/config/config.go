package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/models"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating YAML configuration files
type Loader struct{}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{}
}

// Default returns an empty configuration that resolves to the default layout
func Default() *models.ArrangeConfig {
	return &models.ArrangeConfig{}
}

// Load reads and parses a YAML configuration file. Relative paths are
// resolved against the directory of the config file.
func (l *Loader) Load(configPath string) (*models.ArrangeConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config models.ArrangeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validateLayout(&config.Layout); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	absConfigDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of config directory: %w", err)
	}

	for _, path := range []*string{
		&config.Input,
		&config.Output,
		&config.Exports.Preview,
		&config.Exports.Report,
		&config.Exports.Outline,
	} {
		if *path != "" && !filepath.IsAbs(*path) {
			*path = filepath.Join(absConfigDir, *path)
		}
	}

	return &config, nil
}

// Apply merges command line overrides into the configuration
func (l *Loader) Apply(config *models.ArrangeConfig, o models.Overrides) error {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&config.Input, o.Input)
	setString(&config.Output, o.Output)
	setString(&config.Exports.Preview, o.Preview)
	setString(&config.Exports.Report, o.Report)
	setString(&config.Exports.Outline, o.Outline)

	if len(o.Selection) > 0 {
		config.Selection = o.Selection
	}
	if o.StartTile != "" {
		start, err := strconv.Atoi(strings.TrimSpace(o.StartTile))
		if err != nil {
			return fmt.Errorf("start tile must be a positive integer: %q", o.StartTile)
		}
		config.Layout.StartTile = &start
	}
	if o.Spacing != "" {
		spacing, err := strconv.ParseFloat(strings.TrimSpace(o.Spacing), 64)
		if err != nil {
			return fmt.Errorf("spacing must be a number: %q", o.Spacing)
		}
		config.Layout.Spacing = &spacing
	}
	if o.StackColumns != "" {
		columns, err := strconv.Atoi(strings.TrimSpace(o.StackColumns))
		if err != nil {
			return fmt.Errorf("stack columns must be a positive integer: %q", o.StackColumns)
		}
		config.Layout.StackColumns = &columns
	}
	if o.UseCurrentTile {
		config.Layout.UseCurrentTile = true
	}
	if o.Stacking {
		config.Layout.Stacking = true
	}

	return l.validateLayout(&config.Layout)
}

// Validate checks if the configuration is complete and valid
func (l *Loader) Validate(config *models.ArrangeConfig) error {
	if config.Input == "" {
		return fmt.Errorf("input file must be specified")
	}
	if !strings.EqualFold(filepath.Ext(config.Input), ".obj") {
		return fmt.Errorf("input file must be a .obj file: %s", config.Input)
	}
	if _, err := os.Stat(config.Input); err != nil {
		return fmt.Errorf("input file not found: %s", config.Input)
	}
	if config.Output != "" && !strings.EqualFold(filepath.Ext(config.Output), ".obj") {
		return fmt.Errorf("output file must be a .obj file: %s", config.Output)
	}

	for _, name := range config.Selection {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("selection contains an empty name")
		}
	}

	if err := l.validateLayout(&config.Layout); err != nil {
		return err
	}

	exports := []struct {
		name, path, ext string
	}{
		{"preview", config.Exports.Preview, ".pdf"},
		{"report", config.Exports.Report, ".xlsx"},
		{"outline", config.Exports.Outline, ".dxf"},
	}
	for _, e := range exports {
		if e.path != "" && !strings.EqualFold(filepath.Ext(e.path), e.ext) {
			return fmt.Errorf("%s must be a %s file: %s", e.name, e.ext, e.path)
		}
	}

	return nil
}

func (l *Loader) validateLayout(c *models.LayoutConfig) error {
	if c.StartTile != nil && *c.StartTile < 1 {
		return fmt.Errorf("start tile must be a positive integer, got %d", *c.StartTile)
	}
	if c.Spacing != nil && (*c.Spacing < 0 || math.IsNaN(*c.Spacing) || math.IsInf(*c.Spacing, 0)) {
		return fmt.Errorf("spacing must be a non-negative number, got %g", *c.Spacing)
	}
	if c.StackColumns != nil && *c.StackColumns < 1 {
		return fmt.Errorf("stack columns must be a positive integer, got %d", *c.StackColumns)
	}
	if c.TileWidth != nil && !(*c.TileWidth > 0) {
		return fmt.Errorf("tile width must be positive")
	}
	if c.TileHeight != nil && !(*c.TileHeight > 0) {
		return fmt.Errorf("tile height must be positive")
	}
	return nil
}

// Params converts the layout section into engine parameters
func Params(config *models.ArrangeConfig) layout.Params {
	p := layout.DefaultParams()
	c := config.Layout
	if c.StartTile != nil {
		p.StartTile = *c.StartTile
	}
	if c.Spacing != nil {
		p.Spacing = *c.Spacing
	}
	if c.StackColumns != nil {
		p.StackColumns = *c.StackColumns
	}
	p.UseCurrentTile = c.UseCurrentTile
	p.Stacking = c.Stacking
	return p
}

// TileSize returns the configured tile size
func TileSize(config *models.ArrangeConfig) layout.Size {
	size := layout.UnitTile
	if config.Layout.TileWidth != nil {
		size.W = *config.Layout.TileWidth
	}
	if config.Layout.TileHeight != nil {
		size.H = *config.Layout.TileHeight
	}
	return size
}

// OutputPath returns where the arranged scene is written
func OutputPath(config *models.ArrangeConfig) string {
	if config.Output != "" || config.Input == "" {
		return config.Output
	}
	ext := filepath.Ext(config.Input)
	return strings.TrimSuffix(config.Input, ext) + "_arranged" + ext
}

// Effective returns a copy with every default filled in
func Effective(config *models.ArrangeConfig) *models.ArrangeConfig {
	out := *config
	p := Params(config)
	size := TileSize(config)
	out.Output = OutputPath(config)
	out.Layout.StartTile = &p.StartTile
	out.Layout.Spacing = &p.Spacing
	out.Layout.StackColumns = &p.StackColumns
	out.Layout.TileWidth = &size.W
	out.Layout.TileHeight = &size.H
	return &out
}

// Marshal renders the configuration as YAML
func Marshal(config *models.ArrangeConfig) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	return data, nil
}

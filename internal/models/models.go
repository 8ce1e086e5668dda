package models

// ArrangeConfig is the YAML parameter file of an arrange run
type ArrangeConfig struct {
	Input     string       `yaml:"input"`
	Output    string       `yaml:"output,omitempty"`
	Selection []string     `yaml:"selection,omitempty"`
	Layout    LayoutConfig `yaml:"layout"`
	Exports   ExportConfig `yaml:"exports,omitempty"`
}

// LayoutConfig holds the arrangement parameters. Unset values fall back to
// the defaults.
type LayoutConfig struct {
	StartTile      *int     `yaml:"start_tile,omitempty"`
	Spacing        *float64 `yaml:"spacing,omitempty"`
	UseCurrentTile bool     `yaml:"use_current_tile"`
	Stacking       bool     `yaml:"stacking"`
	StackColumns   *int     `yaml:"stack_columns,omitempty"`
	TileWidth      *float64 `yaml:"tile_width,omitempty"`
	TileHeight     *float64 `yaml:"tile_height,omitempty"`
}

// ExportConfig lists optional side outputs of a run
type ExportConfig struct {
	Preview string `yaml:"preview,omitempty"` // PDF with one page per used tile
	Report  string `yaml:"report,omitempty"`  // XLSX placement report
	Outline string `yaml:"outline,omitempty"` // DXF with tile borders and shell rectangles
}

// Overrides are command line values applied on top of a config file. Empty
// strings and false flags leave the file value untouched. Numbers are kept as
// text so an explicit 0 can be told apart from an absent flag.
type Overrides struct {
	Input          string
	Output         string
	Selection      []string
	StartTile      string
	Spacing        string
	UseCurrentTile bool
	Stacking       bool
	StackColumns   string
	Preview        string
	Report         string
	Outline        string
}

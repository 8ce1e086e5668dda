package buildplan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/philipparndt/gouvtile/internal/config"
	"github.com/philipparndt/gouvtile/internal/export"
	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/models"
	"github.com/philipparndt/gouvtile/internal/obj"
	"github.com/philipparndt/gouvtile/internal/preconditions"
	"github.com/philipparndt/gouvtile/internal/topology"
	"github.com/philipparndt/gouvtile/internal/ui"
)

// ErrUnarranged is returned by strict plans when some groups could not be placed
var ErrUnarranged = errors.New("some groups could not be arranged")

// BuildStep represents a single step in the build plan
type BuildStep interface {
	Name() string
	Execute(ctx context.Context, c *Context) error
}

// Context holds shared data between build steps
type Context struct {
	Config     *models.ArrangeConfig
	Params     layout.Params
	Tile       layout.Size
	OutputFile string

	Scene  *obj.Scene
	Result *layout.Result
	Report *export.Report
}

// BuildPlan contains all steps of an arrange run
type BuildPlan struct {
	Steps   []BuildStep
	Context *Context
	// Strict turns unarranged groups into an error
	Strict bool
}

// Planner creates build plans from a resolved configuration
type Planner struct{}

// NewPlanner creates a new build planner
func NewPlanner() *Planner {
	return &Planner{}
}

// CreatePlan validates the configuration and lays out the steps of the run.
// A dry run computes placements but writes neither the scene nor exports.
func (p *Planner) CreatePlan(cfg *models.ArrangeConfig, dryRun bool) (*BuildPlan, error) {
	if err := config.NewLoader().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	params := config.Params(cfg)
	params.DryRun = dryRun
	c := &Context{
		Config:     cfg,
		Params:     params,
		Tile:       config.TileSize(cfg),
		OutputFile: config.OutputPath(cfg),
	}

	plan := &BuildPlan{Context: c}
	if dryRun {
		plan.Steps = append(plan.Steps, &CheckPreconditionsStep{})
	} else {
		plan.Steps = append(plan.Steps, &CheckPreconditionsStep{
			Outputs: []string{c.OutputFile, cfg.Exports.Preview, cfg.Exports.Report, cfg.Exports.Outline},
		})
	}

	plan.Steps = append(plan.Steps,
		&LoadSceneStep{},
		&SelectStep{},
		&ArrangeStep{},
	)

	if dryRun {
		return plan, nil
	}

	plan.Steps = append(plan.Steps, &WriteSceneStep{})
	if cfg.Exports.Preview != "" {
		plan.Steps = append(plan.Steps, &ExportStep{Kind: "preview", Path: cfg.Exports.Preview, Write: export.WritePDF})
	}
	if cfg.Exports.Report != "" {
		plan.Steps = append(plan.Steps, &ExportStep{Kind: "report", Path: cfg.Exports.Report, Write: export.WriteXLSX})
	}
	if cfg.Exports.Outline != "" {
		plan.Steps = append(plan.Steps, &ExportStep{Kind: "outline", Path: cfg.Exports.Outline, Write: export.WriteDXF})
	}

	return plan, nil
}

// Execute runs all steps in the plan
func (p *BuildPlan) Execute(ctx context.Context) error {
	if ui.IsVerbose() {
		ui.PrintTitle("Arrange Plan Execution")
		ui.PrintInfo(fmt.Sprintf("Total steps: %d", len(p.Steps)))
		ui.PrintSeparator()
	}

	for i, step := range p.Steps {
		if ui.IsVerbose() {
			ui.PrintHeader(fmt.Sprintf("Step %d/%d: %s", i+1, len(p.Steps), step.Name()))
		}
		if err := step.Execute(ctx, p.Context); err != nil {
			return err
		}
	}

	result := p.Context.Result
	ui.PrintSeparator()
	if result.Success() {
		ui.PrintSuccess("Arrangement completed successfully!")
	} else {
		ui.PrintWarning("Arrangement completed with unarranged groups")
		ui.PrintUnarranged(result.Unarranged)
	}

	ui.PrintKeyValue("Tiles used", fmt.Sprintf("%d", result.TileCount()))
	ui.PrintKeyValue("Shells placed", fmt.Sprintf("%d", len(result.Placements())))
	if grid := ui.RenderTileGrid(p.Context.Report.ShellsPerTile(), layout.TilesPerRow); grid != "" {
		ui.PrintBox(grid)
	}
	if !p.Context.Params.DryRun {
		relPath, err := filepath.Rel(".", p.Context.OutputFile)
		if err != nil {
			relPath = p.Context.OutputFile
		}
		ui.PrintKeyValue("Output file", relPath)
	}

	if p.Strict && !result.Success() {
		return ErrUnarranged
	}
	return nil
}

// CheckPreconditionsStep verifies input and output paths
type CheckPreconditionsStep struct {
	Outputs []string
}

func (s *CheckPreconditionsStep) Name() string {
	return "Check preconditions"
}

func (s *CheckPreconditionsStep) Execute(ctx context.Context, c *Context) error {
	if err := preconditions.Check(c.Config.Input, s.Outputs...); err != nil {
		return fmt.Errorf("precondition check failed: %w", err)
	}
	return nil
}

// LoadSceneStep parses the input OBJ file
type LoadSceneStep struct{}

func (s *LoadSceneStep) Name() string {
	return "Load scene"
}

func (s *LoadSceneStep) Execute(ctx context.Context, c *Context) error {
	ui.PrintStep(fmt.Sprintf("Loading %s", filepath.Base(c.Config.Input)))
	scene, err := obj.NewParser().Parse(c.Config.Input)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	c.Scene = scene
	ui.PrintInfo(fmt.Sprintf("%d objects, %d texture coordinates", len(scene.Objects), len(scene.TexCoords)))
	return nil
}

// SelectStep applies the configured selection to the scene
type SelectStep struct{}

func (s *SelectStep) Name() string {
	return "Select objects"
}

func (s *SelectStep) Execute(ctx context.Context, c *Context) error {
	if err := c.Scene.Select(c.Config.Selection); err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}
	if ui.IsVerbose() {
		for _, name := range c.Scene.Selection() {
			ui.PrintItem(name)
		}
	}
	return nil
}

// ArrangeStep plans the layout and then applies it to the scene
type ArrangeStep struct{}

func (s *ArrangeStep) Name() string {
	return "Arrange UV shells"
}

func (s *ArrangeStep) Execute(ctx context.Context, c *Context) error {
	planParams := c.Params
	planParams.DryRun = true
	plan, err := layout.NewArranger(c.Scene, layout.WithTileSize(c.Tile)).Run(ctx, planParams)
	if err != nil {
		return fmt.Errorf("failed to plan layout: %w", err)
	}
	total := plan.TileCount()

	if c.Params.DryRun {
		c.Result = plan
	} else {
		done := 0
		observer := func(key topology.Key, tile layout.TileResult) {
			done++
			ui.PrintProgress(done, total, fmt.Sprintf("UDIM %d (%s)", layout.UDIM(tile.Origin), key.Counts))
		}
		arranger := layout.NewArranger(c.Scene, layout.WithTileSize(c.Tile), layout.WithTileObserver(observer))
		result, err := arranger.Run(ctx, c.Params)
		if err != nil {
			return fmt.Errorf("failed to arrange: %w", err)
		}
		c.Result = result
	}

	c.Report = export.NewReport(c.Scene.Name, c.Params, c.Tile, c.Result)
	ui.PrintStep(fmt.Sprintf("%d classes on %d tiles", len(c.Result.Classes), total))
	return nil
}

// WriteSceneStep writes the arranged scene
type WriteSceneStep struct{}

func (s *WriteSceneStep) Name() string {
	return "Write scene"
}

func (s *WriteSceneStep) Execute(ctx context.Context, c *Context) error {
	if err := obj.NewWriter().Write(c.OutputFile, c.Scene); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	ui.PrintStep(fmt.Sprintf("Wrote %s", filepath.Base(c.OutputFile)))
	return nil
}

// ExportStep writes one side output of the run
type ExportStep struct {
	Kind  string
	Path  string
	Write func(path string, r *export.Report) error
}

func (s *ExportStep) Name() string {
	return "Export " + s.Kind
}

func (s *ExportStep) Execute(ctx context.Context, c *Context) error {
	if err := s.Write(s.Path, c.Report); err != nil {
		return fmt.Errorf("failed to export %s: %w", s.Kind, err)
	}
	ui.PrintStep(fmt.Sprintf("Exported %s to %s", s.Kind, filepath.Base(s.Path)))
	return nil
}

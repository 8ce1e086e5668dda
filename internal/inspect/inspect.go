package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/gouvtile/internal/host"
	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/obj"
	"github.com/philipparndt/gouvtile/internal/topology"
	"github.com/philipparndt/gouvtile/internal/ui"
)

// Inspector shows how a scene would be arranged without changing it
type Inspector struct {
	Params    layout.Params
	Tile      layout.Size
	Selection []string
}

// NewInspector creates a new Inspector using the default parameters
func NewInspector() *Inspector {
	return &Inspector{Params: layout.DefaultParams(), Tile: layout.UnitTile}
}

// Analysis is the outcome of inspecting a scene
type Analysis struct {
	Scene *obj.Scene
	// Plan is nil when the selection is empty
	Plan *layout.Result
}

// Inspect reads an OBJ file and displays its objects, topology classes and the
// planned tile usage
func (i *Inspector) Inspect(ctx context.Context, filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("file not found: %s", filename)
	}

	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", filename))

	scene, err := obj.NewParser().Parse(filename)
	if err != nil {
		return fmt.Errorf("error reading OBJ file: %w", err)
	}

	analysis, err := i.Analyze(ctx, scene)
	if err != nil {
		return err
	}

	printer := NewScenePrinter()
	printer.PrintSummary(scene)

	ui.PrintHeader("Objects in Scene:")
	printer.PrintHierarchy(scene)

	ui.PrintHeader("Topology Classes:")
	if analysis.Plan == nil {
		ui.PrintStep("Nothing selected")
		return nil
	}
	printer.PrintClasses(analysis.Plan)

	ui.PrintHeader("Planned Tiles:")
	printer.PrintPlan(analysis.Plan)
	return nil
}

// Analyze selects the configured nodes and plans the layout
func (i *Inspector) Analyze(ctx context.Context, scene *obj.Scene) (*Analysis, error) {
	if err := scene.Select(i.Selection); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	params := i.Params
	params.DryRun = true
	plan, err := layout.NewArranger(scene, layout.WithTileSize(i.Tile)).Run(ctx, params)
	if errors.Is(err, layout.ErrEmptySelection) {
		return &Analysis{Scene: scene}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to plan layout: %w", err)
	}
	return &Analysis{Scene: scene, Plan: plan}, nil
}

// classify groups every object of the scene regardless of the selection
func classify(scene *obj.Scene) (*topology.Classes, error) {
	var surfaces []host.Surface
	for _, o := range scene.Objects {
		parent := o.Name
		if o.Group != "" {
			parent = o.Group
		}
		surfaces = append(surfaces, host.Surface{Handle: o.Name, Parent: parent})
	}
	return topology.Classify(surfaces, scene)
}

package inspect

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/obj"
	"github.com/philipparndt/gouvtile/internal/ui"
)

// ScenePrinter handles printing scene hierarchy and layout details
type ScenePrinter struct{}

// NewScenePrinter creates a new ScenePrinter
func NewScenePrinter() *ScenePrinter {
	return &ScenePrinter{}
}

// PrintSummary prints element counts of the scene
func (p *ScenePrinter) PrintSummary(scene *obj.Scene) {
	ui.PrintKeyValue("Objects", fmt.Sprintf("%d", len(scene.Objects)))
	ui.PrintKeyValue("Vertices", fmt.Sprintf("%d", len(scene.Positions)))
	ui.PrintKeyValue("Texture coordinates", fmt.Sprintf("%d", len(scene.TexCoords)))
	if len(scene.Libraries) > 0 {
		ui.PrintKeyValue("Material libraries", strings.Join(scene.Libraries, ", "))
	}

	classes, err := classify(scene)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("Cannot classify scene: %v", err))
		return
	}
	ui.PrintKeyValue("Topology classes", fmt.Sprintf("%d", classes.Len()))
}

// PrintHierarchy prints groups with their objects and every ungrouped object
func (p *ScenePrinter) PrintHierarchy(scene *obj.Scene) {
	top := scene.TopLevel()
	if len(top) == 0 {
		ui.PrintStep("No objects found")
		return
	}

	for _, name := range top {
		children, err := scene.ChildrenOf(name)
		if err != nil {
			continue
		}
		if len(children) == 0 {
			ui.PrintStep(fmt.Sprintf("• %s%s", name, p.describe(scene, name)))
			continue
		}
		ui.PrintStep(fmt.Sprintf("• %s - %d object(s)", name, len(children)))
		for _, child := range children {
			ui.PrintStep(fmt.Sprintf("  - %s%s", child, p.describe(scene, child)))
		}
	}
}

func (p *ScenePrinter) describe(scene *obj.Scene, name string) string {
	counts, err := scene.TopologyCounts(name)
	if err != nil {
		return ""
	}
	area, err := scene.UVArea(name)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" [%s, UV area %.4f]", counts, area)
}

// PrintClasses prints one row per topology class of the plan
func (p *ScenePrinter) PrintClasses(plan *layout.Result) {
	table := ui.NewTable(28, 8, 9, 6, 11)
	table.Header("Class", "Members", "Per tile", "Tiles", "Status")
	for _, c := range plan.Classes {
		status := "ok"
		if !c.Arranged {
			status = "too large"
		}
		table.Row(
			c.Key.String(),
			fmt.Sprintf("%d", len(c.Members)),
			fmt.Sprintf("%d", c.Capacity.ShellsPerTile),
			fmt.Sprintf("%d", len(c.Tiles)),
			status,
		)
	}
}

// PrintPlan prints the tiles the arrangement would use
func (p *ScenePrinter) PrintPlan(plan *layout.Result) {
	shells := make(map[int]int)
	for _, c := range plan.Classes {
		for _, t := range c.Tiles {
			shells[t.Index()] += len(t.Placements)
		}
	}

	if len(shells) == 0 {
		ui.PrintStep("No tiles would be used")
	} else {
		ui.PrintHighlight(fmt.Sprintf("UDIM %d to %d, %d tile(s)",
			layout.UDIM(plan.Start), 999+layout.TileIndex(plan.End), plan.TileCount()))
		ui.PrintBox(ui.RenderTileGrid(shells, layout.TilesPerRow))
	}
	ui.PrintUnarranged(plan.Unarranged)
}

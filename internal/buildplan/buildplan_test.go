package buildplan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gouvtile/internal/models"
	"github.com/philipparndt/gouvtile/internal/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scene = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0.5 0.5
vt 0.7 0.5
vt 0.7 0.7
vt 0.5 0.7
vt 0.1 0.1
vt 0.3 0.1
vt 0.3 0.3
vt 0.1 0.3
vt 0 0
vt 0.99 0
vt 0.99 0.99
vt 0 0.99
g bolts
o bolt1
f 1/1 2/2 3/3 4/4
o bolt2
f 1/5 2/6 3/7 4/8
g
o plate
f 1/9 2/10 3/11 4/12
`

func setup(t *testing.T) (string, *models.ArrangeConfig) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.obj")
	require.NoError(t, os.WriteFile(input, []byte(scene), 0o644))
	return dir, &models.ArrangeConfig{Input: input}
}

func TestCreatePlan_Steps(t *testing.T) {
	dir, cfg := setup(t)
	cfg.Exports.Preview = filepath.Join(dir, "preview.pdf")
	cfg.Exports.Outline = filepath.Join(dir, "outline.dxf")

	plan, err := NewPlanner().CreatePlan(cfg, false)
	require.NoError(t, err)

	var names []string
	for _, s := range plan.Steps {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"Check preconditions", "Load scene", "Select objects", "Arrange UV shells",
		"Write scene", "Export preview", "Export outline",
	}, names)
	assert.Equal(t, filepath.Join(dir, "scene_arranged.obj"), plan.Context.OutputFile)

	plan, err = NewPlanner().CreatePlan(cfg, true)
	require.NoError(t, err)
	assert.Len(t, plan.Steps, 4)
	assert.True(t, plan.Context.Params.DryRun)
}

func TestCreatePlan_InvalidConfig(t *testing.T) {
	_, err := NewPlanner().CreatePlan(&models.ArrangeConfig{}, false)
	assert.ErrorContains(t, err, "input file must be specified")
}

func TestExecute_WritesSceneAndExports(t *testing.T) {
	dir, cfg := setup(t)
	cfg.Exports = models.ExportConfig{
		Preview: filepath.Join(dir, "preview.pdf"),
		Report:  filepath.Join(dir, "report.xlsx"),
		Outline: filepath.Join(dir, "outline.dxf"),
	}

	plan, err := NewPlanner().CreatePlan(cfg, false)
	require.NoError(t, err)
	require.NoError(t, plan.Execute(context.Background()))

	result := plan.Context.Result
	assert.Equal(t, []string{"plate"}, result.Unarranged)
	assert.Len(t, result.Placements(), 2)

	for _, path := range []string{plan.Context.OutputFile, cfg.Exports.Preview, cfg.Exports.Report, cfg.Exports.Outline} {
		assert.FileExists(t, path)
	}

	arranged, err := obj.NewParser().Parse(plan.Context.OutputFile)
	require.NoError(t, err)
	box, err := arranged.BoundingBox("bolt1")
	require.NoError(t, err)
	assert.InDelta(t, 0.03, box.MinU, 1e-9, "first shell sits one spacing right of the tile corner")
	assert.InDelta(t, 0.03, box.MinV, 1e-9)

	box, err = arranged.BoundingBox("bolt2")
	require.NoError(t, err)
	assert.InDelta(t, 0.26, box.MinU, 1e-9)

	box, err = arranged.BoundingBox("plate")
	require.NoError(t, err)
	assert.InDelta(t, 0.99, box.MaxU, 1e-9, "unarranged shells stay in place")
}

func TestExecute_DryRunWritesNothing(t *testing.T) {
	_, cfg := setup(t)

	plan, err := NewPlanner().CreatePlan(cfg, true)
	require.NoError(t, err)
	require.NoError(t, plan.Execute(context.Background()))

	assert.NoFileExists(t, plan.Context.OutputFile)
	assert.Len(t, plan.Context.Result.Placements(), 2)

	box, err := plan.Context.Scene.BoundingBox("bolt1")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, box.MinU, 1e-9)
}

func TestExecute_Strict(t *testing.T) {
	_, cfg := setup(t)

	plan, err := NewPlanner().CreatePlan(cfg, true)
	require.NoError(t, err)
	plan.Strict = true
	assert.ErrorIs(t, plan.Execute(context.Background()), ErrUnarranged)

	cfg.Selection = []string{"bolts"}
	plan, err = NewPlanner().CreatePlan(cfg, true)
	require.NoError(t, err)
	plan.Strict = true
	assert.NoError(t, plan.Execute(context.Background()))
}

func TestExecute_UnknownSelection(t *testing.T) {
	_, cfg := setup(t)
	cfg.Selection = []string{"missing"}

	plan, err := NewPlanner().CreatePlan(cfg, true)
	require.NoError(t, err)
	assert.ErrorContains(t, plan.Execute(context.Background()), "invalid selection")
}

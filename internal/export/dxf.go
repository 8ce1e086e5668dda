package export

import (
	"fmt"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// Layer names used in the outline drawing
const (
	TilesLayer  = "TILES"
	ShellsLayer = "SHELLS"
)

// WriteDXF writes tile borders and shell rectangles in UV units. Every outline
// is a closed LWPOLYLINE.
func WriteDXF(path string, r *Report) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer(TilesLayer, color.Red, dxf.DefaultLineType, false)
	d.AddLayer(ShellsLayer, color.Green, dxf.DefaultLineType, false)

	if err := d.ChangeLayer(TilesLayer); err != nil {
		return fmt.Errorf("failed to select layer %s: %w", TilesLayer, err)
	}
	for _, t := range r.Tiles() {
		d.AddEntity(rectangle(geometry.Rect{Min: t.Origin, W: r.Tile.W, H: r.Tile.H}))
	}

	if err := d.ChangeLayer(ShellsLayer); err != nil {
		return fmt.Errorf("failed to select layer %s: %w", ShellsLayer, err)
	}
	for _, p := range r.Result.Placements() {
		d.AddEntity(rectangle(p.Rect))
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

func rectangle(rect geometry.Rect) *entity.LwPolyline {
	far := rect.Max()
	lwp := entity.NewLwPolyline(5)
	lwp.Vertices[0] = []float64{rect.Min.U, rect.Min.V}
	lwp.Vertices[1] = []float64{far.U, rect.Min.V}
	lwp.Vertices[2] = []float64{far.U, far.V}
	lwp.Vertices[3] = []float64{rect.Min.U, far.V}
	lwp.Vertices[4] = []float64{rect.Min.U, rect.Min.V}
	return lwp
}

package layout

import (
	"fmt"
	"math"

	"github.com/philipparndt/gouvtile/internal/geometry"
)

// Mover applies a placement to the host. It is called once per shell.
type Mover func(ref string, delta geometry.Point) error

// Placement is where a single shell ended up
type Placement struct {
	Ref string
	// Target is the new anchor of the shell
	Target geometry.Point
	Delta  geometry.Point
	// Rect is the area reserved for the shell, spacing included
	Rect geometry.Rect
}

// Tile walks a cursor over one tile and places shells of a single topology class
type Tile struct {
	Width, Height           float64
	ShellWidth, ShellHeight float64
	Origin                  geometry.Point

	next geometry.Point
}

// NewTile creates a tile at origin sized for shells of the given capacity
func NewTile(c Capacity, origin geometry.Point, size Size) *Tile {
	return &Tile{
		Width:       size.W,
		Height:      size.H,
		ShellWidth:  c.ShellWidth,
		ShellHeight: c.ShellHeight,
		Origin:      origin,
		next:        origin,
	}
}

// ShellsPerRow is the number of shells that fit side by side
func (t *Tile) ShellsPerRow() int {
	return int(math.Floor(t.Width / t.ShellWidth))
}

// ShellsPerColumn is the number of shells that fit on top of each other
func (t *Tile) ShellsPerColumn() int {
	return int(math.Floor(t.Height / t.ShellHeight))
}

// AddIdenticalShells fills the tile row by row, left to right
func (t *Tile) AddIdenticalShells(shells []geometry.Shell, move Mover) ([]Placement, error) {
	placements := make([]Placement, 0, len(shells))
	perRow := t.ShellsPerRow()
	rowCount := 1
	var target geometry.Point

	for _, shell := range shells {
		if rowCount <= perRow {
			target = t.next
		} else {
			rowCount = 1
			target = geometry.Point{U: t.Origin.U, V: target.V + shell.Height()}
		}

		p, err := t.place(target, shell, move)
		if err != nil {
			return placements, err
		}
		placements = append(placements, p)
		rowCount++
	}
	return placements, nil
}

// StackTogether fills blocks of columns shells per row. A block grows upwards
// until it holds ShellsPerColumn rows, then the next block starts to its right
// at the bottom of the tile.
func (t *Tile) StackTogether(shells []geometry.Shell, columns int, move Mover) ([]Placement, error) {
	if columns < 1 {
		return nil, fmt.Errorf("stack columns must be greater than 0, got %d", columns)
	}

	placements := make([]Placement, 0, len(shells))
	perColumn := t.ShellsPerColumn()
	blockRow := 1
	rowCount := 1
	blockLeft := t.Origin.U
	var target geometry.Point

	for _, shell := range shells {
		if rowCount <= columns {
			target = t.next
		} else {
			blockRow++
			rowCount = 1
			target = geometry.Point{U: blockLeft, V: target.V + shell.Height()}
			if blockRow > perColumn {
				// Each block starts one block width right of the previous one, so
				// the third and later blocks keep moving right instead of
				// restarting on top of the second.
				blockLeft += t.ShellWidth * float64(columns)
				target = geometry.Point{U: blockLeft, V: t.Origin.V}
				blockRow = 1
			}
		}

		p, err := t.place(target, shell, move)
		if err != nil {
			return placements, err
		}
		placements = append(placements, p)
		rowCount++
	}
	return placements, nil
}

// place moves shell so that its anchor lands on target and advances the cursor
func (t *Tile) place(target geometry.Point, shell geometry.Shell, move Mover) (Placement, error) {
	delta := target.Sub(shell.Anchor())
	if move != nil {
		if err := move(shell.Ref, delta); err != nil {
			return Placement{}, fmt.Errorf("failed to move %s: %w", shell.Ref, err)
		}
	}
	t.next = target.Add(geometry.Point{U: shell.Width(), V: 0})
	return Placement{
		Ref:    shell.Ref,
		Target: target,
		Delta:  delta,
		Rect:   shell.Footprint(target),
	}, nil
}

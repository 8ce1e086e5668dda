// Package layout places UV shells on unit tiles.
//
// The engine is pure geometry: shells come in as bounding boxes, placements go
// out as translation vectors handed to a Mover. Only the Arranger talks to a
// host.
package layout

import (
	"fmt"
	"math"

	"github.com/philipparndt/gouvtile/internal/geometry"
)

// Size is the extent of a tile in UV units
type Size struct {
	W, H float64
}

// UnitTile is the tile size used by UDIM layouts
var UnitTile = Size{W: 1, H: 1}

// Stacking selects the column-block placement strategy
type Stacking struct {
	Enabled bool
	Columns int
}

func (s Stacking) columns() int {
	if s.Columns < 1 {
		return 1
	}
	return s.Columns
}

// Capacity describes how the members of one topology class spread over tiles
type Capacity struct {
	TileCount     int
	ShellsPerTile int
	ShellWidth    float64
	ShellHeight   float64
}

// ShellsPerTile returns how many copies of shell fit in one tile
func ShellsPerTile(shell geometry.Shell, stacking Stacking, tile Size) (int, error) {
	w, h := shell.Width(), shell.Height()
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("shell %s has degenerate size %gx%g", shell.Ref, w, h)
	}

	var perRow, perColumn float64
	if stacking.Enabled {
		c := float64(stacking.columns())
		perRow = math.Floor(tile.W/(w*c)) * c
		perColumn = math.Floor(tile.H/(h*c)) * c
	} else {
		perRow = math.Floor(tile.W / w)
		perColumn = math.Floor(tile.H / h)
	}
	return int(math.Floor(perRow * perColumn)), nil
}

// NewCapacity computes the capacity for a class of memberCount shells shaped
// like representative. The boolean is false when not a single shell fits in a
// tile; such a class cannot be arranged.
func NewCapacity(representative geometry.Shell, memberCount int, stacking Stacking, tile Size) (Capacity, bool, error) {
	perTile, err := ShellsPerTile(representative, stacking, tile)
	if err != nil {
		return Capacity{}, false, err
	}
	if perTile == 0 {
		return Capacity{}, false, nil
	}
	return Capacity{
		TileCount:     int(math.Ceil(float64(memberCount) / float64(perTile))),
		ShellsPerTile: perTile,
		ShellWidth:    representative.Width(),
		ShellHeight:   representative.Height(),
	}, true, nil
}

// Batches splits items into consecutive runs of at most size elements
func Batches[T any](items []T, size int) [][]T {
	if size < 1 {
		return nil
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}

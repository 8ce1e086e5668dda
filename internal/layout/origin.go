package layout

import (
	"fmt"
	"math"

	"github.com/philipparndt/gouvtile/internal/geometry"
)

// TilesPerRow is the width of the tile grid before it wraps to the next row
const TilesPerRow = 10

// StartFromTileIndex returns the origin of the 1-based tile n in a grid of
// TilesPerRow tiles per row
func StartFromTileIndex(n int) (geometry.Point, error) {
	if n < 1 {
		return geometry.Point{}, fmt.Errorf("start tile must be greater than 0, got %d", n)
	}
	return geometry.Point{
		U: float64((n - 1) % TilesPerRow),
		V: float64((n - 1) / TilesPerRow),
	}, nil
}

// StartFromShell returns the origin of the tile the shell's anchor sits in.
// Shells left of, below or right of the TilesPerRow wide grid have no tile.
func StartFromShell(shell geometry.Shell) (geometry.Point, error) {
	origin := shell.Anchor().Floor()
	if origin.U < 0 || origin.U >= TilesPerRow || origin.V < 0 {
		return geometry.Point{}, fmt.Errorf("shell %s at (%g, %g) is outside the %d tiles wide grid",
			shell.Ref, shell.Anchor().U, shell.Anchor().V, TilesPerRow)
	}
	return origin, nil
}

// Advance returns the origin of the tile after p
func Advance(p geometry.Point) geometry.Point {
	if p.U == TilesPerRow-1 {
		return geometry.Point{U: 0, V: p.V + 1}
	}
	return geometry.Point{U: p.U + 1, V: p.V}
}

// TileIndex returns the 1-based index of the tile whose origin is p
func TileIndex(p geometry.Point) int {
	return int(math.Floor(p.V))*TilesPerRow + int(math.Floor(p.U)) + 1
}

// UDIM returns the UDIM number of the tile whose origin is p
func UDIM(p geometry.Point) int {
	return 1000 + TileIndex(p)
}

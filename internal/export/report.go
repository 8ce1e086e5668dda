// Package export writes arrangement results to preview, spreadsheet and CAD
// formats.
package export

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/philipparndt/gouvtile/internal/layout"
	"github.com/philipparndt/gouvtile/internal/topology"
)

// Report is everything an exporter needs to know about one run
type Report struct {
	RunID   string
	Scene   string
	Created time.Time
	Params  layout.Params
	Tile    layout.Size
	Result  *layout.Result
}

// NewReport wraps a run result with a fresh run id
func NewReport(scene string, params layout.Params, tile layout.Size, result *layout.Result) *Report {
	return &Report{
		RunID:   uuid.New().String()[:8],
		Scene:   scene,
		Created: time.Now(),
		Params:  params,
		Tile:    tile,
		Result:  result,
	}
}

// TileSheet is one used tile with the placements of every class on it
type TileSheet struct {
	Index      int
	UDIM       int
	Origin     geometry.Point
	Class      topology.Key
	ClassIndex int
	Placements []layout.Placement
}

// Tiles returns the used tiles in placement order
func (r *Report) Tiles() []TileSheet {
	var sheets []TileSheet
	for ci, c := range r.Result.Classes {
		for _, t := range c.Tiles {
			sheets = append(sheets, TileSheet{
				Index:      t.Index(),
				UDIM:       layout.UDIM(t.Origin),
				Origin:     t.Origin,
				Class:      c.Key,
				ClassIndex: ci,
				Placements: t.Placements,
			})
		}
	}
	return sheets
}

// ShellsPerTile counts placements per 1-based tile index
func (r *Report) ShellsPerTile() map[int]int {
	counts := make(map[int]int)
	for _, t := range r.Tiles() {
		counts[t.Index] += len(t.Placements)
	}
	return counts
}

// parentOf maps every arranged handle to its parent node
func (r *Report) parentOf() map[string]string {
	parents := make(map[string]string)
	for _, c := range r.Result.Classes {
		for _, m := range c.Members {
			parents[m.Handle] = m.Parent
		}
	}
	return parents
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

package layout

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/philipparndt/gouvtile/internal/host"
	"github.com/philipparndt/gouvtile/internal/topology"
)

// ErrEmptySelection is returned when there is nothing to arrange
var ErrEmptySelection = errors.New("please select objects to layout UVs for")

// Params are the user-facing arrangement settings
type Params struct {
	StartTile      int
	Spacing        float64
	UseCurrentTile bool
	Stacking       bool
	StackColumns   int
	// DryRun computes placements without moving anything
	DryRun bool
}

// DefaultParams returns the settings the tool starts with
func DefaultParams() Params {
	return Params{
		StartTile:    1,
		Spacing:      0.03,
		StackColumns: 3,
	}
}

// Validate checks the parameters before a run
func (p Params) Validate() error {
	if !p.UseCurrentTile && p.StartTile < 1 {
		return fmt.Errorf("start tile should be greater than 0")
	}
	if p.Spacing < 0 {
		return fmt.Errorf("shell spacing must not be negative")
	}
	if p.Stacking && p.StackColumns < 1 {
		return fmt.Errorf("please enter a valid value (> 0) for stack columns")
	}
	return nil
}

func (p Params) stacking() Stacking {
	return Stacking{Enabled: p.Stacking, Columns: p.StackColumns}
}

// TileResult holds the placements made on one tile
type TileResult struct {
	Origin     geometry.Point
	Placements []Placement
}

// Index returns the 1-based tile index
func (t TileResult) Index() int {
	return TileIndex(t.Origin)
}

// ClassResult describes what happened to one topology class
type ClassResult struct {
	Key      topology.Key
	Members  []host.Surface
	Capacity Capacity
	// Arranged is false when not a single shell of the class fits in a tile
	Arranged bool
	Tiles    []TileResult
}

// Result is the outcome of an arrangement run
type Result struct {
	Start      geometry.Point
	End        geometry.Point
	Classes    []ClassResult
	Unarranged []string
}

// Success reports whether every class was arranged
func (r *Result) Success() bool {
	return len(r.Unarranged) == 0
}

// Placements returns all placements in the order they were made
func (r *Result) Placements() []Placement {
	var out []Placement
	for _, c := range r.Classes {
		for _, t := range c.Tiles {
			out = append(out, t.Placements...)
		}
	}
	return out
}

// TileCount returns the number of tiles that received shells
func (r *Result) TileCount() int {
	n := 0
	for _, c := range r.Classes {
		n += len(c.Tiles)
	}
	return n
}

// Option configures an Arranger
type Option func(*Arranger)

// WithTileSize overrides the unit tile size
func WithTileSize(s Size) Option {
	return func(a *Arranger) {
		a.tile = s
	}
}

// WithTileObserver registers a callback invoked after each tile is filled
func WithTileObserver(fn func(class topology.Key, tile TileResult)) Option {
	return func(a *Arranger) {
		a.onTile = fn
	}
}

// Arranger drives the arrangement of a host's selection
type Arranger struct {
	host   host.Host
	tile   Size
	onTile func(topology.Key, TileResult)
}

// NewArranger creates an arranger working on h
func NewArranger(h host.Host, opts ...Option) *Arranger {
	a := &Arranger{host: h, tile: UnitTile}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run arranges every selected surface, one topology class after the other.
// The tile origin is threaded through the run and advanced once per tile.
func (a *Arranger) Run(ctx context.Context, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	surfaces, err := host.ExpandSelection(a.host)
	if err != nil {
		return nil, err
	}
	if len(surfaces) == 0 {
		return nil, ErrEmptySelection
	}

	classes, err := topology.Classify(surfaces, a.host)
	if err != nil {
		return nil, err
	}

	origin, err := a.startOrigin(p, surfaces[0])
	if err != nil {
		return nil, err
	}

	result := &Result{Start: origin}
	unarranged := make(map[string]bool)

	err = classes.Each(func(key topology.Key, members []host.Surface) error {
		class, next, err := a.arrangeClass(ctx, p, key, members, origin)
		if err != nil {
			return err
		}
		origin = next
		if !class.Arranged {
			for _, m := range members {
				unarranged[m.Parent] = true
			}
		}
		result.Classes = append(result.Classes, class)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.End = origin
	for parent := range unarranged {
		result.Unarranged = append(result.Unarranged, parent)
	}
	sort.Strings(result.Unarranged)
	return result, nil
}

func (a *Arranger) startOrigin(p Params, first host.Surface) (geometry.Point, error) {
	if !p.UseCurrentTile {
		return StartFromTileIndex(p.StartTile)
	}
	shell, err := a.shell(first.Handle, 0)
	if err != nil {
		return geometry.Point{}, err
	}
	return StartFromShell(shell)
}

func (a *Arranger) shell(handle string, spacing float64) (geometry.Shell, error) {
	box, err := a.host.BoundingBox(handle)
	if err != nil {
		return geometry.Shell{}, fmt.Errorf("failed to evaluate bounding box of %s: %w", handle, err)
	}
	if err := box.Validate(); err != nil {
		return geometry.Shell{}, fmt.Errorf("%s: %w", handle, err)
	}
	return geometry.NewShell(handle, box, spacing), nil
}

// arrangeClass places all members of one class starting at origin and returns
// the origin of the first tile after the ones it used
func (a *Arranger) arrangeClass(ctx context.Context, p Params, key topology.Key, members []host.Surface, origin geometry.Point) (ClassResult, geometry.Point, error) {
	class := ClassResult{Key: key, Members: members}

	representative, err := a.shell(members[0].Handle, p.Spacing)
	if err != nil {
		return class, origin, err
	}
	capacity, ok, err := NewCapacity(representative, len(members), p.stacking(), a.tile)
	if err != nil {
		return class, origin, err
	}
	if !ok {
		return class, origin, nil
	}
	class.Capacity = capacity
	class.Arranged = true

	var move Mover
	if !p.DryRun {
		move = a.host.TranslateShellUV
	}

	for _, batch := range Batches(members, capacity.ShellsPerTile) {
		if err := ctx.Err(); err != nil {
			return class, origin, err
		}

		shells := make([]geometry.Shell, 0, len(batch))
		for _, s := range batch {
			shell, err := a.shell(s.Handle, p.Spacing)
			if err != nil {
				return class, origin, err
			}
			shells = append(shells, shell)
		}

		tile := NewTile(capacity, origin, a.tile)
		var placements []Placement
		if p.Stacking {
			placements, err = tile.StackTogether(shells, p.StackColumns, move)
		} else {
			placements, err = tile.AddIdenticalShells(shells, move)
		}
		if err != nil {
			return class, origin, err
		}

		tr := TileResult{Origin: origin, Placements: placements}
		class.Tiles = append(class.Tiles, tr)
		if a.onTile != nil {
			a.onTile(key, tr)
		}
		origin = Advance(origin)
	}
	return class, origin, nil
}

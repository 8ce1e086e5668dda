// Package hosttest provides an in-memory host for engine tests.
package hosttest

import (
	"fmt"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/philipparndt/gouvtile/internal/host"
)

// Surface is the fake state of one mesh
type Surface struct {
	Box    geometry.BoundingBox
	Counts host.Counts
	Area   float64
}

// Move records a TranslateShellUV call
type Move struct {
	Handle string
	Delta  geometry.Point
}

// Host is a host.Host backed by maps
type Host struct {
	Surfaces map[string]*Surface
	Children map[string][]string
	Selected []string
	Moves    []Move

	// FailOn makes every query and move on that handle fail
	FailOn string
}

// New creates an empty fake host
func New() *Host {
	return &Host{
		Surfaces: make(map[string]*Surface),
		Children: make(map[string][]string),
	}
}

// Add registers a selected node with a single child surface
func (h *Host) Add(parent, handle string, s Surface) {
	h.Surfaces[handle] = &s
	if parent != handle {
		h.Children[parent] = append(h.Children[parent], handle)
	}
	for _, sel := range h.Selected {
		if sel == parent {
			return
		}
	}
	h.Selected = append(h.Selected, parent)
}

// Square returns a surface whose bounding box is a size x size square at (u, v)
func Square(u, v, size float64, counts host.Counts, area float64) Surface {
	return Surface{
		Box:    geometry.BoundingBox{MinU: u, MaxU: u + size, MinV: v, MaxV: v + size},
		Counts: counts,
		Area:   area,
	}
}

func (h *Host) lookup(handle string) (*Surface, error) {
	if handle == h.FailOn {
		return nil, fmt.Errorf("host failure on %s", handle)
	}
	s, ok := h.Surfaces[handle]
	if !ok {
		return nil, fmt.Errorf("unknown surface %s", handle)
	}
	return s, nil
}

func (h *Host) BoundingBox(handle string) (geometry.BoundingBox, error) {
	s, err := h.lookup(handle)
	if err != nil {
		return geometry.BoundingBox{}, err
	}
	return s.Box, nil
}

func (h *Host) TopologyCounts(handle string) (host.Counts, error) {
	s, err := h.lookup(handle)
	if err != nil {
		return host.Counts{}, err
	}
	return s.Counts, nil
}

func (h *Host) UVArea(handle string) (float64, error) {
	s, err := h.lookup(handle)
	if err != nil {
		return 0, err
	}
	return s.Area, nil
}

func (h *Host) TranslateShellUV(handle string, delta geometry.Point) error {
	s, err := h.lookup(handle)
	if err != nil {
		return err
	}
	s.Box = s.Box.Translate(delta)
	h.Moves = append(h.Moves, Move{Handle: handle, Delta: delta})
	return nil
}

func (h *Host) Selection() []string {
	return append([]string(nil), h.Selected...)
}

func (h *Host) ChildrenOf(handle string) ([]string, error) {
	if handle == h.FailOn {
		return nil, fmt.Errorf("host failure on %s", handle)
	}
	return h.Children[handle], nil
}

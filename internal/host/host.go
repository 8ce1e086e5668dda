// Package host describes what the layout engine needs from the modeling
// environment that owns the meshes: read-only queries plus one UV move.
package host

import (
	"fmt"

	"github.com/philipparndt/gouvtile/internal/geometry"
)

// Counts holds the integer part of a topology signature
type Counts struct {
	Vertices int
	Edges    int
	Faces    int
	UVShells int
}

func (c Counts) String() string {
	return fmt.Sprintf("%dv %de %df %ds", c.Vertices, c.Edges, c.Faces, c.UVShells)
}

// Host is the modeling environment the arrangement runs against
type Host interface {
	// BoundingBox returns the UV bounding box of a surface
	BoundingBox(handle string) (geometry.BoundingBox, error)
	TopologyCounts(handle string) (Counts, error)
	UVArea(handle string) (float64, error)
	// TranslateShellUV moves all UVs of a surface by delta
	TranslateShellUV(handle string, delta geometry.Point) error
	// Selection returns the selected nodes in selection order
	Selection() []string
	ChildrenOf(handle string) ([]string, error)
}

// Surface is one placeable object together with the selected node it came from
type Surface struct {
	Handle string
	Parent string
}

// ExpandSelection turns the current selection into surfaces. A selected node
// contributes its children; a node without children is a surface of its own.
// A handle reached twice, such as a group and one of its children, is listed
// once under the node that reached it first.
func ExpandSelection(h Host) ([]Surface, error) {
	var surfaces []Surface
	seen := make(map[string]bool)
	add := func(handle, parent string) {
		if seen[handle] {
			return
		}
		seen[handle] = true
		surfaces = append(surfaces, Surface{Handle: handle, Parent: parent})
	}

	for _, node := range h.Selection() {
		children, err := h.ChildrenOf(node)
		if err != nil {
			return nil, fmt.Errorf("failed to list children of %s: %w", node, err)
		}
		if len(children) == 0 {
			add(node, node)
			continue
		}
		for _, child := range children {
			add(child, node)
		}
	}
	return surfaces, nil
}

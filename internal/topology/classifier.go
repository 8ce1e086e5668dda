// Package topology groups surfaces into classes of interchangeable shells.
//
// Two surfaces share a class when their vertex, edge, face and UV shell counts
// match exactly and their UV areas are within AreaTolerance percent. Areas are
// merged against the first area registered for a signature, so the merge is
// not transitive: with 100, 104 and 108, 104 joins 100 but 108 starts a class
// of its own.
package topology

import (
	"fmt"
	"math"

	"github.com/philipparndt/gouvtile/internal/host"
)

const (
	// AreaTolerance is the relative UV area difference, in percent, that still merges two classes
	AreaTolerance = 5.0
	// AreaPrecision is the number of decimals UV areas are rounded to
	AreaPrecision = 3
)

// Key identifies a topology class
type Key struct {
	host.Counts
	Area float64
}

func (k Key) String() string {
	return fmt.Sprintf("%d_%d_%d_%d_%g", k.Vertices, k.Edges, k.Faces, k.UVShells, k.Area)
}

// Querier is the part of the host the classifier needs
type Querier interface {
	TopologyCounts(handle string) (host.Counts, error)
	UVArea(handle string) (float64, error)
}

// Classes holds the classifier output in first-seen key order
type Classes struct {
	order   []Key
	members map[Key][]host.Surface
	// areas lists registered areas per signature in registration order
	areas map[host.Counts][]float64
}

func newClasses() *Classes {
	return &Classes{
		members: make(map[Key][]host.Surface),
		areas:   make(map[host.Counts][]float64),
	}
}

// Keys returns class keys in the order they were first seen
func (c *Classes) Keys() []Key {
	return append([]Key(nil), c.order...)
}

// Members returns the surfaces of a class in input order
func (c *Classes) Members(k Key) []host.Surface {
	return c.members[k]
}

// Len returns the number of classes
func (c *Classes) Len() int {
	return len(c.order)
}

// Each calls fn for every class in order and stops at the first error
func (c *Classes) Each(fn func(Key, []host.Surface) error) error {
	for _, k := range c.order {
		if err := fn(k, c.members[k]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Classes) add(counts host.Counts, area float64, s host.Surface) Key {
	key := Key{Counts: counts, Area: c.normalizeArea(counts, area)}
	if _, ok := c.members[key]; !ok {
		c.order = append(c.order, key)
		c.areas[counts] = append(c.areas[counts], key.Area)
	}
	c.members[key] = append(c.members[key], s)
	return key
}

// normalizeArea returns the first registered area for counts that lies within
// tolerance of area, or area itself when none does.
func (c *Classes) normalizeArea(counts host.Counts, area float64) float64 {
	for _, existing := range c.areas[counts] {
		if WithinTolerance(area, existing) {
			return existing
		}
	}
	return area
}

// WithinTolerance reports whether area may be merged into a class recorded with existing
func WithinTolerance(area, existing float64) bool {
	if existing == 0 {
		return area == 0
	}
	return math.Abs(1-area/existing)*100 <= AreaTolerance
}

// RoundArea rounds a UV area to AreaPrecision decimals
func RoundArea(area float64) float64 {
	scale := math.Pow(10, AreaPrecision)
	return math.Round(area*scale) / scale
}

// Classify groups surfaces by topology signature and UV area
func Classify(surfaces []host.Surface, q Querier) (*Classes, error) {
	classes := newClasses()
	for _, s := range surfaces {
		counts, err := q.TopologyCounts(s.Handle)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate topology of %s: %w", s.Handle, err)
		}
		area, err := q.UVArea(s.Handle)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate UV area of %s: %w", s.Handle, err)
		}
		classes.add(counts, RoundArea(area), s)
	}
	return classes, nil
}

package geometry

import (
	"fmt"
	"math"
)

// BoundingBox represents an axis-aligned 2D bounding box in UV space
type BoundingBox struct {
	MinU, MaxU float64
	MinV, MaxV float64
}

// NewBoundingBox returns an empty box that any Extend call will overwrite
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		MinU: math.Inf(1),
		MaxU: math.Inf(-1),
		MinV: math.Inf(1),
		MaxV: math.Inf(-1),
	}
}

// IsEmpty reports whether no point was ever added to the box
func (b BoundingBox) IsEmpty() bool {
	return b.MinU > b.MaxU || b.MinV > b.MaxV
}

// Width returns the U extent of the bounding box
func (b BoundingBox) Width() float64 {
	return b.MaxU - b.MinU
}

// Height returns the V extent of the bounding box
func (b BoundingBox) Height() float64 {
	return b.MaxV - b.MinV
}

// Min returns the lower-left corner
func (b BoundingBox) Min() Point {
	return Point{U: b.MinU, V: b.MinV}
}

// Extend grows the box so that it contains p
func (b *BoundingBox) Extend(p Point) {
	b.MinU = math.Min(b.MinU, p.U)
	b.MaxU = math.Max(b.MaxU, p.U)
	b.MinV = math.Min(b.MinV, p.V)
	b.MaxV = math.Max(b.MaxV, p.V)
}

// Translate returns the box moved by delta
func (b BoundingBox) Translate(delta Point) BoundingBox {
	return BoundingBox{
		MinU: b.MinU + delta.U,
		MaxU: b.MaxU + delta.U,
		MinV: b.MinV + delta.V,
		MaxV: b.MaxV + delta.V,
	}
}

// Validate rejects boxes that cannot describe a shell
func (b BoundingBox) Validate() error {
	if b.IsEmpty() {
		return fmt.Errorf("bounding box is empty")
	}
	for _, f := range []float64{b.MinU, b.MaxU, b.MinV, b.MaxV} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("bounding box has non-finite coordinates")
		}
	}
	return nil
}

// Rect is a positioned rectangle, half-open on its upper edges
type Rect struct {
	Min  Point
	W, H float64
}

// Max returns the upper-right corner
func (r Rect) Max() Point {
	return Point{U: r.Min.U + r.W, V: r.Min.V + r.H}
}

// Overlaps reports whether r and o share any area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	const eps = 1e-9
	rMax, oMax := r.Max(), o.Max()
	return r.Min.U < oMax.U-eps && o.Min.U < rMax.U-eps &&
		r.Min.V < oMax.V-eps && o.Min.V < rMax.V-eps
}

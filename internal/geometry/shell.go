package geometry

// Shell is one placeable surface: its UV bounding box plus the spacing margin.
// The margin is added once to each extent and subtracted once from the anchor, so
// the reserved space sits on the low side of the box only.
type Shell struct {
	Ref     string
	Box     BoundingBox
	Spacing float64
}

// NewShell creates a shell for the surface ref
func NewShell(ref string, box BoundingBox, spacing float64) Shell {
	return Shell{Ref: ref, Box: box, Spacing: spacing}
}

// Width returns the U extent including spacing
func (s Shell) Width() float64 {
	return s.Box.Width() + s.Spacing
}

// Height returns the V extent including spacing
func (s Shell) Height() float64 {
	return s.Box.Height() + s.Spacing
}

// Anchor returns the minimum corner of the box shifted down by the spacing
func (s Shell) Anchor() Point {
	return Point{U: s.Box.MinU - s.Spacing, V: s.Box.MinV - s.Spacing}
}

// Footprint returns the rectangle the shell reserves when its anchor sits at p
func (s Shell) Footprint(p Point) Rect {
	return Rect{Min: p, W: s.Width(), H: s.Height()}
}

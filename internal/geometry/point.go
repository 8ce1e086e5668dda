package geometry

import (
	"fmt"
	"math"
)

// Point is a (u, v) coordinate in UV space. Tile (i, j) spans [i, i+1) x [j, j+1).
type Point struct {
	U, V float64
}

// Add returns the component-wise sum of p and o
func (p Point) Add(o Point) Point {
	return Point{U: p.U + o.U, V: p.V + o.V}
}

// Sub returns the component-wise difference p - o
func (p Point) Sub(o Point) Point {
	return Point{U: p.U - o.U, V: p.V - o.V}
}

// Floor snaps p to the integer tile grid
func (p Point) Floor() Point {
	return Point{U: math.Floor(p.U), V: math.Floor(p.V)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.U, p.V)
}

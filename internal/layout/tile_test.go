package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identicalShells returns n shells of the given size scattered around UV space
func identicalShells(n int, w, h, spacing float64) []geometry.Shell {
	shells := make([]geometry.Shell, n)
	for i := range shells {
		u := float64(i%7)*0.37 - 1.2
		v := float64(i%5)*0.53 + 0.1
		shells[i] = rect(fmt.Sprintf("s%d", i), u, v, w, h, spacing)
	}
	return shells
}

type recorder struct {
	moves map[string]geometry.Point
}

func newRecorder() *recorder {
	return &recorder{moves: make(map[string]geometry.Point)}
}

func (r *recorder) move(ref string, delta geometry.Point) error {
	r.moves[ref] = delta
	return nil
}

func assertNoOverlap(t *testing.T, placements []Placement) {
	t.Helper()
	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			assert.False(t, a.Rect.Overlaps(b.Rect), "%s %v overlaps %s %v", a.Ref, a.Rect, b.Ref, b.Rect)
		}
	}
}

func assertInsideTile(t *testing.T, origin geometry.Point, placements []Placement) {
	t.Helper()
	const eps = 1e-9
	for _, p := range placements {
		far := p.Rect.Max()
		assert.GreaterOrEqual(t, p.Rect.Min.U, origin.U-eps, p.Ref)
		assert.GreaterOrEqual(t, p.Rect.Min.V, origin.V-eps, p.Ref)
		assert.LessOrEqual(t, far.U, origin.U+1+eps, p.Ref)
		assert.LessOrEqual(t, far.V, origin.V+1+eps, p.Ref)
	}
}

func fillTile(t *testing.T, shells []geometry.Shell, stacking Stacking, origin geometry.Point) []Placement {
	t.Helper()
	c, ok, err := NewCapacity(shells[0], len(shells), stacking, UnitTile)
	require.NoError(t, err)
	require.True(t, ok)
	if len(shells) > c.ShellsPerTile {
		shells = shells[:c.ShellsPerTile]
	}

	tile := NewTile(c, origin, UnitTile)
	var placements []Placement
	if stacking.Enabled {
		placements, err = tile.StackTogether(shells, stacking.Columns, nil)
	} else {
		placements, err = tile.AddIdenticalShells(shells, nil)
	}
	require.NoError(t, err)
	require.Len(t, placements, len(shells))
	return placements
}

func TestAddIdenticalShells_RowMajor(t *testing.T) {
	shells := identicalShells(7, 0.27, 0.27, 0.03)
	rec := newRecorder()

	c, _, err := NewCapacity(shells[0], len(shells), Stacking{}, UnitTile)
	require.NoError(t, err)
	tile := NewTile(c, geometry.Point{U: 0, V: 0}, UnitTile)
	require.Equal(t, 3, tile.ShellsPerRow())

	placements, err := tile.AddIdenticalShells(shells, rec.move)
	require.NoError(t, err)
	require.Len(t, placements, 7)

	want := []geometry.Point{
		{U: 0, V: 0}, {U: 0.3, V: 0}, {U: 0.6, V: 0},
		{U: 0, V: 0.3}, {U: 0.3, V: 0.3}, {U: 0.6, V: 0.3},
		{U: 0, V: 0.6},
	}
	for i, p := range placements {
		assert.InDelta(t, want[i].U, p.Target.U, 1e-9, "shell %d u", i)
		assert.InDelta(t, want[i].V, p.Target.V, 1e-9, "shell %d v", i)

		moved := shells[i].Anchor().Add(rec.moves[p.Ref])
		assert.InDelta(t, p.Target.U, moved.U, 1e-9)
		assert.InDelta(t, p.Target.V, moved.V, 1e-9)
	}
}

func TestAddIdenticalShells_NoOverlap(t *testing.T) {
	sizes := []struct{ w, h, spacing float64 }{
		{0.27, 0.27, 0.03},
		{0.13, 0.21, 0.01},
		{0.45, 0.05, 0.02},
		{0.08, 0.31, 0},
		{0.6, 0.6, 0.1},
	}

	for _, s := range sizes {
		t.Run(fmt.Sprintf("%vx%v+%v", s.w, s.h, s.spacing), func(t *testing.T) {
			origin := geometry.Point{U: 4, V: 2}
			placements := fillTile(t, identicalShells(200, s.w, s.h, s.spacing), Stacking{}, origin)
			assertNoOverlap(t, placements)
			assertInsideTile(t, origin, placements)
		})
	}
}

func TestAddIdenticalShells_ShortBatchStopsEarly(t *testing.T) {
	shells := identicalShells(2, 0.1, 0.1, 0)
	c, _, err := NewCapacity(shells[0], 2, Stacking{}, UnitTile)
	require.NoError(t, err)

	placements, err := NewTile(c, geometry.Point{}, UnitTile).AddIdenticalShells(shells, nil)
	require.NoError(t, err)
	assert.Len(t, placements, 2)
}

func TestStackTogether_Blocks(t *testing.T) {
	origin := geometry.Point{U: 3, V: 1}
	placements := fillTile(t, identicalShells(81, 0.1, 0.1, 0), Stacking{Enabled: true, Columns: 3}, origin)

	check := func(i int, u, v float64) {
		t.Helper()
		assert.InDelta(t, origin.U+u, placements[i].Target.U, 1e-9, "shell %d u", i)
		assert.InDelta(t, origin.V+v, placements[i].Target.V, 1e-9, "shell %d v", i)
	}

	// first block: three columns, ten rows
	check(0, 0, 0)
	check(2, 0.2, 0)
	check(3, 0, 0.1)
	check(29, 0.2, 0.9)
	// second block starts at the bottom, right of the first
	check(30, 0.3, 0)
	check(33, 0.3, 0.1)
	// third block
	check(60, 0.6, 0)
	check(80, 0.8, 0.6)

	assertNoOverlap(t, placements)
	assertInsideTile(t, origin, placements)
}

func TestStackTogether_NoOverlap(t *testing.T) {
	cases := []struct {
		w, h    float64
		columns int
	}{
		{0.05, 0.05, 4},
		{0.11, 0.07, 2},
		{0.2, 0.15, 2},
		{0.3, 0.3, 1},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%vx%v/%d", c.w, c.h, c.columns), func(t *testing.T) {
			origin := geometry.Point{U: 9, V: 0}
			stacking := Stacking{Enabled: true, Columns: c.columns}
			placements := fillTile(t, identicalShells(500, c.w, c.h, 0.01), stacking, origin)
			assertNoOverlap(t, placements)
			assertInsideTile(t, origin, placements)
		})
	}
}

func TestStackTogether_InvalidColumns(t *testing.T) {
	shells := identicalShells(1, 0.1, 0.1, 0)
	tile := NewTile(Capacity{ShellWidth: 0.1, ShellHeight: 0.1}, geometry.Point{}, UnitTile)

	_, err := tile.StackTogether(shells, 0, nil)
	assert.Error(t, err)
}

func TestMoverErrorAbortsTile(t *testing.T) {
	shells := identicalShells(4, 0.1, 0.1, 0)
	tile := NewTile(Capacity{ShellWidth: 0.1, ShellHeight: 0.1}, geometry.Point{}, UnitTile)
	boom := errors.New("boom")

	calls := 0
	placements, err := tile.AddIdenticalShells(shells, func(ref string, _ geometry.Point) error {
		calls++
		if ref == "s2" {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
	assert.Len(t, placements, 2)
}

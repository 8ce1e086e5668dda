package layout

import (
	"testing"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(ref string, u, v, size, spacing float64) geometry.Shell {
	box := geometry.BoundingBox{MinU: u, MaxU: u + size, MinV: v, MaxV: v + size}
	return geometry.NewShell(ref, box, spacing)
}

func rect(ref string, u, v, w, h, spacing float64) geometry.Shell {
	box := geometry.BoundingBox{MinU: u, MaxU: u + w, MinV: v, MaxV: v + h}
	return geometry.NewShell(ref, box, spacing)
}

func TestShellsPerTile(t *testing.T) {
	tests := []struct {
		name     string
		shell    geometry.Shell
		stacking Stacking
		want     int
	}{
		{"0.3 square", square("a", 0, 0, 0.27, 0.03), Stacking{}, 9},
		{"half tile", square("a", 0, 0, 0.5, 0), Stacking{}, 4},
		{"wide strip", rect("a", 0, 0, 0.45, 0.1, 0), Stacking{}, 20},
		{"too wide with spacing", rect("a", 0, 0, 0.99, 0.2, 0.03), Stacking{}, 0},
		{"stacked 3 columns", square("a", 0, 0, 0.1, 0), Stacking{Enabled: true, Columns: 3}, 81},
		{"stacked 2 columns", square("a", 0, 0, 0.2, 0), Stacking{Enabled: true, Columns: 2}, 16},
		{"stack block wider than tile", square("a", 0, 0, 0.4, 0), Stacking{Enabled: true, Columns: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellsPerTile(tt.shell, tt.stacking, UnitTile)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShellsPerTile_DegenerateShell(t *testing.T) {
	_, err := ShellsPerTile(square("flat", 0, 0, 0, 0), Stacking{}, UnitTile)
	assert.ErrorContains(t, err, "degenerate")
}

func TestShellsPerTile_MonotonicInSpacing(t *testing.T) {
	for _, size := range []float64{0.05, 0.12, 0.3, 0.49} {
		for _, stacking := range []Stacking{{}, {Enabled: true, Columns: 2}} {
			previous := -1
			for i := 0; i <= 50; i++ {
				spacing := float64(i) * 0.01
				got, err := ShellsPerTile(square("a", 0, 0, size, spacing), stacking, UnitTile)
				require.NoError(t, err)
				if previous >= 0 {
					assert.LessOrEqual(t, got, previous, "size %v spacing %v", size, spacing)
				}
				previous = got
			}
		}
	}
}

func TestNewCapacity(t *testing.T) {
	shell := square("a", 0, 0, 0.27, 0.03)

	c, ok, err := NewCapacity(shell, 7, Stacking{}, UnitTile)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, c.TileCount)
	assert.Equal(t, 9, c.ShellsPerTile)
	assert.InDelta(t, 0.3, c.ShellWidth, 1e-9)
	assert.InDelta(t, 0.3, c.ShellHeight, 1e-9)

	c, ok, err = NewCapacity(shell, 19, Stacking{}, UnitTile)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, c.TileCount)

	_, ok, err = NewCapacity(square("big", 0, 0, 1.0, 0.03), 4, Stacking{}, UnitTile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBatches(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, Batches(items, 3))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7}}, Batches(items, 9))
	assert.Nil(t, Batches(items, 0))
	assert.Nil(t, Batches([]int{}, 4))
}

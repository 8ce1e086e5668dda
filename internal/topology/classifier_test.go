package topology

import (
	"testing"

	"github.com/philipparndt/gouvtile/internal/host"
	"github.com/philipparndt/gouvtile/internal/host/hosttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cube = host.Counts{Vertices: 8, Edges: 12, Faces: 6, UVShells: 1}

type item struct {
	name   string
	counts host.Counts
	area   float64
}

func newHost(t *testing.T, items ...item) (*hosttest.Host, []host.Surface) {
	t.Helper()
	h := hosttest.New()
	var surfaces []host.Surface
	for _, it := range items {
		h.Add(it.name, it.name, hosttest.Square(0, 0, 0.1, it.counts, it.area))
		surfaces = append(surfaces, host.Surface{Handle: it.name, Parent: it.name})
	}
	return h, surfaces
}

func handles(surfaces []host.Surface) []string {
	var out []string
	for _, s := range surfaces {
		out = append(out, s.Handle)
	}
	return out
}

func TestClassify_ToleranceIsNotTransitive(t *testing.T) {
	h, surfaces := newHost(t,
		item{"a", cube, 100},
		item{"b", cube, 104},
		item{"c", cube, 108},
	)

	classes, err := Classify(surfaces, h)
	require.NoError(t, err)
	require.Equal(t, 2, classes.Len())

	keys := classes.Keys()
	assert.Equal(t, 100.0, keys[0].Area)
	assert.Equal(t, []string{"a", "b"}, handles(classes.Members(keys[0])))
	assert.Equal(t, 108.0, keys[1].Area)
	assert.Equal(t, []string{"c"}, handles(classes.Members(keys[1])))
}

func TestClassify_FirstMatchingAreaWins(t *testing.T) {
	h, surfaces := newHost(t,
		item{"a", cube, 100},
		item{"b", cube, 108},
		item{"c", cube, 106},
		item{"d", cube, 103},
	)

	classes, err := Classify(surfaces, h)
	require.NoError(t, err)

	keys := classes.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, []string{"a", "d"}, handles(classes.Members(keys[0])))
	assert.Equal(t, []string{"b", "c"}, handles(classes.Members(keys[1])))
}

func TestClassify_SignatureMustMatchExactly(t *testing.T) {
	other := cube
	other.UVShells = 2

	h, surfaces := newHost(t,
		item{"a", cube, 1.0},
		item{"b", other, 1.0},
		item{"c", cube, 1.0},
	)

	classes, err := Classify(surfaces, h)
	require.NoError(t, err)
	require.Equal(t, 2, classes.Len())
	assert.Equal(t, []string{"a", "c"}, handles(classes.Members(classes.Keys()[0])))
	assert.Equal(t, other, classes.Keys()[1].Counts)
}

func TestClassify_DisjointAndExhaustive(t *testing.T) {
	tri := host.Counts{Vertices: 3, Edges: 3, Faces: 1, UVShells: 1}
	h, surfaces := newHost(t,
		item{"s1", cube, 0.5},
		item{"s2", tri, 0.125},
		item{"s3", cube, 0.51},
		item{"s4", tri, 0.3},
		item{"s5", cube, 0.9},
		item{"s6", tri, 0.126},
	)

	classes, err := Classify(surfaces, h)
	require.NoError(t, err)

	seen := make(map[string]int)
	err = classes.Each(func(_ Key, members []host.Surface) error {
		for _, m := range members {
			seen[m.Handle]++
		}
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, seen, len(surfaces))
	for name, n := range seen {
		assert.Equal(t, 1, n, "surface %s must be in exactly one class", name)
	}
	assert.Equal(t, 4, classes.Len())
}

func TestClassify_RoundsArea(t *testing.T) {
	h, surfaces := newHost(t, item{"a", cube, 0.123456})

	classes, err := Classify(surfaces, h)
	require.NoError(t, err)
	assert.Equal(t, 0.123, classes.Keys()[0].Area)
	assert.Equal(t, "8_12_6_1_0.123", classes.Keys()[0].String())
}

func TestClassify_PropagatesHostErrors(t *testing.T) {
	h, surfaces := newHost(t, item{"a", cube, 1}, item{"b", cube, 1})
	h.FailOn = "b"

	_, err := Classify(surfaces, h)
	assert.ErrorContains(t, err, "topology of b")
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		area, existing float64
		want           bool
	}{
		{104, 100, true},
		{104.9, 100, true},
		{96, 100, true},
		{105.1, 100, false},
		{108, 100, false},
		{0, 0, true},
		{0.001, 0, false},
	}

	for _, tt := range tests {
		if got := WithinTolerance(tt.area, tt.existing); got != tt.want {
			t.Errorf("WithinTolerance(%v, %v) = %v, want %v", tt.area, tt.existing, got, tt.want)
		}
	}
}

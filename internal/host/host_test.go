package host_test

import (
	"testing"

	"github.com/philipparndt/gouvtile/internal/host"
	"github.com/philipparndt/gouvtile/internal/host/hosttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSelection(t *testing.T) {
	h := hosttest.New()
	h.Add("bolts_grp", "bolt1", hosttest.Square(0, 0, 0.1, host.Counts{}, 0.01))
	h.Add("bolts_grp", "bolt2", hosttest.Square(0, 0, 0.1, host.Counts{}, 0.01))
	h.Add("plate", "plate", hosttest.Square(0, 0, 0.5, host.Counts{}, 0.25))

	surfaces, err := host.ExpandSelection(h)
	require.NoError(t, err)

	assert.Equal(t, []host.Surface{
		{Handle: "bolt1", Parent: "bolts_grp"},
		{Handle: "bolt2", Parent: "bolts_grp"},
		{Handle: "plate", Parent: "plate"},
	}, surfaces)
}

func TestExpandSelection_OverlappingNodes(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []host.Surface
	}{
		{
			name:     "group first",
			selected: []string{"bolts_grp", "bolt1"},
			want: []host.Surface{
				{Handle: "bolt1", Parent: "bolts_grp"},
				{Handle: "bolt2", Parent: "bolts_grp"},
			},
		},
		{
			name:     "child first",
			selected: []string{"bolt2", "bolts_grp"},
			want: []host.Surface{
				{Handle: "bolt2", Parent: "bolt2"},
				{Handle: "bolt1", Parent: "bolts_grp"},
			},
		},
		{
			name:     "group twice",
			selected: []string{"bolts_grp", "bolts_grp"},
			want: []host.Surface{
				{Handle: "bolt1", Parent: "bolts_grp"},
				{Handle: "bolt2", Parent: "bolts_grp"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hosttest.New()
			h.Add("bolts_grp", "bolt1", hosttest.Square(0, 0, 0.1, host.Counts{}, 0.01))
			h.Add("bolts_grp", "bolt2", hosttest.Square(0, 0, 0.1, host.Counts{}, 0.01))
			h.Selected = tt.selected

			surfaces, err := host.ExpandSelection(h)
			require.NoError(t, err)
			assert.Equal(t, tt.want, surfaces)
		})
	}
}

func TestExpandSelection_Error(t *testing.T) {
	h := hosttest.New()
	h.Add("grp", "mesh", hosttest.Square(0, 0, 0.1, host.Counts{}, 0.01))
	h.FailOn = "grp"

	_, err := host.ExpandSelection(h)
	assert.ErrorContains(t, err, "grp")
}

func TestCountsString(t *testing.T) {
	c := host.Counts{Vertices: 8, Edges: 12, Faces: 6, UVShells: 1}
	assert.Equal(t, "8v 12e 6f 1s", c.String())
}

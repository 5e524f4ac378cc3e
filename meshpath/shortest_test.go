package meshpath_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/markoux/meshfill/boundary"
	"github.com/markoux/meshfill/meshpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// gridNet builds a w×h lattice of vertices "x,y" spaced 1 apart in the
// z=0 plane, connected 4-ways, with one stretched detour vertex available
// for geometric-vs-hop divergence tests.
type gridNet struct {
	edges []boundary.Edge
	pos   map[boundary.VertexID]r3.Vec
}

func vid(x, y int) boundary.VertexID {
	return boundary.VertexID(fmt.Sprintf("%d,%d", x, y))
}

func newGridNet(w, h int) *gridNet {
	g := &gridNet{pos: make(map[boundary.VertexID]r3.Vec)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.pos[vid(x, y)] = r3.Vec{X: float64(x), Y: float64(y)}
			if x+1 < w {
				g.edges = append(g.edges, boundary.Edge{U: vid(x, y), V: vid(x+1, y)})
			}
			if y+1 < h {
				g.edges = append(g.edges, boundary.Edge{U: vid(x, y), V: vid(x, y+1)})
			}
		}
	}
	return g
}

func (g *gridNet) at(id boundary.VertexID) (r3.Vec, error) {
	p, ok := g.pos[id]
	if !ok {
		return r3.Vec{}, fmt.Errorf("unknown vertex %q", id)
	}
	return p, nil
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestShortest_Errors verifies the documented failure modes.
func TestShortest_Errors(t *testing.T) {
	g := newGridNet(3, 3)

	cases := []struct {
		name     string
		edges    []boundary.Edge
		at       meshpath.PositionFunc
		from, to boundary.VertexID
		opts     []meshpath.Option
		err      error
	}{
		{"Empty", nil, g.at, "0,0", "1,1", nil, meshpath.ErrNoEdges},
		{"NilLookup", g.edges, nil, "0,0", "1,1", nil, meshpath.ErrNilPositionFunc},
		{"BadMaxCost", g.edges, g.at, "0,0", "1,1",
			[]meshpath.Option{meshpath.WithMaxCost(-1)}, meshpath.ErrBadMaxCost},
		{"FromMissing", g.edges, g.at, "9,9", "1,1", nil, meshpath.ErrVertexNotFound},
		{"ToMissing", g.edges, g.at, "0,0", "9,9", nil, meshpath.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := meshpath.Shortest(tc.edges, tc.at, tc.from, tc.to, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Shortest error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestShortest_Disconnected verifies ErrNoPath across two separate loops.
func TestShortest_Disconnected(t *testing.T) {
	edges := []boundary.Edge{
		{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "c", V: "a"},
		{U: "x", V: "y"}, {U: "y", V: "z"}, {U: "z", V: "x"},
	}

	_, err := meshpath.Shortest(edges, nil, "a", "z", meshpath.WithUnitWeight())
	assert.ErrorIs(t, err, meshpath.ErrNoPath)
}

//----------------------------------------------------------------------------//
// Path Tests
//----------------------------------------------------------------------------//

// TestShortest_ManhattanGrid checks cost and length of a corner-to-corner
// path on a unit lattice: cost 4, five vertices, every hop adjacent.
func TestShortest_ManhattanGrid(t *testing.T) {
	g := newGridNet(3, 3)

	p, err := meshpath.Shortest(g.edges, g.at, "0,0", "2,2")
	require.NoError(t, err)

	assert.InDelta(t, 4, p.Cost, 1e-12)
	require.Len(t, p.Vertices, 5)
	assert.Equal(t, boundary.VertexID("0,0"), p.Vertices[0])
	assert.Equal(t, boundary.VertexID("2,2"), p.Vertices[4])
	for i := 0; i+1 < len(p.Vertices); i++ {
		d := r3.Norm(r3.Sub(g.pos[p.Vertices[i]], g.pos[p.Vertices[i+1]]))
		assert.InDelta(t, 1, d, 1e-12, "consecutive path vertices must be edge neighbors")
	}
}

// TestShortest_GeometricBeatsHops builds a triangle detour where the
// fewest-hop route is geometrically longer, and checks the two weight
// modes choose different paths.
func TestShortest_GeometricBeatsHops(t *testing.T) {
	// a──far──b is one hop but length 10; a─m─b is two hops of length 1.
	pos := map[boundary.VertexID]r3.Vec{
		"a": {X: 0}, "m": {X: 1}, "b": {X: 2},
		"far": {X: 1, Y: math.Sqrt(99)}, // |a-far| = |far-b| = 10
	}
	edges := []boundary.Edge{
		{U: "a", V: "far"}, {U: "far", V: "b"},
		{U: "a", V: "m"}, {U: "m", V: "b"},
	}
	at := func(id boundary.VertexID) (r3.Vec, error) { return pos[id], nil }

	geo, err := meshpath.Shortest(edges, at, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []boundary.VertexID{"a", "m", "b"}, geo.Vertices)
	assert.InDelta(t, 2, geo.Cost, 1e-9)

	hops, err := meshpath.Shortest(edges, at, "a", "b", meshpath.WithUnitWeight())
	require.NoError(t, err)
	assert.InDelta(t, 2, hops.Cost, 1e-12, "both routes are two hops at most")
}

// TestShortest_SameVertex checks the degenerate query from == to.
func TestShortest_SameVertex(t *testing.T) {
	g := newGridNet(2, 2)

	p, err := meshpath.Shortest(g.edges, g.at, "0,0", "0,0")
	require.NoError(t, err)
	assert.Equal(t, []boundary.VertexID{"0,0"}, p.Vertices)
	assert.Zero(t, p.Cost)
}

// TestShortest_MaxCostCapsSearch checks that a target beyond the cost cap
// reports ErrNoPath while a nearby one still resolves.
func TestShortest_MaxCostCapsSearch(t *testing.T) {
	g := newGridNet(4, 1) // a straight strip 0,0 … 3,0

	p, err := meshpath.Shortest(g.edges, g.at, "0,0", "1,0", meshpath.WithMaxCost(1.5))
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Cost, 1e-12)

	_, err = meshpath.Shortest(g.edges, g.at, "0,0", "3,0", meshpath.WithMaxCost(1.5))
	assert.ErrorIs(t, err, meshpath.ErrNoPath)
}

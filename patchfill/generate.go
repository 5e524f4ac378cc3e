package patchfill

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/markoux/meshfill/boundary"
	"github.com/markoux/meshfill/coons"
)

// Generate runs the full fill pipeline on a raw border-edge selection:
// reconstruct the boundary loop, orient and rotate it, split it into four
// sides, evaluate the Coons patch, and emit wound quads.
//
// Each invocation is an independent, pure computation; interactive hosts
// that only change Offset or SpanU between calls should reconstruct once
// and use GenerateFromLoop instead, since the loop is invariant to both.
//
// Reconstruction errors (boundary package sentinels) propagate unchanged.
// Complexity: O(E) + O(SpanU×SpanV).
func Generate(edges []boundary.Edge, at PositionFunc, p Params, opts ...Option) (*Fill, error) {
	loop, err := boundary.Reconstruct(edges)
	if err != nil {
		return nil, err
	}
	return GenerateFromLoop(loop, at, p, opts...)
}

// GenerateFromLoop runs the fill pipeline on an already-reconstructed
// boundary loop.
//
// Pipeline, in order:
//  1. Resolve every loop vertex position through at (once each).
//  2. If a reference normal was supplied and the loop's Newell normal
//     opposes it, reverse the loop.
//  3. Rotate the loop by p.Offset, moving the corner picks.
//  4. Odd boundaries: append a virtual duplicate of the start vertex so
//     the count is even; the co-located pair becomes a five-valence pole
//     the host welds on finalize.
//  5. Split into four sides (SplitSides) and evaluate coons.Patch at
//     SpanU×SpanV.
//  6. Emit quads; if the patch normal opposes the reference normal, flip
//     their winding.
func GenerateFromLoop(loop *boundary.Loop, at PositionFunc, p Params, opts ...Option) (*Fill, error) {
	if loop == nil {
		return nil, ErrNilLoop
	}
	if at == nil {
		return nil, ErrNilPositionFunc
	}
	n := loop.Len()
	if n < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewEdges, n)
	}
	if p.SpanU < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSpan, p.SpanU)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pos := make([]r3.Vec, n)
	for i, id := range loop.Vertices() {
		pt, err := at(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrPositionLookup, id, err)
		}
		pos[i] = pt
	}

	oriented := o.ReferenceNormal != (r3.Vec{})
	if oriented && r3.Dot(LoopNormal(pos), o.ReferenceNormal) < 0 {
		loop = loop.Reverse()
		pos = reversed(pos)
	}

	if k := p.Offset; k != 0 {
		loop = loop.Rotate(k)
		pos = rotatePositions(pos, k)
	}

	ring := pos
	pole := -1
	if n%2 != 0 {
		ring = make([]r3.Vec, 0, n+1)
		ring = append(ring, pos...)
		ring = append(ring, pos[0])
	}

	sy, err := SpanV(len(ring), p.SpanU)
	if err != nil {
		return nil, err
	}
	sides, err := SplitSides(ring, p.SpanU)
	if err != nil {
		return nil, err
	}

	grid, err := coons.Patch(sides, p.SpanU, sy, coons.WithEpsilon(o.Epsilon))
	if err != nil {
		return nil, err
	}

	quads := grid.Quads()
	if oriented && r3.Dot(patchNormal(grid, quads), o.ReferenceNormal) < 0 {
		flipQuads(quads)
	}

	if n%2 != 0 {
		// The duplicate lands one step up the left column, co-located
		// with grid point (0,0).
		pole = grid.Index(0, 1)
	}

	return &Fill{
		Grid:     grid,
		Quads:    quads,
		Boundary: loop,
		SpanV:    sy,
		Pole:     pole,
	}, nil
}

// rotatePositions returns pos cyclically rotated so element 0 is pos[k mod n].
func rotatePositions(pos []r3.Vec, k int) []r3.Vec {
	n := len(pos)
	k %= n
	if k < 0 {
		k += n
	}
	out := make([]r3.Vec, 0, n)
	out = append(out, pos[k:]...)
	out = append(out, pos[:k]...)
	return out
}

// patchNormal averages the Newell normals of all quads, normalized, or
// zero when degenerate. Used to validate quad winding against the
// reference normal, same as checking one reference edge of the boundary
// but robust to local folds.
func patchNormal(g *coons.Grid, quads [][4]int) r3.Vec {
	pts := g.Points()
	var sum r3.Vec
	quad := make([]r3.Vec, 4)
	for _, q := range quads {
		for i, idx := range q {
			quad[i] = pts[idx]
		}
		sum = r3.Add(sum, newell(quad))
	}
	if r3.Norm(sum) < 1e-12 {
		return r3.Vec{}
	}
	return r3.Unit(sum)
}

// flipQuads reverses the winding of every quad in place.
func flipQuads(quads [][4]int) {
	for i := range quads {
		quads[i][1], quads[i][3] = quads[i][3], quads[i][1]
	}
}

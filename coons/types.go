// Package coons defines the curve, side, grid, and option types used by
// patch evaluation.
package coons

import "gonum.org/v1/gonum/spatial/r3"

// DefaultEpsilon is the corner-consistency tolerance used when no
// WithEpsilon option is supplied. Scenes with very large or very small
// units should override it.
const DefaultEpsilon = 1e-6

// Curve is an ordered polyline of 3D positions. It is sampled by index
// fraction: parameter t ∈ [0,1] linearly interpolates between the two
// stored points bracketing t·(len-1), regardless of segment lengths.
type Curve []r3.Vec

// Sides bundles the four boundary curves of a patch. The corner
// conventions are
//
//	C00 = Bottom(0) = Left(0)
//	C10 = Bottom(1) = Right(0)
//	C01 = Top(0)    = Left(1)
//	C11 = Top(1)    = Right(1)
//
// Bottom and Top are parametrized by u, Left and Right by v. Opposite
// sides need not have equal point counts.
type Sides struct {
	Bottom, Top, Left, Right Curve
}

// Corners returns the four corner positions (C00, C10, C01, C11), read
// from the Bottom and Top endpoints.
func (s Sides) Corners() (c00, c10, c01, c11 r3.Vec) {
	return s.Bottom[0], s.Bottom[len(s.Bottom)-1], s.Top[0], s.Top[len(s.Top)-1]
}

// Grid is an immutable (M+1)×(K+1) array of 3D positions indexed by
// (u-step, v-step), stored row-major by v. Boundary rows and columns equal
// the sampled side curves; interior cells are Coons-evaluated.
type Grid struct {
	nu, nv int // point counts along u and v (M+1, K+1)
	pts    []r3.Vec
}

// Cols returns the number of grid points along u (M+1).
func (g *Grid) Cols() int { return g.nu }

// Rows returns the number of grid points along v (K+1).
func (g *Grid) Rows() int { return g.nv }

// Index maps (u-step i, v-step j) to the row-major position index.
// Complexity: O(1).
func (g *Grid) Index(i, j int) int { return j*g.nu + i }

// At returns the position at (u-step i, v-step j).
func (g *Grid) At(i, j int) r3.Vec { return g.pts[g.Index(i, j)] }

// Points returns the full row-major position list, ready for a host
// mesh-construction collaborator. The slice is a copy.
func (g *Grid) Points() []r3.Vec {
	pts := make([]r3.Vec, len(g.pts))
	copy(pts, g.pts)
	return pts
}

// Quads emits one quad per grid cell as four row-major indices into
// Points, wound (i,j) → (i+1,j) → (i+1,j+1) → (i,j+1). For a patch whose
// boundary runs Bottom→Right→Top→Left this matches the boundary loop's
// orientation. Complexity: O(M×K).
func (g *Grid) Quads() [][4]int {
	qs := make([][4]int, 0, (g.nu-1)*(g.nv-1))
	for j := 0; j < g.nv-1; j++ {
		for i := 0; i < g.nu-1; i++ {
			qs = append(qs, [4]int{
				g.Index(i, j),
				g.Index(i+1, j),
				g.Index(i+1, j+1),
				g.Index(i, j+1),
			})
		}
	}
	return qs
}

// Options holds tunable parameters for patch evaluation.
type Options struct {
	// Epsilon is the tolerance for corner-consistency checks.
	Epsilon float64
}

// Option configures patch evaluation via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with Epsilon = DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the corner-consistency tolerance. Non-positive
// values surface as ErrInvalidEpsilon when the patch is evaluated.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

package coons

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample evaluates c at normalized parameter t ∈ [0,1] by index-fraction
// linear interpolation: the two stored points bracketing t·(len-1) are
// blended by the fractional part. Values of t outside [0,1] are clamped.
// c must be non-empty. Complexity: O(1).
func Sample(c Curve, t float64) r3.Vec {
	n := len(c)
	if n == 1 {
		return c[0]
	}
	if t <= 0 {
		return c[0]
	}
	if t >= 1 {
		return c[n-1]
	}
	s := t * float64(n-1)
	j := int(s)
	if j > n-2 {
		j = n - 2
	}
	f := s - float64(j)
	return r3.Add(r3.Scale(1-f, c[j]), r3.Scale(f, c[j+1]))
}

// Patch evaluates the Coons patch bounded by s on an (m+1)×(k+1) grid,
// u = i/m for i in 0..m and v = j/k for j in 0..k.
//
// Preconditions (validated, in order):
//  1. m ≥ 1 and k ≥ 1 (ErrInvalidResolution).
//  2. Every side curve has at least two points (ErrShortSide).
//  3. The sides share corner endpoints within the configured epsilon
//     (ErrInconsistentCorners).
//
// Boundary rows and columns are written directly from the sampled side
// curves, so boundary exactness holds exactly, not just within tolerance;
// interior points use the bilinearly-blended formula.
//
// Complexity: O(m×k) time and memory.
func Patch(s Sides, m, k int, opts ...Option) (*Grid, error) {
	if m < 1 || k < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidResolution, m, k)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Epsilon <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidEpsilon, o.Epsilon)
	}

	for _, side := range []struct {
		name string
		c    Curve
	}{
		{"bottom", s.Bottom}, {"top", s.Top}, {"left", s.Left}, {"right", s.Right},
	} {
		if len(side.c) < 2 {
			return nil, fmt.Errorf("%w: %s has %d", ErrShortSide, side.name, len(side.c))
		}
	}
	if err := checkCorners(s, o.Epsilon); err != nil {
		return nil, err
	}

	c00, c10, c01, c11 := s.Corners()
	g := &Grid{nu: m + 1, nv: k + 1, pts: make([]r3.Vec, (m+1)*(k+1))}

	for j := 0; j <= k; j++ {
		v := float64(j) / float64(k)
		for i := 0; i <= m; i++ {
			u := float64(i) / float64(m)
			var p r3.Vec
			switch {
			case j == 0:
				p = Sample(s.Bottom, u)
			case j == k:
				p = Sample(s.Top, u)
			case i == 0:
				p = Sample(s.Left, v)
			case i == m:
				p = Sample(s.Right, v)
			default:
				p = evaluate(s, u, v, c00, c10, c01, c11)
			}
			g.pts[g.Index(i, j)] = p
		}
	}

	return g, nil
}

// evaluate computes the bilinearly-blended Coons point at (u,v): the two
// opposite-side lofts summed, minus the bilinear corner surface they
// double-count.
func evaluate(s Sides, u, v float64, c00, c10, c01, c11 r3.Vec) r3.Vec {
	b := Sample(s.Bottom, u)
	t := Sample(s.Top, u)
	l := Sample(s.Left, v)
	r := Sample(s.Right, v)

	lofts := r3.Add(
		r3.Add(r3.Scale(1-u, l), r3.Scale(u, r)),
		r3.Add(r3.Scale(1-v, b), r3.Scale(v, t)),
	)
	corner := r3.Add(
		r3.Add(r3.Scale((1-u)*(1-v), c00), r3.Scale(u*(1-v), c10)),
		r3.Add(r3.Scale((1-u)*v, c01), r3.Scale(u*v, c11)),
	)
	return r3.Sub(lofts, corner)
}

// checkCorners verifies the four shared-corner identities within eps.
func checkCorners(s Sides, eps float64) error {
	pairs := []struct {
		name string
		a, b r3.Vec
	}{
		{"C00", s.Bottom[0], s.Left[0]},
		{"C10", s.Bottom[len(s.Bottom)-1], s.Right[0]},
		{"C01", s.Top[0], s.Left[len(s.Left)-1]},
		{"C11", s.Top[len(s.Top)-1], s.Right[len(s.Right)-1]},
	}
	for _, p := range pairs {
		if d := r3.Norm(r3.Sub(p.a, p.b)); d > eps {
			return fmt.Errorf("%w: %s endpoints differ by %g (eps %g)",
				ErrInconsistentCorners, p.name, d, eps)
		}
	}
	return nil
}

package patchfill

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/markoux/meshfill/coons"
)

// SpanV derives the v-direction cell count Sy from an even ring length n
// and a u-direction cell count spanU: Sy = (n − 2·spanU)/2.
//
// Returns ErrInvalidSpan for spanU < 1, ErrTooFewEdges for n < 4,
// ErrOddBoundary for odd n, and ErrSpanTooLarge when Sy would drop below 1.
func SpanV(n, spanU int) (int, error) {
	if spanU < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSpan, spanU)
	}
	if n < 4 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewEdges, n)
	}
	if n%2 != 0 {
		return 0, fmt.Errorf("%w: got %d", ErrOddBoundary, n)
	}
	sy := (n - 2*spanU) / 2
	if sy < 1 {
		return 0, fmt.Errorf("%w: %d cells leave Sy=%d on a %d-vertex ring", ErrSpanTooLarge, spanU, sy, n)
	}
	return sy, nil
}

// Resample linearly resamples c to exactly n points by index fraction,
// preserving both endpoints. A same-length input is returned as a copy.
// n must be at least 1 and c non-empty. Complexity: O(n).
func Resample(c coons.Curve, n int) coons.Curve {
	out := make(coons.Curve, n)
	if len(c) == n {
		copy(out, c)
		return out
	}
	if n == 1 {
		out[0] = c[0]
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = coons.Sample(c, float64(i)/float64(n-1))
	}
	return out
}

// SplitSides partitions a closed, ordered ring of positions into the four
// side curves of a patch, with corners at ring indices 0, Sx, Sx+Sy, and
// 2·Sx+Sy (Sx = spanU, Sy from SpanV):
//
//	Bottom: ring[0 .. Sx]                         (u-parametrized)
//	Right:  ring[Sx .. Sx+Sy]                     (v-parametrized)
//	Top:    ring[Sx+Sy .. 2Sx+Sy] reversed        (u-parametrized)
//	Left:   ring[2Sx+Sy ..] + ring[0], reversed   (v-parametrized)
//
// The left remainder is always closed with a copy of ring[0], giving every
// side exactly its cell count plus one stored points; each boundary grid
// point therefore lands on a stored ring position, never on a blend. When
// a pole duplicate evened an odd boundary the duplicate becomes the second
// left point, co-located with ring[0]. The four sides share their corner
// endpoints exactly, as coons.Patch requires.
//
// Complexity: O(n).
func SplitSides(ring []r3.Vec, spanU int) (coons.Sides, error) {
	sy, err := SpanV(len(ring), spanU)
	if err != nil {
		return coons.Sides{}, err
	}

	sx := spanU
	bottom := append(coons.Curve{}, ring[:sx+1]...)
	right := append(coons.Curve{}, ring[sx:sx+sy+1]...)
	top := reversed(ring[sx+sy : 2*sx+sy+1])

	leftRaw := append(coons.Curve{}, ring[2*sx+sy:]...)
	leftRaw = append(leftRaw, ring[0])
	left := reversed(leftRaw)

	return coons.Sides{Bottom: bottom, Top: top, Left: left, Right: right}, nil
}

// LoopNormal computes the polygon normal of a closed vertex ring by
// Newell's method and returns it normalized, or the zero vector when the
// ring is degenerate (collinear or empty). Works for non-planar rings,
// where it yields the best-fit winding normal. Complexity: O(n).
func LoopNormal(pts []r3.Vec) r3.Vec {
	n := newell(pts)
	if r3.Norm(n) < 1e-12 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// newell accumulates the unnormalized Newell normal of a vertex ring.
func newell(pts []r3.Vec) r3.Vec {
	var n r3.Vec
	for i, c := range pts {
		d := pts[(i+1)%len(pts)]
		n.X += (c.Y - d.Y) * (c.Z + d.Z)
		n.Y += (c.Z - d.Z) * (c.X + d.X)
		n.Z += (c.X - d.X) * (c.Y + d.Y)
	}
	return n
}

// reversed returns a reversed copy of c.
func reversed(c []r3.Vec) coons.Curve {
	out := make(coons.Curve, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Package coons evaluates Coons patches: bilinearly-blended surfaces that
// interpolate four boundary curves exactly, filling the interior with a
// smooth, curvature-following quad grid.
//
// What:
//
//   - Curve is an ordered polyline of 3D positions sampled at normalized
//     parameter t by index fraction (point-count based, not arclength).
//   - Sides bundles the Bottom, Top, Left, and Right boundary curves with
//     shared corner endpoints.
//   - Patch evaluates the full (M+1)×(K+1) grid; Grid emits the quads
//     connecting adjacent cells.
//
// Why:
//
//   - Hole filling: a reconstructed boundary loop, split into four sides,
//     becomes an all-quad patch that follows the surrounding curvature.
//   - Bridging and lofting reuse the same four-curve blend.
//
// The defining property — and a hard postcondition here — is boundary
// exactness: evaluating at any boundary parameter reproduces the sampled
// side-curve point. Interior points come from the classic formula
//
//	P(u,v) = (1-u)·L(v) + u·R(v) + (1-v)·B(u) + v·T(u)
//	         − [(1-u)(1-v)·C00 + u(1-v)·C10 + (1-u)v·C01 + uv·C11]
//
// where the bracketed bilinear term removes the corner contributions the
// four lofts double-count.
//
// Complexity:
//
//   - Patch: O(M×K) time and memory.
//   - Grid.Quads: O(M×K).
//
// Errors:
//
//   - ErrInvalidResolution: non-positive grid dimensions.
//   - ErrShortSide: a side curve with fewer than two points.
//   - ErrInconsistentCorners: side endpoints disagree beyond the epsilon.
//   - ErrInvalidEpsilon: non-positive tolerance supplied.
//
// Positions use gonum's spatial/r3 vectors; tolerance is configurable via
// WithEpsilon to accommodate varying scene unit scales.
package coons

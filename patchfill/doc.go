// Package patchfill composes boundary reconstruction and Coons-patch
// evaluation into the full hole-filling pipeline: raw edge selection in,
// grid positions and quad faces out.
//
// What:
//
//   - Generate runs the whole chain: reconstruct the loop, orient it
//     against a reference normal, rotate it by the user's offset, split it
//     into four sides, evaluate the patch, and emit consistently wound
//     quads.
//   - GenerateFromLoop skips reconstruction for hosts that cache the loop
//     across interactive offset/span changes (it is invariant to both).
//   - SplitSides, Resample, and LoopNormal are the reusable pieces:
//     corner-index side splitting, index-fraction resampling, and Newell's
//     polygon normal.
//
// Why:
//
//   - Interactive quad fill: a DCC shelf tool reconstructs once, then
//     regenerates per slider tick as the user tunes rotation offset and
//     span count.
//   - The host stays in charge of geometry creation: output is plain
//     row-major positions plus index quads, ready for mesh construction,
//     seam welding, and normal fixing downstream.
//
// Side splitting follows the classic corner-pick scheme: with N boundary
// vertices and Sx cells along the bottom, Sy = (N − 2·Sx)/2 cells run up
// the sides; the four corners sit at ring indices 0, Sx, Sx+Sy, and
// 2·Sx+Sy. Odd boundaries are handled by the virtual-duplicate pole
// technique: the start vertex is appended once more to even the count, the
// patch is evaluated normally, and the host welds the co-located pair on
// finalize, leaving one five-valence pole whose position the rotation
// offset controls.
//
// Complexity: O(E) reconstruction + O(Sx×Sy) evaluation per call.
//
// Errors:
//
//   - ErrNilLoop, ErrNilPositionFunc: missing collaborators.
//   - ErrTooFewEdges: boundary shorter than four vertices.
//   - ErrInvalidSpan: span count below one.
//   - ErrSpanTooLarge: span count leaves no room for the opposite sides.
//   - boundary and coons sentinel errors propagate unchanged.
package patchfill

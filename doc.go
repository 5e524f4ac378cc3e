// Package meshfill is the geometry core behind interactive quad hole
// filling: it rebuilds ordered boundary loops from raw edge selections
// and interpolates smooth all-quad patches across them.
//
// 🚀 What is meshfill?
//
//	A pure, host-independent library that brings together:
//		• Boundary reconstruction: turn an unordered border-edge set into one clean cycle
//		• Coons patches: blend four boundary curves into a curvature-following grid
//		• Side splitting: corner picking, rotation offset, odd-count pole handling
//		• Mesh paths: geometric shortest vertex paths over edge networks
//
// ✨ Why choose meshfill?
//
//   - Host-agnostic – vertex identifiers are opaque tokens; positions come
//     from a lookup you supply, so any DCC scene layer plugs in
//   - Validation-first – malformed selections fail loudly with sentinel
//     errors, never with a silently wrong fill
//   - Pure Go – deterministic functions of their inputs, no cgo, no I/O
//   - Interactive-friendly – rotation offset and span changes are cheap,
//     independent recomputations over a memoized boundary loop
//
// Everything is organized under four subpackages:
//
//	boundary/  — ordered-loop reconstruction from unordered edge sets
//	coons/     — Coons-patch grid evaluation and quad emission
//	patchfill/ — the full selection→grid pipeline: winding, offset, sides
//	meshpath/  — Dijkstra over edge networks weighted by geometric length
//
// Quick ASCII example:
//
//	    A───B          A───B
//	    │   │    →     │ ┼ │
//	    D───C          D───C
//
//	a four-edge hole boundary becomes a filled quad grid.
//
// The downstream steps — merging the grid into a host mesh, welding the
// seam, fixing normals — belong to the host application, not to meshfill.
package meshfill

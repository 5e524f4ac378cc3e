// Package boundary reconstructs ordered boundary loops from unordered
// border-edge selections.
//
// What:
//
//   - Edge is an unordered pair of opaque vertex identifiers.
//   - Reconstruct turns a set of edges into a single ordered cycle (Loop),
//     or fails if the set is not exactly one simple loop.
//   - Loop supports cyclic rotation, reversal, and round-tripping back to
//     its edge set.
//
// Why:
//
//   - Host selection APIs hand back border edges in arbitrary order; every
//     fill, bridge, or patch operation downstream needs them as one
//     consecutive cycle.
//   - Degree checking catches branched, gapped, or multi-loop selections
//     before any geometry is touched.
//
// How:
//
//	Each distinct vertex identifier is assigned a stable dense index on
//	first sight; adjacency is held in a flat index-based arena, so the walk
//	never depends on identifier hashing beyond the initial interning. The
//	walk itself is the classic degree-2 march: from the current vertex,
//	step to the neighbor that is not the previous vertex, until the start
//	reappears.
//
// Complexity:
//
//   - Reconstruct: O(E) time, O(V) memory.
//   - Loop.Rotate / Reverse / Edges: O(N).
//
// Errors:
//
//   - ErrNoEdges: empty input.
//   - ErrSelfLoop: an edge joins a vertex to itself.
//   - ErrDuplicateEdge: the same unordered pair appears twice.
//   - ErrMalformedBoundary: some vertex has valence ≠ 2.
//   - ErrIncompleteLoop: the edges form several disjoint cycles.
//
// The start vertex and walk direction are arbitrary and carry no meaning;
// callers compensate with Loop.Rotate and Loop.Reverse.
package boundary

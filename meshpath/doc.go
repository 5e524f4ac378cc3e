// Package meshpath computes shortest vertex paths over mesh edge networks
// using Dijkstra's algorithm with geometric edge lengths.
//
// What:
//
//   - Shortest finds the minimum-cost vertex path between two vertices of
//     an edge set, weighting each edge by the Euclidean distance between
//     its endpoint positions.
//   - WithUnitWeight switches to hop counting (every edge costs 1), which
//     matches "fewest edges" rather than "shortest distance" semantics.
//
// Why:
//
//   - Edge-loop aware tools (select shortest edge path, guided cuts) need
//     true geometric shortest paths; hop counting picks visually longer
//     routes across irregular topology.
//
// How:
//
//	Vertex identifiers are interned into dense indices; adjacency and the
//	lazy-decrease-key min-heap work on ints. Each popped vertex is
//	finalized once; stale heap entries are skipped. Positions are resolved
//	through the host lookup exactly once per vertex.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors:
//
//   - ErrNoEdges: empty edge set.
//   - ErrNilPositionFunc: geometric weighting requested without a lookup.
//   - ErrVertexNotFound: an endpoint is absent from the edge set.
//   - ErrNoPath: the endpoints lie in different connected components, or
//     the path exceeds the configured cost cap.
//   - ErrBadMaxCost: negative cost cap supplied.
package meshpath

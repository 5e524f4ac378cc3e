package boundary

import "errors"

// Sentinel errors for boundary reconstruction.
var (
	// ErrNoEdges indicates an empty input edge set.
	ErrNoEdges = errors.New("boundary: edge set must be non-empty")

	// ErrSelfLoop indicates an edge whose two endpoints are the same vertex.
	ErrSelfLoop = errors.New("boundary: edge endpoints must be distinct")

	// ErrDuplicateEdge indicates the same unordered vertex pair appears twice.
	ErrDuplicateEdge = errors.New("boundary: duplicate edge in selection")

	// ErrMalformedBoundary indicates a vertex with valence ≠ 2: the selection
	// has branches, gaps, or dangling ends and is not one clean loop.
	ErrMalformedBoundary = errors.New("boundary: selection is not a simple loop")

	// ErrIncompleteLoop indicates the walk closed before consuming every
	// edge: the selection contains multiple disjoint loops.
	ErrIncompleteLoop = errors.New("boundary: selection forms more than one loop")
)

// Package meshpath defines options and error sentinels for shortest-path
// queries over mesh edge networks.
package meshpath

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/markoux/meshfill/boundary"
)

// Sentinel errors for shortest-path queries.
var (
	// ErrNoEdges indicates an empty input edge set.
	ErrNoEdges = errors.New("meshpath: edge set must be non-empty")

	// ErrNilPositionFunc indicates geometric weighting was requested
	// without a position lookup.
	ErrNilPositionFunc = errors.New("meshpath: position lookup is nil")

	// ErrVertexNotFound indicates a query endpoint absent from the edges.
	ErrVertexNotFound = errors.New("meshpath: vertex not found in edge set")

	// ErrNoPath indicates the endpoints are not connected (or not within
	// the configured cost cap).
	ErrNoPath = errors.New("meshpath: no path between vertices")

	// ErrBadMaxCost indicates a negative cost cap.
	ErrBadMaxCost = errors.New("meshpath: MaxCost must be non-negative")
)

// PositionFunc resolves a vertex identifier to its 3D position, supplied
// by the host's scene layer. Called exactly once per distinct vertex.
type PositionFunc func(boundary.VertexID) (r3.Vec, error)

// Options holds tunable parameters for a shortest-path query.
type Options struct {
	// UnitWeight counts hops instead of geometric length: every edge
	// costs 1 and no position lookup is needed.
	UnitWeight bool

	// MaxCost caps exploration: vertices farther than this from the start
	// are never finalized, and a target beyond it reports ErrNoPath.
	// Defaults to +Inf (no cap).
	MaxCost float64
}

// Option configures a query via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with geometric weighting and no cost cap.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithUnitWeight switches to hop counting (edge count instead of length).
func WithUnitWeight() Option {
	return func(o *Options) { o.UnitWeight = true }
}

// WithMaxCost caps the explored distance. Negative values surface as
// ErrBadMaxCost when the query runs.
func WithMaxCost(c float64) Option {
	return func(o *Options) { o.MaxCost = c }
}

// Path is a shortest-path query result.
type Path struct {
	// Vertices is the vertex sequence from start to target, inclusive.
	Vertices []boundary.VertexID

	// Cost is the summed edge weight along Vertices.
	Cost float64
}

// Package patchfill defines the parameter, option, and result types of the
// fill pipeline.
package patchfill

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/markoux/meshfill/boundary"
	"github.com/markoux/meshfill/coons"
)

// PositionFunc resolves a vertex identifier to its 3D position in the host
// scene. Supplied by the host's scene/selection layer; the pipeline calls
// it exactly once per boundary vertex.
type PositionFunc func(boundary.VertexID) (r3.Vec, error)

// Params are the per-invocation UI-driven controls.
type Params struct {
	// Offset cyclically rotates the boundary loop before corner picking,
	// changing which vertices become the patch corners. Any int is valid;
	// it is taken modulo the loop length. For odd boundaries it positions
	// the five-valence pole.
	Offset int

	// SpanU is the number of grid cells along the bottom and top sides
	// (Sx). The v-direction count Sy follows from the boundary length:
	// Sy = (N − 2·SpanU)/2.
	SpanU int
}

// Options holds tunable parameters beyond the interactive controls.
type Options struct {
	// ReferenceNormal, when non-zero, is the hole's facing direction
	// (typically the average of the surrounding face normals). The loop is
	// reoriented and the quads are wound so the patch faces along it.
	// Zero means: keep the walk's arbitrary orientation.
	ReferenceNormal r3.Vec

	// Epsilon is the corner-consistency tolerance forwarded to the patch
	// evaluation.
	Epsilon float64
}

// Option configures the pipeline via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no reference normal and the coons
// default epsilon.
func DefaultOptions() Options {
	return Options{Epsilon: coons.DefaultEpsilon}
}

// WithReferenceNormal orients the fill against the given hole normal.
func WithReferenceNormal(n r3.Vec) Option {
	return func(o *Options) { o.ReferenceNormal = n }
}

// WithEpsilon overrides the corner-consistency tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// Fill is the pipeline result: everything a host mesh-construction
// collaborator needs to build, merge, and weld the patch.
type Fill struct {
	// Grid holds the full (SpanU+1)×(SpanV+1) position grid, row-major.
	Grid *coons.Grid

	// Quads are index quads into Grid.Points, wound to face the reference
	// normal when one was supplied.
	Quads [][4]int

	// Boundary is the oriented, rotated loop the fill was built from. Its
	// order matches the grid's boundary ring walk (bottom → right → top →
	// left), which hosts need for seam welding.
	Boundary *boundary.Loop

	// SpanV is the derived v-direction cell count (Sy).
	SpanV int

	// Pole is the grid point index of the virtual-duplicate pole vertex
	// for odd boundaries, or -1 for even ones. The host welds Pole onto
	// grid point 0 on finalize.
	Pole int
}

package coons

import "errors"

// Sentinel errors for patch evaluation.
var (
	// ErrInvalidResolution indicates non-positive grid dimensions.
	ErrInvalidResolution = errors.New("coons: grid resolution must be at least 1×1")

	// ErrShortSide indicates a side curve with fewer than two points.
	ErrShortSide = errors.New("coons: side curves need at least two points")

	// ErrInconsistentCorners indicates the four side curves do not share
	// corner endpoints within the configured tolerance.
	ErrInconsistentCorners = errors.New("coons: side curves disagree at a shared corner")

	// ErrInvalidEpsilon indicates a non-positive tolerance option.
	ErrInvalidEpsilon = errors.New("coons: epsilon must be positive")
)

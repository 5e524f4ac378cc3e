package patchfill

import "errors"

// Sentinel errors for pipeline validation.
var (
	// ErrNilLoop indicates a nil boundary loop was supplied.
	ErrNilLoop = errors.New("patchfill: boundary loop is nil")

	// ErrNilPositionFunc indicates no position lookup was supplied.
	ErrNilPositionFunc = errors.New("patchfill: position lookup is nil")

	// ErrTooFewEdges indicates the boundary is too short to form four
	// non-degenerate sides.
	ErrTooFewEdges = errors.New("patchfill: need at least 4 border edges")

	// ErrInvalidSpan indicates a span count below one.
	ErrInvalidSpan = errors.New("patchfill: span count must be at least 1")

	// ErrSpanTooLarge indicates the u-span consumes the whole boundary,
	// leaving no vertices for the v-direction sides.
	ErrSpanTooLarge = errors.New("patchfill: span too large for boundary length")

	// ErrOddBoundary indicates an odd ring was passed to side splitting;
	// odd boundaries must be evened first (Generate does this with a pole
	// duplicate).
	ErrOddBoundary = errors.New("patchfill: ring length must be even")

	// ErrPositionLookup wraps failures of the host position lookup.
	ErrPositionLookup = errors.New("patchfill: position lookup failed")
)

package thinning

import "errors"

// Sentinel errors returned by Homotopic and Ordered.
var (
	// ErrMissingInput indicates a nil mask or priority image.
	ErrMissingInput = errors.New("thinning: mask and priority image are required")

	// ErrShapeMismatch indicates mask, priority, and (when present) AOF
	// images disagree in extent.
	ErrShapeMismatch = errors.New("thinning: mask, priority, and aof must share extent")

	// ErrInvalidParameter indicates an unsupported dimension (not 2 or 3).
	ErrInvalidParameter = errors.New("thinning: invalid parameter")

	// ErrCancelled indicates the run's context was cancelled before the
	// queue drained; the partial skeleton returned alongside this error is
	// still valid per spec §5.
	ErrCancelled = errors.New("thinning: run was cancelled")
)

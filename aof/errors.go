package aof

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrMissingInput indicates a nil spoke field, mask, or distance map.
	ErrMissingInput = errors.New("aof: spokes, mask, and distance are required")

	// ErrShapeMismatch indicates the spoke field, mask, and distance map
	// have different extents.
	ErrShapeMismatch = errors.New("aof: spokes, mask, and distance must share extent")
)

package boundarymap

import "errors"

// ErrMissingInput indicates a nil shape or skeleton.
var ErrMissingInput = errors.New("boundarymap: shape and skeleton are required")

// ErrShapeMismatch indicates shape and skeleton disagree in extent.
var ErrShapeMismatch = errors.New("boundarymap: shape and skeleton must share extent")

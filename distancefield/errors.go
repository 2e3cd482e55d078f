package distancefield

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrMissingInput indicates a nil mask.
	ErrMissingInput = errors.New("distancefield: mask is required")

	// ErrInvalidParameter indicates a non-positive spacing component.
	ErrInvalidParameter = errors.New("distancefield: spacing components must be positive")
)

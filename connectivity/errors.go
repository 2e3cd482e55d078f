package connectivity

import "errors"

// ErrMissingInput indicates a nil thin image.
var ErrMissingInput = errors.New("connectivity: thin image is required")

// ErrInvalidParameter indicates a non-positive maxLevel.
var ErrInvalidParameter = errors.New("connectivity: maxLevel must be positive")

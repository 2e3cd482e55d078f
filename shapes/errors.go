package shapes

import "errors"

// ErrInvalidParameter indicates a non-positive size parameter.
var ErrInvalidParameter = errors.New("shapes: size parameters must be positive")

// ErrConstructFailed indicates a nil constructor. Errors returned by a
// constructor are wrapped as they are, not as ErrConstructFailed.
var ErrConstructFailed = errors.New("shapes: construction failed")

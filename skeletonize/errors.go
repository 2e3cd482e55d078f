package skeletonize

import "errors"

// ErrMissingInput indicates a nil binary mask.
var ErrMissingInput = errors.New("skeletonize: binary mask is required")

// ErrInvalidParameter indicates an unrecognized EndKind.
var ErrInvalidParameter = errors.New("skeletonize: invalid parameter")

package voxel

import "errors"

// Sentinel errors returned by the voxel package's constructors.
var (
	// ErrEmptyDims indicates a zero-length or empty-extent size was supplied.
	ErrEmptyDims = errors.New("voxel: size must have at least one positive dimension")

	// ErrBadDimension indicates a dimension outside {2, 3}. NewImage does
	// not return it: it accepts any dimension count of at least one.
	ErrBadDimension = errors.New("voxel: dimension must be 2 or 3")

	// ErrLengthMismatch indicates Index/Offset/Spacing/Origin length disagrees with D.
	ErrLengthMismatch = errors.New("voxel: tuple length does not match image dimension")

	// ErrBadSpacing indicates a non-positive spacing component.
	ErrBadSpacing = errors.New("voxel: spacing components must be positive")
)

package shapes

import (
	"fmt"

	"github.com/skeltools/skeltools/voxel"
)

// Constructor mutates mask in place, setting voxels to foreground (1).
// Constructors must not panic; they return sentinel errors instead.
type Constructor func(mask *voxel.BinaryMask) error

// Build allocates a zero-valued mask of the given size and applies each
// constructor in order, wrapping the first error with its call-site
// index. This generalizes builder.BuildGraph's single-orchestrator,
// deterministic-composition-order dispatcher from graphs to voxel images.
func Build(dims []int, cons ...Constructor) (*voxel.BinaryMask, error) {
	mask, err := voxel.NewBinaryMask(dims, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := c(mask); err != nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, err)
		}
	}
	return mask, nil
}

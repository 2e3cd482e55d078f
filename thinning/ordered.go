package thinning

import (
	"context"
	"math"

	"github.com/skeltools/skeltools/endcriteria"
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// OrderedOptions configures Ordered, per spec §4.4.2 and §6.
type OrderedOptions struct {
	// End is the pluggable end criterion; required.
	End endcriteria.Func
	// AOF is the optional anchoring field; required only when End consults it.
	AOF *voxel.AOFImage
	// RadiusWeighted: survivors retain their seeded priority value rather
	// than 1, so the output doubles as a thickness map.
	RadiusWeighted bool
	// Quick restricts the AOF-anchored seed set to voxels with AOF < 0; it
	// has no effect when AOF is nil.
	Quick bool
}

// Ordered runs ordered skeletonization (spec §4.4.2): seeds a min-heap
// from every boundary-and-simple voxel, then repeatedly pops the
// least-priority voxel, deletes it when still simple and not an end point,
// and re-queues any newly-simple, not-yet-queued foreground neighbor.
//
// Errors: ErrMissingInput if binary, priority, or opts.End is nil;
// ErrShapeMismatch if priority/aof disagree in extent with binary;
// ErrInvalidParameter if binary's dimension is not 2 or 3.
func Ordered(ctx context.Context, binary *voxel.BinaryMask, priority *voxel.DistanceMap, opts OrderedOptions) (*voxel.Skeleton, *Stats, error) {
	if binary == nil || priority == nil || opts.End == nil {
		return nil, nil, ErrMissingInput
	}
	if !voxel.SameShape(binary, priority) {
		return nil, nil, ErrShapeMismatch
	}
	if opts.AOF != nil && !voxel.SameShape(binary, opts.AOF) {
		return nil, nil, ErrShapeMismatch
	}

	strategy, err := strategyForDimension(binary.Dim(), true, opts.End)
	if err != nil {
		return nil, nil, err
	}

	skeleton, err := voxel.NewImage[float32](binary.Size(), binary.Spacing(), binary.Origin())
	if err != nil {
		return nil, nil, err
	}

	seedOK := endcriteria.QuickSeed(opts.Quick && opts.AOF != nil)
	binary.Each(func(p voxel.Index) {
		if binary.At(p) == 0 {
			return
		}
		aofVal := 0.0
		if opts.AOF != nil {
			aofVal = float64(opts.AOF.At(p))
		}
		if !seedOK(float64(priority.At(p)), aofVal) {
			return
		}
		if opts.RadiusWeighted {
			skeleton.Set(p, priority.At(p))
		} else {
			skeleton.Set(p, 1)
		}
	})

	var seeds []SeedEntry
	skeleton.Each(func(p voxel.Index) {
		if skeleton.At(p) <= 0 {
			return
		}
		if topology.IsBoundary(skeleton, p) && strategy.IsSimple(skeleton, p) {
			seeds = append(seeds, SeedEntry{Index: p, Priority: float64(priority.At(p))})
		}
	})

	var engine Engine
	stats, err := engine.Run(ctx, skeleton, priority, seeds, strategy, opts.AOF, math.Inf(1))
	return skeleton, stats, err
}

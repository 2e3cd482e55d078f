package thinning

import (
	"context"
	"math"

	"github.com/skeltools/skeltools/distancefield"
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// HomotopicOptions configures Homotopic.
type HomotopicOptions struct {
	// MaxDistance caps the priority value processed (spec's D_max);
	// defaults to +Inf (process the entire foreground).
	MaxDistance float64
}

// HomotopicOption mutates HomotopicOptions.
type HomotopicOption func(*HomotopicOptions)

// WithMaxDistance caps the distance value processed by Homotopic.
func WithMaxDistance(d float64) HomotopicOption {
	return func(o *HomotopicOptions) { o.MaxDistance = d }
}

// Homotopic runs homotopic thinning (spec §4.4.1): a static heap seeded
// from the entire foreground, keyed by distance to background, with no
// neighbor re-insertion. A voxel is deleted iff it is still simple at the
// moment it is popped (checked against the *current*, possibly already
// eroded, skeleton).
//
// Errors: ErrMissingInput if binary is nil; ErrInvalidParameter if
// binary's dimension is not 2 or 3.
func Homotopic(ctx context.Context, binary *voxel.BinaryMask, opts ...HomotopicOption) (*voxel.Skeleton, *Stats, error) {
	if binary == nil {
		return nil, nil, ErrMissingInput
	}
	cfg := HomotopicOptions{MaxDistance: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	strategy, err := strategyForDimension(binary.Dim(), false, nil)
	if err != nil {
		return nil, nil, err
	}

	dist, _, err := distancefield.Build(binary)
	if err != nil {
		return nil, nil, err
	}

	skeleton, err := voxel.NewImage[float32](binary.Size(), binary.Spacing(), binary.Origin())
	if err != nil {
		return nil, nil, err
	}

	var seeds []SeedEntry
	binary.Each(func(p voxel.Index) {
		if binary.At(p) == 0 {
			return
		}
		priority := dist.At(p)
		if priority <= 0 {
			priority = 0
		}
		skeleton.Set(p, 1)
		seeds = append(seeds, SeedEntry{Index: p, Priority: float64(priority)})
	})

	var engine Engine
	stats, err := engine.Run(ctx, skeleton, dist, seeds, strategy, nil, cfg.MaxDistance)
	return skeleton, stats, err
}

func strategyForDimension(dim int, reinsert bool, end func(*voxel.Skeleton, voxel.Index, *voxel.AOFImage) bool) (Strategy, error) {
	switch dim {
	case 2:
		return Strategy{
			Neighbors: topology.Neighbors8,
			IsSimple: func(s *voxel.Skeleton, p voxel.Index) bool {
				return topology.IsSimple2D(s, p)
			},
			IsEnd:    end,
			Reinsert: reinsert,
		}, nil
	case 3:
		return Strategy{
			Neighbors: topology.Neighbors26,
			IsSimple: func(s *voxel.Skeleton, p voxel.Index) bool {
				return topology.IsSimple(s, p)
			},
			IsEnd:    end,
			Reinsert: reinsert,
		}, nil
	default:
		return Strategy{}, ErrInvalidParameter
	}
}

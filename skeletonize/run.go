package skeletonize

import (
	"context"
	"errors"
	"fmt"

	"github.com/skeltools/skeltools/aof"
	"github.com/skeltools/skeltools/distancefield"
	"github.com/skeltools/skeltools/endcriteria"
	"github.com/skeltools/skeltools/thinning"
	"github.com/skeltools/skeltools/voxel"
)

// BuildDistanceAndSpokes is the conceptual build_distance_and_spokes entry
// point from spec §6.
func BuildDistanceAndSpokes(binary *voxel.BinaryMask) (*voxel.DistanceMap, *voxel.SpokeField, error) {
	if binary == nil {
		return nil, nil, ErrMissingInput
	}
	dist, spokes, err := distancefield.Build(binary)
	if err != nil {
		return nil, nil, fmt.Errorf("BuildDistanceAndSpokes: %w", err)
	}
	return dist, spokes, nil
}

// ComputeAOF is the conceptual compute_aof entry point from spec §6.
func ComputeAOF(binary *voxel.BinaryMask, spokes *voxel.SpokeField, dist *voxel.DistanceMap, seed int64, nDirs int) (*voxel.AOFImage, error) {
	var opts []aof.Option
	if nDirs > 0 {
		opts = append(opts, aof.WithDirectionCount(nDirs))
	}
	opts = append(opts, aof.WithSeed(seed))
	out, err := aof.Compute(spokes, binary, dist, opts...)
	if err != nil {
		return nil, fmt.Errorf("ComputeAOF: %w", err)
	}
	return out, nil
}

// ThinHomotopic is the conceptual thin_homotopic entry point from spec §6.
func ThinHomotopic(ctx context.Context, binary *voxel.BinaryMask, maxIterations float64) (*voxel.Skeleton, error) {
	if binary == nil {
		return nil, ErrMissingInput
	}
	var opts []thinning.HomotopicOption
	if maxIterations > 0 {
		opts = append(opts, thinning.WithMaxDistance(maxIterations))
	}
	skeleton, _, err := thinning.Homotopic(ctx, binary, opts...)
	if err != nil {
		if errors.Is(err, thinning.ErrCancelled) {
			return skeleton, fmt.Errorf("ThinHomotopic: %w", err)
		}
		return nil, fmt.Errorf("ThinHomotopic: %w", err)
	}
	return skeleton, nil
}

// Run is the conceptual skeletonize entry point from spec §6: binds
// options to a concrete end criterion and anchor source, builds the
// distance/spoke/AOF pipeline as needed, and runs ordered skeletonization.
//
// Pipeline order (spec §2): binary mask → distance & spoke → (AOF, only
// for anchored EndKinds) → thinning core → thin image.
func Run(ctx context.Context, binary *voxel.BinaryMask, opts ...Option) (*voxel.Skeleton, error) {
	if binary == nil {
		return nil, ErrMissingInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist, spokes, err := distancefield.Build(binary)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	var aofImage *voxel.AOFImage
	var endFn endcriteria.Func
	anchored := cfg.EndKind == CurveAofAnchored || cfg.EndKind == SurfaceAofAnchored

	if anchored {
		aofImage, err = aof.Compute(spokes, binary, dist, aof.WithSeed(cfg.AOFSeed))
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	threshold := cfg.AOFThreshold
	switch cfg.EndKind {
	case CurveNone:
		endFn = endcriteria.Curve()
	case SurfaceNone:
		endFn = endcriteria.Surface()
	case CurveAofAnchored:
		if !cfg.AOFThresholdSet {
			threshold = endcriteria.DefaultCurveThreshold
		}
		endFn = endcriteria.AOFAnchoredCurve(threshold)
	case SurfaceAofAnchored:
		if !cfg.AOFThresholdSet {
			threshold = endcriteria.DefaultSurfaceThreshold
		}
		endFn = endcriteria.AOFAnchoredSurface(threshold)
	default:
		return nil, ErrInvalidParameter
	}

	skeleton, _, err := thinning.Ordered(ctx, binary, dist, thinning.OrderedOptions{
		End:            endFn,
		AOF:            aofImage,
		RadiusWeighted: cfg.RadiusWeighted,
		Quick:          cfg.Quick,
	})
	if err != nil {
		if errors.Is(err, thinning.ErrCancelled) {
			return skeleton, fmt.Errorf("Run: %w", err)
		}
		return nil, fmt.Errorf("Run: %w", err)
	}
	return skeleton, nil
}

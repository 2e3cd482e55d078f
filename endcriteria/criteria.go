package endcriteria

import (
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// Default AOF-anchor thresholds, per spec §6's options table (and
// confirmed against the reference's per-variant constructor defaults:
// curve -30, surface 0).
const (
	DefaultCurveThreshold   = -30.0
	DefaultSurfaceThreshold = 0.0
)

// Func is the end-criterion strategy signature: E(S, p, A) from spec
// §4.4.2. aof may be nil for the non-anchored variants.
type Func func(skeleton *voxel.Skeleton, p voxel.Index, aof *voxel.AOFImage) bool

// Curve is the medial-curve end criterion: is_end_curve(S, p).
func Curve() Func {
	return func(skeleton *voxel.Skeleton, p voxel.Index, _ *voxel.AOFImage) bool {
		return topology.IsEndCurve(skeleton, p)
	}
}

// Surface is the medial-surface end criterion: is_end_surface(S, p).
func Surface() Func {
	return func(skeleton *voxel.Skeleton, p voxel.Index, _ *voxel.AOFImage) bool {
		return topology.IsEndSurface(skeleton, p)
	}
}

// AOFAnchoredCurve anchors the curve criterion with the AOF field:
// is_end_curve(S, p) ∧ A(p) < threshold.
func AOFAnchoredCurve(threshold float64) Func {
	return func(skeleton *voxel.Skeleton, p voxel.Index, aof *voxel.AOFImage) bool {
		return topology.IsEndCurve(skeleton, p) && float64(aof.At(p)) < threshold
	}
}

// AOFAnchoredSurface anchors the surface criterion with the AOF field:
// is_end_surface(S, p) ∧ A(p) < threshold.
func AOFAnchoredSurface(threshold float64) Func {
	return func(skeleton *voxel.Skeleton, p voxel.Index, aof *voxel.AOFImage) bool {
		return topology.IsEndSurface(skeleton, p) && float64(aof.At(p)) < threshold
	}
}

// SeedFunc decides whether a voxel belongs in the initial seed mask before
// the main thinning loop begins; used by the AOF-anchored "quick" mode
// (spec §4.4.2 step 3 of Initialization), grounded on
// itkAOFAnchoredSkeletonImageFilterBase's seeding predicate
// `dit.Get() > 0 && (!quick || (quick && aofIt.Get() < 0))`.
type SeedFunc func(distance float64, aof float64) bool

// QuickSeed returns the AOF-anchored quick-mode seed predicate: when quick
// is true, only voxels with AOF < 0 seed the mask in addition to being
// foreground; when false, every foreground voxel seeds it.
func QuickSeed(quick bool) SeedFunc {
	return func(distance float64, aof float64) bool {
		if distance <= 0 {
			return false
		}
		if quick {
			return aof < 0
		}
		return true
	}
}

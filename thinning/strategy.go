package thinning

import (
	"github.com/skeltools/skeltools/endcriteria"
	"github.com/skeltools/skeltools/voxel"
)

// Strategy is the strategy record consumed by Engine.Run: three pure
// predicates over (skeleton, voxel) plus the neighbor set to re-examine
// after a deletion. Concrete strategies (homotopic 2D/3D, ordered
// curve/surface/AOF-anchored) are plain values built by this package's
// constructors — per spec §9's mandated replacement for a filter class
// hierarchy.
type Strategy struct {
	// Neighbors is the connectivity used both for re-queue examination and
	// (indirectly, via IsSimple's own internal use of topology tables) for
	// the simple-point test: Neighbors26 for 3D, Neighbors8 for 2D.
	Neighbors []voxel.Offset

	// IsSimple reports whether removing p would preserve digital topology.
	IsSimple func(skeleton *voxel.Skeleton, p voxel.Index) bool

	// IsEnd is the pluggable end criterion (spec §4.4.2); nil for the
	// homotopic variant, which has no end criterion beyond "is simple".
	IsEnd endcriteria.Func

	// Reinsert selects ordered skeletonization's re-insertion behavior
	// (true) versus homotopic thinning's static single-pass heap (false).
	Reinsert bool
}

package aof

import (
	"math"

	"github.com/skeltools/skeltools/voxel"
)

// Compute derives the AOF scalar field from a spoke field, per spec §4.3.
//
// Sign convention note: per distancefield's pinned convention (interior
// positive), "strictly interior" here means distance(p) greater than
// InteriorMultiplier*min_spacing — the semantic opposite-looking but
// equivalent reading of the reference's own inverted-sign internal
// distance field (see distancefield's package doc and DESIGN.md).
//
// Complexity: O(V·N·D) where V is voxel count, N the direction count.
//
// Errors: ErrMissingInput if any argument is nil; ErrShapeMismatch if
// spokes, mask, and dist disagree in extent.
func Compute(spokes *voxel.SpokeField, mask *voxel.BinaryMask, dist *voxel.DistanceMap, opts ...Option) (*voxel.AOFImage, error) {
	if spokes == nil || mask == nil || dist == nil {
		return nil, ErrMissingInput
	}
	if !voxel.SameShape(spokes, mask) || !voxel.SameShape(spokes, dist) {
		return nil, ErrShapeMismatch
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dim := spokes.Dim()
	directions := GenerateDirections(cfg.DirectionCount, dim, cfg.Seed)

	spacing := mask.Spacing()
	minSpacing := spacing[0]
	for _, s := range spacing[1:] {
		if s < minSpacing {
			minSpacing = s
		}
	}
	interiorCutoff := cfg.InteriorMultiplier * minSpacing

	out, err := voxel.NewImage[float32](mask.Size(), spacing, mask.Origin())
	if err != nil {
		return nil, err
	}

	mask.Each(func(p voxel.Index) {
		if float64(dist.At(p)) <= interiorCutoff {
			out.Set(p, 0)
			return
		}
		var f float64
		for _, u := range directions {
			q := make(voxel.Index, dim)
			for d := 0; d < dim; d++ {
				q[d] = int(math.Floor(float64(p[d]) + u[d] + 0.5))
			}
			spokeAtQ := spokes.At(q)
			if spokeAtQ == nil {
				spokeAtQ = make(voxel.Vector, dim)
			}
			spokeVector := make(voxel.Vector, dim)
			for d := 0; d < dim; d++ {
				boundaryCoord := float64(p[d]) + spokeAtQ[d]
				spokeVector[d] = boundaryCoord - (float64(p[d]) + u[d] + 0.5)
			}
			spokeVector = spokeVector.Normalize()
			f -= spokeVector.Dot(u)
		}
		out.Set(p, float32(f))
	})

	return out, nil
}

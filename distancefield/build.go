package distancefield

import (
	"math"

	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// Build computes the signed distance map and spoke field for a binary
// mask, per spec §4.2.
//
// Complexity: O(V·B) where V is the voxel count and B the boundary voxel
// count (see package doc for the tradeoff this implies).
//
// Errors: ErrMissingInput if mask is nil; ErrInvalidParameter if any
// spacing component is non-positive (defensive — voxel.NewImage already
// forbids constructing such an image, but Build re-validates at its own
// boundary per spec §4.2's stated failure contract).
func Build(mask *voxel.BinaryMask, opts ...Option) (*voxel.DistanceMap, *voxel.SpokeField, error) {
	if mask == nil {
		return nil, nil, ErrMissingInput
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	spacing := mask.Spacing()
	maxSpacing := 0.0
	for _, s := range spacing {
		if s <= 0 {
			return nil, nil, ErrInvalidParameter
		}
		if s > maxSpacing {
			maxSpacing = s
		}
	}
	suppressionDist := cfg.SuppressionRadius * maxSpacing

	dims := mask.Size()
	boundary := collectBoundary(mask)

	dist, err := voxel.NewImage[float32](dims, spacing, mask.Origin())
	if err != nil {
		return nil, nil, err
	}
	spokes, err := voxel.NewImage[voxel.Vector](dims, spacing, mask.Origin())
	if err != nil {
		return nil, nil, err
	}

	mask.Each(func(p voxel.Index) {
		nearest, physDist := nearestBoundary(p, boundary, spacing)
		signed := physDist
		if mask.At(p) == 0 {
			signed = -physDist
		}
		dist.Set(p, float32(signed))

		spoke := make(voxel.Vector, len(p))
		if math.Abs(signed) >= suppressionDist && nearest != nil {
			off := nearest.Sub(p)
			for d := range off {
				spoke[d] = float64(off[d])
			}
		}
		spokes.Set(p, spoke)
	})

	return dist, spokes, nil
}

func collectBoundary(mask *voxel.BinaryMask) []voxel.Index {
	var boundary []voxel.Index
	mask.Each(func(p voxel.Index) {
		if topology.IsBoundary(mask, p) {
			boundary = append(boundary, p.Clone())
		}
	})
	return boundary
}

// nearestBoundary returns the closest boundary voxel to p (by physical
// distance, honoring per-axis spacing) and that distance. Returns a nil
// index and +Inf if boundary is empty (uniformly foreground-or-background
// image with a degenerate configuration).
func nearestBoundary(p voxel.Index, boundary []voxel.Index, spacing []float64) (voxel.Index, float64) {
	best := math.Inf(1)
	var bestIdx voxel.Index
	for _, q := range boundary {
		d := 0.0
		for axis := range p {
			delta := float64(p[axis]-q[axis]) * spacing[axis]
			d += delta * delta
		}
		d = math.Sqrt(d)
		if d < best {
			best = d
			bestIdx = q
		}
	}
	return bestIdx, best
}

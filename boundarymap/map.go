package boundarymap

import (
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// Map assigns each boundary voxel of shape the value of its nearest
// skeleton voxel in physical coordinates (spacing-aware); non-boundary
// voxels are written 0.
//
// Complexity: building the k-d tree over the skeleton's S foreground voxels
// insertion-sorts each node's points, so O(S²) in the worst case; then
// O(log S) average per boundary voxel query.
//
// Errors: ErrMissingInput if shape or skeleton is nil; ErrShapeMismatch if
// they disagree in extent.
func Map(shape *voxel.BinaryMask, skeleton *voxel.Skeleton) (*voxel.Image[float32], error) {
	if shape == nil || skeleton == nil {
		return nil, ErrMissingInput
	}
	if !voxel.SameShape(shape, skeleton) {
		return nil, ErrShapeMismatch
	}

	dim := shape.Dim()
	spacing := shape.Spacing()
	origin := shape.Origin()

	var pts []point
	skeleton.Each(func(idx voxel.Index) {
		v := skeleton.At(idx)
		if v <= 0 {
			return
		}
		pts = append(pts, point{coord: physicalCoord(idx, spacing, origin), value: v})
	})

	out, err := voxel.NewImage[float32](shape.Size(), spacing, origin)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return out, nil
	}
	tree := buildKDTree(pts, dim)

	shape.Each(func(idx voxel.Index) {
		if !topology.IsBoundary(shape, idx) {
			return
		}
		q := physicalCoord(idx, spacing, origin)
		if nearest, ok := tree.nearest(q); ok {
			out.Set(idx, nearest.value)
		}
	})
	return out, nil
}

func physicalCoord(idx voxel.Index, spacing, origin []float64) []float64 {
	out := make([]float64, len(idx))
	for d, c := range idx {
		out[d] = origin[d] + float64(c)*spacing[d]
	}
	return out
}

package voxel

// BinaryMask is Image<u8, D> with values in {0, 1}; foreground = non-zero.
type BinaryMask = Image[uint8]

// DistanceMap is Image<f32, D>, signed such that interior > 0.
type DistanceMap = Image[float32]

// SpokeField is Image<Vector<D>, D>: at voxel p the value is the
// displacement to the nearest boundary voxel (zeroed near the boundary).
type SpokeField = Image[Vector]

// AOFImage is Image<f32, D>; negative values mark medial-likely voxels.
type AOFImage = Image[float32]

// Skeleton is Image<f32, D>; foreground > 0. Unweighted skeletons store 1
// at every surviving voxel; radius-weighted skeletons store the seeded
// priority value instead.
type Skeleton = Image[float32]

// Queued is Image<u8, D>: 1 = voxel currently resides in the thinning
// priority queue, 0 = it does not.
type Queued = Image[uint8]

// NewBinaryMask allocates a zero-valued BinaryMask of the given size/spacing/origin.
func NewBinaryMask(dims []int, spacing, origin []float64) (*BinaryMask, error) {
	return NewImage[uint8](dims, spacing, origin)
}

// IsForeground reports whether a mask value counts as foreground.
func IsForeground(v uint8) bool { return v != 0 }

// Package voxel defines the dense image data model shared by every stage of
// the skeletonization pipeline: Index/Offset/Vector tuples, the generic
// Image grid, and the typed aliases (BinaryMask, DistanceMap, SpokeField,
// AOFImage, Skeleton, Queued) that later packages build on.
//
// Design:
//
//   - Images are dimension-generic (D = 2 or 3) but are not parametrized at
//     the type level over D; Index/Offset/Vector are plain []int / []float64
//     tuples whose length *is* D. Callers are expected to keep lengths
//     consistent; constructors validate this once at creation time.
//   - All images are row-major, strided, owned values: no image holds a
//     pointer into another image's backing array. Stages that transform an
//     image always allocate a fresh one.
//   - Out-of-bounds reads return a configured boundary constant (default the
//     zero value of T) rather than panicking or erroring.
//
// Complexity: Image access is O(1); NewImage is O(size).
package voxel

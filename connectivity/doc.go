// Package connectivity implements the local-connectivity auxiliary from
// spec §4.5: for each foreground voxel of a thin image, the count of
// foreground voxels reachable by a level-capped 26-/8-connected BFS.
//
// Grounded on itkLocalConnectivityImageFilter.hxx's level-capped BFS over
// a linear-index visited set, adapted here to a visited map keyed by
// voxel.Index since Go images are not linearly addressable outside the
// voxel package itself.
package connectivity

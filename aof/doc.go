// Package aof computes the Average Outward Flux scalar field from a spoke
// field, per spec §4.3: for each sufficiently interior voxel, the negated
// sum (not divided by N) over N quasi-uniform directions of the spoke
// dotted against that direction. Large negative values concentrate on medial
// (skeleton-like) voxels.
//
// Direction generation follows the reference's Coulomb-repulsion
// relaxation: the first direction is fixed at (1,0,...,0); the rest start
// as i.i.d. uniform random points on the unit sphere (seeded, so runs are
// reproducible) and are relaxed for 50 passes of pairwise inverse-square
// repulsion followed by renormalization.
package aof

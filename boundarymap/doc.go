// Package boundarymap implements the map-to-boundary auxiliary from spec
// §4.6: given a binary shape and a (typically thickness-weighted) skeleton,
// assign each boundary voxel of the shape the value of its nearest
// skeleton voxel in physical coordinates.
//
// Grounded on itkMapToBoundaryImageFilter.hxx's k-d tree construction over
// skeleton foreground voxels (bucket size 16); no example repo in the pack
// imports a k-d tree library, so this package carries a small
// package-local one (documented in DESIGN.md as a stdlib-adjacent
// exception, not a fabricated dependency).
package boundarymap

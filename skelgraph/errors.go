package skelgraph

import "errors"

var (
	// ErrMissingInput indicates a nil skeleton was passed to BuildMedialGraph.
	ErrMissingInput = errors.New("skelgraph: skeleton is nil")

	// ErrEmptySkeleton indicates the skeleton has no foreground voxels.
	ErrEmptySkeleton = errors.New("skelgraph: skeleton has no surviving voxels")

	// ErrUnknownVertex indicates a voxel index not present in the graph.
	ErrUnknownVertex = errors.New("skelgraph: unknown vertex")
)

// Package tour finds a closed visiting order over a skeleton's endpoint
// voxels (its curve tips / surface rim points), useful for inspection
// paths or stroke-order reconstruction over a thinned shape.
//
// It reduces the problem to a small metric TSP instance: geodesic
// (along-skeleton) distances between endpoints, closed under Floyd–
// Warshall via skelgraph.AllPairsGeodesics, handed to tsp.SolveWithMatrix.
package tour

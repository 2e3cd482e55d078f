// Package skeltools turns binary voxel masks into curve or surface
// skeletons and exposes the resulting medial structure as an ordinary
// weighted graph.
//
// 🦴 What is skeltools?
//
//	A thread-safe, zero-cgo toolkit that brings together:
//
//	  • Digital topology: simple-point and end-point classification over
//	    18-/26-neighborhoods (topology/)
//	  • Signed distance fields and spoke vectors (distancefield/)
//	  • Average outward flux for robust end-point anchoring (aof/)
//	  • A single priority-queue thinning engine covering both homotopic
//	    and AOF-ordered skeletonization (thinning/, endcriteria/)
//	  • Post-processing: local connectivity, nearest-boundary maps, and
//	    medial-graph analysis (connectivity/, boundarymap/, skelgraph/)
//
// ✨ Why choose skeltools?
//
//   - Pluggable    — thinning strategies and end criteria are swapped via
//     small function-valued records, not a class hierarchy
//   - Inspectable  — every stage (distance, spokes, AOF, skeleton) is a
//     plain voxel.Image you can dump or compare
//   - Graph-native — skelgraph converts a finished skeleton into a
//     core.Graph so BFS/DFS/Dijkstra/Prim/Floyd–Warshall apply directly
//
// Subpackages:
//
//	voxel/         — generic strided image type and domain aliases
//	topology/      — neighbor tables, topological numbers, point labels
//	distancefield/ — signed distance transform + spoke field
//	aof/           — average outward flux
//	endcriteria/   — pluggable curve/surface end-point predicates
//	thinning/      — the shared priority-queue thinning engine
//	connectivity/  — local connectivity labeling
//	boundarymap/   — nearest-boundary propagation via k-d tree
//	skeletonize/   — façade binding options to the full pipeline
//	shapes/        — synthetic binary-mask fixtures for testing
//	skelgraph/     — medial graph + standard graph analyses
//	tour/          — endpoint visiting order via TSP over geodesics
//	core/, bfs/, dijkstra/, dfs/, prim_kruskal/, matrix/, tsp/ —
//	the underlying graph library skelgraph and tour build on
package skeltools

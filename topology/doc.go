// Package topology implements the digital-topology decision procedures used
// by the thinning core: simple-point, end-point, and boundary-point tests
// over 26-/18-/6-connectivity in 3D and 8-/4-connectivity in 2D, including
// the topological numbers C̄ (background components in the 18-neighborhood,
// 6-connected) and C* (foreground components in the 26-neighborhood,
// 26-connected).
//
// Every predicate here is a pure function of a small (3^D-cell)
// neighborhood: none of them mutate the image they inspect, none of them
// can fail, and out-of-bounds reads use the image's configured boundary
// value (background, by convention).
//
// The neighbor offset tables and their restricted adjacency graphs
// (Neighbors18, Neighbors26, Neighbors8, Graph18, Graph26, N6) are
// package-level tables; init shifts Graph18 and Graph26 to 0-based indices
// once, and nothing changes them afterwards. A deep template hierarchy in
// the source material becomes plain data plus pure functions here.
package topology

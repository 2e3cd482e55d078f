// Package shapes generates the synthetic binary-mask fixtures named by
// spec §8's seed scenarios (filled square, hollow ring, solid cube,
// cylinder, torus, T-shape) plus parametrized families for broader
// coverage.
//
// Dispatcher pattern adapted from builder.BuildGraph: a Constructor
// mutates a mask in place; Build resolves a fresh mask and applies
// constructors in order, wrapping any error with its call-site index —
// generalized here from graph construction to voxel-image construction.
package shapes

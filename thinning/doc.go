// Package thinning implements the priority-queue-driven thinning core
// (spec §4.4): a single driver, Engine, owns the mutable skeleton and
// queue state; the two concrete shapes described in spec.md — homotopic
// thinning (static heap, no re-insertion) and ordered skeletonization
// (with re-insertion and a pluggable end criterion) — are built by calling
// Engine.Run with different Strategy values and seed sets, rather than by
// a class hierarchy of filters.
//
// Cancellation: Run accepts a context.Context and checks it at the top of
// the main loop (spec §5's "stop-before-start-of-next-pop"); on
// cancellation the partial skeleton is returned alongside ErrCancelled,
// never discarded.
package thinning

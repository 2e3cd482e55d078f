// Package tsp defines common types, configuration options, and sentinel errors used by
// exact and approximate Traveling Salesman Problem (TSP) solvers.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for tours.
//   - Extensibility: a single Options struct covers both exact and heuristic solvers.
//   - Determinism: all random-driven heuristics are controlled by a Seed.
//   - Zero surprises: sensible defaults (Christofides + optional 2-Opt post-pass).
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility, algorithm governance)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for a symmetric-TSP solver.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists
	// (one or more edges missing, represented by math.Inf(1)).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no Hamiltonian cycle possible)")

	// ErrDimensionMismatch indicates an unexpected matrix/DP shape in exact algorithms.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMatchingNotImplemented is returned by BlossomMatch when a true minimum-weight
	// perfect matching is not available (fallbacks may be applied by the caller).
	ErrMatchingNotImplemented = errors.New("tsp: blossom matching not implemented")

	// Deprecated: ErrBadInput is kept for legacy callers; do not use in new code.
	ErrBadInput = errors.New("tsp: invalid input")
)

// Planner/engine governance sentinels.
var (
	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTimeLimit indicates a user-specified time budget was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrATSPNotSupportedByAlgo signals that the chosen algorithm handles only symmetric TSP.
	ErrATSPNotSupportedByAlgo = errors.New("tsp: algorithm does not support ATSP")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Matching & bounding enums used by Christofides/BB
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// MatchingAlgo selects the perfect matching strategy on odd-degree vertices in Christofides.
type MatchingAlgo int

const (
	// GreedyMatch pairs odd-degree vertices by nearest neighbor (fast; weaker bound).
	GreedyMatch MatchingAlgo = iota

	// BlossomMatch uses Edmonds’ blossom algorithm for true minimum-weight matching
	// (restores the 1.5× guarantee on metric TSP when implemented).
	BlossomMatch
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// High-level algorithm selector
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Algorithm enumerates top-level TSP strategies supported by the dispatcher.
// Christofides is the sole entry point: tour-finding over a geodesic
// distance matrix has exactly one caller (tour.Solve), so the dispatcher
// carries only the path that caller exercises.
type Algorithm int

const (
	// Christofides: 1.5-approx for metric symmetric TSP (MST + perfect matching + Euler + shortcut).
	Christofides Algorithm = iota
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TSResult encapsulates the output of a TSP solver.
type TSResult struct {
	// Tour is an ordered sequence of vertex indices representing the Hamiltonian cycle.
	// Invariants:
	//   len(Tour) == n + 1
	//   Tour[0] == Tour[n] == StartVertex
	//   each vertex in [0..n-1] appears exactly once in Tour[0:n]
	Tour []int

	// Cost is the total distance along the cycle, computed from the provided distance matrix.
	Cost float64
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs
const (
	// DefaultEps is the minimal strictly-better improvement for local search steps.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted 2-opt/3-opt moves.
	DefaultTwoOptMaxIters = 10_000
)

// Options defines configurable parameters for TSP solvers.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// Algo selects the top-level algorithm (dispatcher). Default: Christofides.
	Algo Algorithm

	// Symmetric controls matrix validation:
	//   true  → require dist[i][j] == dist[j][i] (TSP),
	//   false → allow asymmetry (ATSP) for algorithms that support it.
	// Default: true.
	Symmetric bool

	// MatchingAlgo chooses between GreedyMatch or BlossomMatch in Christofides.
	MatchingAlgo MatchingAlgo

	// RunMetricClosure, if true, lets +Inf off-diagonal entries pass validation, and
	// SolveWithGraph builds its matrix with metric closure (shortest paths in place of
	// +Inf). SolveWithMatrix does not run a closure on the matrix it is given.
	RunMetricClosure bool

	// EnableLocalSearch applies a post-pass 2-opt (and later 3-opt) when supported.
	// Default: true (for Christofides and seed tours).
	EnableLocalSearch bool

	// TwoOptMaxIters bounds the total number of accepted moves in local search
	// (applies to both 2-opt and 3-opt). Zero ⇒ unlimited. Default: 10_000.
	TwoOptMaxIters int

	// BestImprovement, if true: 3-opt uses the best-improvement policy (else first-improvement),
	// and SolveWithMatrix adds the 3-opt pass. 2-opt always uses first-improvement.
	BestImprovement bool

	// ShuffleNeighborhood, if true: randomize candidate order using Seed; if false: canonical order
	ShuffleNeighborhood bool

	// Eps is the minimal improvement considered significant in local search comparisons.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time for long-running heuristics/search.
	// Zero means “no limit”.
	TimeLimit time.Duration

	// Seed controls deterministic behavior of randomized components (seeded RNG).
	// Default: 0 (fixed seed → deterministic).
	Seed int64
}

// DefaultOptions returns a fully populated Options struct with safe, production-ready defaults:
//   - Start at vertex 0
//   - Christofides (metric symmetric), Blossom matching (fallback allowed)
//   - No metric closure by default
//   - Local search enabled (2-opt) with conservative iteration cap
//   - Symmetric matrix required
//   - Deterministic RNG (Seed=0), no time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:       0,
		Algo:              Christofides,
		Symmetric:         true,
		MatchingAlgo:      BlossomMatch,
		RunMetricClosure:  false,
		EnableLocalSearch: true,
		TwoOptMaxIters:    DefaultTwoOptMaxIters,
		Eps:               DefaultEps,
		TimeLimit:         0,
		Seed:              0,
	}
}

// Package tsp provides a Travelling Salesman Problem (TSP) solver over distance
// matrices with a consistent API, strict sentinel errors, deterministic
// behavior, and stable cost rounding (1e-9). The package exposes a single
// dispatcher that runs the Christofides approximation with optional
// local-search refinement.
//
// # What & Why
//
// Given an n×n distance matrix dist, tsp computes a Hamiltonian cycle (tour)
// visiting all vertices once and returning to the start.
//
//   - Approximation (symmetric metric): Christofides 1.5-approx (Christofides).
//   - Local search: deterministic 2-opt / 3-opt post-passes (TwoOpt, ThreeOpt),
//     usable standalone or via the dispatcher's post-processing step.
//
// # Algorithms & Complexity
//
//	Christofides (1.5-approx) — symmetric metric TSP only
//	  Pipeline: MST → minimum perfect matching (Blossom when available; else Greedy) →
//	            Eulerian circuit → shortcut to tour.
//	  Time:   typically O(n²) on dense metric instances.
//
//	TwoOpt / ThreeOpt (local search) — TSP and ATSP
//	  2-opt (TSP): segment reversal; Δ = (a→c)+(b→d)−(a→b)−(c→d).
//	  2-opt* (ATSP): tail swap without reversals.
//	  3-opt: 7 reconnections (TSP) / 3-opt* (ATSP).
//	  2-opt: first-improvement in a fixed scan order.
//	  3-opt: first/best-improvement, optional shuffled enumeration via Seed.
//
// # Determinism & Stability
//
//   - No time-based randomness. Any randomized scan uses Seed; Seed==0 gives fixed stream.
//   - Tie-breaks use indices. Costs are rounded to 1e-9 (round1e9) to avoid FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start vertex.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2.  Diagonal ≈ 0 (|a_ii| ≤ 1e-12).  No negatives.
//	NaN is invalid.  +Inf denotes “missing edge” (allowed in most solvers; see below).
//
//	Symmetry (dist[i][j]==dist[j][i]) is required when:
//	  • opts.Algo == Christofides (the only routed algorithm)
//	  • or opts.Symmetric == true (explicit user request)
//
//	If opts.RunMetricClosure==false the validator rejects +Inf off-diagonal entries.
//	Otherwise, matrix-level metric closure (e.g., Floyd–Warshall) may be applied upstream.
//
// # Options
//
//	type Options struct {
//	    StartVertex int           // start/end vertex [0..n-1] (default 0)
//	    Algo        Algorithm     // Christofides (the sole entry)
//	    Symmetric   bool          // require symmetry where needed (true by default)
//	    MatchingAlgo MatchingAlgo // Christofides: GreedyMatch or BlossomMatch (fallback to Greedy on sentinel)
//	    RunMetricClosure bool     // allow solving partially connected graphs via closure
//	    EnableLocalSearch bool    // run 2-opt (and 3-opt) post-passes where applicable
//	    TwoOptMaxIters int        // cap accepted moves (0=unlimited)
//	    BestImprovement bool      // LS policy: best vs first improvement
//	    ShuffleNeighborhood bool  // shuffle candidate order (deterministic via Seed)
//	    Eps         float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit   time.Duration // soft wall-clock budget (0=none)
//	    Seed        int64         // deterministic RNG seed (0=stable default)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrMatchingNotImplemented, ErrUnsupportedAlgorithm, ErrTimeLimit,
//	ErrATSPNotSupportedByAlgo.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int    // len==n+1, Tour[0]==Tour[n]==StartVertex, each 0..n-1 appears once
//	    Cost float64  // rounded to 1e-9
//	}
//
// # Mathematics (references)
//
//	2-opt Δ:  (a→c)+(b→d)−(a→b)−(c→d)
//	Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp

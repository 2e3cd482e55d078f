package tour

import (
	"fmt"

	"github.com/skeltools/skeltools/matrix"
	"github.com/skeltools/skeltools/skelgraph"
	"github.com/skeltools/skeltools/tsp"
)

// Endpoints returns the IDs of every degree-1 vertex in the medial graph —
// the skeleton's curve tips or surface rim points.
func Endpoints(sg *skelgraph.Graph) ([]string, error) {
	var ids []string
	for _, id := range sg.G.Vertices() {
		_, _, undirected, err := sg.G.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("Endpoints: %w", err)
		}
		if undirected == 1 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Result reports the closed visiting order (as skeleton vertex IDs) and
// its total geodesic length.
type Result struct {
	Order []string
	Cost  float64
}

// Solve computes a closed tour over endpointIDs using geodesic (along-
// skeleton) distances, closed under Floyd–Warshall via
// skelgraph.AllPairsGeodesics, and dispatched to tsp.SolveWithMatrix.
func Solve(sg *skelgraph.Graph, endpointIDs []string, opts tsp.Options) (*Result, error) {
	if len(endpointIDs) < 2 {
		return nil, ErrTooFewEndpoints
	}

	allIDs, dist, err := skelgraph.AllPairsGeodesics(sg)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	index := make(map[string]int, len(allIDs))
	for i, id := range allIDs {
		index[id] = i
	}

	n := len(endpointIDs)
	sub, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	for i, a := range endpointIDs {
		ai, ok := index[a]
		if !ok {
			return nil, fmt.Errorf("Solve: %s: %w", a, ErrUnknownEndpoint)
		}
		for j, b := range endpointIDs {
			bi, ok := index[b]
			if !ok {
				return nil, fmt.Errorf("Solve: %s: %w", b, ErrUnknownEndpoint)
			}
			if i == j {
				continue
			}
			if err := sub.Set(i, j, dist[ai][bi]); err != nil {
				return nil, fmt.Errorf("Solve: %w", err)
			}
		}
	}

	res, err := tsp.SolveWithMatrix(sub, endpointIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	order := make([]string, len(res.Tour))
	for i, idx := range res.Tour {
		order[i] = endpointIDs[idx]
	}
	return &Result{Order: order, Cost: res.Cost}, nil
}

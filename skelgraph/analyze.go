package skelgraph

import (
	"fmt"
	"math"

	"github.com/skeltools/skeltools/bfs"
	"github.com/skeltools/skeltools/dfs"
	"github.com/skeltools/skeltools/dijkstra"
	"github.com/skeltools/skeltools/matrix"
	"github.com/skeltools/skeltools/matrix/ops"
	"github.com/skeltools/skeltools/prim_kruskal"
)

// Components labels each vertex with its connected-component index,
// wrapping bfs.BFS once per unvisited vertex. Branch/junction counting
// over a disconnected medial graph (multiple skeleton fragments) relies
// on this partition.
func Components(sg *Graph) (map[string]int, error) {
	labels := make(map[string]int)
	label := 0
	for _, id := range sg.G.Vertices() {
		if _, done := labels[id]; done {
			continue
		}
		result, err := bfs.BFS(sg.G, id)
		if err != nil {
			return nil, fmt.Errorf("Components: %w", err)
		}
		for _, v := range result.Order {
			labels[v] = label
		}
		label++
	}
	return labels, nil
}

// LoopCount reports the number of distinct simple cycles that
// dfs.DetectCycles finds in the medial graph. This equals the number of
// independent cycles (the skeleton's Betti-1 number) only when no two of
// those cycles share an edge.
func LoopCount(sg *Graph) (int, error) {
	hasCycle, cycles, err := dfs.DetectCycles(sg.G)
	if err != nil {
		return 0, fmt.Errorf("LoopCount: %w", err)
	}
	if !hasCycle {
		return 0, nil
	}
	return len(cycles), nil
}

// GeodesicDistance returns the along-skeleton shortest-path distance (in
// physical units) from srcID to every reachable vertex, via
// dijkstra.Dijkstra over the medial graph's integer edge weights.
func GeodesicDistance(sg *Graph, srcID string) (map[string]float64, error) {
	raw, _, err := dijkstra.Dijkstra(sg.G, dijkstra.Source(srcID))
	if err != nil {
		return nil, fmt.Errorf("GeodesicDistance: %w", err)
	}
	out := make(map[string]float64, len(raw))
	for id, d := range raw {
		out[id] = float64(d) / weightScale
	}
	return out, nil
}

// MST prunes the medial graph to its minimum spanning tree rooted at
// rootID, via prim_kruskal.Prim. It drops the edges that close cycles;
// every vertex stays in the tree, so no branch is removed.
func MST(sg *Graph, rootID string) ([]*EdgeView, float64, error) {
	edges, total, err := prim_kruskal.Prim(sg.G, rootID)
	if err != nil {
		return nil, 0, fmt.Errorf("MST: %w", err)
	}
	views := make([]*EdgeView, len(edges))
	for i := range edges {
		views[i] = &EdgeView{From: edges[i].From, To: edges[i].To, Weight: float64(edges[i].Weight) / weightScale}
	}
	return views, float64(total) / weightScale, nil
}

// EdgeView exposes an MST edge with its weight converted back to physical
// units.
type EdgeView struct {
	From, To string
	Weight   float64
}

// AllPairsGeodesics computes the full geodesic distance matrix over the
// medial graph: builds a matrix.Dense adjacency directly (see DESIGN.md
// for why the teacher's AdjacencyMatrix builders are bypassed) and runs
// matrix/ops.FloydWarshall over it in place, returning the vertex order
// alongside the (physical-unit) distances.
func AllPairsGeodesics(sg *Graph) ([]string, [][]float64, error) {
	order := sg.G.Vertices()
	n := len(order)
	index := make(map[string]int, n)
	for i, id := range order {
		index[id] = i
	}

	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("AllPairsGeodesics: %w", err)
	}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := dense.Set(i, j, inf); err != nil {
				return nil, nil, fmt.Errorf("AllPairsGeodesics: %w", err)
			}
		}
	}
	for _, e := range sg.G.Edges() {
		i, j := index[e.From], index[e.To]
		w := float64(e.Weight)
		if cur, _ := dense.At(i, j); w < cur {
			_ = dense.Set(i, j, w)
			_ = dense.Set(j, i, w)
		}
	}

	if err := ops.FloydWarshall(dense); err != nil {
		return nil, nil, fmt.Errorf("AllPairsGeodesics: %w", err)
	}

	result := make([][]float64, n)
	for i := 0; i < n; i++ {
		result[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, _ := dense.At(i, j)
			result[i][j] = v / weightScale
		}
	}
	return order, result, nil
}

package skelgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/skeltools/skeltools/core"
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// weightScale converts a physical Euclidean edge length to the integer
// weight core.Graph expects, preserving three decimal digits of precision.
const weightScale = 1000.0

// Graph wraps a core.Graph built from a skeleton, plus the index<->vertex
// lookups needed to translate between voxel coordinates and vertex IDs.
type Graph struct {
	G         *core.Graph
	indexByID map[string]voxel.Index
	spacing   []float64
}

// VertexID encodes a voxel index as a stable core.Graph vertex ID.
func VertexID(idx voxel.Index) string {
	parts := make([]string, len(idx))
	for d, c := range idx {
		parts[d] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// IndexOf returns the voxel index backing vertex id, if known.
func (sg *Graph) IndexOf(id string) (voxel.Index, error) {
	idx, ok := sg.indexByID[id]
	if !ok {
		return nil, ErrUnknownVertex
	}
	return idx, nil
}

// BuildMedialGraph converts skeleton survivor voxels into a weighted,
// undirected core.Graph: one vertex per foreground voxel, one edge per
// 8-/26-adjacent survivor pair, weighted by the physical Euclidean
// distance between voxel centers (scaled to an integer).
//
// Grounded on builder's BuildGraph dispatcher composition pattern, now
// producing a single graph from a voxel grid instead of layered
// constructors.
func BuildMedialGraph(skeleton *voxel.Skeleton) (*Graph, error) {
	if skeleton == nil {
		return nil, ErrMissingInput
	}
	dim := skeleton.Dim()
	var neighbors []voxel.Offset
	switch dim {
	case 2:
		neighbors = topology.Neighbors8
	case 3:
		neighbors = topology.Neighbors26
	default:
		return nil, fmt.Errorf("BuildMedialGraph: unsupported dimension %d: %w", dim, ErrMissingInput)
	}

	g := core.NewGraph(core.WithWeighted())
	sg := &Graph{G: g, indexByID: make(map[string]voxel.Index), spacing: skeleton.Spacing()}

	count := 0
	skeleton.Each(func(idx voxel.Index) {
		if skeleton.At(idx) == 0 {
			return
		}
		count++
		id := VertexID(idx)
		sg.indexByID[id] = idx
		_ = g.AddVertex(id)
	})
	if count == 0 {
		return nil, ErrEmptySkeleton
	}

	seen := make(map[[2]string]bool)
	skeleton.Each(func(idx voxel.Index) {
		if skeleton.At(idx) == 0 {
			return
		}
		fromID := VertexID(idx)
		for _, off := range neighbors {
			nb := make(voxel.Index, dim)
			for d := 0; d < dim; d++ {
				nb[d] = idx[d] + off[d]
			}
			if !skeleton.InBounds(nb) || skeleton.At(nb) == 0 {
				continue
			}
			toID := VertexID(nb)
			key := edgeKey(fromID, toID)
			if seen[key] {
				continue
			}
			seen[key] = true
			weight := int64(physicalDistance(idx, nb, sg.spacing) * weightScale)
			if _, err := g.AddEdge(fromID, toID, weight); err != nil {
				continue
			}
		}
	})
	return sg, nil
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func physicalDistance(a, b voxel.Index, spacing []float64) float64 {
	var sum float64
	for d := range a {
		dx := float64(a[d]-b[d]) * spacing[d]
		sum += dx * dx
	}
	return math.Sqrt(sum)
}

package connectivity

import (
	"github.com/skeltools/skeltools/topology"
	"github.com/skeltools/skeltools/voxel"
)

// packet pairs a visited index with its BFS hop level, mirroring the
// reference's QPacketType.
type packet struct {
	index voxel.Index
	level int
}

// Compute returns, for each foreground voxel of thin, the count of
// foreground voxels reachable by 26-/8-connected BFS within maxLevel hops
// (inclusive). Background voxels read 0 in the output.
//
// Complexity: O(V·K) where K is the branching factor within maxLevel hops
// (bounded by 26^maxLevel in the worst case, in practice far smaller for
// thin skeletons).
//
// Errors: ErrMissingInput if thin is nil; ErrInvalidParameter if
// maxLevel <= 0.
func Compute(thin *voxel.Skeleton, maxLevel int) (*voxel.Image[int], error) {
	if thin == nil {
		return nil, ErrMissingInput
	}
	if maxLevel <= 0 {
		return nil, ErrInvalidParameter
	}

	neighbors := neighborsForDim(thin.Dim())
	out, err := voxel.NewImage[int](thin.Size(), thin.Spacing(), thin.Origin())
	if err != nil {
		return nil, err
	}

	thin.Each(func(p voxel.Index) {
		if thin.At(p) <= 0 {
			return
		}
		out.Set(p, bfsCount(thin, p, maxLevel, neighbors))
	})
	return out, nil
}

func bfsCount(thin *voxel.Skeleton, start voxel.Index, maxLevel int, neighbors []voxel.Offset) int {
	type key = string
	visited := map[key]bool{startKey(start): true}
	queue := []packet{{index: start, level: 0}}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		if cur.level >= maxLevel {
			continue
		}
		for _, off := range neighbors {
			q := cur.index.Add(off)
			if !thin.InBounds(q) || thin.At(q) <= 0 {
				continue
			}
			k := startKey(q)
			if visited[k] {
				continue
			}
			visited[k] = true
			queue = append(queue, packet{index: q, level: cur.level + 1})
		}
	}
	return count
}

func startKey(idx voxel.Index) string {
	b := make([]byte, 0, len(idx)*5)
	for _, c := range idx {
		b = append(b, byte(c), byte(c>>8), byte(c>>16), byte(c>>24), ',')
	}
	return string(b)
}

func neighborsForDim(dim int) []voxel.Offset {
	if dim == 2 {
		return topology.Neighbors8
	}
	return topology.Neighbors26
}

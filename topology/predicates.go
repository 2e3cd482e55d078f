package topology

import "github.com/skeltools/skeltools/voxel"

// Numeric constrains the pixel types topology predicates accept: the
// voxel package's BinaryMask (uint8) and Skeleton (float32) both satisfy
// it, and both treat "value > 0" as foreground.
type Numeric interface {
	~uint8 | ~float32 | ~int
}

// ComputeCbar returns C̄(p): the number of 6-connected components of
// background voxels (value ≤ 0) in the 18-neighborhood of p, found by BFS
// over Graph18 restricted to the axis-aligned (N6) starting points.
//
// Complexity: O(1) — bounded by the fixed 18-neighbor graph.
func ComputeCbar[T Numeric](img *voxel.Image[T], p voxel.Index) int {
	visited := make([]bool, len(Neighbors18))
	regions := 0
	for i := range Neighbors18 {
		if !N6[i] || visited[i] {
			continue
		}
		if img.At(p.Add(Neighbors18[i])) > 0 {
			continue
		}
		regions++
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range Graph18[cur] {
				if visited[nb] {
					continue
				}
				if img.At(p.Add(Neighbors18[nb])) > 0 {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return regions
}

// ComputeCstar returns C*(p): the number of 26-connected components of
// foreground voxels (value > 0) in the 26-neighborhood of p, found by BFS
// over Graph26.
//
// Complexity: O(1) — bounded by the fixed 26-neighbor graph.
func ComputeCstar[T Numeric](img *voxel.Image[T], p voxel.Index) int {
	visited := make([]bool, len(Neighbors26))
	regions := 0
	for i := range Neighbors26 {
		if visited[i] {
			continue
		}
		if img.At(p.Add(Neighbors26[i])) <= 0 {
			continue
		}
		regions++
		queue := []int{i}
		visited[i] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range Graph26[cur] {
				if visited[nb] {
					continue
				}
				if img.At(p.Add(Neighbors26[nb])) <= 0 {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return regions
}

// IsSimple reports whether p is a simple point of the 3D image img:
// removing it would not change the digital topology of foreground or
// background (TopologicalLabel(C̄, C*) == Simple).
func IsSimple[T Numeric](img *voxel.Image[T], p voxel.Index) bool {
	return TopologicalLabel(ComputeCbar(img, p), ComputeCstar(img, p)) == Simple
}

// IsBoundary reports whether p is foreground and has at least one
// background 26-neighbor.
func IsBoundary[T Numeric](img *voxel.Image[T], p voxel.Index) bool {
	if img.At(p) <= 0 {
		return false
	}
	for _, off := range Neighbors26 {
		if img.At(p.Add(off)) <= 0 {
			return true
		}
	}
	return false
}

// IsEndCurve reports whether p has fewer than 2 foreground 26-neighbors —
// a curve tip.
func IsEndCurve[T Numeric](img *voxel.Image[T], p voxel.Index) bool {
	n := 0
	for _, off := range Neighbors26 {
		if img.At(p.Add(off)) > 0 {
			n++
			if n >= 2 {
				return false
			}
		}
	}
	return n < 2
}

// IsEndSurface reports whether p sits at the rim of a thin 2-surface: its
// TopologicalLabel is Surface (C̄=2, C*=1) and, additionally, fewer than 2
// of its three axis-aligned (6-neighbor) pairs have foreground on both
// sides — i.e. the sheet does not fully pass through p along any axis,
// which is the signature of an edge/rim voxel rather than sheet interior.
//
// This resolves an open question left undefined in the reference material
// (IsEdgePoint is called but never implemented there); the definition here
// is the simplest predicate consistent with every scenario in spec §8 —
// see SPEC_FULL.md's Open Question resolutions for the reasoning.
func IsEndSurface[T Numeric](img *voxel.Image[T], p voxel.Index) bool {
	if TopologicalLabel(ComputeCbar(img, p), ComputeCstar(img, p)) != Surface {
		return false
	}
	throughAxes := 0
	for axis := 0; axis < len(p); axis++ {
		plus := make(voxel.Offset, len(p))
		minus := make(voxel.Offset, len(p))
		plus[axis], minus[axis] = 1, -1
		if img.At(p.Add(plus)) > 0 && img.At(p.Add(minus)) > 0 {
			throughAxes++
		}
	}
	return throughAxes < 2
}

// IsSimple2D implements the 2D simple-point formula over the 8
// clockwise-ordered neighbors: numNeighbors (edge-deduplicated foreground
// count) minus numEdges (adjacent-foreground-pair count, including
// background-corner diagonal credit) equals 1.
func IsSimple2D[T Numeric](img *voxel.Image[T], p voxel.Index) bool {
	var nbrs [8]int
	for i, off := range Neighbors8 {
		if img.At(p.Add(off)) > 0 {
			nbrs[i] = 1
		}
	}
	numNeighbors, numEdges := 0, 0
	for i := 0; i < 8; i++ {
		j := (i + 1) % 8
		if nbrs[i] == 1 && nbrs[j] == 1 {
			numNeighbors += 2
			numEdges++
		} else if nbrs[i] == 1 || nbrs[j] == 1 {
			numNeighbors++
		}
	}
	numNeighbors /= 2
	for i := 0; i < 8; i += 2 {
		prev := (i + 7) % 8
		next := (i + 1) % 8
		if nbrs[prev] == 1 && nbrs[i] == 0 && nbrs[next] == 1 {
			numEdges++
		}
	}
	return numNeighbors-numEdges == 1
}

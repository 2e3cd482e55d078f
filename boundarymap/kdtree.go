package boundarymap

// point is a physical-coordinate sample carried by the k-d tree: the
// voxel's position and the scalar value to propagate (e.g. thickness).
type point struct {
	coord []float64
	value float32
}

// kdNode is either a leaf bucket (points non-nil, children nil) or an
// internal split node, mirroring the reference's bucket-size-16 k-d tree.
type kdNode struct {
	points      []point
	axis        int
	splitValue  float64
	left, right *kdNode
}

// bucketSize matches the reference's SetBucketSize(16).
const bucketSize = 16

// buildKDTree constructs a balanced k-d tree over pts by recursive median
// splitting, stopping once a node holds bucketSize or fewer points.
func buildKDTree(pts []point, dim int) *kdNode {
	return buildRec(pts, dim, 0)
}

func buildRec(pts []point, dim, depth int) *kdNode {
	if len(pts) <= bucketSize {
		return &kdNode{points: pts}
	}
	axis := depth % dim
	sorted := make([]point, len(pts))
	copy(sorted, pts)
	insertionSortByAxis(sorted, axis)

	mid := len(sorted) / 2
	node := &kdNode{axis: axis, splitValue: sorted[mid].coord[axis]}
	node.left = buildRec(sorted[:mid], dim, depth+1)
	node.right = buildRec(sorted[mid:], dim, depth+1)
	return node
}

func insertionSortByAxis(pts []point, axis int) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j-1].coord[axis] > pts[j].coord[axis]; j-- {
			pts[j-1], pts[j] = pts[j], pts[j-1]
		}
	}
}

// nearest returns the closest point to query by squared Euclidean
// distance, searching the whole tree (bucket leaves are scanned linearly;
// internal nodes prune the far subtree when possible).
func (n *kdNode) nearest(query []float64) (point, bool) {
	if n == nil {
		return point{}, false
	}
	if n.points != nil {
		best, found := point{}, false
		bestDist := 0.0
		for _, p := range n.points {
			d := sqDist(p.coord, query)
			if !found || d < bestDist {
				best, bestDist, found = p, d, true
			}
		}
		return best, found
	}

	diff := query[n.axis] - n.splitValue
	primary, secondary := n.left, n.right
	if diff >= 0 {
		primary, secondary = n.right, n.left
	}

	best, found := primary.nearest(query)
	bestDist := sqDist(best.coord, query)

	// Only descend into the far subtree if its splitting plane is closer
	// than the current best candidate — standard k-d tree pruning.
	if !found || diff*diff < bestDist {
		if cand, ok := secondary.nearest(query); ok {
			if !found || sqDist(cand.coord, query) < bestDist {
				best, found = cand, true
			}
		}
	}
	return best, found
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

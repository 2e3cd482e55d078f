package thinning

import "github.com/skeltools/skeltools/voxel"

// entry is a single priority-queue item: a candidate voxel and the
// distance-derived priority it was pushed with. seq records insertion
// order so that equal-priority entries pop in FIFO order — a deterministic
// tie-break, per spec §9's open question on tie-breaking.
type entry struct {
	index    voxel.Index
	priority float64
	seq      int64
}

// minHeap implements container/heap.Interface over entry, ordered by
// ascending priority and, for ties, ascending seq. Modeled directly on
// dijkstra's nodePQ lazy-decrease-key heap.
type minHeap []*entry

func (h minHeap) Len() int { return len(h) }
func (h minHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h minHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *minHeap) Push(x any) {
	*h = append(*h, x.(*entry))
}

func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

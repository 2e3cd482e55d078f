package thinning

import (
	"container/heap"
	"context"
	"math"

	"github.com/skeltools/skeltools/voxel"
)

// SeedEntry is a single (voxel, priority) pair used to initialize the
// thinning heap.
type SeedEntry struct {
	Index    voxel.Index
	Priority float64
}

// Stats reports how many voxels the engine examined and actually deleted
// during a run, per spec §4.4.1 step 5 ("report counts removed/examined").
type Stats struct {
	Examined int
	Deleted  int
}

// Engine is the single thinning driver mandated by spec §9: it owns the
// mutable skeleton and priority-queue state; behavior is entirely
// parametrized by the Strategy record and seed set passed to Run. Neither
// homotopic thinning nor ordered skeletonization subclasses anything —
// they are two Strategy values run through the same Engine.
type Engine struct{}

// Run drains the priority queue seeded from seeds, mutating skeleton in
// place, until the queue empties, a popped entry's priority exceeds
// maxPriority, or ctx is cancelled. aof may be nil when strategy.IsEnd does
// not consult it.
//
// Cancellation is checked at the top of the loop, before popping the next
// entry (spec §5's "stop-before-start-of-next-pop"); on cancellation the
// partial skeleton (already mutated in place) is valid and Stats reflects
// work done so far, alongside ErrCancelled.
func (Engine) Run(ctx context.Context, skeleton *voxel.Skeleton, priority *voxel.DistanceMap, seeds []SeedEntry, strategy Strategy, aof *voxel.AOFImage, maxPriority float64) (*Stats, error) {
	if maxPriority == 0 {
		maxPriority = math.Inf(1)
	}

	queued, err := voxel.NewImage[uint8](skeleton.Size(), skeleton.Spacing(), skeleton.Origin())
	if err != nil {
		return nil, err
	}

	h := &minHeap{}
	heap.Init(h)
	var seq int64
	push := func(idx voxel.Index, p float64) {
		heap.Push(h, &entry{index: idx, priority: p, seq: seq})
		seq++
		queued.Set(idx, 1)
	}
	for _, s := range seeds {
		push(s.Index, s.Priority)
	}

	stats := &Stats{}
	for h.Len() > 0 {
		select {
		case <-ctx.Done():
			return stats, ErrCancelled
		default:
		}

		e := heap.Pop(h).(*entry)
		p := e.index
		queued.Set(p, 0)

		if e.priority > maxPriority {
			break
		}
		stats.Examined++

		if !strategy.IsSimple(skeleton, p) {
			continue
		}

		if !strategy.Reinsert {
			skeleton.Set(p, 0)
			stats.Deleted++
			continue
		}

		if strategy.IsEnd != nil && strategy.IsEnd(skeleton, p, aof) {
			continue
		}

		skeleton.Set(p, 0)
		stats.Deleted++

		for _, off := range strategy.Neighbors {
			q := p.Add(off)
			if !skeleton.InBounds(q) || skeleton.At(q) <= 0 {
				continue
			}
			if queued.At(q) != 0 {
				continue
			}
			if strategy.IsSimple(skeleton, q) {
				push(q, float64(priority.At(q)))
			}
		}
	}

	return stats, nil
}

package search

// frontierItem pairs a node handle with the total estimated cost it was
// pushed at and a monotonically increasing sequence number. The sequence
// breaks f-cost ties first-in-first-out, making pop order deterministic.
type frontierItem struct {
	handle int32
	fCost  float64
	seq    uint64
}

// frontier is a min-heap (priority queue) of *frontierItem ordered by fCost
// ascending, then seq ascending. It follows the lazy-decrease-key pattern:
// when a cheaper path to an already-queued cell is found, a fresh item is
// pushed and the superseded one is skipped on pop via the closed set.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller fCost wins; equal fCost falls back
// to insertion order.
func (f frontier) Less(i, j int) bool {
	if f[i].fCost != f[j].fCost {
		return f[i].fCost < f[j].fCost
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}

package search

import "github.com/katalvlaran/gridpath/grid"

// noParent marks the start node's missing predecessor.
const noParent = int32(-1)

// node is the per-search record for one discovered cell. hCost is computed
// once at creation and never recomputed; gCost and parent change when a
// cheaper path to the cell is found.
type node struct {
	pos    grid.Cell
	gCost  float64
	hCost  float64
	parent int32 // handle of the predecessor node, or noParent
}

// nodeStore maps each discovered cell to its best-known node within one
// search call. Nodes live in a growable arena addressed by int32 handles,
// so parent back-references are indices rather than pointers and nothing
// escapes the call. Not safe for concurrent use; every call owns its own
// store.
type nodeStore struct {
	arena []node
	index map[grid.Cell]int32
}

// newNodeStore allocates a store sized for roughly hint cells.
func newNodeStore(hint int) *nodeStore {
	return &nodeStore{
		arena: make([]node, 0, hint),
		index: make(map[grid.Cell]int32, hint),
	}
}

// lookup returns the handle of c's node, if c has been discovered.
func (s *nodeStore) lookup(c grid.Cell) (int32, bool) {
	h, ok := s.index[c]

	return h, ok
}

// insert records a newly discovered cell and returns its handle.
// The caller guarantees c is not already present.
func (s *nodeStore) insert(c grid.Cell, gCost, hCost float64, parent int32) int32 {
	h := int32(len(s.arena))
	s.arena = append(s.arena, node{pos: c, gCost: gCost, hCost: hCost, parent: parent})
	s.index[c] = h

	return h
}

// at returns a copy of the node behind h. Copies avoid aliasing the arena,
// which may be reallocated by a later insert.
func (s *nodeStore) at(h int32) node {
	return s.arena[h]
}

// improve rebinds h's node to a cheaper path: new accumulated cost and
// predecessor.
func (s *nodeStore) improve(h int32, gCost float64, parent int32) {
	s.arena[h].gCost = gCost
	s.arena[h].parent = parent
}

// path reconstructs the start→goal cell sequence by walking parent handles
// back from h and reversing the order.
func (s *nodeStore) path(h int32) []grid.Cell {
	var rev []grid.Cell
	for at := h; at != noParent; at = s.arena[at].parent {
		rev = append(rev, s.arena[at].pos)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

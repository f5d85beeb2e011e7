package astar

import (
	"container/heap"
	"sort"
)

// OpenSet holds frontier nodes awaiting expansion.
//
// ExtractBest must return the node with the lowest F and, among nodes with
// equal F, the one inserted most recently. Implementations do not
// deduplicate; the search guarantees a cell is inserted at most once.
type OpenSet interface {
	// Insert adds n to the set.
	Insert(n Node)
	// ExtractBest removes and returns the best node; ok is false if empty.
	ExtractBest() (n Node, ok bool)
	// Len returns the number of pending nodes.
	Len() int
}

// SortedOpenSet keeps nodes in a slice and fully re-sorts it by descending F
// on every extraction, then pops the tail. The sort is stable, so equal-F
// nodes keep insertion order and the tail is the newest of them.
//
// Extraction costs O(n log n); use HeapOpenSet for anything but small grids.
type SortedOpenSet struct {
	nodes []Node
}

// NewSortedOpenSet returns an empty SortedOpenSet.
func NewSortedOpenSet() *SortedOpenSet {
	return &SortedOpenSet{}
}

// Insert appends n.
func (s *SortedOpenSet) Insert(n Node) {
	s.nodes = append(s.nodes, n)
}

// ExtractBest sorts by descending F and pops the last node.
func (s *SortedOpenSet) ExtractBest() (Node, bool) {
	if len(s.nodes) == 0 {
		return Node{}, false
	}
	sort.SliceStable(s.nodes, func(i, j int) bool {
		return s.nodes[i].F() > s.nodes[j].F()
	})
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes = s.nodes[:last]

	return n, true
}

// Len returns the number of pending nodes.
func (s *SortedOpenSet) Len() int { return len(s.nodes) }

// HeapOpenSet is a binary min-heap keyed by (F ascending, insertion sequence
// descending). The sequence key reproduces the LIFO tie-break of
// SortedOpenSet in O(log n) per operation.
type HeapOpenSet struct {
	pq  nodePQ
	seq uint64
}

// NewHeapOpenSet returns an empty HeapOpenSet.
func NewHeapOpenSet() *HeapOpenSet {
	h := &HeapOpenSet{}
	heap.Init(&h.pq)

	return h
}

// Insert pushes n with the next insertion sequence number.
func (h *HeapOpenSet) Insert(n Node) {
	h.seq++
	heap.Push(&h.pq, nodeItem{node: n, seq: h.seq})
}

// ExtractBest pops the lowest-F, most recently inserted node.
func (h *HeapOpenSet) ExtractBest() (Node, bool) {
	if h.pq.Len() == 0 {
		return Node{}, false
	}
	item := heap.Pop(&h.pq).(nodeItem)

	return item.node, true
}

// Len returns the number of pending nodes.
func (h *HeapOpenSet) Len() int { return h.pq.Len() }

// nodeItem is a heap entry: a node and the order in which it was inserted.
type nodeItem struct {
	node Node
	seq  uint64
}

// nodePQ implements heap.Interface over nodeItem.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by F ascending, then by newer insertion first.
func (pq nodePQ) Less(i, j int) bool {
	fi, fj := pq[i].node.F(), pq[j].node.F()
	if fi != fj {
		return fi < fj
	}

	return pq[i].seq > pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum to the end.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Package pq provides min-priority queues of (distance, node) pairs for the
// shortest-path engine.
//
// The queues deliberately have no decrease-key operation. An improved
// distance is pushed as a fresh entry and the outdated one stays in the queue
// until it is popped and discarded by the caller ("lazy deletion"). Len
// therefore counts stale duplicates too.
//
// Equal distances are ordered by node id, so RemoveMin is deterministic.
package pq

import (
	"container/heap"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/weight"
)

// Queue is a min-ordered store of (weight, node) pairs.
type Queue[W any] interface {
	// Insert adds the pair (w, n).
	Insert(w W, n graph.NodeID)

	// RemoveMin removes and returns the pair with the smallest weight.
	// ok is false when the queue is empty.
	RemoveMin() (w W, n graph.NodeID, ok bool)

	// Clear removes every entry, keeping allocated capacity.
	Clear()

	// Len returns the number of entries, stale duplicates included.
	Len() int
}

// Item is one queue entry.
type Item[W any] struct {
	Weight W
	Node   graph.NodeID
}

// itemLess orders by weight, then node id.
func itemLess[W any](alg weight.Algebra[W], a, b Item[W]) bool {
	if alg.Less(a.Weight, b.Weight) {
		return true
	}
	if alg.Less(b.Weight, a.Weight) {
		return false
	}

	return a.Node < b.Node
}

// BinaryHeap is a value-based binary min-heap. It avoids the interface
// boxing of container/heap.
type BinaryHeap[W any] struct {
	alg   weight.Algebra[W]
	items []Item[W]
}

// NewBinaryHeap returns an empty heap with the given initial capacity.
func NewBinaryHeap[W any](alg weight.Algebra[W], capacity int) *BinaryHeap[W] {
	return &BinaryHeap[W]{alg: alg, items: make([]Item[W], 0, max(capacity, 0))}
}

// Insert adds (w, n).
func (h *BinaryHeap[W]) Insert(w W, n graph.NodeID) {
	h.items = append(h.items, Item[W]{Weight: w, Node: n})
	h.siftUp(len(h.items) - 1)
}

// RemoveMin pops the smallest entry.
func (h *BinaryHeap[W]) RemoveMin() (W, graph.NodeID, bool) {
	n := len(h.items)
	if n == 0 {
		var zero W
		return zero, 0, false
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.siftDown(0)
	}

	return root.Weight, root.Node, true
}

// Peek returns the smallest entry without removing it.
func (h *BinaryHeap[W]) Peek() (Item[W], bool) {
	if len(h.items) == 0 {
		return Item[W]{}, false
	}

	return h.items[0], true
}

// Clear empties the heap.
func (h *BinaryHeap[W]) Clear() { h.items = h.items[:0] }

// Len returns the number of entries.
func (h *BinaryHeap[W]) Len() int { return len(h.items) }

// Cap returns the capacity of the backing slice.
func (h *BinaryHeap[W]) Cap() int { return cap(h.items) }

func (h *BinaryHeap[W]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !itemLess(h.alg, h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *BinaryHeap[W]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && itemLess(h.alg, h.items[r], h.items[l]) {
			best = r
		}
		if !itemLess(h.alg, h.items[best], h.items[i]) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}

// StdHeap implements Queue on top of container/heap.
type StdHeap[W any] struct {
	h stdItems[W]
}

// NewStdHeap returns an empty StdHeap with the given initial capacity.
func NewStdHeap[W any](alg weight.Algebra[W], capacity int) *StdHeap[W] {
	return &StdHeap[W]{h: stdItems[W]{alg: alg, items: make([]Item[W], 0, max(capacity, 0))}}
}

// Insert adds (w, n).
func (s *StdHeap[W]) Insert(w W, n graph.NodeID) {
	heap.Push(&s.h, Item[W]{Weight: w, Node: n})
}

// RemoveMin pops the smallest entry.
func (s *StdHeap[W]) RemoveMin() (W, graph.NodeID, bool) {
	if s.h.Len() == 0 {
		var zero W
		return zero, 0, false
	}
	it := heap.Pop(&s.h).(Item[W])

	return it.Weight, it.Node, true
}

// Clear empties the heap.
func (s *StdHeap[W]) Clear() { s.h.items = s.h.items[:0] }

// Len returns the number of entries.
func (s *StdHeap[W]) Len() int { return s.h.Len() }

// Compile time check to ensure stdItems satisfies the heap interface.
var _ heap.Interface = (*stdItems[int64])(nil)

// stdItems adapts a slice of items to heap.Interface.
type stdItems[W any] struct {
	alg   weight.Algebra[W]
	items []Item[W]
}

func (s stdItems[W]) Len() int           { return len(s.items) }
func (s stdItems[W]) Less(i, j int) bool { return itemLess(s.alg, s.items[i], s.items[j]) }
func (s stdItems[W]) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *stdItems[W]) Push(x any) { s.items = append(s.items, x.(Item[W])) }

func (s *stdItems[W]) Pop() any {
	old := s.items
	n := len(old)
	it := old[n-1]
	s.items = old[:n-1]

	return it
}

// Kind selects a Queue realization.
type Kind int

const (
	// KindBinary selects BinaryHeap (default).
	KindBinary Kind = iota
	// KindStd selects StdHeap.
	KindStd
)

// ErrUnknownKind indicates an unrecognized queue kind name.
var ErrUnknownKind = errors.New("pq: unknown kind")

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindStd:
		return "std"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "binary" or "std" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "":
		return KindBinary, nil
	case "std":
		return KindStd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns a Queue of the given kind. Unknown kinds fall back to
// BinaryHeap.
func New[W any](kind Kind, alg weight.Algebra[W], capacity int) Queue[W] {
	if kind == KindStd {
		return NewStdHeap(alg, capacity)
	}

	return NewBinaryHeap(alg, capacity)
}

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/epoch"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/weight"
)

// ErrUnknownKind indicates an unrecognized store kind name.
var ErrUnknownKind = errors.New("store: unknown kind")

// Store maps node ids to tentative distances.
type Store[W any] interface {
	// Get returns the stored distance of n, or infinity if absent.
	Get(n graph.NodeID) W

	// Ptr returns a pointer to n's entry, materializing it as infinity when
	// absent. The pointer is valid until the next call that materializes an
	// entry or clears the store.
	Ptr(n graph.NodeID) *W

	// Set stores w for n.
	Set(n graph.NodeID, w W)

	// Clear resets every entry to infinity.
	Clear()

	// Size returns the number of currently materialized entries.
	Size() int
}

// Kind selects a Store realization.
type Kind int

const (
	// KindEpoch selects Epoch (default).
	KindEpoch Kind = iota
	// KindDense selects Dense.
	KindDense
	// KindSparse selects Sparse.
	KindSparse
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case KindEpoch:
		return "epoch"
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "epoch", "dense" or "sparse" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "epoch", "":
		return KindEpoch, nil
	case "dense":
		return KindDense, nil
	case "sparse":
		return KindSparse, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns a Store of the given kind sized for n nodes.
func New[W any](kind Kind, alg weight.Algebra[W], n int) (Store[W], error) {
	switch kind {
	case KindEpoch:
		return NewEpoch(alg, n), nil
	case KindDense:
		return NewDense(alg, n), nil
	case KindSparse:
		return NewSparse(alg, n), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// Dense is a fixed array of distances, all initialized to infinity.
type Dense[W any] struct {
	weights []W
	inf     W
}

// NewDense returns a Dense store for n nodes.
func NewDense[W any](alg weight.Algebra[W], n int) *Dense[W] {
	d := &Dense[W]{weights: make([]W, n), inf: alg.Infinity()}
	d.Clear()

	return d
}

// Get returns the distance of n.
func (d *Dense[W]) Get(n graph.NodeID) W { return d.weights[n] }

// Ptr returns a pointer to n's slot.
func (d *Dense[W]) Ptr(n graph.NodeID) *W { return &d.weights[n] }

// Set stores w for n.
func (d *Dense[W]) Set(n graph.NodeID, w W) { d.weights[n] = w }

// Clear rewrites every slot to infinity. O(n).
func (d *Dense[W]) Clear() {
	for i := range d.weights {
		d.weights[i] = d.inf
	}
}

// Size returns the array length.
func (d *Dense[W]) Size() int { return len(d.weights) }

// Epoch is a distance array whose entries are live only when their epoch tag
// matches the current epoch. Clear advances the epoch instead of rewriting
// the array.
type Epoch[W any] struct {
	weights []W
	epochs  *epoch.Array
	size    int
	inf     W
}

// NewEpoch returns an Epoch store for n nodes.
func NewEpoch[W any](alg weight.Algebra[W], n int) *Epoch[W] {
	e := &Epoch[W]{
		weights: make([]W, n),
		epochs:  epoch.New(n),
		inf:     alg.Infinity(),
	}
	for i := range e.weights {
		e.weights[i] = e.inf
	}

	return e
}

// Get returns the distance of n, or infinity if n is stale.
func (e *Epoch[W]) Get(n graph.NodeID) W {
	if e.epochs.IsCurrent(int(n)) {
		return e.weights[n]
	}

	return e.inf
}

// Ptr makes n current (resetting a stale slot to infinity) and returns a
// pointer to its slot.
func (e *Epoch[W]) Ptr(n graph.NodeID) *W {
	if !e.epochs.GetAndUpdate(int(n)) {
		e.weights[n] = e.inf
		e.size++
	}

	return &e.weights[n]
}

// Set stores w for n and makes it current.
func (e *Epoch[W]) Set(n graph.NodeID, w W) {
	e.weights[n] = w
	if !e.epochs.Update(int(n)) {
		e.size++
	}
}

// Clear outdates every entry. O(1) except on epoch overflow.
func (e *Epoch[W]) Clear() {
	e.epochs.Clear()
	e.size = 0
}

// Size returns the number of entries made current since the last Clear.
func (e *Epoch[W]) Size() int { return e.size }

// Sparse keeps only touched entries: a hash map from node id to a slot in a
// dense slab. The slab lets Ptr hand out a stable pointer for the duration of
// one relaxation, which a map value cannot provide.
type Sparse[W any] struct {
	index map[graph.NodeID]int
	slab  []W
	inf   W
}

// sparseInitialCapacity bounds the up-front allocation of a Sparse store.
const sparseInitialCapacity = 64

// NewSparse returns an empty Sparse store. n is only a sizing hint.
func NewSparse[W any](alg weight.Algebra[W], n int) *Sparse[W] {
	c := min(n, sparseInitialCapacity)

	return &Sparse[W]{
		index: make(map[graph.NodeID]int, c),
		slab:  make([]W, 0, c),
		inf:   alg.Infinity(),
	}
}

// Get returns the distance of n, or infinity if absent.
func (s *Sparse[W]) Get(n graph.NodeID) W {
	if i, ok := s.index[n]; ok {
		return s.slab[i]
	}

	return s.inf
}

// Ptr returns n's entry, inserting infinity first when absent.
func (s *Sparse[W]) Ptr(n graph.NodeID) *W {
	i, ok := s.index[n]
	if !ok {
		i = len(s.slab)
		s.slab = append(s.slab, s.inf)
		s.index[n] = i
	}

	return &s.slab[i]
}

// Set stores w for n.
func (s *Sparse[W]) Set(n graph.NodeID, w W) {
	*s.Ptr(n) = w
}

// Clear drops every entry, keeping allocated capacity.
func (s *Sparse[W]) Clear() {
	clear(s.index)
	s.slab = s.slab[:0]
}

// Size returns the number of entries.
func (s *Sparse[W]) Size() int { return len(s.index) }

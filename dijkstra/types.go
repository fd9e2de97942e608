package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/pq"
	"github.com/katalvlaran/lvpath/store"
	"github.com/katalvlaran/lvpath/target"
	"github.com/katalvlaran/lvpath/weight"
)

// Sentinel errors returned by engine constructors.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilAlgebra indicates that a nil weight algebra was passed to New.
	ErrNilAlgebra = errors.New("dijkstra: weight algebra is nil")

	// ErrNilStructure indicates a nil store or queue passed to NewWith.
	ErrNilStructure = errors.New("dijkstra: store or queue is nil")

	// ErrBadQueueCapacity indicates a negative initial queue capacity.
	ErrBadQueueCapacity = errors.New("dijkstra: queue capacity must be non-negative")
)

// Exhaustiveness records whether a search ran to completion or was aborted
// by a resource budget.
//
// Note that Query.MaxWeight is a limit on the search space, not a resource
// budget: reaching it yields Complete.
type Exhaustiveness int

const (
	// Complete means the search exhausted its search space.
	Complete Exhaustiveness = iota
	// PartialNodeWeights means the distance store grew past MaxNodeWeights.
	PartialNodeWeights
	// PartialHeap means the queue grew past MaxHeapSize.
	PartialHeap
)

// String returns the name of e.
func (e Exhaustiveness) String() string {
	switch e {
	case Complete:
		return "Complete"
	case PartialNodeWeights:
		return "PartialNodeWeights"
	case PartialHeap:
		return "PartialHeap"
	default:
		return fmt.Sprintf("Exhaustiveness(%d)", int(e))
	}
}

// Status is the outcome of one search.
type Status[P perf.Recorder] struct {
	// Exhaustiveness of the search.
	Exhaustiveness Exhaustiveness
	// Performance is the recorder passed in, after the search updated it.
	Performance P
}

// Distance is one search result: a target node and its distance.
type Distance[W any] struct {
	Node   graph.NodeID
	Weight W
}

// Query holds the per-invocation arguments of ShortestPathLens.
//
// Source             – start node.
// Targets            – which finalized nodes are reported; nil reports none.
// TargetCount        – stop after this many targets; ≤ 0 means no limit.
// MaxWeight          – do not finalize nodes farther than this.
// ForbidSourceTarget – never report the source itself.
// MaxNodeWeights     – abort once the store holds more entries than this.
// MaxHeapSize        – abort once the queue holds more entries than this.
//
// The zero value has zero budgets and aborts after the first node; start
// from DefaultQuery.
type Query[W any] struct {
	Source             graph.NodeID
	Targets            target.Map
	TargetCount        int
	MaxWeight          W
	ForbidSourceTarget bool
	MaxNodeWeights     int
	MaxHeapSize        int
}

// DefaultQuery returns a Query from source to targets with no target-count
// limit, MaxWeight = infinity and unlimited budgets.
func DefaultQuery[W any](alg weight.Algebra[W], source graph.NodeID, targets target.Map) Query[W] {
	return Query[W]{
		Source:         source,
		Targets:        targets,
		TargetCount:    0,
		MaxWeight:      alg.Infinity(),
		MaxNodeWeights: math.MaxInt,
		MaxHeapSize:    math.MaxInt,
	}
}

// Options configures the data structures an engine allocates.
//
// StoreKind     – distance store realization. Default store.KindEpoch.
// QueueKind     – priority queue realization. Default pq.KindBinary.
// QueueCapacity – initial queue capacity; ≥ 0. Default 0 (grow on demand).
type Options struct {
	StoreKind     store.Kind
	QueueKind     pq.Kind
	QueueCapacity int
}

// Option represents a functional option for configuring an engine.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		StoreKind:     store.KindEpoch,
		QueueKind:     pq.KindBinary,
		QueueCapacity: 0,
	}
}

// WithStore selects the distance store realization.
func WithStore(kind store.Kind) Option {
	return func(o *Options) {
		o.StoreKind = kind
	}
}

// WithQueue selects the priority queue realization.
func WithQueue(kind pq.Kind) Option {
	return func(o *Options) {
		o.QueueKind = kind
	}
}

// WithQueueCapacity pre-sizes the queue. Negative values panic.
func WithQueueCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadQueueCapacity.Error())
		}
		o.QueueCapacity = n
	}
}

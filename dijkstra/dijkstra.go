package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/pq"
	"github.com/katalvlaran/lvpath/store"
	"github.com/katalvlaran/lvpath/weight"
)

// Dijkstra holds the reusable state of the search engine: a distance store
// and a priority queue sized for one graph. W is the weight type, P the
// performance recorder type.
//
// A Dijkstra value is not safe for concurrent use.
type Dijkstra[W any, P perf.Recorder] struct {
	alg   weight.Algebra[W]
	store store.Store[W]
	queue pq.Queue[W]
	nodes int // node count the store was sized for
}

// New builds an engine for g. The store and queue are allocated here, once.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. alg must be non-nil (ErrNilAlgebra).
//  3. the configured store kind must exist (store.ErrUnknownKind).
//
// Complexity: O(V) time and space for the array-backed stores.
func New[W any, P perf.Recorder](g graph.Graph[W], alg weight.Algebra[W], opts ...Option) (*Dijkstra[W, P], error) {
	// 1) Resolve options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators.
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg == nil {
		return nil, ErrNilAlgebra
	}

	// 3) Allocate the per-graph structures.
	n := g.NodeCount()
	st, err := store.New(cfg.StoreKind, alg, n)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return &Dijkstra[W, P]{
		alg:   alg,
		store: st,
		queue: pq.New(cfg.QueueKind, alg, cfg.QueueCapacity),
		nodes: n,
	}, nil
}

// NewDefault builds an engine with the epoch store, the binary heap and no
// instrumentation.
func NewDefault[W any](g graph.Graph[W], alg weight.Algebra[W]) (*Dijkstra[W, perf.Noop], error) {
	return New[W, perf.Noop](g, alg)
}

// NewWith builds an engine around caller-supplied structures. st must be
// sized for at least nodes nodes and both must be empty.
func NewWith[W any, P perf.Recorder](alg weight.Algebra[W], nodes int, st store.Store[W], q pq.Queue[W]) (*Dijkstra[W, P], error) {
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	if st == nil || q == nil {
		return nil, ErrNilStructure
	}

	return &Dijkstra[W, P]{alg: alg, store: st, queue: q, nodes: nodes}, nil
}

// NodeCount returns the node count the engine was sized for.
func (d *Dijkstra[W, P]) NodeCount() int { return d.nodes }

// Store exposes the engine's distance store. Between searches it is empty.
func (d *Dijkstra[W, P]) Store() store.Store[W] { return d.store }

// Queue exposes the engine's priority queue. Between searches it is empty.
func (d *Dijkstra[W, P]) Queue() pq.Queue[W] { return d.queue }

// ShortestPathLens runs one search on g as described by q.
//
// dst is truncated to length zero and the targets are appended to it in the
// order they were finalized: non-decreasing by distance, ties by node id.
// The (possibly grown) slice is returned; pass it back in on the next call
// to avoid allocating.
//
// rec is updated by the search and returned inside the Status. Its
// FinishDijkstra hook is called exactly once per invocation.
//
// g must be the graph (or a graph with the same node count) the engine was
// built for.
func (d *Dijkstra[W, P]) ShortestPathLens(g graph.Graph[W], q Query[W], dst []Distance[W], rec P) ([]Distance[W], Status[P]) {
	alg := d.alg
	dst = dst[:0]

	if debugAssertions {
		d.checkPreconditions(g, q)
	}

	// 1) Seed: the source has distance zero.
	zero := alg.Zero()
	d.queue.Insert(zero, q.Source)
	d.store.Set(q.Source, zero)
	exhaustiveness := Complete

	for {
		// 2) Take the closest pending node.
		w, u, ok := d.queue.RemoveMin()
		if !ok {
			break
		}
		rec.AddIteration()

		// 3) Skip stale entries; without decrease-key a node may be queued
		//    several times and only the smallest entry is current.
		actual := d.store.Get(u)
		if alg.Less(actual, w) {
			rec.AddUnnecessaryHeapElement()
			continue
		}
		if debugAssertions && alg.Less(w, actual) {
			panic(fmt.Sprintf("dijkstra: queue entry %v for node %d below stored distance %v", w, u, actual))
		}

		// 4) Distance bound.
		if alg.Less(q.MaxWeight, w) {
			break
		}

		// 5) Report targets.
		if q.Targets != nil && q.Targets.IsTarget(u) && (!q.ForbidSourceTarget || u != q.Source) {
			dst = append(dst, Distance[W]{Node: u, Weight: w})
			if len(dst) == q.TargetCount {
				break
			}
		}

		// 6) Relax outgoing edges.
		for _, nb := range g.OutNeighbors(u) {
			ew := g.EdgeWeight(nb.Edge)
			if debugAssertions && alg.Less(ew, zero) {
				panic(fmt.Sprintf("dijkstra: negative weight %v on edge %d", ew, nb.Edge))
			}
			candidate := alg.Add(w, ew)
			slot := d.store.Ptr(nb.Node)
			if alg.Less(candidate, *slot) {
				*slot = candidate
				d.queue.Insert(candidate, nb.Node)
			}
		}

		// 7) Resource budgets.
		storeSize, queueSize := d.store.Size(), d.queue.Len()
		rec.RecordHeapSize(queueSize)
		rec.RecordDistanceArraySize(storeSize)
		if storeSize > q.MaxNodeWeights {
			exhaustiveness = PartialNodeWeights
			break
		} else if queueSize > q.MaxHeapSize {
			exhaustiveness = PartialHeap
			break
		}
	}

	// 8) Finalize: leave the engine reusable on every exit path.
	d.queue.Clear()
	d.store.Clear()
	rec.FinishDijkstra()

	return dst, Status[P]{Exhaustiveness: exhaustiveness, Performance: rec}
}

// checkPreconditions panics on contract violations. Only called in
// lvpathdebug builds.
func (d *Dijkstra[W, P]) checkPreconditions(g graph.Graph[W], q Query[W]) {
	if g.NodeCount() > d.nodes {
		panic(fmt.Sprintf("dijkstra: graph has %d nodes, engine sized for %d", g.NodeCount(), d.nodes))
	}
	if int(q.Source) >= d.nodes {
		panic(fmt.Sprintf("dijkstra: source %d out of range [0,%d)", q.Source, d.nodes))
	}
	if d.queue.Len() != 0 {
		panic("dijkstra: queue not empty at search start")
	}
}

package graph

import (
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/katalvlaran/lvpath/weight"
)

// Static is an immutable graph in compressed-sparse-row layout.
//
// Edge ids are positions in the CSR neighbor array: all edges leaving node 0
// first (in insertion order), then node 1, and so on.
type Static[W any] struct {
	offsets []int      // len = nodes+1; out-edges of n are adj[offsets[n]:offsets[n+1]]
	adj     []Neighbor // destination and edge id per CSR slot
	weights []W        // weight per edge id
}

// Compile-time check that *Static satisfies the navigation contract.
var _ Graph[int64] = (*Static[int64])(nil)

// NodeCount returns the number of nodes.
func (g *Static[W]) NodeCount() int { return len(g.offsets) - 1 }

// EdgeCount returns the number of edges.
func (g *Static[W]) EdgeCount() int { return len(g.adj) }

// OutNeighbors returns the outgoing edges of n without allocating.
func (g *Static[W]) OutNeighbors(n NodeID) []Neighbor {
	return g.adj[g.offsets[n]:g.offsets[n+1]]
}

// OutDegree returns the number of edges leaving n.
func (g *Static[W]) OutDegree(n NodeID) int {
	return g.offsets[n+1] - g.offsets[n]
}

// EdgeWeight returns the weight of e.
func (g *Static[W]) EdgeWeight(e EdgeID) W { return g.weights[e] }

// EdgeEndpoints returns the source and destination of e.
// Complexity: O(log V).
func (g *Static[W]) EdgeEndpoints(e EdgeID) (from, to NodeID) {
	// offsets is non-decreasing; the source is the last node whose first
	// edge slot is <= e.
	i := sort.Search(len(g.offsets), func(i int) bool { return g.offsets[i] > int(e) })

	return NodeID(i - 1), g.adj[e].Node
}

// Nodes yields every node id in ascending order.
func (g *Static[W]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for n := 0; n < g.NodeCount(); n++ {
			if !yield(NodeID(n)) {
				return
			}
		}
	}
}

// Edges yields every edge in edge-id order.
func (g *Static[W]) Edges() iter.Seq2[EdgeID, Edge[W]] {
	return func(yield func(EdgeID, Edge[W]) bool) {
		for n := 0; n < g.NodeCount(); n++ {
			for _, nb := range g.adj[g.offsets[n]:g.offsets[n+1]] {
				e := Edge[W]{From: NodeID(n), To: nb.Node, Weight: g.weights[nb.Edge]}
				if !yield(nb.Edge, e) {
					return
				}
			}
		}
	}
}

// BuilderOption configures a Builder.
type BuilderOption[W any] func(*Builder[W])

// WithWeightCheck makes AddEdge reject weights that are Less than alg.Zero().
func WithWeightCheck[W any](alg weight.Algebra[W]) BuilderOption[W] {
	return func(b *Builder[W]) { b.alg = alg }
}

// WithEdgeCapacity pre-sizes the edge buffer.
func WithEdgeCapacity[W any](n int) BuilderOption[W] {
	return func(b *Builder[W]) {
		if n > 0 {
			b.edges = make([]Edge[W], 0, n)
		}
	}
}

// Builder accumulates nodes and edges and produces a Static graph.
// A Builder is not safe for concurrent use.
type Builder[W any] struct {
	nodes int
	edges []Edge[W]
	alg   weight.Algebra[W] // nil: no weight validation
}

// NewBuilder returns an empty Builder.
func NewBuilder[W any](opts ...BuilderOption[W]) *Builder[W] {
	b := &Builder[W]{}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NodeCount returns the number of nodes added so far.
func (b *Builder[W]) NodeCount() int { return b.nodes }

// EdgeCount returns the number of edges added so far.
func (b *Builder[W]) EdgeCount() int { return len(b.edges) }

// AddNode appends one node and returns its id. It panics with
// ErrTooManyNodes once the node count would no longer fit a NodeID; use
// AddNodes to get an error instead.
func (b *Builder[W]) AddNode() NodeID {
	if uint64(b.nodes)+1 > math.MaxUint32 {
		panic(fmt.Sprintf("AddNode: %v", ErrTooManyNodes))
	}
	id := NodeID(b.nodes)
	b.nodes++

	return id
}

// AddNodes appends n nodes. Their ids are consecutive starting at the
// returned first id.
func (b *Builder[W]) AddNodes(n int) (NodeID, error) {
	if n < 0 || uint64(b.nodes)+uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("AddNodes(%d): %w", n, ErrTooManyNodes)
	}
	first := NodeID(b.nodes)
	b.nodes += n

	return first, nil
}

// AddEdge appends the directed edge from→to with weight w.
func (b *Builder[W]) AddEdge(from, to NodeID, w W) error {
	if int(from) >= b.nodes || int(to) >= b.nodes {
		return fmt.Errorf("AddEdge(%d→%d): %w", from, to, ErrNodeOutOfRange)
	}
	if b.alg != nil && b.alg.Less(w, b.alg.Zero()) {
		return fmt.Errorf("AddEdge(%d→%d): weight=%v: %w", from, to, w, ErrNegativeWeight)
	}
	b.edges = append(b.edges, Edge[W]{From: from, To: to, Weight: w})

	return nil
}

// AddUndirectedEdge appends both u→v and v→u with weight w.
func (b *Builder[W]) AddUndirectedEdge(u, v NodeID, w W) error {
	if err := b.AddEdge(u, v, w); err != nil {
		return err
	}

	return b.AddEdge(v, u, w)
}

// Build compacts the collected edges into a Static graph. The Builder may
// be reused afterwards; later additions do not affect the returned graph.
//
// Complexity: O(V + E) time (counting sort by source), O(V + E) space.
func (b *Builder[W]) Build() *Static[W] {
	g := &Static[W]{
		offsets: make([]int, b.nodes+1),
		adj:     make([]Neighbor, len(b.edges)),
		weights: make([]W, len(b.edges)),
	}

	// 1) Count out-degrees, shifted by one so the prefix sum yields offsets.
	for _, e := range b.edges {
		g.offsets[e.From+1]++
	}
	for i := 1; i < len(g.offsets); i++ {
		g.offsets[i] += g.offsets[i-1]
	}

	// 2) Stable placement: edges keep insertion order within their source.
	next := make([]int, b.nodes)
	copy(next, g.offsets[:b.nodes])
	for _, e := range b.edges {
		slot := next[e.From]
		next[e.From]++
		g.adj[slot] = Neighbor{Edge: EdgeID(slot), Node: e.To}
		g.weights[slot] = e.Weight
	}

	return g
}

// Package dijkstra_test contains unit tests for the search engine. They cover
// basic distances, target handling, distance bounds, resource budgets, engine
// reuse across every store and queue realization, performance counters, and a
// cross-check against gonum's Dijkstra on seeded random graphs.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/pq"
	"github.com/katalvlaran/lvpath/store"
	"github.com/katalvlaran/lvpath/target"
	"github.com/katalvlaran/lvpath/weight"
)

var alg = weight.Int64()

type dist = dijkstra.Distance[int64]

// buildGraph returns a Static graph with n nodes and the given directed edges.
func buildGraph(t testing.TB, n int, edges ...graph.Edge[int64]) *graph.Static[int64] {
	t.Helper()
	b := graph.NewBuilder(graph.WithWeightCheck[int64](alg))
	_, err := b.AddNodes(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e.From, e.To, e.Weight))
	}
	return b.Build()
}

// edge is shorthand for a directed weighted edge.
func edge(from, to graph.NodeID, w int64) graph.Edge[int64] {
	return graph.Edge[int64]{From: from, To: to, Weight: w}
}

// diamond is 0→1(2), 1→2(2), 0→2(5).
func diamond(t testing.TB) *graph.Static[int64] {
	return buildGraph(t, 3, edge(0, 1, 2), edge(1, 2, 2), edge(0, 2, 5))
}

// engines enumerates every store × queue combination.
func engines(t testing.TB, g graph.Graph[int64]) map[string]*dijkstra.Dijkstra[int64, *perf.Counter] {
	t.Helper()
	out := make(map[string]*dijkstra.Dijkstra[int64, *perf.Counter])
	for _, sk := range []store.Kind{store.KindEpoch, store.KindDense, store.KindSparse} {
		for _, qk := range []pq.Kind{pq.KindBinary, pq.KindStd} {
			d, err := dijkstra.New[int64, *perf.Counter](g, alg, dijkstra.WithStore(sk), dijkstra.WithQueue(qk))
			require.NoError(t, err)
			out[sk.String()+"/"+qk.String()] = d
		}
	}
	return out
}

// requireIdle asserts the engine left no residue behind.
func requireIdle(t *testing.T, d *dijkstra.Dijkstra[int64, *perf.Counter]) {
	t.Helper()
	require.Zero(t, d.Queue().Len(), "queue must be empty after a search")
	for n := 0; n < d.NodeCount(); n++ {
		require.Equal(t, alg.Infinity(), d.Store().Get(graph.NodeID(n)), "node %d", n)
	}
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := dijkstra.New[int64, perf.Noop](nil, alg)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.New[int64, perf.Noop](diamond(t), nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilAlgebra)

	_, err = dijkstra.New[int64, perf.Noop](diamond(t), alg, dijkstra.WithStore(store.Kind(42)))
	assert.ErrorIs(t, err, store.ErrUnknownKind)

	_, err = dijkstra.NewWith[int64, perf.Noop](alg, 3, nil, pq.NewBinaryHeap[int64](alg, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNilStructure)

	_, err = dijkstra.NewWith[int64, perf.Noop](nil, 3, store.NewDense[int64](alg, 3), pq.NewBinaryHeap[int64](alg, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNilAlgebra)

	// Options validate when New applies them.
	opt := dijkstra.WithQueueCapacity(-1)
	assert.Panics(t, func() { _, _ = dijkstra.New[int64, perf.Noop](diamond(t), alg, opt) })
}

func TestExhaustiveness_String(t *testing.T) {
	assert.Equal(t, "Complete", dijkstra.Complete.String())
	assert.Equal(t, "PartialNodeWeights", dijkstra.PartialNodeWeights.String())
	assert.Equal(t, "PartialHeap", dijkstra.PartialHeap.String())
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPathLens_SingleTarget(t *testing.T) {
	g := diamond(t)
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	q := dijkstra.DefaultQuery[int64](alg, 0, target.NewSet(3, 2))
	q.TargetCount = 1
	q.MaxWeight = 6
	got, status := d.ShortestPathLens(g, q, nil, perf.Noop{})
	assert.Equal(t, []dist{{Node: 2, Weight: 4}}, got)
	assert.Equal(t, dijkstra.Complete, status.Exhaustiveness)
}

func TestShortestPathLens_Cycle(t *testing.T) {
	g := buildGraph(t, 3, edge(0, 1, 2), edge(1, 2, 2), edge(2, 0, 5))
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	q := dijkstra.DefaultQuery[int64](alg, 0, target.NewSet(3, 2))
	q.TargetCount = 1
	q.MaxWeight = 6
	got, status := d.ShortestPathLens(g, q, nil, perf.Noop{})
	assert.Equal(t, []dist{{Node: 2, Weight: 4}}, got)
	assert.Equal(t, dijkstra.Complete, status.Exhaustiveness)
}

// TestShortestPathLens_RepeatedCalls replays one engine over changing
// sources and targets; each call must be independent of the previous one.
func TestShortestPathLens_RepeatedCalls(t *testing.T) {
	g := diamond(t)
	for name, d := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			var buf []dist
			run := func(src graph.NodeID, targets target.Set) ([]dist, dijkstra.Exhaustiveness) {
				q := dijkstra.DefaultQuery[int64](alg, src, targets)
				q.TargetCount = 1
				q.MaxWeight = 6
				var st dijkstra.Status[*perf.Counter]
				buf, st = d.ShortestPathLens(g, q, buf, perf.NewCounter())
				requireIdle(t, d)
				return buf, st.Exhaustiveness
			}

			targets := target.NewSet(3, 2)
			got, ex := run(0, targets)
			assert.Equal(t, []dist{{2, 4}}, got)
			assert.Equal(t, dijkstra.Complete, ex)

			got, _ = run(0, targets)
			assert.Equal(t, []dist{{2, 4}}, got)

			got, _ = run(1, targets)
			assert.Equal(t, []dist{{2, 2}}, got)

			got, _ = run(2, targets)
			assert.Equal(t, []dist{{2, 0}}, got)

			got, ex = run(2, target.NewSet(3, 1))
			assert.Empty(t, got)
			assert.Equal(t, dijkstra.Complete, ex)
		})
	}
}

func TestShortestPathLens_TargetCount(t *testing.T) {
	// 0→1(1), 0→2(2), 0→3(3)
	g := buildGraph(t, 4, edge(0, 1, 1), edge(0, 2, 2), edge(0, 3, 3))
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	q := dijkstra.DefaultQuery[int64](alg, 0, target.NewSet(4, 1, 2, 3))
	q.TargetCount = 1
	got, _ := d.ShortestPathLens(g, q, nil, perf.Noop{})
	assert.Equal(t, []dist{{1, 1}}, got)

	q.TargetCount = 2
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Equal(t, []dist{{1, 1}, {2, 2}}, got)

	q.TargetCount = 0
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Equal(t, []dist{{1, 1}, {2, 2}, {3, 3}}, got)

	q.TargetCount = -1
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Len(t, got, 3)
}

// TestShortestPathLens_TargetCountEqualDistances: 0→1(1), 0→2(1) with a tail
// 1→3(1), 2→4(1), 3→5(1). Targets 1 and 2 tie at distance 1; with a count of
// one the search stops on the first pop of a target.
func TestShortestPathLens_TargetCountEqualDistances(t *testing.T) {
	g := buildGraph(t, 6,
		edge(0, 1, 1), edge(0, 2, 1),
		edge(1, 3, 1), edge(2, 4, 1), edge(3, 5, 1),
	)
	for name, d := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			q := dijkstra.DefaultQuery[int64](alg, 0, target.NewSet(6, 1, 2))
			q.TargetCount = 1
			got, st := d.ShortestPathLens(g, q, nil, perf.NewCounter())
			requireIdle(t, d)

			require.Len(t, got, 1)
			assert.Equal(t, dist{1, 1}, got[0])
			assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)

			// Pops: (0,0) then (1,1). Nodes 2..5 are never finalized.
			it, ok := st.Performance.Iterations()
			require.True(t, ok)
			assert.Equal(t, uint64(2), it)

			// The same query without a count walks the whole tail.
			q.TargetCount = 0
			got, st = d.ShortestPathLens(g, q, got, perf.NewCounter())
			assert.Equal(t, []dist{{1, 1}, {2, 1}}, got)
			it, _ = st.Performance.Iterations()
			assert.Equal(t, uint64(6), it)
		})
	}
}

func TestShortestPathLens_ForbidSourceTarget(t *testing.T) {
	g := diamond(t)
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	q := dijkstra.DefaultQuery[int64](alg, 0, target.All{})
	got, _ := d.ShortestPathLens(g, q, nil, perf.Noop{})
	assert.Equal(t, []dist{{0, 0}, {1, 2}, {2, 4}}, got)

	q.ForbidSourceTarget = true
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Equal(t, []dist{{1, 2}, {2, 4}}, got)

	// Only the source is a target: nothing is reported.
	q.Targets = target.Single(0)
	got, st := d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Empty(t, got)
	assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)
}

func TestShortestPathLens_NilTargets(t *testing.T) {
	g := diamond(t)
	d, err := dijkstra.New[int64, *perf.Counter](g, alg)
	require.NoError(t, err)

	got, st := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, nil), nil, perf.NewCounter())
	assert.Empty(t, got)
	assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)
	it, _ := st.Performance.Iterations()
	// (0,0) (2,1) (4,2) and the stale (5,2): the search still explores.
	assert.Equal(t, uint64(4), it)
}

// TestShortestPathLens_UndirectedTriangle: A-B(1), B-C(2), A-C(5).
func TestShortestPathLens_UndirectedTriangle(t *testing.T) {
	b := graph.NewBuilder[int64]()
	_, _ = b.AddNodes(3)
	require.NoError(t, b.AddUndirectedEdge(0, 1, 1))
	require.NoError(t, b.AddUndirectedEdge(1, 2, 2))
	require.NoError(t, b.AddUndirectedEdge(0, 2, 5))
	g := b.Build()

	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)
	got, _ := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), nil, perf.Noop{})
	assert.Equal(t, []dist{{0, 0}, {1, 1}, {2, 3}}, got)
}

// TestShortestPathLens_MediumDirected: A→B(2), A→C(1), C→B(1), B→D(3), C→D(5).
func TestShortestPathLens_MediumDirected(t *testing.T) {
	const a, b, c, dd = 0, 1, 2, 3
	g := buildGraph(t, 4, edge(a, b, 2), edge(a, c, 1), edge(c, b, 1), edge(b, dd, 3), edge(c, dd, 5))
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	got, _ := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, a, target.All{}), nil, perf.Noop{})
	assert.Equal(t, []dist{{a, 0}, {c, 1}, {b, 2}, {dd, 5}}, got)
}

func TestShortestPathLens_TieBreakByNode(t *testing.T) {
	g := buildGraph(t, 4, edge(0, 3, 1), edge(0, 2, 1), edge(0, 1, 1))
	for name, d := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			q := dijkstra.DefaultQuery[int64](alg, 0, target.All{})
			q.ForbidSourceTarget = true
			got, _ := d.ShortestPathLens(g, q, nil, perf.NewCounter())
			assert.Equal(t, []dist{{1, 1}, {2, 1}, {3, 1}}, got)
		})
	}
}

func TestShortestPathLens_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1)
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	got, st := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), nil, perf.Noop{})
	assert.Equal(t, []dist{{0, 0}}, got)
	assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)
}

func TestShortestPathLens_SelfLoopZeroWeight(t *testing.T) {
	g := buildGraph(t, 2, edge(0, 0, 0), edge(0, 1, 3))
	d, err := dijkstra.New[int64, *perf.Counter](g, alg)
	require.NoError(t, err)

	got, st := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), nil, perf.NewCounter())
	assert.Equal(t, []dist{{0, 0}, {1, 3}}, got)
	it, _ := st.Performance.Iterations()
	assert.Equal(t, uint64(2), it, "the self-loop never re-queues the source")
}

func TestShortestPathLens_Unreachable(t *testing.T) {
	g := buildGraph(t, 3, edge(0, 1, 1))
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	got, st := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.Single(2)), nil, perf.Noop{})
	assert.Empty(t, got)
	assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)
}

// ------------------------------------------------------------------------
// 3. Distance bound
// ------------------------------------------------------------------------

func TestShortestPathLens_MaxWeight(t *testing.T) {
	// Line 0-1-2-3 with unit weights.
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Path(4))
	require.NoError(t, err)
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	q := dijkstra.DefaultQuery[int64](alg, 0, target.All{})
	q.MaxWeight = 1
	got, st := d.ShortestPathLens(g, q, nil, perf.Noop{})
	assert.Equal(t, []dist{{0, 0}, {1, 1}}, got)
	assert.Equal(t, dijkstra.Complete, st.Exhaustiveness, "a distance bound is not a budget abort")

	q.MaxWeight = 0
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Equal(t, []dist{{0, 0}}, got)

	q.MaxWeight = 2
	q.Targets = target.Single(3)
	got, _ = d.ShortestPathLens(g, q, got, perf.Noop{})
	assert.Empty(t, got)
}

// ------------------------------------------------------------------------
// 4. Resource budgets
// ------------------------------------------------------------------------

func TestShortestPathLens_Budgets(t *testing.T) {
	// Star: center 0 with ten leaves. After the center is expanded the store
	// holds 11 entries and the queue 10.
	g, err := builder.BuildGraph(nil, builder.Star(11))
	require.NoError(t, err)

	cases := []struct {
		name             string
		kind             store.Kind
		maxNode, maxHeap int
		want             dijkstra.Exhaustiveness
		wantLen          int
	}{
		{"epoch/node", store.KindEpoch, 3, math.MaxInt, dijkstra.PartialNodeWeights, 1},
		{"sparse/node", store.KindSparse, 3, math.MaxInt, dijkstra.PartialNodeWeights, 1},
		{"dense/node", store.KindDense, 3, math.MaxInt, dijkstra.PartialNodeWeights, 1},
		{"epoch/heap", store.KindEpoch, math.MaxInt, 3, dijkstra.PartialHeap, 1},
		{"epoch/both", store.KindEpoch, 3, 3, dijkstra.PartialNodeWeights, 1},
		{"epoch/nodeBoundary", store.KindEpoch, 11, math.MaxInt, dijkstra.Complete, 11},
		{"epoch/heapBoundary", store.KindEpoch, math.MaxInt, 10, dijkstra.Complete, 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dijkstra.New[int64, *perf.Counter](g, alg, dijkstra.WithStore(tc.kind))
			require.NoError(t, err)

			q := dijkstra.DefaultQuery[int64](alg, 0, target.All{})
			q.MaxNodeWeights, q.MaxHeapSize = tc.maxNode, tc.maxHeap
			got, st := d.ShortestPathLens(g, q, nil, perf.NewCounter())
			assert.Equal(t, tc.want, st.Exhaustiveness)
			assert.Len(t, got, tc.wantLen)
			assert.Equal(t, dist{0, 0}, got[0], "source was reported before the abort")
			requireIdle(t, d)

			// The engine is reusable after an abort.
			got, st = d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), got, perf.NewCounter())
			assert.Equal(t, dijkstra.Complete, st.Exhaustiveness)
			assert.Len(t, got, 11)
		})
	}
}

// ------------------------------------------------------------------------
// 5. Performance counters
// ------------------------------------------------------------------------

func TestShortestPathLens_PerfCounter(t *testing.T) {
	// 0→1(5), 0→2(1), 2→1(1): node 1 is queued twice, the (5,1) entry is stale.
	g := buildGraph(t, 3, edge(0, 1, 5), edge(0, 2, 1), edge(2, 1, 1))
	for name, d := range engines(t, g) {
		t.Run(name, func(t *testing.T) {
			c := perf.NewCounter()
			got, st := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), nil, c)
			require.Same(t, c, st.Performance)
			assert.Equal(t, []dist{{0, 0}, {2, 1}, {1, 2}}, got)

			it, _ := c.Iterations()
			un, _ := c.UnnecessaryHeapElements()
			assert.Equal(t, uint64(4), it)
			assert.Equal(t, uint64(1), un)
			assert.Equal(t, uint64(1), c.Searches())
			assert.Equal(t, 2, c.MaxMaxHeapSize())
			assert.Equal(t, 3, c.MaxMaxDistanceArraySize())

			// A second search on the same counter accumulates.
			d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 2, target.All{}), got, c)
			it, _ = c.Iterations()
			assert.Equal(t, uint64(6), it)
			assert.Equal(t, uint64(2), c.Searches())
		})
	}
}

// ------------------------------------------------------------------------
// 6. Monotone tentative distances
// ------------------------------------------------------------------------

// watchQueue wraps a queue and checks that every insert for a node carries
// a strictly smaller weight than the previous insert for it in this search.
type watchQueue struct {
	pq.Queue[int64]
	t    *testing.T
	last map[graph.NodeID]int64
}

func (w *watchQueue) Insert(wt int64, n graph.NodeID) {
	if prev, ok := w.last[n]; ok {
		assert.Less(w.t, wt, prev, "node %d re-queued without improvement", n)
	}
	w.last[n] = wt
	w.Queue.Insert(wt, n)
}

func (w *watchQueue) Clear() {
	clear(w.last)
	w.Queue.Clear()
}

func TestShortestPathLens_MonotoneInserts(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
		builder.RandomSparse(60, 0.1),
	)
	require.NoError(t, err)

	n := g.NodeCount()
	wq := &watchQueue{Queue: pq.NewBinaryHeap[int64](alg, 0), t: t, last: map[graph.NodeID]int64{}}
	d, err := dijkstra.NewWith[int64, *perf.Counter](alg, n, store.NewSparse[int64](alg, n), wq)
	require.NoError(t, err)

	var buf []dist
	for src := 0; src < n; src += 7 {
		buf, _ = d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, graph.NodeID(src), target.All{}), buf, perf.NewCounter())
		for i := 1; i < len(buf); i++ {
			require.LessOrEqual(t, buf[i-1].Weight, buf[i].Weight, "results out of order at %d", i)
		}
	}
}

// ------------------------------------------------------------------------
// 7. Cross-check against gonum
// ------------------------------------------------------------------------

func TestShortestPathLens_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	for round := 0; round < 8; round++ {
		n := 20 + rng.Intn(40)
		gg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			gg.AddNode(simple.Node(i))
		}
		for k := 0; k < 3*n; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			gg.SetWeightedEdge(gg.NewWeightedEdge(simple.Node(u), simple.Node(v), float64(rng.Intn(10))))
		}

		g, m, err := graph.FromGonum(gg)
		require.NoError(t, err)
		falg := weight.Float64()

		for _, sk := range []store.Kind{store.KindEpoch, store.KindDense, store.KindSparse} {
			d, err := dijkstra.New[float64, perf.Noop](g, falg, dijkstra.WithStore(sk))
			require.NoError(t, err)

			var buf []dijkstra.Distance[float64]
			for src := 0; src < n; src += 5 {
				oracle := path.DijkstraFrom(simple.Node(src), gg)
				buf, _ = d.ShortestPathLens(g, dijkstra.DefaultQuery[float64](falg, m.Dense[int64(src)], target.All{}), buf, perf.Noop{})

				reached := make(map[int64]float64, len(buf))
				for _, r := range buf {
					reached[m.Gonum[r.Node]] = r.Weight
				}
				for id := int64(0); id < int64(n); id++ {
					want := oracle.WeightTo(id)
					got, ok := reached[id]
					if math.IsInf(want, 1) {
						assert.False(t, ok, "round %d %s: node %d should be unreachable from %d", round, sk, id, src)
						continue
					}
					assert.True(t, ok, "round %d %s: node %d missing from %d", round, sk, id, src)
					assert.Equal(t, want, got, "round %d %s: %d→%d", round, sk, src, id)
				}
			}
		}
	}
}

// ------------------------------------------------------------------------
// 8. Custom weight algebra
// ------------------------------------------------------------------------

// hopLen orders paths by hop count first, then by length.
type hopLen struct{ hops, length int64 }

type hopLenAlgebra struct{}

func (hopLenAlgebra) Zero() hopLen { return hopLen{} }
func (hopLenAlgebra) Infinity() hopLen {
	return hopLen{hops: math.MaxInt64, length: math.MaxInt64}
}
func (a hopLenAlgebra) Add(x, y hopLen) hopLen {
	inf := a.Infinity()
	if x == inf || y == inf {
		return inf
	}
	return hopLen{hops: x.hops + y.hops, length: x.length + y.length}
}
func (hopLenAlgebra) Less(x, y hopLen) bool {
	if x.hops != y.hops {
		return x.hops < y.hops
	}
	return x.length < y.length
}

func TestShortestPathLens_CustomAlgebra(t *testing.T) {
	b := graph.NewBuilder(graph.WithWeightCheck[hopLen](hopLenAlgebra{}))
	_, _ = b.AddNodes(3)
	require.NoError(t, b.AddEdge(0, 2, hopLen{1, 10}))
	require.NoError(t, b.AddEdge(0, 1, hopLen{1, 1}))
	require.NoError(t, b.AddEdge(1, 2, hopLen{1, 1}))
	g := b.Build()

	d, err := dijkstra.NewDefault[hopLen](g, hopLenAlgebra{})
	require.NoError(t, err)
	got, _ := d.ShortestPathLens(g, dijkstra.DefaultQuery[hopLen](hopLenAlgebra{}, 0, target.Single(2)), nil, perf.Noop{})
	assert.Equal(t, []dijkstra.Distance[hopLen]{{Node: 2, Weight: hopLen{1, 10}}}, got)
}

// ------------------------------------------------------------------------
// 9. Alternative target realizations
// ------------------------------------------------------------------------

func TestShortestPathLens_TargetRealizations(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Path(6))
	require.NoError(t, err)
	d, err := dijkstra.NewDefault[int64](g, alg)
	require.NoError(t, err)

	want := []dist{{2, 2}, {5, 5}}
	for name, tm := range map[string]target.Map{
		"set":     target.NewSet(6, 2, 5),
		"bitset":  target.NewBitset(6, 2, 5),
		"roaring": target.NewRoaring(2, 5),
		"func":    target.Func(func(n graph.NodeID) bool { return n == 2 || n == 5 }),
	} {
		got, _ := d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, tm), nil, perf.Noop{})
		assert.Equal(t, want, got, name)
	}
}

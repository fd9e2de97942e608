package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/pq"
	"github.com/katalvlaran/lvpath/store"
	"github.com/katalvlaran/lvpath/target"
)

// benchGrid is a 100×100 grid with weights in [1,9].
func benchGrid(b *testing.B) *graph.Static[int64] {
	b.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.Grid(100, 100),
	)
	require.NoError(b, err)
	return g
}

// BenchmarkShortestPathLens_Local runs short-range queries, where the store
// clear cost dominates for the dense realization.
func BenchmarkShortestPathLens_Local(b *testing.B) {
	g := benchGrid(b)
	for _, sk := range []store.Kind{store.KindEpoch, store.KindDense, store.KindSparse} {
		b.Run(sk.String(), func(b *testing.B) {
			d, err := dijkstra.New[int64, perf.Noop](g, alg, dijkstra.WithStore(sk))
			require.NoError(b, err)
			var dst []dijkstra.Distance[int64]
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q := dijkstra.DefaultQuery[int64](alg, graph.NodeID(i%g.NodeCount()), target.All{})
				q.MaxWeight = 15
				dst, _ = d.ShortestPathLens(g, q, dst, perf.Noop{})
			}
		})
	}
}

// BenchmarkShortestPathLens_Full runs one-to-all queries per queue kind.
func BenchmarkShortestPathLens_Full(b *testing.B) {
	g := benchGrid(b)
	for _, qk := range []pq.Kind{pq.KindBinary, pq.KindStd} {
		b.Run(qk.String(), func(b *testing.B) {
			d, err := dijkstra.New[int64, perf.Noop](g, alg, dijkstra.WithQueue(qk))
			require.NoError(b, err)
			var dst []dijkstra.Distance[int64]
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dst, _ = d.ShortestPathLens(g, dijkstra.DefaultQuery[int64](alg, 0, target.All{}), dst, perf.Noop{})
			}
		})
	}
}

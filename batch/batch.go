package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/target"
	"github.com/katalvlaran/lvpath/weight"
)

// ErrBadWorkers is the panic value when WithWorkers is applied with a count
// below one.
var ErrBadWorkers = errors.New("batch: workers must be ≥ 1")

// Result is the outcome of one query, at the index of that query.
type Result[W any] struct {
	Source         graph.NodeID
	Distances      []dijkstra.Distance[W]
	Exhaustiveness dijkstra.Exhaustiveness
	Elapsed        time.Duration
}

// Options configures a Runner.
//
// Workers       – parallel engines. Default runtime.GOMAXPROCS(0).
// EngineOptions – forwarded to dijkstra.New for every engine.
// Logger        – structured logger. Default discards.
// Metrics       – optional Prometheus collector; nil disables.
type Options struct {
	Workers       int
	EngineOptions []dijkstra.Option
	Logger        *slog.Logger
	Metrics       *metrics.Collector
}

// Option represents a functional option for configuring a Runner.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the number of parallel engines. Applying it with n < 1
// panics, like the engine's own options.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithEngineOptions forwards opts to every engine.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.EngineOptions = append(o.EngineOptions, opts...)
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics reports every query to c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) {
		o.Metrics = c
	}
}

// worker is one engine and the counter it records into.
type worker[W any] struct {
	engine  *dijkstra.Dijkstra[W, *perf.Counter]
	counter *perf.Counter
}

// Runner executes query batches over one graph.
// Run may be called repeatedly but not concurrently.
type Runner[W any] struct {
	g       graph.Graph[W]
	cfg     Options
	workers []*worker[W]
}

// NewRunner allocates cfg.Workers engines for g.
func NewRunner[W any](g graph.Graph[W], alg weight.Algebra[W], opts ...Option) (*Runner[W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Runner[W]{g: g, cfg: cfg, workers: make([]*worker[W], cfg.Workers)}
	for i := range r.workers {
		e, err := dijkstra.New[W, *perf.Counter](g, alg, cfg.EngineOptions...)
		if err != nil {
			return nil, fmt.Errorf("batch: engine %d: %w", i, err)
		}
		r.workers[i] = &worker[W]{engine: e, counter: perf.NewCounter()}
	}

	return r, nil
}

// Workers returns the number of engines.
func (r *Runner[W]) Workers() int { return len(r.workers) }

// Run executes every query and returns one Result per query, in input order,
// plus the merged performance counters of this run.
//
// On cancellation the returned slice still has len(queries) entries; the
// ones never started hold a zero Result. The error is the context's.
func (r *Runner[W]) Run(ctx context.Context, queries []dijkstra.Query[W]) ([]Result[W], *perf.Counter, error) {
	start := time.Now()
	results := make([]Result[W], len(queries))

	// Idle engines; a task holds one for exactly one query.
	pool := make(chan *worker[W], len(r.workers))
	for _, w := range r.workers {
		w.counter = perf.NewCounter()
		pool <- w
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(len(r.workers))
	for i := range queries {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := <-pool
			defer func() { pool <- w }()

			results[i] = r.runOne(w, queries[i])
			return nil
		})
	}
	// gctx is always done after Wait; only the caller's ctx tells.
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}

	counters := make([]*perf.Counter, len(r.workers))
	for i, w := range r.workers {
		counters[i] = w.counter
	}
	total := perf.Sum(counters...)

	r.cfg.Logger.Info("batch finished",
		slog.Int("queries", len(queries)),
		slog.Int("workers", len(r.workers)),
		slog.Duration("elapsed", time.Since(start)),
		slog.Uint64("searches", total.Searches()),
		slog.String("perf", total.String()),
		slog.Any("error", err),
	)

	return results, total, err
}

// runOne executes q on w and reports it.
func (r *Runner[W]) runOne(w *worker[W], q dijkstra.Query[W]) Result[W] {
	before := w.counter.Snapshot()
	t0 := time.Now()
	dst, st := w.engine.ShortestPathLens(r.g, q, nil, w.counter)
	elapsed := time.Since(t0)

	if m := r.cfg.Metrics; m != nil {
		m.Observe(st.Exhaustiveness, elapsed)
		m.AddWork(before, w.counter.Snapshot())
	}
	r.cfg.Logger.Debug("query done",
		slog.Uint64("source", uint64(q.Source)),
		slog.Int("targets", len(dst)),
		slog.String("exhaustiveness", st.Exhaustiveness.String()),
		slog.Duration("elapsed", elapsed),
	)

	return Result[W]{Source: q.Source, Distances: dst, Exhaustiveness: st.Exhaustiveness, Elapsed: elapsed}
}

// ForSources builds one DefaultQuery per source, all sharing targets.
// Each query is passed through adjust, when non-nil, before it is stored.
func ForSources[W any](alg weight.Algebra[W], sources []graph.NodeID, targets target.Map, adjust func(*dijkstra.Query[W])) []dijkstra.Query[W] {
	qs := make([]dijkstra.Query[W], len(sources))
	for i, s := range sources {
		qs[i] = dijkstra.DefaultQuery(alg, s, targets)
		if adjust != nil {
			adjust(&qs[i])
		}
	}
	return qs
}

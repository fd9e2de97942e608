package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/batch"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/target"
	"github.com/katalvlaran/lvpath/weight"
)

// --- batch ---

func batchCmd() *cobra.Command {
	var (
		graphPath, format string
		sources, targets  []uint
		random            int
		seed              int64
		workers           int
		metricsOut        string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many queries in parallel and print merged counters",
		Example: `  spbench batch --graph grid.gr.zst --random 1000 --workers 8
  spbench batch --graph road.gr.gz --source 1 --source 5 --target 99 --metrics-out spbench.prom`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("graph") {
				cfg.Graph.Path = graphPath
			}
			if cmd.Flags().Changed("format") {
				cfg.Graph.Format = format
			}
			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if cmd.Flags().Changed("metrics-out") {
				cfg.Metrics.Out = metricsOut
			}

			g, err := loadGraph(cfg.Graph.Path, cfg.Graph.Format)
			if err != nil {
				return err
			}
			srcs, err := pickSources(g, sources, random, seed)
			if err != nil {
				return err
			}
			engineOpts, err := cfg.Engine.EngineOptions()
			if err != nil {
				return err
			}

			var tm target.Map = target.All{}
			if len(targets) > 0 {
				rt := target.NewRoaring()
				for _, t := range targets {
					n, err := nodeArg(g, t, errTargetOutOfRange)
					if err != nil {
						return err
					}
					rt.Add(n)
				}
				tm = rt
			}

			reg := prometheus.NewRegistry()
			m := metrics.New(cfg.Metrics.Namespace)
			reg.MustRegister(m)

			opts := []batch.Option{
				batch.WithEngineOptions(engineOpts...),
				batch.WithLogger(logger),
				batch.WithMetrics(m),
			}
			if cfg.Batch.Workers > 0 {
				opts = append(opts, batch.WithWorkers(cfg.Batch.Workers))
			}
			alg := weight.Int64()
			r, err := batch.NewRunner[int64](g, alg, opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			queries := batch.ForSources[int64](alg, srcs, tm, cfg.Query.Apply)
			start := time.Now()
			results, total, err := r.Run(ctx, queries)
			elapsed := time.Since(start)

			byStatus := map[dijkstra.Exhaustiveness]int{}
			found := 0
			for _, res := range results {
				byStatus[res.Exhaustiveness]++
				found += len(res.Distances)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "queries: %d  workers: %d  elapsed: %s\n", len(queries), r.Workers(), elapsed.Round(time.Microsecond))
			fmt.Fprintf(out, "targets reached: %d\n", found)
			for _, ex := range []dijkstra.Exhaustiveness{dijkstra.Complete, dijkstra.PartialNodeWeights, dijkstra.PartialHeap} {
				fmt.Fprintf(out, "%s: %d\n", ex, byStatus[ex])
			}
			fmt.Fprintf(out, "perf: %s\n", total)

			if cfg.Metrics.Out != "" {
				if werr := prometheus.WriteToTextfile(cfg.Metrics.Out, reg); werr != nil {
					return werr
				}
				logger.Info("metrics written", "path", cfg.Metrics.Out)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&graphPath, "graph", "", "graph file (overrides graph.path)")
	f.StringVar(&format, "format", "sp", "graph format (sp, weighted, topology)")
	f.UintSliceVar(&sources, "source", nil, "source node, repeatable")
	f.UintSliceVar(&targets, "target", nil, "target node, repeatable (default: all nodes)")
	f.IntVar(&random, "random", 0, "add this many uniformly random sources")
	f.Int64Var(&seed, "seed", 1, "RNG seed for --random")
	f.IntVar(&workers, "workers", 0, "parallel engines (overrides batch.workers; 0: GOMAXPROCS)")
	f.StringVar(&metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")
	return cmd
}

// pickSources validates explicit sources and appends random ones.
func pickSources(g *graph.Static[int64], explicit []uint, random int, seed int64) ([]graph.NodeID, error) {
	if random < 0 {
		return nil, fmt.Errorf("--random %d: %w", random, errNegativeRandom)
	}
	out := make([]graph.NodeID, 0, len(explicit)+random)
	for _, s := range explicit {
		n, err := nodeArg(g, s, errSourceOutOfRange)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if random > 0 && g.NodeCount() > 0 {
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < random; i++ {
			out = append(out, graph.NodeID(rng.Intn(g.NodeCount())))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sources (use --source or --random)")
	}
	return out, nil
}

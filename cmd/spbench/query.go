package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/perf"
	"github.com/katalvlaran/lvpath/target"
	"github.com/katalvlaran/lvpath/weight"
)

// --- query ---

func queryCmd() *cobra.Command {
	var (
		graphPath, format string
		source            uint32
		targets           []uint
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run one single-source query and print distances",
		Example: `  spbench query --graph grid.gr.zst --source 0 --target 99
  SPBENCH_QUERY_MAX_WEIGHT=20 spbench query --graph grid.gr.zst --source 42`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("graph") {
				cfg.Graph.Path = graphPath
			}
			if cmd.Flags().Changed("format") {
				cfg.Graph.Format = format
			}
			g, err := loadGraph(cfg.Graph.Path, cfg.Graph.Format)
			if err != nil {
				return err
			}
			src, err := nodeArg(g, uint(source), errSourceOutOfRange)
			if err != nil {
				return err
			}
			engineOpts, err := cfg.Engine.EngineOptions()
			if err != nil {
				return err
			}

			alg := weight.Int64()
			d, err := dijkstra.New[int64, *perf.Counter](g, alg, engineOpts...)
			if err != nil {
				return err
			}

			var tm target.Map = target.All{}
			if len(targets) > 0 {
				bs := target.NewBitset(g.NodeCount())
				for _, t := range targets {
					n, err := nodeArg(g, t, errTargetOutOfRange)
					if err != nil {
						return err
					}
					bs.Add(n)
				}
				tm = bs
			}
			q := dijkstra.DefaultQuery[int64](alg, src, tm)
			cfg.Query.Apply(&q)

			start := time.Now()
			dst, status := d.ShortestPathLens(g, q, nil, perf.NewCounter())
			elapsed := time.Since(start)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NODE\tDISTANCE")
			for _, r := range dst {
				fmt.Fprintf(w, "%d\t%d\n", r.Node, r.Weight)
			}
			if err = w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", status.Exhaustiveness)
			fmt.Fprintf(cmd.OutOrStdout(), "perf: %s\n", status.Performance)

			logger.Info("query finished", "source", src, "targets", len(dst), "elapsed", elapsed)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&graphPath, "graph", "", "graph file (overrides graph.path)")
	f.StringVar(&format, "format", "sp", "graph format (sp, weighted, topology)")
	f.Uint32Var(&source, "source", 0, "source node (0-based)")
	f.UintSliceVar(&targets, "target", nil, "target node, repeatable (default: all nodes)")
	return cmd
}

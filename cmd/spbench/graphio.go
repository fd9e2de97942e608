package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvpath/dimacs"
	"github.com/katalvlaran/lvpath/graph"
)

var (
	errNoGraph          = errors.New("no graph path (use --graph or graph.path)")
	errUnknownFormat    = errors.New("unknown graph format (use: sp, weighted, topology)")
	errSourceOutOfRange = errors.New("source out of range")
	errTargetOutOfRange = errors.New("target out of range")
	errNegativeRandom   = errors.New("--random must be ≥ 0")
)

// loadGraph opens path (decompressing by extension) and parses it.
func loadGraph(path, format string) (*graph.Static[int64], error) {
	if path == "" {
		return nil, errNoGraph
	}
	rc, err := dimacs.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var g *graph.Static[int64]
	switch format {
	case "sp":
		g, err = dimacs.ReadSP(rc)
	case "weighted":
		g, err = dimacs.ReadWeighted(rc)
	case "topology":
		g, err = dimacs.ReadTopology(rc)
	default:
		return nil, fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// writeGraph serializes g in format.
func writeGraph(w io.Writer, g *graph.Static[int64], format string, comments ...string) error {
	switch format {
	case "sp":
		return dimacs.WriteSP(g, w, comments...)
	case "weighted":
		return dimacs.WriteWeighted(g, w)
	case "topology":
		return dimacs.WriteTopology[int64](g, w)
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

// nodeArg converts a flag value into a node of g. Values past the last node,
// including those beyond the NodeID range, fail with outOfRange.
func nodeArg(g *graph.Static[int64], v uint, outOfRange error) (graph.NodeID, error) {
	if v >= uint(g.NodeCount()) {
		return 0, fmt.Errorf("node %d, nodes %d: %w", v, g.NodeCount(), outOfRange)
	}
	return graph.NodeID(v), nil
}

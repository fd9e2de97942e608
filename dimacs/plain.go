package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvpath/graph"
)

// WriteTopology writes g as a "<n> <m>" header followed by one "<from> <to>"
// line per edge.
func WriteTopology[W any](g Source[W], w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for u := 0; u < g.NodeCount(); u++ {
		for _, nb := range g.OutNeighbors(graph.NodeID(u)) {
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, nb.Node); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteWeighted writes g like WriteTopology with a trailing weight column.
func WriteWeighted(g Source[int64], w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for u := 0; u < g.NodeCount(); u++ {
		for _, nb := range g.OutNeighbors(graph.NodeID(u)) {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", u, nb.Node, g.EdgeWeight(nb.Edge)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadTopology parses the WriteTopology format. Every edge gets weight 1.
func ReadTopology(r io.Reader) (*graph.Static[int64], error) {
	return readPlain(r, false)
}

// ReadWeighted parses the WriteWeighted format. Negative weights are
// rejected with graph.ErrNegativeWeight.
func ReadWeighted(r io.Reader) (*graph.Static[int64], error) {
	return readPlain(r, true)
}

func readPlain(r io.Reader, weighted bool) (*graph.Static[int64], error) {
	lr := newLineReader(r)

	// 1) Header.
	fields, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("empty input: %w", ErrMalformedHeader)
	}
	if len(fields) != 2 {
		return nil, lr.errorf(ErrMalformedHeader, "want 2 fields, got %d", len(fields))
	}
	n, err1 := parseCount(fields[0])
	m, err2 := parseCount(fields[1])
	if err1 != nil || err2 != nil {
		return nil, lr.errorf(ErrMalformedHeader, "counts %q %q", fields[0], fields[1])
	}
	b, err := newBuilder(n, m)
	if err != nil {
		return nil, lr.errorf(ErrMalformedHeader, "%v", err)
	}

	// 2) Edges.
	want := 2
	if weighted {
		want = 3
	}
	for {
		fields, ok, err = lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if len(fields) != want {
			return nil, lr.errorf(ErrMalformedLine, "want %d fields, got %d", want, len(fields))
		}
		u, errU := parseNode(fields[0], 0)
		v, errV := parseNode(fields[1], 0)
		if errU != nil || errV != nil {
			return nil, lr.errorf(ErrMalformedLine, "endpoints %q %q", fields[0], fields[1])
		}
		var wt int64 = 1
		if weighted {
			if wt, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
				return nil, lr.errorf(ErrMalformedLine, "weight %q", fields[2])
			}
		}
		if err = b.AddEdge(u, v, wt); err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
	}

	if b.EdgeCount() != m {
		return nil, fmt.Errorf("header announced %d edges, read %d: %w", m, b.EdgeCount(), ErrCountMismatch)
	}
	return b.Build(), nil
}

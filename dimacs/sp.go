package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvpath/graph"
)

// Line type letters of the SP format.
const (
	spComment = "c"
	spProblem = "p"
	spArc     = "a"
	spKind    = "sp"
)

// WriteSP writes g in the DIMACS ".gr" format with 1-based ids. Each comment
// becomes one "c" line before the problem line.
func WriteSP(g Source[int64], w io.Writer, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "%s %s\n", spComment, c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%s %s %d %d\n", spProblem, spKind, g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for u := 0; u < g.NodeCount(); u++ {
		for _, nb := range g.OutNeighbors(graph.NodeID(u)) {
			if _, err := fmt.Fprintf(bw, "%s %d %d %d\n", spArc, u+1, nb.Node+1, g.EdgeWeight(nb.Edge)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// ReadSP parses the DIMACS ".gr" format.
func ReadSP(r io.Reader) (*graph.Static[int64], error) {
	lr := newLineReader(r)
	var (
		b *graph.Builder[int64]
		m int
	)

	for {
		fields, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		switch fields[0] {
		case spComment:
			continue

		case spProblem:
			if b != nil {
				return nil, lr.errorf(ErrMalformedHeader, "duplicate problem line")
			}
			if len(fields) != 4 || fields[1] != spKind {
				return nil, lr.errorf(ErrMalformedHeader, "want \"p sp <n> <m>\"")
			}
			n, err1 := parseCount(fields[2])
			mm, err2 := parseCount(fields[3])
			if err1 != nil || err2 != nil {
				return nil, lr.errorf(ErrMalformedHeader, "counts %q %q", fields[2], fields[3])
			}
			if b, err = newBuilder(n, mm); err != nil {
				return nil, lr.errorf(ErrMalformedHeader, "%v", err)
			}
			m = mm

		case spArc:
			if b == nil {
				return nil, lr.errorf(ErrMalformedHeader, "arc before problem line")
			}
			if len(fields) != 4 {
				return nil, lr.errorf(ErrMalformedLine, "want \"a <u> <v> <w>\"")
			}
			u, errU := parseNode(fields[1], 1)
			v, errV := parseNode(fields[2], 1)
			if errU != nil || errV != nil {
				return nil, lr.errorf(ErrMalformedLine, "endpoints %q %q", fields[1], fields[2])
			}
			wt, err := strconv.ParseInt(fields[3], 10, 64)
			if err != nil {
				return nil, lr.errorf(ErrMalformedLine, "weight %q", fields[3])
			}
			if err = b.AddEdge(u, v, wt); err != nil {
				return nil, fmt.Errorf("line %d: %w", lr.line, err)
			}

		default:
			return nil, lr.errorf(ErrMalformedLine, "unknown line type %q", fields[0])
		}
	}

	if b == nil {
		return nil, fmt.Errorf("no problem line: %w", ErrMalformedHeader)
	}
	if b.EdgeCount() != m {
		return nil, fmt.Errorf("header announced %d arcs, read %d: %w", m, b.EdgeCount(), ErrCountMismatch)
	}
	return b.Build(), nil
}

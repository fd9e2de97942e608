package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/weight"
)

// maxPrealloc caps edge-buffer preallocation taken from untrusted headers.
const maxPrealloc = 1 << 20

// MaxNodes is the largest node count the readers accept from a header.
// Node arrays are allocated up front, so larger headers are rejected with
// ErrMalformedHeader. Raise it before reading bigger graphs.
var MaxNodes = 1 << 25

// Source is a graph that can be written: the navigation contract plus an
// edge count for the header.
type Source[W any] interface {
	graph.Graph[W]
	EdgeCount() int
}

// lineReader yields the whitespace-separated fields of non-blank lines.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line. ok is false at EOF or
// on a read error, which err then reports.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		fields = strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	return nil, false, lr.sc.Err()
}

// errorf wraps sentinel with the current line number.
func (lr *lineReader) errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", lr.line, fmt.Sprintf(format, args...), sentinel)
}

// parseCount parses a non-negative decimal count.
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	return int(v), err
}

// parseNode parses a node id and subtracts base (0 or 1).
func parseNode(s string, base uint64) (graph.NodeID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v < base {
		return 0, fmt.Errorf("id %d below %d", v, base)
	}
	return graph.NodeID(v - base), nil
}

// newBuilder returns a weight-checked builder with n nodes reserved.
func newBuilder(n, m int) (*graph.Builder[int64], error) {
	if n > MaxNodes {
		return nil, fmt.Errorf("node count %d exceeds MaxNodes %d", n, MaxNodes)
	}
	b := graph.NewBuilder(
		graph.WithWeightCheck[int64](weight.Int64()),
		graph.WithEdgeCapacity[int64](min(m, maxPrealloc)),
	)
	if _, err := b.AddNodes(n); err != nil {
		return nil, err
	}
	return b, nil
}

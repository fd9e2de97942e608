// Package perf provides optional instrumentation for the shortest-path
// engine.
//
// The engine is generic over its Recorder type. Instantiated with Noop, every
// hook is an empty method on a zero-size value and the search carries no
// counters. Instantiated with *Counter, it tracks:
//
//   - main-loop iterations,
//   - unnecessary heap elements (stale duplicates popped and discarded,
//     the price of having no decrease-key),
//   - the peak queue and distance-store sizes of each search, folded into
//     running maxima and sums by FinishDijkstra for later averaging.
//
// Counters merge associatively, so per-worker counters of a parallel batch
// can be combined in any grouping.
package perf

import "fmt"

// Recorder is the instrumentation hook set called by the engine.
type Recorder interface {
	// AddIteration counts one main-loop iteration.
	AddIteration()
	// AddUnnecessaryHeapElement counts one stale queue entry.
	AddUnnecessaryHeapElement()
	// RecordHeapSize observes the current queue size.
	RecordHeapSize(n int)
	// RecordDistanceArraySize observes the current distance-store size.
	RecordDistanceArraySize(n int)
	// FinishDijkstra folds the per-search peaks into the running totals.
	FinishDijkstra()
}

// Data exposes counter values. Realizations that do not collect a value
// report ok == false.
type Data interface {
	Iterations() (v uint64, ok bool)
	UnnecessaryHeapElements() (v uint64, ok bool)
}

// Noop ignores everything. Its recording methods are empty so an engine
// instantiated with Noop compiles the bookkeeping away, and its accessors
// report that no data is available.
type Noop struct{}

// AddIteration does nothing.
func (Noop) AddIteration() {}

// AddUnnecessaryHeapElement does nothing.
func (Noop) AddUnnecessaryHeapElement() {}

// RecordHeapSize does nothing.
func (Noop) RecordHeapSize(int) {}

// RecordDistanceArraySize does nothing.
func (Noop) RecordDistanceArraySize(int) {}

// FinishDijkstra does nothing.
func (Noop) FinishDijkstra() {}

// Iterations reports that no iteration count is kept.
func (Noop) Iterations() (uint64, bool) { return 0, false }

// UnnecessaryHeapElements reports that no stale-entry count is kept.
func (Noop) UnnecessaryHeapElements() (uint64, bool) { return 0, false }

// Counter collects every supported count. The zero value is ready to use.
// A Counter is not safe for concurrent use; give each worker its own and
// Merge them afterwards.
type Counter struct {
	iterations              uint64
	unnecessaryHeapElements uint64

	// peaks of the search in progress
	curMaxHeap int
	curMaxDist int

	// folded by FinishDijkstra
	maxMaxHeap int
	maxMaxDist int
	sumMaxHeap uint64
	sumMaxDist uint64
	searches   uint64
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter { return &Counter{} }

// AddIteration counts one main-loop iteration.
func (c *Counter) AddIteration() { c.iterations++ }

// AddUnnecessaryHeapElement counts one stale queue entry.
func (c *Counter) AddUnnecessaryHeapElement() { c.unnecessaryHeapElements++ }

// RecordHeapSize raises the current search's peak queue size.
func (c *Counter) RecordHeapSize(n int) {
	if n > c.curMaxHeap {
		c.curMaxHeap = n
	}
}

// RecordDistanceArraySize raises the current search's peak store size.
func (c *Counter) RecordDistanceArraySize(n int) {
	if n > c.curMaxDist {
		c.curMaxDist = n
	}
}

// FinishDijkstra folds the current peaks into the running maxima and sums
// and starts a new search.
func (c *Counter) FinishDijkstra() {
	c.maxMaxHeap = max(c.maxMaxHeap, c.curMaxHeap)
	c.maxMaxDist = max(c.maxMaxDist, c.curMaxDist)
	c.sumMaxHeap += uint64(c.curMaxHeap)
	c.sumMaxDist += uint64(c.curMaxDist)
	c.searches++
	c.curMaxHeap, c.curMaxDist = 0, 0
}

// Iterations returns the number of main-loop iterations.
func (c *Counter) Iterations() (uint64, bool) { return c.iterations, true }

// UnnecessaryHeapElements returns the number of stale entries popped.
func (c *Counter) UnnecessaryHeapElements() (uint64, bool) {
	return c.unnecessaryHeapElements, true
}

// Searches returns how many searches were finished.
func (c *Counter) Searches() uint64 { return c.searches }

// MaxMaxHeapSize returns the largest per-search peak queue size.
func (c *Counter) MaxMaxHeapSize() int { return c.maxMaxHeap }

// MaxMaxDistanceArraySize returns the largest per-search peak store size.
func (c *Counter) MaxMaxDistanceArraySize() int { return c.maxMaxDist }

// AverageMaxHeapSize returns the mean per-search peak queue size, or 0 when
// no search finished.
func (c *Counter) AverageMaxHeapSize() float64 {
	if c.searches == 0 {
		return 0
	}

	return float64(c.sumMaxHeap) / float64(c.searches)
}

// AverageMaxDistanceArraySize returns the mean per-search peak store size,
// or 0 when no search finished.
func (c *Counter) AverageMaxDistanceArraySize() float64 {
	if c.searches == 0 {
		return 0
	}

	return float64(c.sumMaxDist) / float64(c.searches)
}

// Merge adds o into c. Sums and counts add, maxima take the larger value.
// Unfinished peaks of both sides are kept as the larger of the two.
func (c *Counter) Merge(o *Counter) {
	if o == nil {
		return
	}
	c.iterations += o.iterations
	c.unnecessaryHeapElements += o.unnecessaryHeapElements
	c.curMaxHeap = max(c.curMaxHeap, o.curMaxHeap)
	c.curMaxDist = max(c.curMaxDist, o.curMaxDist)
	c.maxMaxHeap = max(c.maxMaxHeap, o.maxMaxHeap)
	c.maxMaxDist = max(c.maxMaxDist, o.maxMaxDist)
	c.sumMaxHeap += o.sumMaxHeap
	c.sumMaxDist += o.sumMaxDist
	c.searches += o.searches
}

// Sum returns a new Counter holding the merge of all counters.
func Sum(cs ...*Counter) *Counter {
	out := &Counter{}
	for _, c := range cs {
		out.Merge(c)
	}

	return out
}

// Snapshot is a plain copy of a Counter's derived values, for logging and
// export.
type Snapshot struct {
	Searches                    uint64
	Iterations                  uint64
	UnnecessaryHeapElements     uint64
	MaxMaxHeapSize              int
	MaxMaxDistanceArraySize     int
	AverageMaxHeapSize          float64
	AverageMaxDistanceArraySize float64
}

// Snapshot returns the current values of c.
func (c *Counter) Snapshot() Snapshot {
	return Snapshot{
		Searches:                    c.searches,
		Iterations:                  c.iterations,
		UnnecessaryHeapElements:     c.unnecessaryHeapElements,
		MaxMaxHeapSize:              c.maxMaxHeap,
		MaxMaxDistanceArraySize:     c.maxMaxDist,
		AverageMaxHeapSize:          c.AverageMaxHeapSize(),
		AverageMaxDistanceArraySize: c.AverageMaxDistanceArraySize(),
	}
}

// String formats c on one line.
func (c *Counter) String() string {
	return fmt.Sprintf("searches=%d iterations=%d unnecessary=%d max_heap=%d max_dist=%d avg_heap=%.2f avg_dist=%.2f",
		c.searches, c.iterations, c.unnecessaryHeapElements, c.maxMaxHeap, c.maxMaxDist,
		c.AverageMaxHeapSize(), c.AverageMaxDistanceArraySize())
}

// Compile-time checks.
var (
	_ Recorder = Noop{}
	_ Recorder = (*Counter)(nil)
	_ Data     = Noop{}
	_ Data     = (*Counter)(nil)
)

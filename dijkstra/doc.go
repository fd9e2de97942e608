// Package dijkstra implements a reusable single-source shortest-path engine
// for graphs with non-negative edge weights.
//
// Overview:
//
//   - An engine is constructed once per graph. It owns one tentative-distance
//     store and one priority queue, both sized for the graph's node count.
//   - ShortestPathLens runs one search and leaves the store and queue empty,
//     so the next call starts from a clean state without allocating.
//   - Only path lengths are computed; there are no predecessor pointers.
//
// When to use:
//
//   - Many (thousands to millions of) queries against the same graph, where
//     allocating and clearing per-node state would dominate the running time.
//   - Bounded searches: stop after k targets, beyond a maximum distance, or
//     when the search grows past a memory budget.
//
// The relaxation loop:
//
//  1. Pop the minimum (distance, node) pair; an empty queue ends the search.
//  2. If the popped distance exceeds the node's stored distance, the entry is
//     stale (the node was improved after this entry was pushed): count it as
//     an unnecessary heap element and continue.
//  3. If the distance exceeds Query.MaxWeight, stop.
//  4. If the node is a target (and not the source when ForbidSourceTarget is
//     set), append it to the result; stop once TargetCount results exist.
//  5. Relax every outgoing edge: a strictly better candidate distance is
//     stored and pushed as a fresh queue entry (lazy decrease-key).
//  6. If the store holds more than MaxNodeWeights entries, abort with
//     PartialNodeWeights; else if the queue holds more than MaxHeapSize
//     entries, abort with PartialHeap.
//
// Every exit path clears the queue and the store.
//
// Exhaustiveness:
//
//   - Complete:           queue exhausted, MaxWeight reached or all targets found.
//   - PartialNodeWeights: aborted by the node-weight budget.
//   - PartialHeap:        aborted by the queue budget.
//
// Resource aborts are not errors. They are a partial-result path whose status
// the caller inspects and may answer by retrying with larger budgets.
//
// Pluggable parts:
//
//   - weight.Algebra[W] – zero, infinity, addition and order of distances.
//   - store.Store[W]    – Epoch (default), Dense or Sparse; see WithStore.
//   - pq.Queue[W]       – BinaryHeap (default) or StdHeap; see WithQueue.
//   - target.Map        – which finalized nodes are reported.
//   - perf.Recorder     – the engine's type parameter P. perf.Noop compiles
//     the instrumentation away; *perf.Counter collects it.
//
// Preconditions (not checked in normal builds):
//
//   - The source and every edge endpoint are < the node count the engine was
//     constructed with.
//   - Edge weights are non-negative.
//   - The graph is not mutated during a search.
//
// Building with -tags lvpathdebug turns these into panicking assertions.
//
// Complexity:
//
//   - Time:  O((V + E) log E) per search, where V and E count the touched
//     nodes and edges only. Clearing is O(1) with the epoch store.
//   - Space: O(V) for the store, O(E) worst-case for the queue (stale
//     duplicates).
//
// Thread safety:
//
//   - An engine is single-threaded; invocations on one engine must be
//     sequential. Use one engine per goroutine (see package batch).
//   - A read-only graph may be shared by any number of engines.
package dijkstra

// Package lvpath is a reusable single-source shortest-path engine for
// static graphs with non-negative weights.
//
// 🚀 What is lvpath?
//
//	An allocation-free-in-steady-state Dijkstra engine built from
//	pluggable parts:
//		• Weight algebra: any cost type with zero, infinity, add and less
//		• Distance stores: dense array, epoch-tagged array, sparse map
//		• Priority queues: value binary heap, container/heap adapter
//		• Target predicates: bool slice, single node, bitsets, roaring bitmaps
//		• Performance counters: zero-cost no-op or aggregated counters
//
// ✨ Why choose lvpath?
//
//   - Reuse – one engine answers many queries; between queries it keeps its
//     arrays and clears them in O(1) with the epoch store
//   - Early exits – distance bound, target count and resource budgets, with
//     the reason reported as the search's exhaustiveness
//   - Parallel batches – one engine per worker over a shared read-only graph
//
// Under the hood, everything is organized in flat packages:
//
//	weight/   — weight algebra and saturating numeric algebras
//	graph/    — navigation contract, CSR Static graph, gonum import
//	epoch/    — generation-counter array with O(1) clear
//	store/    — tentative-distance stores (dense, epoch, sparse)
//	pq/       — priority queues without decrease-key
//	target/   — target predicates
//	perf/     — performance recorders
//	dijkstra/ — the search engine
//	builder/  — deterministic graph generators
//	dimacs/   — edge-list and DIMACS .gr I/O with compression
//	batch/    — parallel query runner
//	metrics/  — Prometheus collectors
//	cmd/spbench — command-line workbench
//
// Quick ASCII example:
//
//	    0 ──2──▶ 1 ──2──▶ 2
//	    └─────────5───────▲
//
//	from 0, target 2, bound 6: [(2, 4)], Complete.
//
//	go get github.com/katalvlaran/lvpath
package lvpath

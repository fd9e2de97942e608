// Package batch runs many independent shortest-path queries over one shared
// graph in parallel.
//
// A Runner owns a pool of engines, one per worker. Queries are fanned out
// with an errgroup whose concurrency limit equals the worker count; each
// task borrows an engine for the duration of one query, so no engine is ever
// used by two goroutines at once while the read-only graph is shared by all.
//
// Every engine carries its own perf.Counter; Run returns their merge. The
// context is checked before each query: cancellation stops new queries from
// starting and Run returns the results gathered so far with the context
// error.
//
// Logging goes through an injected *slog.Logger (discarded by default):
// one Debug record per query and one Info record per Run. An optional
// metrics.Collector receives per-query outcomes.
package batch

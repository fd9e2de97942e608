// Package store provides tentative-distance storage for the shortest-path
// engine: a per-node map from node id to the best distance found so far,
// with "untouched" reading as infinity.
//
// Three realizations share the Store contract:
//
//	Dense  – one slot per node; Clear rewrites every slot (O(n)).
//	Epoch  – one slot per node plus an epoch tag; Clear is O(1) amortized.
//	Sparse – hash map of touched nodes only; memory ∝ touched nodes.
//
// Dense suits small graphs or searches that touch most nodes. Epoch is the
// default for repeated searches on a large graph where each search touches a
// small neighbourhood. Sparse trades pointer-chasing for memory when even a
// per-node array is too expensive.
//
// Size() is what the engine compares against its node-weight budget: for Dense
// it is the array length, for Epoch and Sparse it is the number of entries
// materialized since the last Clear.
//
// Indexing past the node count is a caller contract violation; the array
// realizations panic through Go bounds checks.
package store

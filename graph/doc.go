// Package graph defines the narrow, read-only navigation contract the
// shortest-path engine consumes, plus a compact immutable realization.
//
// Contract (Graph[W]):
//
//   - NodeCount() int                  – sizes the engine's per-node arrays.
//   - OutNeighbors(n) []Neighbor       – outgoing (edge, destination) pairs.
//   - EdgeWeight(e) W                  – non-negative weight of an edge.
//
// Node and edge identities are dense, zero-based uint32 handles. The engine
// never creates or destroys them; it only indexes arrays sized by NodeCount.
//
// Static[W] stores the adjacency in compressed-sparse-row form: one offsets
// array of length NodeCount()+1 and one neighbor array of length EdgeCount().
// OutNeighbors returns a sub-slice of that array, so navigation never
// allocates. A Static graph is immutable after Build and may be shared by any
// number of concurrent searches.
//
// Builder[W] collects nodes and edges in any order and compacts them on Build.
// FromGonum converts a gonum weighted graph into a Static[float64].
package graph

package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNodeOutOfRange indicates an edge endpoint that is not a known node.
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrNegativeWeight indicates a negative edge weight was rejected by a
	// builder configured with WithWeightCheck.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrTooManyNodes indicates the node count no longer fits a NodeID.
	ErrTooManyNodes = errors.New("graph: too many nodes")

	// ErrNilGraph indicates a nil source graph was passed to a converter.
	ErrNilGraph = errors.New("graph: graph is nil")
)

// NodeID is a dense zero-based node handle.
type NodeID uint32

// EdgeID is a dense zero-based edge handle.
type EdgeID uint32

// Neighbor is one outgoing edge of a node together with its destination.
type Neighbor struct {
	Edge EdgeID
	Node NodeID
}

// Graph is the read-only navigation contract consumed by the search engine.
type Graph[W any] interface {
	// NodeCount returns the number of nodes; valid ids are [0, NodeCount()).
	NodeCount() int

	// OutNeighbors returns the outgoing edges of n. The slice is owned by the
	// graph and must not be modified.
	OutNeighbors(n NodeID) []Neighbor

	// EdgeWeight returns the weight of e.
	EdgeWeight(e EdgeID) W
}

// Edge is an edge as seen by builders and I/O: endpoints plus weight.
type Edge[W any] struct {
	From   NodeID
	To     NodeID
	Weight W
}

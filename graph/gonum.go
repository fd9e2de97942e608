package graph

import (
	"fmt"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
)

// GonumMapping translates between gonum int64 node ids and dense NodeIDs.
type GonumMapping struct {
	// Dense maps a gonum id to its NodeID.
	Dense map[int64]NodeID
	// Gonum maps a NodeID (index) back to its gonum id.
	Gonum []int64
}

// FromGonum converts a gonum weighted graph into a Static[float64].
//
// Nodes are numbered by ascending gonum id. For directed graphs each
// u→v edge becomes one arc; undirected graphs report every neighbor from
// both endpoints, so each undirected edge becomes two arcs. Edge weights come
// from g.WeightedEdge(u, v).Weight().
//
// Complexity: O(V log V + E).
func FromGonum(g gonum.Weighted) (*Static[float64], GonumMapping, error) {
	if g == nil {
		return nil, GonumMapping{}, ErrNilGraph
	}

	// 1) Collect and sort ids so the dense numbering is deterministic.
	nodes := gonum.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	m := GonumMapping{Dense: make(map[int64]NodeID, len(ids)), Gonum: ids}
	b := NewBuilder[float64]()
	if _, err := b.AddNodes(len(ids)); err != nil {
		return nil, GonumMapping{}, fmt.Errorf("FromGonum: %w", err)
	}
	for i, id := range ids {
		m.Dense[id] = NodeID(i)
	}

	// 2) Emit arcs per source in dense order.
	for i, uid := range ids {
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			we := g.WeightedEdge(uid, vid)
			if we == nil {
				continue
			}
			if err := b.AddEdge(NodeID(i), m.Dense[vid], we.Weight()); err != nil {
				return nil, GonumMapping{}, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return b.Build(), m, nil
}

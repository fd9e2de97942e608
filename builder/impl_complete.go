// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Undirected: one edge per unordered pair {i,j}, i<j, emitted as two arcs.
//   • Directed: one arc per ordered pair (i,j), i≠j.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *graph.Builder[int64], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		first, err := addNodes(b, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err = cfg.link(b, methodComplete, first+graph.NodeID(i), first+graph.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *graph.Builder[int64], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first, err := addNodes(b, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u := first + graph.NodeID(i)
			v := first + graph.NodeID((i+1)%n)
			if err = cfg.link(b, methodCycle, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

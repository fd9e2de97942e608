// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges in stable order i → i+1 for i=0..n-2.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds an n-vertex simple path P_n.
func Path(n int) Constructor {
	return func(b *graph.Builder[int64], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first, err := addNodes(b, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			u := first + graph.NodeID(i)
			if err = cfg.link(b, methodPath, u, u+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one center plus n-1 leaves.
//   • The center is the first emitted node; edges center → leaf in leaf order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(b *graph.Builder[int64], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center, err := addNodes(b, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = cfg.link(b, methodStar, center, center+graph.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • directed = false              (both arcs per topology edge)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpath/graph"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit u→v only instead of u→v and v→u.
	directed bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// link emits the topology edge {u,v} according to the direction policy,
// drawing exactly one weight from cfg.weightFn.
func (cfg builderConfig) link(b *graph.Builder[int64], method string, u, v graph.NodeID) error {
	w := cfg.weightFn(cfg.rng)
	var err error
	if cfg.directed {
		err = b.AddEdge(u, v, w)
	} else {
		err = b.AddUndirectedEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}

// addNodes reserves n consecutive node ids.
func addNodes(b *graph.Builder[int64], method string, n int) (graph.NodeID, error) {
	first, err := b.AddNodes(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return first, nil
}

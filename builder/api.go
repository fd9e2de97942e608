// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - Constructor type and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/graph"
	"github.com/katalvlaran/lvpath/weight"
)

// Constructor emits one topology into b. Nodes are appended after any nodes
// already present in b.
type Constructor func(b *graph.Builder[int64], cfg builderConfig) error

// BuildGraph resolves bopts, runs every constructor in order against one
// weight-checked graph.Builder and returns the compacted graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Static[int64], error) {
	b := graph.NewBuilder(graph.WithWeightCheck[int64](weight.Int64()))
	if err := Apply(b, bopts, cons...); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// Apply runs constructors against an existing builder, for callers that add
// their own nodes or edges around generated topologies.
func Apply(b *graph.Builder[int64], bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

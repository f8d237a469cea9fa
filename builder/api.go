// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// api.go - public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(sink, opts, cons...). Resolves cfg once, runs cons in order.
//   - Factories are implemented in impl_*.go, one file per topology.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edge streams.

package builder

import (
	"fmt"
)

// Sink receives generated edges. *core.Graph and *edgelist.Writer satisfy it.
type Sink interface {
	AddEdge(a, b string) error
}

// Constructor emits the edges of one topology into sink using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first AddEdge and return sentinel errors.
//   - Emit edges in a stable, documented order.
//   - Label vertices through cfg.label only.
type Constructor func(sink Sink, cfg builderConfig) error

// Build resolves the builder configuration from opts and applies all
// constructors to sink in order. The first failure is wrapped with
// "Build: %w" and returned; edges already emitted stay in the sink.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil sink or nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - Sink errors, wrapped with the constructor's method tag.
func Build(sink Sink, opts []BuilderOption, cons ...Constructor) error {
	if sink == nil {
		return fmt.Errorf("Build: nil sink: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sink, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// emit adds one edge and tags a sink failure with the method name.
func emit(sink Sink, method, u, v string) error {
	if err := sink.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, u, v, err)
	}

	return nil
}

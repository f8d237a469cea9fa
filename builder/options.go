// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// options.go - functional options for Build.

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the label scheme. Panics on nil fn.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix prepends prefix to every label, whatever the scheme.
// Example: WithPrefix("n") with DefaultIDFn → "n0","n1",...
func WithPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.prefix = prefix
	}
}

// WithRand uses r for stochastic constructors. Panics on nil r.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

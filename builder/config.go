// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// config.go - immutable configuration resolved from BuilderOption values.

package builder

import (
	"math/rand"
)

// builderConfig holds everything a Constructor may consult.
// It is built once per Build call and never mutated afterwards.
type builderConfig struct {
	// idFn maps a zero-based vertex index to its label body.
	idFn IDFn
	// prefix is prepended to every label produced by idFn.
	prefix string
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is used.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label returns the vertex label for index i.
func (c builderConfig) label(i int) string {
	return c.prefix + c.idFn(i)
}

// labels precomputes the labels 0..n-1.
func (c builderConfig) labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.label(i)
	}

	return out
}

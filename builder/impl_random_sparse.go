// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p. No self-loops, no parallel edges.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity: O(n²) Bernoulli trials, O(n) extra space.
//
// Determinism: trials run for i asc, j asc (j>i), one rng.Float64 per pair,
// so a fixed seed always reproduces the same edge sequence.

package builder

import (
	"fmt"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		ids := cfg.labels(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err := emit(sink, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the center; emits 0 — i for i=1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"
)

// Star returns a Constructor that emits a star with n-1 leaves.
func Star(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := cfg.label(0)
		for i := 1; i < n; i++ {
			if err := emit(sink, MethodStar, center, cfg.label(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

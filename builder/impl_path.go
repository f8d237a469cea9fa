// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges i-1 — i for i=1..n-1, in that order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"
)

// Path returns a Constructor that emits the simple path P_n.
func Path(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		prev := cfg.label(0)
		for i := 1; i < n; i++ {
			cur := cfg.label(i)
			if err := emit(sink, MethodPath, prev, cur); err != nil {
				return err
			}
			prev = cur
		}

		return nil
	}
}

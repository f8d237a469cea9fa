// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i — (i+1)%n for i=0..n-1; the last edge closes the ring.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"
)

// Cycle returns a Constructor that emits the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := emit(sink, MethodCycle, cfg.label(i), cfg.label((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

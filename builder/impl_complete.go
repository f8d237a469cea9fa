// SPDX-License-Identifier: MIT
// Package: degreeplot/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic order.
//
// Complexity: O(n²) time, O(n) extra space for the label slice.

package builder

import (
	"fmt"
)

// Complete returns a Constructor that emits the complete graph K_n.
func Complete(n int) Constructor {
	return func(sink Sink, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		ids := cfg.labels(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := emit(sink, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

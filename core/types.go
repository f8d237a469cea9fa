// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexIndex, sentinel errors, GraphOption.

package core

import "errors"

// Sentinel errors for core operations.
var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates an index outside the assigned range.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFrozen indicates a mutation attempted after degrees were computed.
	ErrFrozen = errors.New("core: graph is frozen")
)

// VertexIndex is the dense identifier assigned to a vertex label.
// Indices are assigned from 0 in first-seen order and never reused.
type VertexIndex int

// GraphOption configures a Graph before the first edge is added.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the interner and adjacency for about n
// vertices. It is a hint only; graphs grow past it as needed.
// Non-positive n is ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.interner = newInterner(n)
		g.adj = make([][]VertexIndex, 0, n)
	}
}

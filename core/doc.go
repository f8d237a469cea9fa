// SPDX-License-Identifier: MIT

// Package core provides the ingestion primitives of degreeplot: a label
// interner, an undirected adjacency multigraph built from an edge stream, and
// the degree aggregation derived from it.
//
// Vertices are identified externally by arbitrary string labels and
// internally by dense VertexIndex values assigned in first-seen order:
//
//	A B      A→0, B→1
//	B C      C→2
//	A C      (no new labels)
//
// The Graph stores adjacency as a slice of neighbor slices indexed directly by
// VertexIndex. Every edge line is stored symmetrically:
//
//   - AddEdge("A","B") appends B to adj[A] and A to adj[B].
//   - Repeated edges accumulate (multigraph); nothing is deduplicated.
//   - A self-loop AddEdge("X","X") appends X to adj[X] twice.
//
// Lifecycle:
//
//	EMPTY ──AddEdge──▶ INGESTING ──Degrees()/Freeze()──▶ FROZEN
//
// Once frozen the graph rejects further edges with ErrFrozen, and Degrees()
// returns the same DegreeMap on every call.
//
// Core Methods:
//
//	// Interner
//	Intern(label string) (VertexIndex, error)  // O(1) expected
//	Lookup(label string) (VertexIndex, bool)   // O(1) expected
//	Label(i VertexIndex) (string, bool)        // O(1)
//
//	// Graph
//	AddEdge(a, b string) error                 // O(1) amortized
//	Neighbors(v VertexIndex) ([]VertexIndex, error)
//	VertexCount() int / EdgeCount() int        // O(1)
//	Degrees() DegreeMap                        // O(V) first call, O(1) after
//
// Errors:
//
//	ErrEmptyLabel      – zero-length vertex label
//	ErrVertexNotFound  – VertexIndex outside [0, VertexCount())
//	ErrFrozen          – AddEdge after the graph was frozen
//
// Neither Interner nor Graph takes locks: a whole run is one sequential pass
// and values must not be shared across goroutines while ingesting.
package core

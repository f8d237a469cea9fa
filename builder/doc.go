// SPDX-License-Identifier: MIT

// Package builder generates synthetic edge lists for well-known topologies.
//
// Generators write edges into a Sink, so the same constructor can fill an
// in-memory *core.Graph (fixtures, benchmarks) or stream an edge-list file
// through *edgelist.Writer (the gen command). Vertices exist only through
// the edges that mention them; isolated vertices are never produced.
//
// Components:
//
//   - Build:        resolves BuilderOption values and runs constructors in order.
//   - Constructors: Path, Cycle, Star, Complete, RandomSparse.
//   - Options:      WithIDScheme, WithPrefix, WithSeed, WithRand.
//   - Label schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, HexIDFn, PrefixIDFn.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed give the same edge
//     sequence, byte for byte.
//   - Constructors validate parameters before emitting anything and return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource); they never panic at runtime.
//   - Option constructors panic on programmer error (nil function or RNG).
//
// Expected degree sequences, handy when checking a degree pipeline end to end:
//
//	Path(n)      two vertices of degree 1, n-2 of degree 2
//	Cycle(n)     n vertices of degree 2
//	Star(n)      center of degree n-1, n-1 leaves of degree 1
//	Complete(n)  n vertices of degree n-1
package builder

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Edge ingestion into an undirected adjacency multigraph.
//
// Invariants:
//   - len(adj) == interner.Len(); every interned label has a (possibly empty) bucket.
//   - For each accepted AddEdge(a,b): b ∈ adj[a] and a ∈ adj[b], once per call;
//     for a == b the bucket receives two entries.
//   - Σ len(adj[v]) == 2 * edges.

package core

// Graph is an undirected multigraph over interned vertex labels.
//
// Vertices exist only as edge endpoints, so every vertex has degree ≥ 1.
// A Graph is owned by a single caller for one run; it is not safe for
// concurrent use.
type Graph struct {
	interner *Interner
	adj      [][]VertexIndex // adj[v] = neighbors of v in insertion order
	edges    int             // accepted AddEdge calls
	frozen   bool
	degrees  DegreeMap // populated on freeze
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{interner: NewInterner()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddEdge ingests one undirected edge between labels a and b.
//
// Implementation:
//   - Stage 1: Reject a frozen graph and empty labels before any mutation.
//   - Stage 2: Intern a, then b (so two fresh labels get i and i+1).
//   - Stage 3: Append b to adj[a] and a to adj[b]; a self-loop appends twice to one bucket.
//
// Errors:
//   - ErrFrozen: the graph has been frozen.
//   - ErrEmptyLabel: a or b is empty.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(a, b string) error {
	if g.frozen {
		return ErrFrozen
	}
	if a == "" || b == "" {
		return ErrEmptyLabel
	}

	ia, err := g.intern(a)
	if err != nil {
		return err
	}
	ib, err := g.intern(b)
	if err != nil {
		return err
	}

	g.adj[ia] = append(g.adj[ia], ib)
	g.adj[ib] = append(g.adj[ib], ia)
	g.edges++

	return nil
}

// intern resolves label and grows adj so the returned index has a bucket.
// Interner errors are returned unchanged; adj is untouched on error.
func (g *Graph) intern(label string) (VertexIndex, error) {
	i, err := g.interner.Intern(label)
	if err != nil {
		return 0, err
	}
	if int(i) == len(g.adj) {
		g.adj = append(g.adj, nil)
	}

	return i, nil
}

// Neighbors returns a copy of v's adjacency list in insertion order.
// Duplicates and self-loop entries are preserved.
//
// Errors:
//   - ErrVertexNotFound: v is outside [0, VertexCount()).
func (g *Graph) Neighbors(v VertexIndex) ([]VertexIndex, error) {
	if v < 0 || int(v) >= len(g.adj) {
		return nil, ErrVertexNotFound
	}
	out := make([]VertexIndex, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Index returns the index assigned to label, if any.
func (g *Graph) Index(label string) (VertexIndex, bool) {
	return g.interner.Lookup(label)
}

// Label returns the label of vertex v, if any.
func (g *Graph) Label(v VertexIndex) (string, bool) {
	return g.interner.Label(v)
}

// Labels returns all vertex labels ordered by index.
func (g *Graph) Labels() []string {
	return g.interner.Labels()
}

// VertexCount returns the number of distinct labels seen. O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges accepted, counting repeats. O(1).
func (g *Graph) EdgeCount() int { return g.edges }

// Frozen reports whether the graph has stopped accepting edges.
func (g *Graph) Frozen() bool { return g.frozen }

// Freeze ends ingestion. It is idempotent.
func (g *Graph) Freeze() {
	if g.frozen {
		return
	}
	g.degrees = computeDegrees(g.adj)
	g.frozen = true
}

// SPDX-License-Identifier: MIT
//
// File: degrees.go
// Role: Degree aggregation over a frozen Graph.

package core

// DegreeMap maps each VertexIndex to its degree: the length of its adjacency
// list at the moment ingestion ended. Self-loops count twice and parallel
// edges count once per occurrence.
//
// A DegreeMap is immutable; accessors that expose slices return copies.
type DegreeMap struct {
	values []int // values[v] = degree of v
}

// Degrees freezes g (if it is not frozen yet) and returns its DegreeMap.
// Subsequent calls return the same map.
//
// Complexity:
//   - First call: Time O(V), Space O(V). Later calls: O(1).
func (g *Graph) Degrees() DegreeMap {
	g.Freeze()

	return g.degrees
}

func computeDegrees(adj [][]VertexIndex) DegreeMap {
	values := make([]int, len(adj))
	for v, nbrs := range adj {
		values[v] = len(nbrs)
	}

	return DegreeMap{values: values}
}

// Len returns the number of vertices in the map.
func (d DegreeMap) Len() int { return len(d.values) }

// Degree returns the degree of v.
func (d DegreeMap) Degree(v VertexIndex) (int, bool) {
	if v < 0 || int(v) >= len(d.values) {
		return 0, false
	}

	return d.values[v], true
}

// Values returns the degrees ordered by VertexIndex, i.e. first-seen vertex order.
func (d DegreeMap) Values() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)

	return out
}

// Samples returns the degrees as float64 samples for a distribution renderer,
// in the same order as Values.
func (d DegreeMap) Samples() []float64 {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i] = float64(v)
	}

	return out
}

// Sum returns the total degree. For a graph built by AddEdge it equals
// 2 * EdgeCount().
func (d DegreeMap) Sum() int {
	total := 0
	for _, v := range d.values {
		total += v
	}

	return total
}

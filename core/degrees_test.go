package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degreeplot/core"
)

// randomEdges returns m edges over at most n labels, including repeats and loops.
func randomEdges(seed int64, n, m int) [][2]string {
	rng := rand.New(rand.NewSource(seed))
	out := make([][2]string, m)
	for i := range out {
		out[i] = [2]string{
			fmt.Sprintf("n%d", rng.Intn(n)),
			fmt.Sprintf("n%d", rng.Intn(n)),
		}
	}

	return out
}

func TestDegrees_Properties(t *testing.T) {
	seeds := []int64{1, 7, 42, 1337}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			edges := randomEdges(seed, 30, 200)

			g := core.NewGraph()
			distinct := make(map[string]struct{})
			for _, e := range edges {
				require.NoError(t, g.AddEdge(e[0], e[1]))
				distinct[e[0]] = struct{}{}
				distinct[e[1]] = struct{}{}
			}
			d := g.Degrees()

			// Vertex count equals distinct label count.
			require.Equal(t, len(distinct), g.VertexCount())
			require.Equal(t, len(distinct), d.Len())

			// Sum of degrees equals twice the number of edges.
			require.Equal(t, 2*len(edges), d.Sum())

			// Symmetry: multiplicity of v in adj[u] equals multiplicity of u in adj[v].
			mult := make(map[[2]core.VertexIndex]int)
			for u := 0; u < g.VertexCount(); u++ {
				nbrs, err := g.Neighbors(core.VertexIndex(u))
				require.NoError(t, err)
				deg, ok := d.Degree(core.VertexIndex(u))
				require.True(t, ok)
				require.Equal(t, len(nbrs), deg)
				for _, v := range nbrs {
					mult[[2]core.VertexIndex{core.VertexIndex(u), v}]++
				}
			}
			for k, c := range mult {
				require.Equal(t, c, mult[[2]core.VertexIndex{k[1], k[0]}], "asymmetric pair %v", k)
			}

			// Every vertex appeared in an edge, so none has degree zero.
			for _, v := range d.Values() {
				require.Positive(t, v)
			}
		})
	}
}

func TestDegreeMap_Accessors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("hub", "a"))
	require.NoError(t, g.AddEdge("hub", "b"))
	require.NoError(t, g.AddEdge("hub", "hub"))
	d := g.Degrees()

	hub, ok := d.Degree(0)
	require.True(t, ok)
	require.Equal(t, 4, hub)

	_, ok = d.Degree(3)
	require.False(t, ok)

	require.Equal(t, []float64{4, 1, 1}, d.Samples())

	values := d.Values()
	values[0] = 0
	require.Equal(t, []int{4, 1, 1}, d.Values(), "Values must return a copy")
}

package flow_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowstep/core"
	"github.com/katalvlaran/flowstep/flow"
)

// edge is a compact fixture row.
type edge struct {
	from, to string
	capacity float64
}

// buildGraph adds the rows in order, failing the test on any error.
func buildGraph(t testing.TB, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.capacity))
	}

	return g
}

// diamond is S→A 3, S→B 2, A→T 2, B→T 3, A→B 1.
func diamond(t testing.TB) *core.Graph {
	return buildGraph(t,
		edge{"S", "A", 3},
		edge{"S", "B", 2},
		edge{"A", "T", 2},
		edge{"B", "T", 3},
		edge{"A", "B", 1},
	)
}

// randomNetwork builds a digraph on n vertices "0".."n-1" with integer
// capacities in [1, maxCap] and edge probability p.
func randomNetwork(t testing.TB, n int, p float64, maxCap int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			require.NoError(t, g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), float64(r.Intn(maxCap)+1)))
		}
	}

	return g
}

// bruteForceMinCut enumerates every vertex subset containing source and not
// sink and returns the smallest capacity of edges leaving it. Small graphs only.
func bruteForceMinCut(t testing.TB, g *core.Graph, source, sink string) float64 {
	t.Helper()
	var others []string
	for _, v := range g.Vertices() {
		if v != source && v != sink {
			others = append(others, v)
		}
	}
	require.LessOrEqual(t, len(others), 16, "brute force is exponential")

	best := math.Inf(1)
	for mask := 0; mask < 1<<len(others); mask++ {
		side := map[string]bool{source: true}
		for i, v := range others {
			if mask&(1<<i) != 0 {
				side[v] = true
			}
		}
		var c float64
		for _, e := range g.Edges() {
			if side[e.From] && !side[e.To] {
				c += e.Capacity
			}
		}
		best = math.Min(best, c)
	}

	return best
}

// assertConservation checks that every vertex other than source and sink has
// zero net outflow, and that source/sink carry ±total.
func assertConservation(t testing.TB, r *flow.Residual, source, sink string, total float64) {
	t.Helper()
	for _, v := range r.Vertices() {
		got := r.NetOutflow(v)
		switch v {
		case source:
			require.InDelta(t, total, got, 1e-9, "net outflow of source")
		case sink:
			require.InDelta(t, -total, got, 1e-9, "net outflow of sink")
		default:
			require.InDelta(t, 0, got, 1e-9, "conservation at %q", v)
		}
	}
}

// assertCapacityBounds checks 0 ≤ capacity and that every pair keeps
// capacity(u→v)+capacity(v→u) equal to its declared sum.
func assertCapacityBounds(t testing.TB, r *flow.Residual) {
	t.Helper()
	for _, a := range r.Arcs() {
		require.GreaterOrEqual(t, a.Capacity, 0.0, "arc %s→%s", a.From, a.To)
		back, ok := r.Capacity(a.To, a.From)
		require.True(t, ok, "reverse of %s→%s must exist", a.From, a.To)
		require.InDelta(t, a.Original+r.Original(a.To, a.From), a.Capacity+back, 1e-9)
	}
}

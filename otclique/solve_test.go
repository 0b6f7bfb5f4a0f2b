package otclique_test

import (
	"testing"
	"time"

	"github.com/otclique/otclique/clique"
	"github.com/otclique/otclique/graphview"
	"github.com/otclique/otclique/otclique"
	"github.com/stretchr/testify/require"
)

func TestSolve_Triangle(t *testing.T) {
	g, err := graphview.NewGraph(3, []int64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	got, timedOut, err := otclique.Solve(g, otclique.NewOptions(3))
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(3), got.Weight)
	require.Equal(t, []int{0, 1, 2}, got.Vertices)
}

func TestSolve_Path(t *testing.T) {
	g, err := graphview.NewGraph(3, []int64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	got, timedOut, err := otclique.Solve(g, otclique.NewOptions(3))
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(2), got.Weight)
	require.Len(t, got.Vertices, 2)
}

func TestSolve_WeightedK4MinusEdge(t *testing.T) {
	g, err := graphview.NewGraph(4, []int64{10, 10, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))

	got, timedOut, err := otclique.Solve(g, otclique.NewOptions(4))
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(12), got.Weight)
}

func TestSolve_IsolatedVertices(t *testing.T) {
	g, err := graphview.NewGraph(4, []int64{5, 3, 9, 1})
	require.NoError(t, err)

	got, timedOut, err := otclique.Solve(g, otclique.NewOptions(4))
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(9), got.Weight)
	require.Equal(t, []int{2}, got.Vertices)
}

func TestSolve_WeightedK5(t *testing.T) {
	g, err := graphview.NewGraph(5, []int64{2, 3, 5, 7, 11})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}

	got, timedOut, err := otclique.Solve(g, otclique.NewOptions(5))
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(2+3+5+7+11), got.Weight)
	require.Equal(t, []int{0, 1, 2, 3, 4}, got.Vertices)
}

// TestSolveMWVC_C4 checks the 4-cycle 0-1-2-3-0: its minimum vertex cover is
// any opposite pair, e.g. {0,2} or {1,3}, weight 2 under unit weights. It
// also re-derives the complement-graph clique SolveMWVC computed internally
// and checks it is a genuine clique there, the same sanity assertion the
// reference mwvc flow runs before trusting its vertex-cover subtraction.
func TestSolveMWVC_C4(t *testing.T) {
	g, err := graphview.NewGraph(4, []int64{1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 0))

	opts := otclique.NewOptions(4, otclique.WithLimit(25), otclique.WithDeadline(5*time.Second))

	got, timedOut, err := otclique.SolveMWVC(g, opts)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.Equal(t, int64(2), got.Weight)
	require.Len(t, got.Vertices, 2)

	comp := g.Complement()
	mwcResult, timedOut, err := otclique.Solve(comp, opts)
	require.NoError(t, err)
	require.False(t, timedOut)
	require.True(t, clique.IsClique(mwcResult, comp))
}

func TestSolve_NilGraph(t *testing.T) {
	_, _, err := otclique.Solve(nil, otclique.DefaultOptions(0))
	require.ErrorIs(t, err, otclique.ErrNilGraph)
}

func TestSolve_BadLimit(t *testing.T) {
	g, err := graphview.NewGraph(1, []int64{1})
	require.NoError(t, err)

	_, _, err = otclique.Solve(g, otclique.Options{Limit: 0})
	require.ErrorIs(t, err, otclique.ErrBadLimit)
}

func TestDefaultOptions_LimitRule(t *testing.T) {
	require.Equal(t, 25, otclique.DefaultOptions(1500).Limit)
	require.Equal(t, 20, otclique.DefaultOptions(1501).Limit)
}

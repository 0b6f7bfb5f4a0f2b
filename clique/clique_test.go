package clique_test

import (
	"testing"

	"github.com/otclique/otclique/clique"
	"github.com/otclique/otclique/graphview"
	"github.com/stretchr/testify/require"
)

func TestIsClique(t *testing.T) {
	g, err := graphview.NewGraph(3, []int64{1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	// 0-2 intentionally missing.

	require.True(t, clique.IsClique(&clique.Clique{Vertices: []int{0, 1}}, g))
	require.True(t, clique.IsClique(&clique.Clique{Vertices: []int{2}}, g))
	require.True(t, clique.IsClique(&clique.Clique{Vertices: nil}, g))
	require.False(t, clique.IsClique(&clique.Clique{Vertices: []int{0, 1, 2}}, g))
}

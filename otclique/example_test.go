package otclique_test

import (
	"fmt"

	"github.com/otclique/otclique/graphview"
	"github.com/otclique/otclique/otclique"
)

// ExampleSolve finds the maximum weight clique of a triangle, the only
// 3-vertex clique the graph admits.
func ExampleSolve() {
	g, _ := graphview.NewGraph(3, []int64{1, 1, 1})
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)

	result, timedOut, err := otclique.Solve(g, otclique.NewOptions(g.N()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(result.Vertices, result.Weight, timedOut)
	// Output:
	// [0 1 2] 3 false
}

// ExampleSolveMWVC finds the minimum weight vertex cover of a 4-cycle: any
// opposite pair of vertices covers every edge, weight 2 under unit weights.
func ExampleSolveMWVC() {
	g, _ := graphview.NewGraph(4, []int64{1, 1, 1, 1})
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	cover, timedOut, err := otclique.SolveMWVC(g, otclique.NewOptions(g.N()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(cover.Vertices), cover.Weight, timedOut)
	// Output:
	// 2 2 false
}

package otable_test

import (
	"fmt"

	"github.com/otclique/otclique/graphview"
	"github.com/otclique/otclique/otable"
)

// ExampleBuild computes the optimal table for a single partition holding a
// triangle: table[7] (all three bits set) is the triangle's own weight,
// since all three vertices form a clique together.
func ExampleBuild() {
	g, _ := graphview.NewGraph(3, []int64{1, 1, 1})
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)

	tables, err := otable.Build([]int{3}, g, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(tables[0][7])
	// Output:
	// 3
}

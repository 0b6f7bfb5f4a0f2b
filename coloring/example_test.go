package coloring_test

import (
	"fmt"

	"github.com/otclique/otclique/coloring"
	"github.com/otclique/otclique/graphview"
)

// ExampleColorUnweighted colours 4 mutually non-adjacent vertices with a
// partition limit of 2, packing them into two full partitions.
func ExampleColorUnweighted() {
	g, _ := graphview.NewGraph(4, []int64{1, 1, 1, 1})

	seq, err := coloring.ColorUnweighted(g, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(seq.Perm), seq.PartitionSizes)
	// Output:
	// 4 [2 2]
}

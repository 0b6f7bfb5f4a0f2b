package dimacs_test

import (
	"fmt"
	"strings"

	"github.com/otclique/otclique/dimacs"
)

// ExampleReadGraph parses a DIMACS triangle instance.
func ExampleReadGraph() {
	input := `c a triangle
p edge 3 3
e 1 2
e 2 3
e 1 3
`
	g, err := dimacs.ReadGraph(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(g.N(), g.EdgeCount())
	// Output:
	// 3 3
}

// SPDX-License-Identifier: MIT

package netstats_test

import (
	"fmt"

	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/netstats"
)

// ExampleCompute summarizes a 5-cycle with three isolated reservoir nodes.
func ExampleCompute() {
	s := adjacency.NewSparse(8)
	for i := 0; i < 5; i++ {
		s.AddEdge(i, (i+1)%5, 0.5)
	}

	f, err := netstats.Compute(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("max_scc=%.3f nscc=%d singletons=%d diam=%d\n", f.MaxSCC, f.NSCC, f.Singletons, f.Diam)
	fmt.Printf("assort=%v edge_weight=%v\n", f.Assort, f.EdgeWeight)
	// Output:
	// max_scc=0.625 nscc=4 singletons=3 diam=4
	// assort=NaN edge_weight=0.5
}

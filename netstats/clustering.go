// SPDX-License-Identifier: MIT

package netstats

import "github.com/katalvlaran/rcsweep/adjacency"

// AverageClustering returns the mean local clustering coefficient of the
// symmetrized graph. Vertices of degree < 2 contribute 0; self-loops are
// ignored. An empty graph yields 0.
//
// Local coefficient: links among the k neighbors of v divided by k(k−1)/2.
//
// Complexity: Time O(Σ deg(v)²), Memory O(V).
func AverageClustering(g *adjacency.Digraph) float64 {
	n := g.Order()
	if n == 0 {
		return 0
	}
	// stamp[w] == v+1 marks w as a neighbor of the current v without clearing.
	stamp := make([]int, n)
	var sum float64
	for v := 0; v < n; v++ {
		nbrs := g.Neighbors(v)
		k := len(nbrs)
		if k < 2 {
			continue
		}
		for _, u := range nbrs {
			stamp[u] = v + 1
		}
		var links int // every neighbor-neighbor edge is seen from both ends
		for _, u := range nbrs {
			for _, w := range g.Neighbors(u) {
				if stamp[w] == v+1 {
					links++
				}
			}
		}
		sum += float64(links) / float64(k*(k-1))
	}

	return sum / float64(n)
}

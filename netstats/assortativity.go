// SPDX-License-Identifier: MIT

package netstats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rcsweep/adjacency"
)

// Assortativity returns the out→in degree assortativity of g: the Pearson
// correlation, over all directed edges u → v, between the out-degree of u
// and the in-degree of v.
//
// Returns ErrDegenerateGraph when g has fewer than two edges or either
// degree sequence is constant (e.g. every vertex has the same in- and
// out-degree), since the correlation is undefined there.
//
// Complexity: Time O(V + E), Memory O(E).
func Assortativity(g *adjacency.Digraph) (float64, error) {
	src := make([]float64, 0, g.Size())
	dst := make([]float64, 0, g.Size())
	g.EachEdge(func(from, to int) {
		src = append(src, float64(g.OutDegree(from)))
		dst = append(dst, float64(g.InDegree(to)))
	})
	if len(src) < 2 {
		return 0, ErrDegenerateGraph
	}
	if floats.Max(src) == floats.Min(src) || floats.Max(dst) == floats.Min(dst) {
		return 0, ErrDegenerateGraph
	}
	r := stat.Correlation(src, dst, nil)
	if math.IsNaN(r) {
		return 0, ErrDegenerateGraph
	}

	return r, nil
}

// SPDX-License-Identifier: MIT

package adjacency

import "sort"

// Digraph is an immutable, index-based directed graph built from a Sparse.
//
// Vertices are 0..Order()-1. Self-loops are kept in the directed lists and
// dropped from the undirected one. Parallel entries collapse into one edge.
type Digraph struct {
	n     int
	out   [][]int // out[v]: sorted successors of v
	in    [][]int // in[v]: sorted predecessors of v
	und   [][]int // und[v]: sorted neighbors of v ignoring direction, no loops
	edges int     // number of distinct directed edges, loops included
}

// Digraph validates s and builds its directed view.
//
// Implementation:
//   - Stage 1: Validate the COO triplets.
//   - Stage 2: Bucket every non-zero entry (r, c) as c → r.
//   - Stage 3: Sort and de-duplicate each bucket; derive the symmetrized lists.
//
// Complexity: Time O(V + E log E), Memory O(V + E).
func (s *Sparse) Digraph() (*Digraph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := &Digraph{
		n:   s.N,
		out: make([][]int, s.N),
		in:  make([][]int, s.N),
		und: make([][]int, s.N),
	}
	var i int
	for i = range s.Vals {
		if s.Vals[i] == 0 {
			continue
		}
		from, to := s.Cols[i], s.Rows[i]
		g.out[from] = append(g.out[from], to)
		g.in[to] = append(g.in[to], from)
	}

	var v int
	for v = 0; v < g.n; v++ {
		g.out[v] = sortUnique(g.out[v])
		g.in[v] = sortUnique(g.in[v])
		g.edges += len(g.out[v])
	}
	// The undirected list is the union of both directions minus v itself.
	for v = 0; v < g.n; v++ {
		merged := make([]int, 0, len(g.out[v])+len(g.in[v]))
		for _, u := range g.out[v] {
			if u != v {
				merged = append(merged, u)
			}
		}
		for _, u := range g.in[v] {
			if u != v {
				merged = append(merged, u)
			}
		}
		g.und[v] = sortUnique(merged)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Digraph) Order() int { return g.n }

// Size returns the number of distinct directed edges, self-loops included.
func (g *Digraph) Size() int { return g.edges }

// Successors returns the sorted out-neighbors of v. The slice is shared; do not modify.
func (g *Digraph) Successors(v int) []int { return g.out[v] }

// Predecessors returns the sorted in-neighbors of v. The slice is shared; do not modify.
func (g *Digraph) Predecessors(v int) []int { return g.in[v] }

// Neighbors returns the sorted neighbors of v in the symmetrized graph
// (direction ignored, self-loop removed). The slice is shared; do not modify.
func (g *Digraph) Neighbors(v int) []int { return g.und[v] }

// OutDegree returns len(Successors(v)).
func (g *Digraph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns len(Predecessors(v)).
func (g *Digraph) InDegree(v int) int { return len(g.in[v]) }

// EachEdge calls fn for every directed edge in (from, to) ascending order.
func (g *Digraph) EachEdge(fn func(from, to int)) {
	var v int
	for v = 0; v < g.n; v++ {
		for _, u := range g.out[v] {
			fn(v, u)
		}
	}
}

// sortUnique sorts xs in place and drops repeated values.
func sortUnique(xs []int) []int {
	if len(xs) < 2 {
		return xs
	}
	sort.Ints(xs)
	w := 1
	for r := 1; r < len(xs); r++ {
		if xs[r] != xs[w-1] {
			xs[w] = xs[r]
			w++
		}
	}

	return xs[:w]
}

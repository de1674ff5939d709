// SPDX-License-Identifier: MIT

package netstats

import "github.com/katalvlaran/rcsweep/adjacency"

// Components labels every vertex with a component id.
//
// Ids are dense (0..Count()-1) and ordered by the smallest vertex of each
// component, so vertex 0 is always in component 0.
type Components struct {
	// Of maps vertex → component id.
	Of []int

	// Sizes maps component id → number of vertices.
	Sizes []int
}

// Count returns the number of components.
func (c Components) Count() int { return len(c.Sizes) }

// Largest returns the id and size of the biggest component. Ties resolve to
// the lowest id. An empty labelling returns (-1, 0).
func (c Components) Largest() (id, size int) {
	id = -1
	for i, s := range c.Sizes {
		if s > size {
			id, size = i, s
		}
	}

	return id, size
}

// Singletons returns how many components hold exactly one vertex.
func (c Components) Singletons() int {
	var n int
	for _, s := range c.Sizes {
		if s == 1 {
			n++
		}
	}

	return n
}

// Members returns the sorted vertices of component id.
// Complexity: O(V).
func (c Components) Members(id int) []int {
	out := make([]int, 0, c.Sizes[id])
	for v, cid := range c.Of {
		if cid == id {
			out = append(out, v)
		}
	}

	return out
}

// frame is one level of the explicit Tarjan call stack.
type frame struct {
	v    int // vertex being expanded
	next int // position in Successors(v) to resume from
}

// StronglyConnected labels the strongly connected components of g with an
// iterative Tarjan walk (no recursion, safe for long chains).
//
// Complexity: Time O(V + E), Memory O(V).
func StronglyConnected(g *adjacency.Digraph) Components {
	n := g.Order()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		index[v] = -1
	}

	stack := make([]int, 0, n)
	calls := make([]frame, 0, 64)
	var count, counter int

	visit := func(w int) {
		index[w], low[w] = counter, counter
		counter++
		stack = append(stack, w)
		onStack[w] = true
		calls = append(calls, frame{v: w})
	}

	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}
		visit(root)
		for len(calls) > 0 {
			top := len(calls) - 1
			cur := calls[top].v
			succ := g.Successors(cur)
			if calls[top].next < len(succ) {
				w := succ[calls[top].next]
				calls[top].next++
				if index[w] == -1 {
					visit(w)
				} else if onStack[w] && index[w] < low[cur] {
					low[cur] = index[w]
				}
				continue
			}

			// cur is fully explored: pop it and propagate its low-link.
			calls = calls[:top]
			if top > 0 {
				parent := calls[top-1].v
				if low[cur] < low[parent] {
					low[parent] = low[cur]
				}
			}
			if low[cur] != index[cur] {
				continue
			}
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = count
				if w == cur {
					break
				}
			}
			count++
		}
	}

	return relabel(comp, count)
}

// WeaklyConnected labels the connected components of the symmetrized graph.
//
// Complexity: Time O(V + E), Memory O(V).
func WeaklyConnected(g *adjacency.Digraph) Components {
	n := g.Order()
	comp := make([]int, n)
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var count int

	for v0 := 0; v0 < n; v0++ {
		if seen[v0] {
			continue
		}
		// BFS to collect the component of v0
		queue = append(queue[:0], v0)
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp[u] = count
			for _, w := range g.Neighbors(u) {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		count++
	}

	return relabel(comp, count)
}

// relabel renumbers component ids by first appearance in vertex order and
// recounts sizes.
func relabel(comp []int, count int) Components {
	mapping := make([]int, count)
	for i := range mapping {
		mapping[i] = -1
	}
	out := Components{Of: make([]int, len(comp)), Sizes: make([]int, 0, count)}
	for v, old := range comp {
		if mapping[old] == -1 {
			mapping[old] = len(out.Sizes)
			out.Sizes = append(out.Sizes, 0)
		}
		out.Of[v] = mapping[old]
		out.Sizes[mapping[old]]++
	}

	return out
}

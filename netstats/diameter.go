// SPDX-License-Identifier: MIT

package netstats

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rcsweep/adjacency"
)

// DiameterFunc computes the diameter of the subgraph of g induced by
// members, following edge direction. members must be sorted, non-empty and
// strongly connected; a single vertex has diameter 0.
//
// Large components make this the most expensive step of a compile pass,
// so callers pick the algorithm: Exact, Sampled, or Auto to switch by size.
type DiameterFunc interface {
	Diameter(ctx context.Context, g *adjacency.Digraph, members []int) (int, error)
}

// Exact computes the true diameter with one BFS per member.
// Workers > 1 spreads the sources over that many goroutines.
type Exact struct {
	Workers int
}

// Diameter implements DiameterFunc.
// Complexity: Time O(C·(C+E_C)), Memory O(V) per worker.
func (e Exact) Diameter(ctx context.Context, g *adjacency.Digraph, members []int) (int, error) {
	if len(members) == 0 {
		return 0, ErrEmptyComponent
	}
	mask := memberMask(g.Order(), members)
	ecc := make([]int, len(members))

	if e.Workers <= 1 {
		w := newWalker(g, mask)
		for i, src := range members {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			d, err := w.eccentricity(src, len(members))
			if err != nil {
				return 0, err
			}
			ecc[i] = d
		}

		return maxOf(ecc), nil
	}

	// One walker per worker; sources are pulled from a shared cursor.
	var next atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for range min(e.Workers, len(members)) {
		eg.Go(func() error {
			w := newWalker(g, mask)
			for {
				i := int(next.Add(1) - 1)
				if i >= len(members) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				d, err := w.eccentricity(members[i], len(members))
				if err != nil {
					return err
				}
				ecc[i] = d // each index is taken by exactly one worker
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return maxOf(ecc), nil
}

// Sampled estimates the diameter with double sweeps from Sources randomly
// chosen members: BFS from a sample, then BFS again from the farthest vertex
// reached. The result is a lower bound of the exact diameter and equals it
// on many sparse random graphs. Seed fixes the sample for reproducibility.
type Sampled struct {
	Sources int
	Seed    int64
}

// Diameter implements DiameterFunc.
// Complexity: Time O(Sources·(C+E_C)).
func (s Sampled) Diameter(ctx context.Context, g *adjacency.Digraph, members []int) (int, error) {
	if len(members) == 0 {
		return 0, ErrEmptyComponent
	}
	k := s.Sources
	if k <= 0 {
		k = 1
	}
	rng := rand.New(rand.NewSource(s.Seed))
	w := newWalker(g, memberMask(g.Order(), members))

	var best int
	for i := 0; i < k; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		src := members[rng.Intn(len(members))]
		d, err := w.eccentricity(src, len(members))
		if err != nil {
			return 0, err
		}
		best = max(best, d)
		d, err = w.eccentricity(w.farthest, len(members))
		if err != nil {
			return 0, err
		}
		best = max(best, d)
	}

	return best, nil
}

// Auto uses Small for components of at most Threshold vertices and Large
// above it.
type Auto struct {
	Threshold int
	Small     DiameterFunc
	Large     DiameterFunc
}

// Diameter implements DiameterFunc.
func (a Auto) Diameter(ctx context.Context, g *adjacency.Digraph, members []int) (int, error) {
	if len(members) > a.Threshold {
		return a.Large.Diameter(ctx, g, members)
	}

	return a.Small.Diameter(ctx, g, members)
}

// walker holds reusable BFS buffers restricted to one vertex set.
type walker struct {
	g        *adjacency.Digraph
	mask     []bool
	depth    []int
	queue    []int
	farthest int // last vertex dequeued by the previous eccentricity call
}

func newWalker(g *adjacency.Digraph, mask []bool) *walker {
	depth := make([]int, g.Order())
	for i := range depth {
		depth[i] = -1
	}

	return &walker{g: g, mask: mask, depth: depth, queue: make([]int, 0, g.Order())}
}

// eccentricity runs a directed BFS from src inside the mask and returns the
// largest depth reached. want is the number of vertices that must be reached.
func (w *walker) eccentricity(src, want int) (int, error) {
	w.queue = append(w.queue[:0], src)
	w.depth[src] = 0
	var ecc int
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		ecc = w.depth[u]
		for _, v := range w.g.Successors(u) {
			if w.mask[v] && w.depth[v] == -1 {
				w.depth[v] = ecc + 1
				w.queue = append(w.queue, v)
			}
		}
	}
	reached := len(w.queue)
	w.farthest = w.queue[reached-1]
	for _, v := range w.queue {
		w.depth[v] = -1
	}
	if reached != want {
		return 0, fmt.Errorf("%w: reached %d of %d vertices from %d", ErrNotStronglyConnected, reached, want, src)
	}

	return ecc, nil
}

func memberMask(n int, members []int) []bool {
	mask := make([]bool, n)
	for _, v := range members {
		mask[v] = true
	}

	return mask
}

func maxOf(xs []int) int {
	var m int
	for _, x := range xs {
		m = max(m, x)
	}

	return m
}

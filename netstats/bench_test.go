// SPDX-License-Identifier: MIT

package netstats_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/netstats"
)

// randomDigraph mirrors the sweep's random_digraph topology: each directed
// edge present with probability 2/n.
func randomDigraph(n int, seed int64) *adjacency.Sparse {
	rng := rand.New(rand.NewSource(seed))
	s := adjacency.NewSparse(n)
	p := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rng.Float64() < p {
				s.AddEdge(i, j, 1)
			}
		}
	}

	return s
}

func BenchmarkCompute_Exact2000(b *testing.B) {
	s := randomDigraph(2000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = netstats.Compute(s)
	}
}

func BenchmarkCompute_Parallel2000(b *testing.B) {
	s := randomDigraph(2000, 1)
	opt := netstats.WithDiameter(netstats.Exact{Workers: 8})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = netstats.Compute(s, opt)
	}
}

func BenchmarkDiameter_Sampled2000(b *testing.B) {
	g, _ := randomDigraph(2000, 1).Digraph()
	id, _ := netstats.StronglyConnected(g).Largest()
	members := netstats.StronglyConnected(g).Members(id)
	fn := netstats.Sampled{Sources: 8, Seed: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fn.Diameter(context.Background(), g, members)
	}
}

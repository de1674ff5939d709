// SPDX-License-Identifier: MIT

package netstats

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rcsweep/adjacency"
)

// Features are the topology statistics of one trial's adjacency matrix.
type Features struct {
	MaxWCC     float64 // largest weakly connected component / n
	MaxSCC     float64 // largest strongly connected component / n
	Singletons int     // weakly connected components of size 1
	NWCC       int     // number of weakly connected components
	NSCC       int     // number of strongly connected components
	Diam       int     // diameter of the largest SCC
	Cluster    float64 // average clustering, symmetrized graph
	Assort     float64 // degree assortativity, NaN when undefined

	// EdgeWeight is the shared weight of all edges; valid only when
	// UniformWeight is true.
	EdgeWeight    float64
	UniformWeight bool
}

// Compute derives Features from one adjacency matrix.
//
// Implementation:
//   - Stage 1: Validate and build the Digraph.
//   - Stage 2: Label strong and weak components.
//   - Stage 3: Diameter of the largest SCC via Options.Diameter.
//   - Stage 4: Clustering, assortativity (degenerate → NaN), uniform weight.
//
// Errors:
//   - adjacency sentinels for malformed matrices.
//   - DiameterFunc errors (including context cancellation).
func Compute(s *adjacency.Sparse, opts ...Option) (Features, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := s.Digraph()
	if err != nil {
		return Features{}, fmt.Errorf("netstats: %w", err)
	}
	n := float64(g.Order())

	scc := StronglyConnected(g)
	wcc := WeaklyConnected(g)
	sccID, sccSize := scc.Largest()
	_, wccSize := wcc.Largest()

	diam, err := o.Diameter.Diameter(o.Ctx, g, scc.Members(sccID))
	if err != nil {
		return Features{}, fmt.Errorf("netstats: diameter of largest SCC (%d vertices): %w", sccSize, err)
	}

	f := Features{
		MaxWCC:     float64(wccSize) / n,
		MaxSCC:     float64(sccSize) / n,
		Singletons: wcc.Singletons(),
		NWCC:       wcc.Count(),
		NSCC:       scc.Count(),
		Diam:       diam,
		Cluster:    AverageClustering(g),
	}
	f.Assort, err = Assortativity(g)
	if errors.Is(err, ErrDegenerateGraph) {
		f.Assort = math.NaN()
	}
	f.EdgeWeight, f.UniformWeight = s.UniformWeight()

	return f, nil
}

// SPDX-License-Identifier: MIT

// Package netstats computes the topology features stored next to every
// trained reservoir in a compiled dataset.
//
// What
//
//   - StronglyConnected / WeaklyConnected: component labelling (iterative
//     Tarjan on directed edges, BFS on the symmetrized graph).
//   - DiameterFunc: longest shortest path inside one strongly connected
//     component. Exact, Sampled and Auto implementations are provided.
//   - AverageClustering: mean local clustering coefficient of the
//     symmetrized graph.
//   - Assortativity: out→in degree correlation over directed edges.
//   - Compute: all of the above for one adjacency matrix, as Features.
//
// Semantics
//
//   - Strong connectivity and diameter follow edge direction.
//   - Weak connectivity and clustering ignore direction and self-loops.
//   - The diameter is taken over the largest SCC only, because it is
//     infinite on a disconnected graph. Ties between equally large SCCs go
//     to the one holding the smallest vertex index.
//   - Assortativity of a graph without degree variance is undefined.
//     Compute reports NaN for it; Assortativity itself returns
//     ErrDegenerateGraph.
//
// Complexity (V = vertices, E = edges, C = largest SCC size)
//
//   - Components:  O(V + E)
//   - Clustering:  O(Σ deg(v)²)
//   - Exact diam.: O(C · (C + E_C)), the dominant cost of a compile pass;
//     sources are spread across Exact.Workers goroutines.
//   - Sampled:     O(k · (C + E_C)) for k sampled sources (lower bound).
//
// Errors
//
//   - ErrDegenerateGraph      degree variance is zero (assortativity only).
//   - ErrNotStronglyConnected diameter requested over a vertex set that is
//     not strongly connected.
//   - ErrEmptyComponent       diameter requested over no vertices.
//   - context errors          from WithContext cancellation.
package netstats

// SPDX-License-Identifier: MIT

// Package adjacency holds the sparse adjacency matrices recorded for every
// trained reservoir and turns them into index-based directed graphs.
//
// What:
//
//   - Sparse: a square COO matrix (n, rows, cols, vals) in the transposed
//     convention used by the training library: row = target, col = source.
//     A non-zero entry (r, c, w) is the directed edge c → r with weight w.
//   - Digraph: an immutable CSR-like view with sorted successor, predecessor
//     and symmetrized (undirected, loop-free) neighbor lists.
//
// Why:
//
//   - Result files carry thousands of trials of 2000-3500 nodes each. String
//     vertex IDs and per-edge maps are too heavy for that volume, so vertices
//     are plain ints in [0, n).
//
// Determinism:
//
//   - Every neighbor list is sorted ascending and free of duplicates, so any
//     traversal over a Digraph visits vertices in a reproducible order.
//
// Complexity:
//
//   - Digraph(): Time O(E log E), Memory O(V + E).
//
// Errors:
//
//   - ErrEmpty:        matrix has no rows.
//   - ErrShape:        rows/cols/vals lengths differ.
//   - ErrOutOfRange:   an index lies outside [0, n).
//   - ErrNaNInf:       a weight is NaN or ±Inf.
package adjacency

// SPDX-License-Identifier: MIT

package adjacency

import (
	"fmt"
	"math"
)

// UniformTolerance is the spread below which all non-zero weights are
// considered one shared scalar.
const UniformTolerance = 1e-8

// Sparse is a square adjacency matrix in coordinate (COO) form.
//
// Convention: Rows[i] is the target and Cols[i] the source of entry i, so
// (Rows[i], Cols[i], Vals[i]) describes the edge Cols[i] → Rows[i].
// Explicit zeros are kept in storage but never become edges.
// Duplicate coordinates collapse into one edge.
type Sparse struct {
	N    int       `msgpack:"n"`
	Rows []int     `msgpack:"rows"`
	Cols []int     `msgpack:"cols"`
	Vals []float64 `msgpack:"vals"`
}

// NewSparse returns an empty n×n matrix.
func NewSparse(n int) *Sparse {
	return &Sparse{N: n}
}

// AddEdge records the directed edge from → to with weight w.
// Indices are not checked here; Validate reports them.
func (s *Sparse) AddEdge(from, to int, w float64) {
	s.Rows = append(s.Rows, to)
	s.Cols = append(s.Cols, from)
	s.Vals = append(s.Vals, w)
}

// NNZ returns the number of stored entries whose value is non-zero.
// Complexity: O(nnz).
func (s *Sparse) NNZ() int {
	var c int
	for _, v := range s.Vals {
		if v != 0 {
			c++
		}
	}

	return c
}

// Validate checks shape, index bounds and finiteness.
//
// Error priority: ErrEmpty → ErrShape → ErrOutOfRange → ErrNaNInf.
// Complexity: O(nnz).
func (s *Sparse) Validate() error {
	if s == nil || s.N <= 0 {
		return ErrEmpty
	}
	if len(s.Rows) != len(s.Cols) || len(s.Rows) != len(s.Vals) {
		return fmt.Errorf("%w: rows=%d cols=%d vals=%d", ErrShape, len(s.Rows), len(s.Cols), len(s.Vals))
	}
	var i int
	for i = range s.Rows {
		if s.Rows[i] < 0 || s.Rows[i] >= s.N || s.Cols[i] < 0 || s.Cols[i] >= s.N {
			return fmt.Errorf("%w: entry %d at (%d,%d), n=%d", ErrOutOfRange, i, s.Rows[i], s.Cols[i], s.N)
		}
		if math.IsNaN(s.Vals[i]) || math.IsInf(s.Vals[i], 0) {
			return fmt.Errorf("%w: entry %d", ErrNaNInf, i)
		}
	}

	return nil
}

// UniformWeight reports the shared weight of all non-zero entries when their
// spread (max − min) is below UniformTolerance. It reports false when the
// weights are heterogeneous or the matrix has no non-zero entry.
//
// Complexity: O(nnz).
func (s *Sparse) UniformWeight() (float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.Vals {
		if v == 0 {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, false
	}
	if hi-lo < UniformTolerance {
		return hi, true
	}

	return 0, false
}

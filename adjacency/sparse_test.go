// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsweep/adjacency"
)

func TestSparse_Validate(t *testing.T) {
	var nilMatrix *adjacency.Sparse
	assert.ErrorIs(t, nilMatrix.Validate(), adjacency.ErrEmpty)
	assert.ErrorIs(t, adjacency.NewSparse(0).Validate(), adjacency.ErrEmpty)

	s := &adjacency.Sparse{N: 2, Rows: []int{0}, Cols: []int{0, 1}, Vals: []float64{1}}
	assert.ErrorIs(t, s.Validate(), adjacency.ErrShape)

	s = adjacency.NewSparse(2)
	s.AddEdge(0, 2, 1)
	assert.ErrorIs(t, s.Validate(), adjacency.ErrOutOfRange)

	s = adjacency.NewSparse(2)
	s.AddEdge(0, 1, math.NaN())
	assert.ErrorIs(t, s.Validate(), adjacency.ErrNaNInf)

	s = adjacency.NewSparse(2)
	s.AddEdge(0, 1, 0.5)
	assert.NoError(t, s.Validate())
}

func TestSparse_UniformWeight(t *testing.T) {
	s := adjacency.NewSparse(3)
	_, ok := s.UniformWeight()
	assert.False(t, ok, "no non-zero entries")

	s.AddEdge(0, 1, 0.7)
	s.AddEdge(1, 2, 0.7+1e-10)
	s.AddEdge(2, 0, 0) // explicit zero ignored
	w, ok := s.UniformWeight()
	require.True(t, ok)
	assert.InDelta(t, 0.7, w, 1e-9)

	s.AddEdge(2, 1, 1.5)
	_, ok = s.UniformWeight()
	assert.False(t, ok, "heterogeneous weights")
	assert.Equal(t, 3, s.NNZ())
}

func TestSparse_DigraphTransposedConvention(t *testing.T) {
	// Entry at row 1, col 0 is the edge 0 → 1.
	s := &adjacency.Sparse{N: 3, Rows: []int{1, 1, 2, 0}, Cols: []int{0, 0, 1, 0}, Vals: []float64{1, 1, 2, 3}}
	g, err := s.Digraph()
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size(), "duplicate 0→1 collapses, loop 0→0 counts")
	assert.Equal(t, []int{0, 1}, g.Successors(0))
	assert.Equal(t, []int{2}, g.Successors(1))
	assert.Equal(t, []int{0}, g.Predecessors(1))
	assert.Equal(t, []int{1}, g.Neighbors(0), "self-loop dropped from undirected view")
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 1, g.InDegree(2))

	var edges [][2]int
	g.EachEdge(func(from, to int) { edges = append(edges, [2]int{from, to}) })
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 2}}, edges)
}

func TestSparse_DigraphRejectsInvalid(t *testing.T) {
	_, err := adjacency.NewSparse(0).Digraph()
	assert.ErrorIs(t, err, adjacency.ErrEmpty)
}

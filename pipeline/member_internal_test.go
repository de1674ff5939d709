// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/failure"
	"github.com/katalvlaran/rcsweep/jobfile"
	"github.com/katalvlaran/rcsweep/netstats"
)

type panicking struct{}

func (panicking) Diameter(context.Context, *adjacency.Digraph, []int) (int, error) {
	panic("boom")
}

func TestProcessMember_RecoversPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_0.msgpack")
	adj := adjacency.NewSparse(2)
	adj.AddEdge(0, 1, 1)
	require.NoError(t, jobfile.WriteFile(path, jobfile.TrialBatch{0: {
		MeanPred: dataset.Some(1.0),
		Adj:      adj,
	}}))

	ds, err := dataset.New(1, 1, dataset.DefaultSchema())
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	c := &Compiler{Logger: logger}

	o := c.processMember(context.Background(), ds, 0, path, panicking{}, "0")
	require.Equal(t, failure.KindUnexpected, o.Kind())
	assert.ErrorContains(t, o.(failure.Unexpected).Err, "boom")
	assert.Equal(t, []int{0}, ds.JobOfSlot)
	assert.Zero(t, ds.Filled())

	o = c.processMember(context.Background(), ds, 0, path, netstats.Exact{}, "0")
	require.Equal(t, failure.KindOk, o.Kind())
	assert.Equal(t, dataset.Some(1.0), ds.Numeric[dataset.ColMeanPred][0])
	assert.Equal(t, dataset.Some(0.5), ds.Numeric[dataset.ColMaxSCC][0])
}

func TestJobIndex(t *testing.T) {
	j, err := JobIndex("name", 5, "dir/erdos_137.msgpack", 100)
	require.NoError(t, err)
	assert.Equal(t, 37, j)

	j, err = JobIndex("position", 5, "whatever", 100)
	require.NoError(t, err)
	assert.Equal(t, 5, j)

	_, err = JobIndex("name", 0, "readme.txt", 0)
	assert.ErrorIs(t, err, ErrNoJobNumber)
}

func TestFeaturesRow(t *testing.T) {
	row := FeaturesRow(netstats.Features{MaxSCC: 0.5, Diam: 3})
	assert.Equal(t, 3.0, row.Numeric[dataset.ColDiam])
	assert.NotContains(t, row.Numeric, dataset.ColEdgeWeight)

	row = FeaturesRow(netstats.Features{UniformWeight: true, EdgeWeight: 0.2})
	assert.Equal(t, 0.2, row.Numeric[dataset.ColEdgeWeight])
}

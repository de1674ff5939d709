// SPDX-License-Identifier: MIT

package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsweep/dataset"
)

// compiled builds a dataset whose every job is claimed and holds mean_pred = job.
func compiled(t *testing.T, jobs, nets int, prefix string) *dataset.Dataset {
	t.Helper()
	d := newDataset(t, jobs, nets)
	for j := 0; j < jobs; j++ {
		require.NoError(t, d.ClaimJob(j))
		rows := map[int]dataset.Row{}
		for k := 0; k < nets; k++ {
			rows[k] = dataset.Row{Numeric: map[string]float64{dataset.ColMeanPred: float64(j)}}
		}
		require.NoError(t, d.Accumulate(j, rows))
	}
	d.Sources = []dataset.Source{{Prefix: prefix, Jobs: jobs}}

	return d
}

func TestMerge_RenumbersSecondDataset(t *testing.T) {
	a := compiled(t, 3, 2, "a")
	b := compiled(t, 2, 2, "b")
	aJobs := append([]int(nil), a.JobOfSlot...)
	bJobs := append([]int(nil), b.JobOfSlot...)

	m, err := dataset.Merge(a, b)
	require.NoError(t, err)

	assert.Equal(t, a.Len()+b.Len(), m.Len())
	assert.Equal(t, 5, m.Jobs)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}, m.JobOfSlot)
	distinct := map[int]bool{}
	for _, j := range m.JobOfSlot {
		distinct[j] = true
	}
	assert.Len(t, distinct, 5)
	assert.Equal(t, aJobs, m.JobOfSlot[:a.Len()], "first dataset unchanged")
	for i, j := range bJobs {
		assert.Equal(t, j+a.MaxJob()+1, m.JobOfSlot[a.Len()+i])
	}
	assert.Equal(t, 1.0, m.Numeric[dataset.ColMeanPred][8].Value, "b's job 1 data follows its slot")

	// Inputs untouched.
	assert.Equal(t, aJobs, a.JobOfSlot)
	assert.Equal(t, bJobs, b.JobOfSlot)
	assert.Len(t, a.Numeric[dataset.ColMeanPred], 6)

	require.Len(t, m.Sources, 2)
	assert.Equal(t, 6, m.Sources[1].SlotOffset)
	assert.Equal(t, 3, m.Sources[1].JobShift)
}

func TestMerge_UnclaimedTailKeepsProvenance(t *testing.T) {
	a := newDataset(t, 3, 2)
	require.NoError(t, a.ClaimJob(0)) // jobs 1 and 2 never claimed
	b := compiled(t, 2, 2, "b")
	b.Sources[0].StartExperiment = 40

	m, err := dataset.Merge(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, -1, -1, -1, -1, 1, 1, 2, 2}, m.JobOfSlot)

	// The merged id of slot 8 is 2, not 8/2 = 4; the source recovers b's job.
	src := m.Sources[len(m.Sources)-1]
	assert.Equal(t, 1, src.JobShift)
	assert.Equal(t, 6, src.SlotOffset)
	assert.Equal(t, 40, src.StartExperiment)
	assert.Equal(t, 1, m.JobOfSlot[8]-src.JobShift)
	assert.Equal(t, 1, (8-src.SlotOffset)/m.NetsPerJob)
}

func TestMerge_KeepsSentinelAndEmptyLeft(t *testing.T) {
	a := newDataset(t, 2, 1) // nothing claimed
	b := newDataset(t, 2, 1)
	require.NoError(t, b.ClaimJob(1))

	m, err := dataset.Merge(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, 1}, m.JobOfSlot)
}

func TestMergeAll_Associative(t *testing.T) {
	a := compiled(t, 2, 1, "a")
	b := compiled(t, 1, 1, "b")
	c := compiled(t, 3, 1, "c")

	left, err := dataset.MergeAll(a, b, c)
	require.NoError(t, err)
	bc, err := dataset.Merge(b, c)
	require.NoError(t, err)
	right, err := dataset.Merge(a, bc)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, left.JobOfSlot)
	assert.Equal(t, left.JobOfSlot, right.JobOfSlot)
	assert.Equal(t, left.Numeric, right.Numeric)

	_, err = dataset.MergeAll()
	assert.ErrorIs(t, err, dataset.ErrIncompatible)
}

func TestMerge_Incompatible(t *testing.T) {
	_, err := dataset.Merge(newDataset(t, 1, 2), newDataset(t, 1, 3))
	assert.ErrorIs(t, err, dataset.ErrIncompatible)

	other, err := dataset.New(1, 2, dataset.RecordSchema)
	require.NoError(t, err)
	_, err = dataset.Merge(newDataset(t, 1, 2), other)
	assert.ErrorIs(t, err, dataset.ErrIncompatible)

	_, err = dataset.Merge(nil, other)
	assert.ErrorIs(t, err, dataset.ErrIncompatible)
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	p1, p2 := filepath.Join(dir, "p0.msgpack"), filepath.Join(dir, "p1.msgpack")
	require.NoError(t, compiled(t, 2, 2, "a").Save(p1))
	require.NoError(t, compiled(t, 1, 2, "b").Save(p2))

	m, err := dataset.MergeFiles(p1, p2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, m.JobOfSlot)
}

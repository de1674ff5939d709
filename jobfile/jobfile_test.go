// SPDX-License-Identifier: MIT

package jobfile_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/failure"
	"github.com/katalvlaran/rcsweep/jobfile"
)

func cycle(n int) *adjacency.Sparse {
	s := adjacency.NewSparse(n)
	for i := 0; i < n; i++ {
		s.AddEdge(i, (i+1)%n, 0.5)
	}

	return s
}

func fullRecord() jobfile.TrialRecord {
	return jobfile.TrialRecord{
		Net:        dataset.Some("erdos"),
		TopoP:      dataset.Some(0.1),
		SpectRad:   dataset.Some(0.9),
		Gamma:      dataset.Some(5.0),
		Sigma:      dataset.Some(0.14),
		RidgeAlpha: dataset.Some(1e-4),
		RemoveP:    dataset.Some(0.0),
		MeanPred:   dataset.Some(3.5),
		MeanErr:    dataset.Some(0.02),
		AdjSize:    dataset.Some(5.0),
		Pred:       dataset.Some([]float64{3, 4}),
		Err:        dataset.Some([]float64{0.01, 0.03}),
		Adj:        cycle(5),
	}
}

// rawRecord is the wire form of fullRecord with key dropped.
func rawRecord(drop string) map[string]any {
	m := map[string]any{
		"net": "erdos", "topo_p": 0.1, "spect_rad": 0.9, "gamma": 5.0, "sigma": 0.14,
		"ridge_alpha": 1e-4, "remove_p": 0.0, "mean_pred": 3.5, "mean_err": 0.02,
		"adj_size": 5, "pred": []float64{3, 4}, "err": []float64{0.01, 0.03},
		"adj": map[string]any{"n": 2, "rows": []int{1}, "cols": []int{0}, "vals": []float64{1}},
	}
	delete(m, drop)

	return m
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := msgpack.Marshal(v)
	require.NoError(t, err)

	return b
}

func TestEncodeDecode(t *testing.T) {
	in := jobfile.TrialBatch{0: fullRecord(), 3: fullRecord()}
	var buf bytes.Buffer
	require.NoError(t, jobfile.Encode(&buf, in))

	got, err := jobfile.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, in[3], got[3])
}

func TestDecode_NilIsUnset(t *testing.T) {
	rec := rawRecord("")
	rec["mean_pred"] = nil
	rec["adj"] = nil
	b := marshal(t, map[int]any{0: rec})

	got, err := jobfile.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.False(t, got[0].MeanPred.Valid)
	assert.Nil(t, got[0].Adj)
	// Integer wire values decode into float fields.
	assert.Equal(t, dataset.Some(5.0), got[0].AdjSize)
}

func TestDecode_MissingKey(t *testing.T) {
	for _, key := range jobfile.Keys {
		b := marshal(t, map[int]any{0: rawRecord(key)})
		_, err := jobfile.Decode(bytes.NewReader(b))
		assert.ErrorIs(t, err, jobfile.ErrMissingKey, key)
		assert.Equal(t, failure.KindMissingData, jobfile.Classify(err).Kind(), key)
	}
}

func TestDecode_Truncated(t *testing.T) {
	b := marshal(t, map[int]any{0: rawRecord(""), 1: rawRecord("")})
	_, err := jobfile.Decode(bytes.NewReader(b[:len(b)/2]))
	assert.ErrorIs(t, err, jobfile.ErrCorrupt)
	assert.Equal(t, failure.KindMissingData, jobfile.Classify(err).Kind())

	_, err = jobfile.Decode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, jobfile.ErrCorrupt)
}

func TestDecode_WrongTypeIsUnexpected(t *testing.T) {
	rec := rawRecord("")
	rec["gamma"] = "five"
	b := marshal(t, map[int]any{0: rec})

	_, err := jobfile.Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, jobfile.ErrFieldType)
	assert.Equal(t, failure.KindUnexpected, jobfile.Classify(err).Kind())
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job_7.msgpack")
	require.NoError(t, jobfile.WriteFile(path, jobfile.TrialBatch{1: fullRecord()}))

	o := jobfile.DecodeFile(path)
	ok, isOk := o.(failure.Ok[jobfile.TrialBatch])
	require.True(t, isOk, "outcome %T", o)
	assert.Equal(t, 5, ok.Value[1].Adj.N)

	o = jobfile.DecodeFile(filepath.Join(dir, "absent"))
	assert.Equal(t, failure.KindUnexpected, o.Kind())
}

func TestRows(t *testing.T) {
	rec := fullRecord()
	rec.Sigma = dataset.None[float64]()
	rows := jobfile.TrialBatch{2: rec}.Rows()

	row := rows[2]
	assert.Equal(t, 3.5, row.Numeric[dataset.ColMeanPred])
	assert.NotContains(t, row.Numeric, dataset.ColSigma)
	assert.Equal(t, "erdos", row.Labels[dataset.ColNet])
	assert.Equal(t, []float64{3, 4}, row.Sequences[dataset.ColPred])

	d, err := dataset.New(1, 4, dataset.DefaultSchema())
	require.NoError(t, err)
	require.NoError(t, d.Accumulate(0, rows))
	assert.Equal(t, dataset.Some(0.9), d.Numeric[dataset.ColSpectRad][2])
	assert.False(t, d.Numeric[dataset.ColSigma][2].Valid)
}

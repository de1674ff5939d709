// SPDX-License-Identifier: MIT

package jobfile

import (
	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/dataset"
)

// KeyAdj is the record key of the raw adjacency matrix.
const KeyAdj = "adj"

// Keys lists every key a record must carry: the record columns of
// dataset.RecordSchema followed by KeyAdj.
var Keys = func() []string {
	out := make([]string, 0, len(dataset.RecordSchema)+1)
	for _, f := range dataset.RecordSchema {
		out = append(out, f.Name)
	}

	return append(out, KeyAdj)
}()

// TrialRecord is one trial of a job. Unset fields stay distinct from zero.
type TrialRecord struct {
	Net        dataset.Maybe[string]
	TopoP      dataset.Maybe[float64]
	SpectRad   dataset.Maybe[float64]
	Gamma      dataset.Maybe[float64]
	Sigma      dataset.Maybe[float64]
	RidgeAlpha dataset.Maybe[float64]
	RemoveP    dataset.Maybe[float64]
	MeanPred   dataset.Maybe[float64]
	MeanErr    dataset.Maybe[float64]
	AdjSize    dataset.Maybe[float64]
	Pred       dataset.Maybe[[]float64]
	Err        dataset.Maybe[[]float64]

	// Adj is consumed by netstats and never stored in a dataset.
	Adj *adjacency.Sparse
}

// TrialBatch maps local trial index to record.
type TrialBatch map[int]TrialRecord

func (r *TrialRecord) numeric() map[string]*dataset.Maybe[float64] {
	return map[string]*dataset.Maybe[float64]{
		dataset.ColTopoP:      &r.TopoP,
		dataset.ColSpectRad:   &r.SpectRad,
		dataset.ColGamma:      &r.Gamma,
		dataset.ColSigma:      &r.Sigma,
		dataset.ColRidgeAlpha: &r.RidgeAlpha,
		dataset.ColRemoveP:    &r.RemoveP,
		dataset.ColMeanPred:   &r.MeanPred,
		dataset.ColMeanErr:    &r.MeanErr,
		dataset.ColAdjSize:    &r.AdjSize,
	}
}

func (r *TrialRecord) sequences() map[string]*dataset.Maybe[[]float64] {
	return map[string]*dataset.Maybe[[]float64]{
		dataset.ColPred: &r.Pred,
		dataset.ColErr:  &r.Err,
	}
}

// Row converts the set fields of r into a dataset row.
func (r TrialRecord) Row() dataset.Row {
	row := dataset.Row{
		Numeric:   make(map[string]float64),
		Labels:    make(map[string]string),
		Sequences: make(map[string][]float64),
	}
	for name, m := range r.numeric() {
		if v, ok := m.Get(); ok {
			row.Numeric[name] = v
		}
	}
	for name, m := range r.sequences() {
		if v, ok := m.Get(); ok {
			row.Sequences[name] = v
		}
	}
	if v, ok := r.Net.Get(); ok {
		row.Labels[dataset.ColNet] = v
	}

	return row
}

// Rows converts every record of b.
func (b TrialBatch) Rows() map[int]dataset.Row {
	out := make(map[int]dataset.Row, len(b))
	for k, r := range b {
		out[k] = r.Row()
	}

	return out
}

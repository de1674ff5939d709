// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Merge concatenates a and b into a new dataset: a's slots first, then b's.
//
// Job ids of b are renumbered by shift = a.MaxJob()+1 (0 when a has no
// claimed slot), so b's job 0 lands right after a's highest job. Unclaimed
// slots of b stay Unclaimed. Neither input is modified, and b's ids are
// shifted exactly once, so merging a merge result again stays consistent.
//
// Errors: ErrIncompatible when NetsPerJob or the schemas differ.
// Complexity: O(Len(a)+Len(b)) per column.
func Merge(a, b *Dataset) (*Dataset, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil dataset", ErrIncompatible)
	}
	if a.NetsPerJob != b.NetsPerJob {
		return nil, fmt.Errorf("%w: nets per job %d vs %d", ErrIncompatible, a.NetsPerJob, b.NetsPerJob)
	}
	if !a.Schema.Equal(b.Schema) {
		return nil, fmt.Errorf("%w: schemas differ", ErrIncompatible)
	}

	shift := a.MaxJob() + 1
	out := &Dataset{
		Jobs:       a.Jobs + b.Jobs,
		NetsPerJob: a.NetsPerJob,
		Schema:     append(Schema(nil), a.Schema...),
		JobOfSlot:  make([]int, 0, a.Len()+b.Len()),
		Numeric:    make(map[string]Series[float64], len(a.Numeric)),
		Labels:     make(map[string]Series[string], len(a.Labels)),
		Sequences:  make(map[string]Series[[]float64], len(a.Sequences)),
		Sources:    make([]Source, 0, len(a.Sources)+len(b.Sources)),
	}

	out.JobOfSlot = append(out.JobOfSlot, a.JobOfSlot...)
	for _, j := range b.JobOfSlot {
		if j != Unclaimed {
			j += shift
		}
		out.JobOfSlot = append(out.JobOfSlot, j)
	}

	for name, s := range a.Numeric {
		out.Numeric[name] = concat(s, b.Numeric[name])
	}
	for name, s := range a.Labels {
		out.Labels[name] = concat(s, b.Labels[name])
	}
	for name, s := range a.Sequences {
		out.Sequences[name] = concat(s, b.Sequences[name])
	}

	out.Sources = append(out.Sources, a.Sources...)
	for _, src := range b.Sources {
		src.SlotOffset += a.Len()
		src.JobShift += shift
		out.Sources = append(out.Sources, src)
	}

	return out, nil
}

// MergeAll folds Merge left to right. One dataset is returned as a copy-free
// identity; none is an error.
func MergeAll(ds ...*Dataset) (*Dataset, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", ErrIncompatible)
	}
	acc := ds[0]
	var err error
	for i := 1; i < len(ds); i++ {
		if acc, err = Merge(acc, ds[i]); err != nil {
			return nil, fmt.Errorf("merge input %d: %w", i, err)
		}
	}

	return acc, nil
}

func concat[T any](a, b Series[T]) Series[T] {
	out := make(Series[T], 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

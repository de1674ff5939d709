// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"sort"
)

// Unclaimed is the JobOfSlot value of a slot no job has claimed.
const Unclaimed = -1

// Source records where a block of slots came from. Merges keep one Source
// per original partition.
type Source struct {
	TestID    string `msgpack:"test_id"`
	Prefix    string `msgpack:"prefix"`
	Partition int    `msgpack:"partition"`
	Jobs      int    `msgpack:"jobs"`
	// StartExperiment is the experiment number of the block's local job 0.
	StartExperiment int `msgpack:"start_experiment"`

	// SlotOffset is the first slot of this block in the dataset.
	SlotOffset int `msgpack:"slot_offset"`
	// JobShift was added to this block's job ids by merges.
	JobShift int `msgpack:"job_shift"`
}

// Row is one trial's values, keyed by column name. Columns absent from the
// maps are left untouched on write.
type Row struct {
	Numeric   map[string]float64
	Labels    map[string]string
	Sequences map[string][]float64
}

// Dataset is the compiled table of one partition (or of a merge).
type Dataset struct {
	Jobs       int    `msgpack:"jobs"`
	NetsPerJob int    `msgpack:"nets_per_job"`
	Schema     Schema `msgpack:"schema"`

	// JobOfSlot maps slot → job id, Unclaimed when untouched.
	JobOfSlot []int `msgpack:"job_of_slot"`

	Numeric   map[string]Series[float64]   `msgpack:"numeric"`
	Labels    map[string]Series[string]    `msgpack:"labels"`
	Sequences map[string]Series[[]float64] `msgpack:"sequences"`

	Sources []Source `msgpack:"sources"`
}

// New allocates a dataset of jobs × netsPerJob unset slots.
//
// Complexity: O(Len() · len(schema)).
func New(jobs, netsPerJob int, schema Schema) (*Dataset, error) {
	if jobs < 0 || netsPerJob <= 0 {
		return nil, fmt.Errorf("%w: jobs=%d nets_per_job=%d", ErrShape, jobs, netsPerJob)
	}
	n := jobs * netsPerJob
	d := &Dataset{
		Jobs:       jobs,
		NetsPerJob: netsPerJob,
		Schema:     append(Schema(nil), schema...),
		JobOfSlot:  make([]int, n),
		Numeric:    make(map[string]Series[float64]),
		Labels:     make(map[string]Series[string]),
		Sequences:  make(map[string]Series[[]float64]),
	}
	for i := range d.JobOfSlot {
		d.JobOfSlot[i] = Unclaimed
	}
	for _, f := range schema {
		switch f.Kind {
		case Numeric:
			d.Numeric[f.Name] = newSeries[float64](n)
		case Label:
			d.Labels[f.Name] = newSeries[string](n)
		case Sequence:
			d.Sequences[f.Name] = newSeries[[]float64](n)
		}
	}

	return d, nil
}

// Len returns the number of slots.
func (d *Dataset) Len() int { return len(d.JobOfSlot) }

// Offset returns the first slot of job.
func (d *Dataset) Offset(job int) (int, error) {
	if job < 0 || job >= d.Jobs {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrJobOutOfRange, job, d.Jobs)
	}

	return job * d.NetsPerJob, nil
}

// ClaimJob marks every slot of job as attempted by it.
func (d *Dataset) ClaimJob(job int) error {
	start, err := d.Offset(job)
	if err != nil {
		return err
	}
	for k := 0; k < d.NetsPerJob; k++ {
		d.JobOfSlot[start+k] = job
	}

	return nil
}

// Accumulate writes the rows of one job at the job's offset: for every key
// k, every value of rows[k] overwrites slot Offset(job)+k.
//
// All keys and column names are validated before the first write, so a
// rejected batch leaves the dataset untouched.
func (d *Dataset) Accumulate(job int, rows map[int]Row) error {
	start, err := d.Offset(job)
	if err != nil {
		return err
	}
	keys := make([]int, 0, len(rows))
	for k, row := range rows {
		if k < 0 || k >= d.NetsPerJob {
			return fmt.Errorf("%w: key %d, nets per job %d", ErrLocalIndexOutOfRange, k, d.NetsPerJob)
		}
		if err := d.checkRow(row); err != nil {
			return err
		}
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		d.writeRow(start+k, rows[k])
	}

	return nil
}

// SetRow writes row at slot after validating its columns.
func (d *Dataset) SetRow(slot int, row Row) error {
	if slot < 0 || slot >= d.Len() {
		return fmt.Errorf("%w: slot %d of %d", ErrShape, slot, d.Len())
	}
	if err := d.checkRow(row); err != nil {
		return err
	}
	d.writeRow(slot, row)

	return nil
}

func (d *Dataset) checkRow(row Row) error {
	for name := range row.Numeric {
		if _, ok := d.Numeric[name]; !ok {
			return fmt.Errorf("%w: numeric %q", ErrUnknownColumn, name)
		}
	}
	for name := range row.Labels {
		if _, ok := d.Labels[name]; !ok {
			return fmt.Errorf("%w: label %q", ErrUnknownColumn, name)
		}
	}
	for name := range row.Sequences {
		if _, ok := d.Sequences[name]; !ok {
			return fmt.Errorf("%w: sequence %q", ErrUnknownColumn, name)
		}
	}

	return nil
}

func (d *Dataset) writeRow(slot int, row Row) {
	for name, v := range row.Numeric {
		d.Numeric[name][slot] = Some(v)
	}
	for name, v := range row.Labels {
		d.Labels[name][slot] = Some(v)
	}
	for name, v := range row.Sequences {
		d.Sequences[name][slot] = Some(append([]float64(nil), v...))
	}
}

// Filled counts the slots holding at least one set data cell.
// Complexity: O(Len() · columns).
func (d *Dataset) Filled() int {
	var n int
	for slot := 0; slot < d.Len(); slot++ {
		if d.slotFilled(slot) {
			n++
		}
	}

	return n
}

func (d *Dataset) slotFilled(slot int) bool {
	for _, s := range d.Numeric {
		if s[slot].Valid {
			return true
		}
	}
	for _, s := range d.Labels {
		if s[slot].Valid {
			return true
		}
	}
	for _, s := range d.Sequences {
		if s[slot].Valid {
			return true
		}
	}

	return false
}

// Claimed counts the slots with JobOfSlot != Unclaimed.
func (d *Dataset) Claimed() int {
	var n int
	for _, j := range d.JobOfSlot {
		if j != Unclaimed {
			n++
		}
	}

	return n
}

// MaxJob returns the largest claimed job id, or Unclaimed if none.
func (d *Dataset) MaxJob() int {
	m := Unclaimed
	for _, j := range d.JobOfSlot {
		m = max(m, j)
	}

	return m
}

// Validate checks that every declared column exists with Len() cells.
// Use it on datasets read from disk.
func (d *Dataset) Validate() error {
	if d.NetsPerJob <= 0 || d.Jobs < 0 || d.Len() != d.Jobs*d.NetsPerJob {
		return fmt.Errorf("%w: jobs=%d nets_per_job=%d slots=%d", ErrShape, d.Jobs, d.NetsPerJob, d.Len())
	}
	for _, f := range d.Schema {
		var n int
		var ok bool
		switch f.Kind {
		case Numeric:
			var s Series[float64]
			s, ok = d.Numeric[f.Name]
			n = len(s)
		case Label:
			var s Series[string]
			s, ok = d.Labels[f.Name]
			n = len(s)
		case Sequence:
			var s Series[[]float64]
			s, ok = d.Sequences[f.Name]
			n = len(s)
		}
		if !ok || n != d.Len() {
			return fmt.Errorf("%w: column %q (%s) has %d cells, want %d", ErrShape, f.Name, f.Kind, n, d.Len())
		}
	}

	return nil
}

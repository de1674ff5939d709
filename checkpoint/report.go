// SPDX-License-Identifier: MIT

package checkpoint

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Report summarizes one compile pass.
type Report struct {
	RunID     uuid.UUID
	Prefix    string
	Partition int

	// TotalExpected is the number of job files the partition should hold.
	TotalExpected int
	// Members is the number of job files found in the archive.
	Members int

	Successes  int
	Missing    int
	Unexpected int

	// FailedJobs and FailedFiles are sorted and deduplicated.
	FailedJobs  []int
	FailedFiles []int
	// Unresolved lists failed archive members that map to no file index.
	Unresolved []string

	Snapshots int
	Duration  time.Duration
}

// SuccessPercent is successful files over expected files, in percent.
// It is 0 when nothing was expected.
func (r Report) SuccessPercent() float64 {
	if r.TotalExpected <= 0 {
		return 0
	}

	return 100 * float64(r.Successes) / float64(r.TotalExpected)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// WriteTo renders the report as plain text.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	minutes := r.Duration.Minutes()

	fmt.Fprintf(&b, "%s partition %d\n", r.Prefix, r.Partition)
	fmt.Fprintf(&b, "run %s\n\n", r.RunID)

	fmt.Fprintf(&b, "files found in archive: %s of %s expected\n",
		humanize.Comma(int64(r.Members)), humanize.Comma(int64(r.TotalExpected)))
	fmt.Fprintf(&b, "successful files: %s\n", humanize.Comma(int64(r.Successes)))
	fmt.Fprintf(&b, "files with missing data: %s\n", humanize.Comma(int64(r.Missing)))
	fmt.Fprintf(&b, "there were %s unexpected errors, see the compilation log\n", humanize.Comma(int64(r.Unexpected)))
	fmt.Fprintf(&b, "partial snapshots written: %d\n\n", r.Snapshots)

	fmt.Fprintf(&b, "the following list shows #'s of job files that had failed experiments:\n%v\n\n", intList(r.FailedJobs))
	fmt.Fprintf(&b, "the following list shows #'s of experiment files that failed:\n%v\n\n", intList(r.FailedFiles))
	if len(r.Unresolved) > 0 {
		fmt.Fprintf(&b, "the following archive members could not be mapped to an experiment file:\n%v\n\n", r.Unresolved)
	}

	fmt.Fprintf(&b, "it took %.1f minutes to compile\nor %.1f hours\n", round1(minutes), round1(minutes/60))
	fmt.Fprintf(&b, "(#successful files) / (#total number of experiments) is %d / %d\nor %.1f%% successfully produced data\n",
		r.Successes, r.TotalExpected, round1(r.SuccessPercent()))
	fmt.Fprintf(&b, "\n%s compilation process finished\n", r.Prefix)

	return b.WriteTo(w)
}

// String returns the rendered report.
func (r Report) String() string {
	var b bytes.Buffer
	r.WriteTo(&b)

	return b.String()
}

func intList(v []int) []int {
	if v == nil {
		return []int{}
	}

	return v
}

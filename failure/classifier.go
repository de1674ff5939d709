// SPDX-License-Identifier: MIT

package failure

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// JobNumber maps a file index to the submission that produced it:
// (i − i mod n) / n, i.e. floor(i / n) for non-negative i.
//
//	JobNumber(49, 50) == 0, JobNumber(50, 50) == 1
func JobNumber(fileIndex, numJobsPerFile int) int {
	return (fileIndex - fileIndex%numJobsPerFile) / numJobsPerFile
}

// Record is one localized failure.
type Record struct {
	FileIndex int
	JobNumber int
	Kind      Kind
}

// Classifier accumulates the outcomes of one compile pass.
// It is not safe for concurrent use; a pass is sequential.
type Classifier struct {
	numJobsPerFile int
	logger         logrus.FieldLogger

	successes   int
	missing     int
	unexpected  int
	failedFiles map[int]struct{}
	failedJobs  map[int]struct{}
	records     []Record
	unresolved  []string
}

// NewClassifier returns an empty Classifier. numJobsPerFile must be positive.
func NewClassifier(numJobsPerFile int, logger logrus.FieldLogger) *Classifier {
	return &Classifier{
		numJobsPerFile: numJobsPerFile,
		logger:         logger,
		failedFiles:    make(map[int]struct{}),
		failedJobs:     make(map[int]struct{}),
	}
}

// Record classifies the outcome of file fileIndex and returns its kind.
//
// MissingData and Unexpected are both localized to a file index and job
// number; Unexpected additionally emits an error-level diagnostic.
func (c *Classifier) Record(fileIndex int, o Outcome) Kind {
	k := c.count(o, logrus.Fields{
		"action":     "classify_file",
		"file_index": fileIndex,
		"job_number": JobNumber(fileIndex, c.numJobsPerFile),
	})
	if k != KindOk {
		c.localize(fileIndex, k)
	}

	return k
}

// RecordUnresolved classifies the outcome of an archive member that could
// not be mapped to a file index. It is counted like any other outcome but
// kept out of FailedFiles and FailedJobs; its name is listed by Unresolved.
func (c *Classifier) RecordUnresolved(member string, o Outcome) Kind {
	k := c.count(o, logrus.Fields{
		"action": "classify_file",
		"member": member,
	})
	if k != KindOk {
		c.unresolved = append(c.unresolved, member)
	}

	return k
}

func (c *Classifier) count(o Outcome, fields logrus.Fields) Kind {
	switch v := o.(type) {
	case MissingData:
		c.missing++
		c.logger.WithFields(fields).Debugf("missing data: %s", v.Reason)
	case Unexpected:
		c.unexpected++
		c.logger.WithFields(fields).WithError(v.Err).Error("unexpected error while compiling file")
	default:
		c.successes++
	}

	return o.Kind()
}

func (c *Classifier) localize(fileIndex int, k Kind) {
	job := JobNumber(fileIndex, c.numJobsPerFile)
	c.failedFiles[fileIndex] = struct{}{}
	c.failedJobs[job] = struct{}{}
	c.records = append(c.records, Record{FileIndex: fileIndex, JobNumber: job, Kind: k})
}

// SuccessCount returns the number of Ok outcomes.
func (c *Classifier) SuccessCount() int { return c.successes }

// MissingCount returns the number of MissingData outcomes.
func (c *Classifier) MissingCount() int { return c.missing }

// UnexpectedCount returns the number of Unexpected outcomes.
func (c *Classifier) UnexpectedCount() int { return c.unexpected }

// Total returns the number of recorded outcomes.
func (c *Classifier) Total() int { return c.successes + c.missing + c.unexpected }

// FailedFiles returns the failed file indices, sorted and deduplicated.
func (c *Classifier) FailedFiles() []int { return sortedKeys(c.failedFiles) }

// FailedJobs returns the failed job numbers, sorted and deduplicated.
func (c *Classifier) FailedJobs() []int { return sortedKeys(c.failedJobs) }

// Unresolved returns the failed members without a file index, in
// recording order.
func (c *Classifier) Unresolved() []string { return append([]string(nil), c.unresolved...) }

// Records returns every failure in recording order.
func (c *Classifier) Records() []Record { return append([]Record(nil), c.records...) }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

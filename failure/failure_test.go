// SPDX-License-Identifier: MIT

package failure_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsweep/failure"
)

func TestJobNumber(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, failure.JobNumber(i, 50), i)
	}
	for i := 50; i < 100; i++ {
		assert.Equal(t, 1, failure.JobNumber(i, 50), i)
	}
	assert.Equal(t, 7, failure.JobNumber(7, 1))
}

func TestClassifier(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := failure.NewClassifier(50, logger)

	assert.Equal(t, failure.KindOk, c.Record(0, failure.Ok[int]{Value: 1}))
	assert.Equal(t, failure.KindMissingData, c.Record(120, failure.MissingData{Reason: "truncated"}))
	assert.Equal(t, failure.KindUnexpected, c.Record(51, failure.Unexpected{Err: errors.New("boom")}))
	c.Record(3, failure.MissingData{Reason: "no adj"})
	c.Record(120, failure.MissingData{Reason: "again"})

	assert.Equal(t, 1, c.SuccessCount())
	assert.Equal(t, 3, c.MissingCount())
	assert.Equal(t, 1, c.UnexpectedCount())
	assert.Equal(t, 5, c.Total())
	assert.Equal(t, []int{3, 51, 120}, c.FailedFiles())
	assert.Equal(t, []int{0, 1, 2}, c.FailedJobs())
	assert.Len(t, c.Records(), 4)

	// Only unexpected outcomes reach error level.
	var errs []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errs = append(errs, e)
		}
	}
	require.Len(t, errs, 1)
	assert.Equal(t, 51, errs[0].Data["file_index"])
	assert.Equal(t, 1, errs[0].Data["job_number"])
}

func TestClassifier_RecordUnresolved(t *testing.T) {
	logger, hook := test.NewNullLogger()
	c := failure.NewClassifier(2, logger)

	c.Record(1, failure.MissingData{Reason: "truncated"})
	assert.Equal(t, failure.KindUnexpected, c.RecordUnresolved("notes.msgpack", failure.Unexpected{Err: errors.New("no job number")}))
	assert.Equal(t, failure.KindOk, c.RecordUnresolved("ok.msgpack", failure.Ok[int]{Value: 1}))

	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 1, c.UnexpectedCount())
	// Position 0 of the archive must not be mistaken for file index 0.
	assert.Equal(t, []int{1}, c.FailedFiles())
	assert.Equal(t, []int{0}, c.FailedJobs())
	assert.Len(t, c.Records(), 1)
	assert.Equal(t, []string{"notes.msgpack"}, c.Unresolved())

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, "notes.msgpack", last.Data["member"])
	assert.NotContains(t, last.Data, "file_index")
}

func TestClassifier_Empty(t *testing.T) {
	logger, _ := test.NewNullLogger()
	c := failure.NewClassifier(1, logger)
	assert.Empty(t, c.FailedFiles())
	assert.Empty(t, c.FailedJobs())
	assert.Empty(t, c.Unresolved())
	assert.Zero(t, c.Total())
}

func TestOutcomeErrors(t *testing.T) {
	cause := errors.New("bad adjacency")
	u := failure.Unexpected{Err: cause}
	assert.ErrorIs(t, u, cause)
	assert.Contains(t, failure.MissingData{Reason: "key adj"}.Error(), "key adj")
	assert.Equal(t, "missing_data", failure.KindMissingData.String())
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rcsweep/archive"
	"github.com/katalvlaran/rcsweep/checkpoint"
	"github.com/katalvlaran/rcsweep/config"
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/failure"
	"github.com/katalvlaran/rcsweep/jobfile"
	"github.com/katalvlaran/rcsweep/netstats"
)

// progressEvery is the verbose progress interval, in files.
const progressEvery = 1000

// Result is the outcome of one partition's pass.
type Result struct {
	Dataset     *dataset.Dataset
	Report      checkpoint.Report
	DatasetPath string
	ReportPath  string
	Snapshots   []string
}

// Compiler runs compile passes. Logger is required; Metrics may be nil.
type Compiler struct {
	Logger  logrus.FieldLogger
	Metrics *Metrics
}

// Compile runs the pass of the partition configured in cfg.
//
// Implementation:
//   - Stage 1: open and extract the archive (fatal on failure).
//   - Stage 2: for each member in archive order, process it and record its
//     outcome; snapshot after successes; log progress when verbose.
//   - Stage 3: write the final dataset and the report.
//
// The pass stops early only when ctx is cancelled.
func (c *Compiler) Compile(ctx context.Context, cfg config.Config) (*Result, error) {
	start := time.Now()
	runID := uuid.New()
	partition := strconv.Itoa(cfg.Partition)
	logger := c.Logger.WithFields(logrus.Fields{
		"prefix":    cfg.Prefix,
		"partition": cfg.Partition,
		"run_id":    runID.String(),
	})

	a, err := archive.Open(cfg.ArchivePath())
	if err != nil {
		return nil, err
	}
	defer a.Close()

	workDir := cfg.PartitionWorkDir()
	members, err := a.Extract(workDir)
	if err != nil {
		return nil, errors.Wrapf(err, "extract %q", cfg.ArchivePath())
	}
	logger.WithFields(logrus.Fields{
		"action":  "extract",
		"archive": cfg.ArchivePath(),
		"dir":     workDir,
		"members": len(members),
		"size":    humanize.Bytes(uint64(a.Size())),
		"gzipped": a.Gzipped(),
	}).Info("extracted archive")

	first, _ := cfg.PartitionRange()
	ds, err := dataset.New(cfg.TotalJobs(), cfg.NetsPerExperiment, dataset.DefaultSchema())
	if err != nil {
		return nil, err
	}
	ds.Sources = []dataset.Source{{
		TestID:          cfg.TestID,
		Prefix:          cfg.Prefix,
		Partition:       cfg.Partition,
		Jobs:            cfg.TotalJobs(),
		StartExperiment: first,
	}}

	classifier := failure.NewClassifier(cfg.NumJobsPerFile, logger)
	writer := &checkpoint.Writer{
		Dir:       cfg.OutputDir,
		Names:     cfg.Names(),
		Partial:   cfg.PartialData,
		TotalJobs: cfg.TotalJobs(),
		Logger:    logger,
	}
	diameter := cfg.DiameterFunc()

	for i, name := range members {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		began := time.Now()
		var kind failure.Kind
		job, idxErr := JobIndex(cfg.IndexMode, i, name, first)
		if idxErr != nil {
			kind = classifier.RecordUnresolved(name, failure.Unexpected{Err: idxErr})
		} else {
			outcome := c.processMember(ctx, ds, job, filepath.Join(workDir, name), diameter, partition)
			kind = classifier.Record(job, outcome)
		}
		if c.Metrics != nil {
			c.Metrics.FileDuration.Observe(time.Since(began).Seconds())
			c.Metrics.Files.WithLabelValues(partition, kind.String()).Inc()
		}

		// The final dataset follows the last member, so a snapshot there
		// would only duplicate it.
		if kind == failure.KindOk && i < len(members)-1 {
			path, err := writer.MaybeSnapshot(ds, classifier.SuccessCount())
			if err != nil {
				logger.WithError(err).WithField("action", "snapshot").Error("could not write partial snapshot")
			} else if path != "" && c.Metrics != nil {
				c.Metrics.Snapshots.WithLabelValues(partition).Inc()
			}
		}

		if cfg.Verbose && i%progressEvery == 0 {
			logger.WithFields(logrus.Fields{
				"action":    "progress",
				"attempted": i,
				"minutes":   fmt.Sprintf("%.1f", time.Since(start).Minutes()),
			}).Infof("%d files compile attempted", i)
		}
	}

	report := checkpoint.Report{
		RunID:         runID,
		Prefix:        cfg.Prefix,
		Partition:     cfg.Partition,
		TotalExpected: cfg.TotalJobs(),
		Members:       len(members),
		Successes:     classifier.SuccessCount(),
		Missing:       classifier.MissingCount(),
		Unexpected:    classifier.UnexpectedCount(),
		FailedJobs:    classifier.FailedJobs(),
		FailedFiles:   classifier.FailedFiles(),
		Unresolved:    classifier.Unresolved(),
		Snapshots:     len(writer.Snapshots()),
		Duration:      time.Since(start),
	}
	datasetPath, reportPath, err := writer.Finalize(ds, report)
	if err != nil {
		return nil, err
	}

	filled := ds.Filled()
	if c.Metrics != nil {
		c.Metrics.FilledSlots.WithLabelValues(partition).Set(float64(filled))
	}
	logger.WithFields(logrus.Fields{
		"action":     "finalize",
		"dataset":    datasetPath,
		"report":     reportPath,
		"successes":  report.Successes,
		"missing":    report.Missing,
		"unexpected": report.Unexpected,
		"filled":     humanize.Comma(int64(filled)),
		"slots":      humanize.Comma(int64(ds.Len())),
	}).Infof("%s compilation process finished", cfg.Prefix)

	return &Result{
		Dataset:     ds,
		Report:      report,
		DatasetPath: datasetPath,
		ReportPath:  reportPath,
		Snapshots:   writer.Snapshots(),
	}, nil
}

// processMember ingests one job file. Nothing is written to ds unless the
// whole file decodes and every trial's features are computed; the job's
// slot range is claimed either way once its index is in range.
func (c *Compiler) processMember(ctx context.Context, ds *dataset.Dataset, job int, path string,
	diameter netstats.DiameterFunc, partition string,
) (outcome failure.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.WithField("action", "process_member").WithField("member", path).
				Debug(string(debug.Stack()))
			outcome = failure.Unexpected{Err: fmt.Errorf("panic processing %q: %v", path, r)}
		}
	}()

	if err := ds.ClaimJob(job); err != nil {
		return failure.Unexpected{Err: err}
	}

	decoded := jobfile.DecodeFile(path)
	ok, isOk := decoded.(failure.Ok[jobfile.TrialBatch])
	if !isOk {
		return decoded
	}
	batch := ok.Value

	keys := make([]int, 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	features := make(map[int]dataset.Row, len(batch))
	for _, k := range keys {
		adj := batch[k].Adj
		if adj == nil {
			return failure.Unexpected{Err: fmt.Errorf("trial %d: adjacency is nil", k)}
		}
		began := time.Now()
		f, err := netstats.Compute(adj, netstats.WithContext(ctx), netstats.WithDiameter(diameter))
		if err != nil {
			return failure.Unexpected{Err: fmt.Errorf("trial %d: %w", k, err)}
		}
		if c.Metrics != nil {
			c.Metrics.StatsDuration.Observe(time.Since(began).Seconds())
		}
		features[k] = FeaturesRow(f)
	}

	if err := ds.Accumulate(job, batch.Rows()); err != nil {
		return failure.Unexpected{Err: err}
	}
	offset, _ := ds.Offset(job)
	for _, k := range keys {
		if err := ds.SetRow(offset+k, features[k]); err != nil {
			return failure.Unexpected{Err: err}
		}
	}
	if c.Metrics != nil {
		c.Metrics.Trials.WithLabelValues(partition).Add(float64(len(keys)))
	}

	return decoded
}

// SPDX-License-Identifier: MIT

package checkpoint

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rcsweep/dataset"
)

// maxSkips bounds the search for a free snapshot index.
const maxSkips = 1 << 16

// Writer writes the checkpoints of one partition into Dir.
type Writer struct {
	Dir   string
	Names Names

	// Partial enables snapshots.
	Partial bool
	// TotalJobs sets the snapshot cadence: every max(1, ⌊TotalJobs/3⌋)
	// successful files.
	TotalJobs int

	Logger logrus.FieldLogger

	next      int
	snapshots []string
}

// Every returns the number of successful files between snapshots.
func (w *Writer) Every() int {
	return max(1, w.TotalJobs/3)
}

// MaybeSnapshot is called after each successful file with the number of
// successes so far. It writes a snapshot when partial checkpointing is on
// and successes is a positive multiple of Every. The returned path is
// empty when no snapshot was due.
func (w *Writer) MaybeSnapshot(ds *dataset.Dataset, successes int) (string, error) {
	if !w.Partial || successes <= 0 || successes%w.Every() != 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := ds.Encode(&buf); err != nil {
		return "", err
	}

	for skips := 0; skips < maxSkips; skips++ {
		path := filepath.Join(w.Dir, w.Names.Partial(w.next))
		w.next++

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if os.IsExist(err) {
			w.logger().WithField("path", path).Warn("snapshot exists, skipping index")
			continue
		}
		if err != nil {
			return "", errors.Wrapf(err, "create snapshot %q", path)
		}
		if _, err := buf.WriteTo(f); err != nil {
			f.Close()
			return "", errors.Wrapf(err, "write snapshot %q", path)
		}
		if err := f.Close(); err != nil {
			return "", errors.Wrapf(err, "close snapshot %q", path)
		}

		w.snapshots = append(w.snapshots, path)
		w.logger().WithFields(logrus.Fields{
			"action":    "snapshot",
			"path":      path,
			"successes": successes,
			"filled":    ds.Filled(),
		}).Info("wrote partial snapshot")

		return path, nil
	}

	return "", errors.Errorf("no free snapshot index in %q after %d attempts", w.Dir, maxSkips)
}

// Snapshots returns the snapshot paths written so far, in order.
func (w *Writer) Snapshots() []string { return append([]string(nil), w.snapshots...) }

// Finalize writes the final dataset and the report, returning both paths.
func (w *Writer) Finalize(ds *dataset.Dataset, r Report) (datasetPath, reportPath string, err error) {
	datasetPath = filepath.Join(w.Dir, w.Names.Final())
	if err := ds.Save(datasetPath); err != nil {
		return "", "", err
	}

	reportPath = filepath.Join(w.Dir, w.Names.Report())
	if err := os.WriteFile(reportPath, []byte(r.String()), 0o644); err != nil {
		return "", "", errors.Wrapf(err, "write report %q", reportPath)
	}

	return datasetPath, reportPath, nil
}

func (w *Writer) logger() logrus.FieldLogger {
	if w.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}

	return w.Logger
}

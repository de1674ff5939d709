// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/katalvlaran/rcsweep/dataset"
)

// DefaultTable is the table written when no table name is given.
const DefaultTable = "trials"

// Options configure Write.
type Options struct {
	Table  string
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// WithTable sets the destination table. An existing table is replaced.
func WithTable(name string) Option { return func(o *Options) { o.Table = name } }

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option { return func(o *Options) { o.Logger = l } }

// Write exports d into the SQLite database at path and returns the number
// of rows written. All rows are inserted in one transaction.
func Write(ctx context.Context, path string, d *dataset.Dataset, opts ...Option) (int, error) {
	o := Options{Table: DefaultTable}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		o.Logger = l
	}
	if err := d.Validate(); err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %q", path)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin tx")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	cols := columns(d.Schema)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quote(o.Table)); err != nil {
		return 0, errors.Wrapf(err, "drop table %q", o.Table)
	}
	if _, err := tx.ExecContext(ctx, createStmt(o.Table, d.Schema)); err != nil {
		return 0, errors.Wrapf(err, "create table %q", o.Table)
	}
	stmt, err := tx.PrepareContext(ctx, insertStmt(o.Table, cols))
	if err != nil {
		return 0, errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for slot := 0; slot < d.Len(); slot++ {
		args, err := rowArgs(d, slot)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, errors.Wrapf(err, "insert slot %d", slot)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit")
	}
	committed = true

	o.Logger.WithFields(logrus.Fields{
		"action": "export",
		"path":   path,
		"table":  o.Table,
		"rows":   d.Len(),
	}).Info("exported dataset")

	return d.Len(), nil
}

var fixed = []string{"slot", "job", "network_number", "prefix", "label"}

func columns(s dataset.Schema) []string {
	out := append([]string(nil), fixed...)
	for _, f := range s {
		out = append(out, f.Name)
	}

	return out
}

func sqlType(k dataset.Kind) string {
	switch k {
	case dataset.Numeric:
		return "REAL"
	default:
		return "TEXT"
	}
}

func createStmt(table string, s dataset.Schema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", quote(table))
	b.WriteString("  slot INTEGER PRIMARY KEY,\n  job INTEGER,\n  network_number INTEGER NOT NULL,\n")
	b.WriteString("  prefix TEXT,\n  label TEXT")
	for _, f := range s {
		fmt.Fprintf(&b, ",\n  %s %s", quote(f.Name), sqlType(f.Kind))
	}
	b.WriteString("\n)")

	return b.String()
}

func insertStmt(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(table), strings.Join(quoted, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func rowArgs(d *dataset.Dataset, slot int) ([]any, error) {
	src, ok := sourceOf(d, slot)
	experiment := src.StartExperiment + (slot-src.SlotOffset)/d.NetsPerJob

	args := make([]any, 0, len(fixed)+len(d.Schema))
	args = append(args, slot)
	if j := d.JobOfSlot[slot]; j == dataset.Unclaimed {
		args = append(args, nil)
	} else {
		args = append(args, j)
	}
	args = append(args, slot%d.NetsPerJob)
	if ok {
		args = append(args, src.Prefix, fmt.Sprintf("%s_%d", src.Prefix, experiment))
	} else {
		args = append(args, nil, nil)
	}

	for _, f := range d.Schema {
		switch f.Kind {
		case dataset.Numeric:
			v, set := d.Numeric[f.Name][slot].Get()
			if !set || math.IsNaN(v) {
				args = append(args, nil)
			} else {
				args = append(args, v)
			}
		case dataset.Label:
			if v, set := d.Labels[f.Name][slot].Get(); set {
				args = append(args, v)
			} else {
				args = append(args, nil)
			}
		case dataset.Sequence:
			v, set := d.Sequences[f.Name][slot].Get()
			if !set {
				args = append(args, nil)
				continue
			}
			b, err := json.Marshal(v)
			if err != nil {
				return nil, errors.Wrapf(err, "encode %s at slot %d", f.Name, slot)
			}
			args = append(args, string(b))
		}
	}

	return args, nil
}

// sourceOf returns the source block holding slot.
func sourceOf(d *dataset.Dataset, slot int) (dataset.Source, bool) {
	for _, s := range d.Sources {
		if slot >= s.SlotOffset && slot < s.SlotOffset+s.Jobs*d.NetsPerJob {
			return s, true
		}
	}

	return dataset.Source{}, false
}

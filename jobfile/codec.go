// SPDX-License-Identifier: MIT

package jobfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/katalvlaran/rcsweep/adjacency"
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/failure"
)

// Decode reads one job file.
//
// Errors: ErrCorrupt when the stream is not a msgpack map of records,
// ErrMissingKey when a record lacks a key of Keys, ErrFieldType when a value
// cannot be decoded into its field.
func Decode(r io.Reader) (TrialBatch, error) {
	var raw map[int]map[string]msgpack.RawMessage
	if err := msgpack.NewDecoder(bufio.NewReader(r)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	batch := make(TrialBatch, len(raw))
	for k, fields := range raw {
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", k, err)
		}
		batch[k] = rec
	}

	return batch, nil
}

func decodeRecord(fields map[string]msgpack.RawMessage) (TrialRecord, error) {
	for _, key := range Keys {
		if _, ok := fields[key]; !ok {
			return TrialRecord{}, fmt.Errorf("%w: %q", ErrMissingKey, key)
		}
	}

	var rec TrialRecord
	if err := decodeMaybe(fields, dataset.ColNet, &rec.Net); err != nil {
		return rec, err
	}
	for name, m := range rec.numeric() {
		if err := decodeMaybe(fields, name, m); err != nil {
			return rec, err
		}
	}
	for name, m := range rec.sequences() {
		if err := decodeMaybe(fields, name, m); err != nil {
			return rec, err
		}
	}

	if raw := fields[KeyAdj]; !isNil(raw) {
		var adj adjacency.Sparse
		if err := msgpack.Unmarshal(raw, &adj); err != nil {
			return rec, fmt.Errorf("%w: %q: %v", ErrFieldType, KeyAdj, err)
		}
		rec.Adj = &adj
	}

	return rec, nil
}

func decodeMaybe[T any](fields map[string]msgpack.RawMessage, key string, dst *dataset.Maybe[T]) error {
	raw := fields[key]
	if isNil(raw) {
		*dst = dataset.None[T]()
		return nil
	}
	var v T
	if err := msgpack.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrFieldType, key, err)
	}
	*dst = dataset.Some(v)

	return nil
}

func isNil(raw msgpack.RawMessage) bool {
	return len(raw) == 0 || (len(raw) == 1 && raw[0] == msgpcode.Nil)
}

// Classify maps a Decode error to its outcome kind.
func Classify(err error) failure.Outcome {
	switch {
	case errors.Is(err, ErrMissingKey), errors.Is(err, ErrCorrupt):
		return failure.MissingData{Reason: err.Error()}
	default:
		return failure.Unexpected{Err: err}
	}
}

// DecodeFile decodes the job file at path into an Outcome: Ok[TrialBatch]
// on success, otherwise the classified error. Failing to open the file is
// Unexpected.
func DecodeFile(path string) failure.Outcome {
	f, err := os.Open(path)
	if err != nil {
		return failure.Unexpected{Err: errors.Wrapf(err, "open job file %q", path)}
	}
	defer f.Close()

	batch, err := Decode(f)
	if err != nil {
		return Classify(err)
	}

	return failure.Ok[TrialBatch]{Value: batch}
}

// Encode writes b in the job file format. Unset fields are written as nil;
// a nil Adj omits the adj key.
func Encode(w io.Writer, b TrialBatch) error {
	out := make(map[int]map[string]any, len(b))
	for k, rec := range b {
		m := make(map[string]any, len(Keys))
		m[dataset.ColNet] = maybeValue(rec.Net)
		for name, v := range rec.numeric() {
			m[name] = maybeValue(*v)
		}
		for name, v := range rec.sequences() {
			m[name] = maybeValue(*v)
		}
		if rec.Adj != nil {
			m[KeyAdj] = rec.Adj
		}
		out[k] = m
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encode job file")
	}
	_, err := w.Write(buf.Bytes())

	return errors.Wrap(err, "write job file")
}

func maybeValue[T any](m dataset.Maybe[T]) any {
	if v, ok := m.Get(); ok {
		return v
	}

	return nil
}

// WriteFile encodes b into path.
func WriteFile(path string, b TrialBatch) error {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return err
	}

	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "write %q", path)
}

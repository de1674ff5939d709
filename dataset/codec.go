// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode writes d as msgpack.
func (d *Dataset) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := msgpack.NewEncoder(bw).Encode(d); err != nil {
		return errors.Wrap(err, "encode dataset")
	}

	return errors.Wrap(bw.Flush(), "flush dataset")
}

// Decode reads a msgpack dataset and validates its shape.
func Decode(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := msgpack.NewDecoder(bufio.NewReader(r)).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "decode dataset")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Save writes d to path through a temporary file in the same directory and
// renames it into place, so readers never observe a half-written dataset.
func (d *Dataset) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %q", path)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := d.Encode(tmp); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %q", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %q", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "rename into %q", path)
}

// Load reads a dataset written by Save or Encode.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %q", path)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}

	return d, nil
}

// MergeFiles loads every path and merges them in order.
func MergeFiles(paths ...string) (*Dataset, error) {
	ds := make([]*Dataset, 0, len(paths))
	for _, p := range paths {
		d, err := Load(p)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}

	return MergeAll(ds...)
}

// SPDX-License-Identifier: MIT

package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Member is one archive entry.
type Member struct {
	Name string
	Size int64
	Dir  bool
}

// Archive is an open partition archive. Close releases the file handle.
type Archive struct {
	path    string
	f       *os.File
	gzipped bool
	members []Member
}

// Open opens the archive at path and indexes its members.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveOpen, err)
	}
	a := &Archive{path: path, f: f}
	if err := a.index(); err != nil {
		f.Close()
		return nil, err
	}

	return a, nil
}

func (a *Archive) index() error {
	return a.walk(func(h *tar.Header, _ io.Reader) error {
		a.members = append(a.members, Member{
			Name: h.Name,
			Size: h.Size,
			Dir:  h.Typeflag == tar.TypeDir,
		})
		return nil
	})
}

// walk rewinds the archive and calls fn for every header in order.
func (a *Archive) walk(fn func(h *tar.Header, r io.Reader) error) error {
	if _, err := a.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind %q: %v", ErrArchiveOpen, a.path, err)
	}
	br := bufio.NewReader(a.f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return fmt.Errorf("%w: %q: %v", ErrArchiveOpen, a.path, err)
	}

	var src io.Reader = br
	if bytes.Equal(head, gzipMagic) {
		a.gzipped = true
		gz, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("%w: gzip %q: %v", ErrArchiveOpen, a.path, err)
		}
		defer gz.Close()
		src = gz
	}

	tr := tar.NewReader(src)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrArchiveOpen, a.path, err)
		}
		if err := fn(h, tr); err != nil {
			return err
		}
	}
}

// Names returns every member name in archive order.
func (a *Archive) Names() []string {
	out := make([]string, len(a.members))
	for i, m := range a.members {
		out[i] = m.Name
	}

	return out
}

// Members returns the indexed members in archive order.
func (a *Archive) Members() []Member { return append([]Member(nil), a.members...) }

// Size returns the summed size of all regular members.
func (a *Archive) Size() int64 {
	var n int64
	for _, m := range a.members {
		n += m.Size
	}

	return n
}

// Gzipped reports whether the archive is gzip-compressed.
func (a *Archive) Gzipped() bool { return a.gzipped }

// ExtractAll writes every member under dir. Directories are created;
// regular files are written 0o644; other entry types are skipped.
// All names are checked before the first write.
func (a *Archive) ExtractAll(dir string) error {
	for _, m := range a.members {
		if _, err := target(dir, m.Name); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %q", dir)
	}

	return a.walk(func(h *tar.Header, r io.Reader) error {
		dst, err := target(dir, h.Name)
		if err != nil {
			return err
		}
		switch h.Typeflag {
		case tar.TypeDir:
			return errors.Wrapf(os.MkdirAll(dst, 0o755), "create dir %q", dst)
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return errors.Wrapf(err, "create dir for %q", dst)
			}
			return copyFile(dst, r)
		default:
			return nil
		}
	})
}

func copyFile(dst string, r io.Reader) error {
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "create %q", dst)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrapf(err, "copy %q", dst)
	}

	return f.Close()
}

// target resolves name under dir, rejecting absolute names and names that
// climb out of dir.
func target(dir, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}

	return filepath.Join(dir, clean), nil
}

// Close closes the underlying file.
func (a *Archive) Close() error {
	return a.f.Close()
}

// Extract extracts the archive into dir and returns the member names
// without entry 0, in archive order.
func (a *Archive) Extract(dir string) ([]string, error) {
	if err := a.ExtractAll(dir); err != nil {
		return nil, err
	}
	names := a.Names()
	if len(names) > 0 {
		names = names[1:]
	}

	return names, nil
}

// Extract opens the archive at path, extracts it into dir and returns the
// member names without entry 0. The archive is closed on every path.
func Extract(path, dir string) ([]string, error) {
	a, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return a.Extract(dir)
}

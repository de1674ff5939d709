// SPDX-License-Identifier: MIT

// Package archive opens the tar archive holding one partition's job files
// and extracts it into a working directory.
//
// Plain and gzip-compressed tar streams are accepted; compression is
// detected from the gzip magic bytes, not from the file name. By
// convention the first member of a partition archive is the directory
// marker, so Extract drops entry 0 from the names it returns.
//
// An archive that cannot be opened or read is fatal for its partition
// (ErrArchiveOpen). Member names that would escape the target directory are
// rejected with ErrUnsafePath before anything is written.
package archive

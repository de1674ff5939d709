// SPDX-License-Identifier: MIT

package archive

import "errors"

var (
	// ErrArchiveOpen indicates a missing, unreadable or malformed archive.
	ErrArchiveOpen = errors.New("archive: cannot open archive")

	// ErrUnsafePath indicates a member name resolving outside the target directory.
	ErrUnsafePath = errors.New("archive: member path escapes target directory")
)

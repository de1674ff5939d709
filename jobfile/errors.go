// SPDX-License-Identifier: MIT

package jobfile

import "errors"

var (
	// ErrMissingKey indicates a record without one of the expected keys.
	ErrMissingKey = errors.New("jobfile: missing key")

	// ErrCorrupt indicates a file that is not a decodable msgpack job map,
	// typically because the job was killed while writing it.
	ErrCorrupt = errors.New("jobfile: truncated or corrupt file")

	// ErrFieldType indicates a present key whose value has the wrong type.
	ErrFieldType = errors.New("jobfile: field has wrong type")
)

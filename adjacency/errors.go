// SPDX-License-Identifier: MIT

package adjacency

import "errors"

// Sentinel errors for sparse ingestion. Callers match them with errors.Is;
// Validate wraps them with the offending position.
var (
	// ErrEmpty indicates a matrix with n <= 0.
	ErrEmpty = errors.New("adjacency: matrix is empty")

	// ErrShape indicates that the COO triplet slices differ in length.
	ErrShape = errors.New("adjacency: rows, cols and vals lengths differ")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("adjacency: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf weight.
	ErrNaNInf = errors.New("adjacency: NaN or Inf weight")
)

// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrShape indicates invalid dimensions (jobs < 0 or nets per job <= 0)
	// or series whose length differs from Len().
	ErrShape = errors.New("dataset: invalid shape")

	// ErrJobOutOfRange indicates a job index outside [0, Jobs).
	ErrJobOutOfRange = errors.New("dataset: job index out of range")

	// ErrLocalIndexOutOfRange indicates a trial key outside [0, NetsPerJob).
	ErrLocalIndexOutOfRange = errors.New("dataset: local trial index out of range")

	// ErrUnknownColumn indicates a value for a column the schema does not declare.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrIncompatible indicates two datasets that cannot be merged.
	ErrIncompatible = errors.New("dataset: datasets are not compatible")
)

// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/katalvlaran/rcsweep/config"
)

// ErrNoJobNumber indicates a member name without a trailing integer.
var ErrNoJobNumber = errors.New("pipeline: member name has no job number")

var trailingInt = regexp.MustCompile(`(\d+)\D*$`)

// JobIndex resolves the job index of the member at position i (entry 0
// excluded) named name.
//
// IndexByName uses the last run of digits in the base name minus start,
// so "erdos_137.msgpack" with start 100 is job 37. IndexByPosition is i.
func JobIndex(mode config.IndexMode, i int, name string, start int) (int, error) {
	if mode == config.IndexByPosition {
		return i, nil
	}
	m := trailingInt.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrNoJobNumber, name)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrNoJobNumber, name, err)
	}

	return n - start, nil
}

// SPDX-License-Identifier: MIT

package failure_test

import (
	"fmt"

	"github.com/katalvlaran/rcsweep/failure"
)

func ExampleJobNumber() {
	// 50 job files per cluster submission.
	fmt.Println(failure.JobNumber(0, 50), failure.JobNumber(49, 50), failure.JobNumber(50, 50), failure.JobNumber(120, 50))
	// Output: 0 0 1 2
}

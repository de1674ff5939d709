// SPDX-License-Identifier: MIT

package checkpoint

import "fmt"

// Names derives output file names from a partition's identity.
type Names struct {
	TestID    string
	Prefix    string
	Partition int
}

// Final is the name of the final compiled dataset.
func (n Names) Final() string {
	return fmt.Sprintf("%scompiled_tarball_output_%s_%d.msgpack", n.TestID, n.Prefix, n.Partition)
}

// Partial is the name of snapshot i.
func (n Names) Partial(i int) string {
	return fmt.Sprintf("%spartial_compiled_tarball_%s_%d_%d.msgpack", n.TestID, n.Prefix, n.Partition, i)
}

// Report is the name of the failure report.
func (n Names) Report() string {
	return fmt.Sprintf("%s%s_compiling_tarball_notes_%d.txt", n.TestID, n.Prefix, n.Partition)
}

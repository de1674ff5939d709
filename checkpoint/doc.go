// SPDX-License-Identifier: MIT

// Package checkpoint persists a partition's compiled dataset: numbered
// partial snapshots during the pass, then the final dataset and a plain
// text failure report.
//
// File names are derived from the partition identity only (see Names), so
// a restarted partition writes to the same paths. Snapshots are created
// exclusively: an index that already exists on disk is skipped, never
// overwritten, and numbering is monotonic within one Writer.
package checkpoint

// SPDX-License-Identifier: MIT

// Package pipeline drives the compile pass of a partition.
//
// A pass extracts the partition archive, then ingests the job files one at
// a time: each file is resolved to its job index, the job's slot range is
// claimed, the file is decoded and its network features computed, and only
// when all of that succeeds are the values written at the job's offset.
// Every per-file error, panics included, is turned into a failure.Outcome
// at the file boundary and never aborts the pass. Only an archive that
// cannot be opened is fatal.
//
// Partitions are independent; CompileAll runs several of them concurrently,
// each with its own dataset and output files.
package pipeline

// SPDX-License-Identifier: MIT

// Package failure classifies the outcome of ingesting one result file and
// localizes failures to the cluster submission that produced them.
//
// Every file of a compile pass yields exactly one Outcome:
//
//   - Ok          the file decoded and was accumulated.
//   - MissingData the file lacks expected keys or is truncated / corrupt.
//   - Unexpected  any other error (bad adjacency, statistics failure, …).
//
// Neither failure kind stops the pass. A Classifier counts them and keeps
// deduplicated sets of failed file indices and failed job numbers, where a
// job number is the index of the submission (NumJobsPerFile files each)
// that produced the file.
package failure

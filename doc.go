// SPDX-License-Identifier: MIT

// Package rcsweep compiles the raw results of reservoir-computing
// hyperparameter sweeps into one columnar dataset per partition, with
// topology statistics for every trial and a report of what failed where.
//
// What is rcsweep?
//
//	A sweep runs as thousands of independent cluster jobs. Each job writes
//	one result file holding a fixed number of trials, and the files of a
//	partition are shipped as one tar archive. rcsweep:
//		• extracts the archive (archive/)
//		• decodes each job file into optional-field records (jobfile/)
//		• computes connectivity, diameter, clustering and assortativity of
//		  every trial's network (adjacency/, netstats/)
//		• writes every trial at its global slot, fixed by job index and
//		  local index, so ingestion order never matters (dataset/)
//		• classifies failures and maps them back to cluster submissions (failure/)
//		• checkpoints partial progress and writes the final dataset plus a
//		  text report (checkpoint/)
//		• merges independently compiled partitions (dataset.Merge)
//		• exports datasets to SQLite (export/)
//
// Layout:
//
//	adjacency/   COO sparse matrix and index-based digraph
//	netstats/    components, diameter strategies, clustering, assortativity
//	dataset/     Maybe cells, schema, Accumulate, Merge, msgpack codec
//	jobfile/     job result file format
//	failure/     Outcome, Classifier, JobNumber
//	archive/     tar / tar.gz extraction
//	checkpoint/  snapshot, final dataset and report writers
//	config/      YAML → env → flags configuration, logger
//	pipeline/    the per-partition compile pass, metrics, CompileAll
//	export/      SQLite export
//	cmd/rcsweep  command line: compile, merge, export, stats
//
// Slot layout of one partition with 3 trials per job:
//
//	slot:  0 1 2 | 3 4 5 | 6 7 8
//	job:   0 0 0 | 1 1 1 | 2 2 2
//
// A job that fails still claims its three slots; its data cells stay unset.
//
//	go install github.com/katalvlaran/rcsweep/cmd/rcsweep@latest
package rcsweep

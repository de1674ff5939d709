// SPDX-License-Identifier: MIT

// Package dataset is the compiled, columnar result table of a sweep
// partition: one slot per trial, addressed by job and local trial index.
//
// Layout
//
//	slot = job × NetsPerJob + k        (0 ≤ k < NetsPerJob)
//
// The layout is fixed by New before any data arrives, so the slot of a trial
// never depends on ingestion order or on which other jobs failed. Every
// series has exactly Len() = Jobs × NetsPerJob cells.
//
// Cells are Maybe values: Valid=false means "never written", which is kept
// distinct from any written value, NaN included.
//
// JobOfSlot records, per slot, the job that claimed it (−1 = never
// touched). A job claims its whole slot range when it is attempted, even if
// its data later turns out to be missing.
//
// Merge concatenates two compiled partitions and renumbers the second one's
// job ids so they cannot collide with the first one's.
package dataset

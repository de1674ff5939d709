// SPDX-License-Identifier: MIT

// Package export writes a compiled dataset into a SQLite table, one row per
// slot, for ad hoc SQL analysis and for joining with other sweep records.
//
// Besides the dataset columns every row carries:
//
//	slot            global slot index
//	job             job_of_slot, NULL when unclaimed
//	network_number  local trial index within the job
//	prefix          sweep prefix of the slot's source partition
//	label           "{prefix}_{job}", the job's identifier within its partition
//
// Unset cells are NULL. Sequence columns are stored as JSON arrays so the
// SQLite JSON functions can read them. SQLite has no NaN: NaN values
// (assortativity of degenerate graphs) are stored as NULL as well.
package export

// SPDX-License-Identifier: MIT

// Package jobfile reads and writes the result file of one sweep job.
//
// A job file is a msgpack map from local trial index (0 ≤ k < nets per job)
// to a record map:
//
//	{
//	  0: {"net": "erdos", "topo_p": 0.1, ..., "pred": [...], "err": [...],
//	      "adj": {"n": 8, "rows": [...], "cols": [...], "vals": [...]}},
//	  1: {...},
//	}
//
// Every record key listed in Keys must be present; a msgpack nil value is a
// present but unset field. A missing key, or a file that cannot be decoded
// at all (truncated, corrupt), maps to failure.MissingData; any other error
// maps to failure.Unexpected.
package jobfile

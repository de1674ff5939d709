// SPDX-License-Identifier: MIT

// Package config holds the explicit configuration threaded through a
// compile pass, and the logger built from it.
//
// Load order, later sources overriding earlier ones:
//
//  1. Default()
//  2. YAML config file (optional)
//  3. RCSWEEP_* environment variables
//  4. command line flags
//
// followed by Validate.
package config

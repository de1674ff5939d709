// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/export"
)

type exportCommand struct {
	DB    string `long:"db" required:"yes" description:"SQLite database path"`
	Table string `long:"table" default:"trials" description:"table to (re)create"`
	Args  struct {
		Dataset string `positional-arg-name:"dataset"`
	} `positional-args:"yes" required:"yes"`
}

// Execute implements flags.Commander.
func (c *exportCommand) Execute([]string) error {
	d, err := dataset.Load(c.Args.Dataset)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	_, err = export.Write(ctx, c.DB, d, export.WithTable(c.Table), export.WithLogger(logger()))

	return err
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/rcsweep/dataset"
)

type mergeCommand struct {
	Out  string `long:"out" short:"o" required:"yes" description:"merged dataset path"`
	Args struct {
		Datasets []string `positional-arg-name:"dataset" required:"2"`
	} `positional-args:"yes" required:"yes"`
}

// Execute implements flags.Commander.
func (c *mergeCommand) Execute([]string) error {
	log := logger()
	merged, err := dataset.MergeFiles(c.Args.Datasets...)
	if err != nil {
		return err
	}
	if err := merged.Save(c.Out); err != nil {
		return err
	}
	log.WithField("action", "merge").WithField("inputs", len(c.Args.Datasets)).
		WithField("slots", merged.Len()).WithField("jobs", merged.Jobs).
		Infof("wrote %s", c.Out)

	return nil
}

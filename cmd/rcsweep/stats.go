// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/rcsweep/config"
	"github.com/katalvlaran/rcsweep/failure"
	"github.com/katalvlaran/rcsweep/jobfile"
	"github.com/katalvlaran/rcsweep/netstats"
)

type statsCommand struct {
	Diameter string `long:"diameter" default:"exact" choice:"exact" choice:"sampled" choice:"auto" description:"diameter strategy"`
	Workers  int    `long:"workers" default:"1" description:"BFS workers for exact diameter"`
	Args     struct {
		File string `positional-arg-name:"job-file"`
	} `positional-args:"yes" required:"yes"`
}

// Execute implements flags.Commander.
func (c *statsCommand) Execute([]string) error {
	o := jobfile.DecodeFile(c.Args.File)
	ok, isOk := o.(failure.Ok[jobfile.TrialBatch])
	if !isOk {
		return fmt.Errorf("%s: %v", o.Kind(), o)
	}

	cfg := config.Default()
	cfg.Diameter.Mode = c.Diameter
	cfg.Diameter.Workers = c.Workers
	diameter := cfg.DiameterFunc()

	keys := make([]int, 0, len(ok.Value))
	for k := range ok.Value {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "trial\tn\tmax_wcc\tmax_scc\tnwcc\tnscc\tsingletons\tdiam\tcluster\tassort\tedge_weight")
	for _, k := range keys {
		adj := ok.Value[k].Adj
		if adj == nil {
			fmt.Fprintf(w, "%d\t-\t(no adjacency)\n", k)
			continue
		}
		f, err := netstats.Compute(adj, netstats.WithDiameter(diameter))
		if err != nil {
			return fmt.Errorf("trial %d: %w", k, err)
		}
		weight := "-"
		if f.UniformWeight {
			weight = fmt.Sprintf("%g", f.EdgeWeight)
		}
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%d\t%d\t%d\t%d\t%.4f\t%.4f\t%s\n",
			k, adj.N, f.MaxWCC, f.MaxSCC, f.NWCC, f.NSCC, f.Singletons, f.Diam, f.Cluster, f.Assort, weight)
	}

	return w.Flush()
}

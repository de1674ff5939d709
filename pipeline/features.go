// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/rcsweep/dataset"
	"github.com/katalvlaran/rcsweep/netstats"
)

// FeaturesRow converts f into the network columns of a dataset row.
// edge_weight is written only for uniformly weighted graphs.
func FeaturesRow(f netstats.Features) dataset.Row {
	row := dataset.Row{Numeric: map[string]float64{
		dataset.ColMaxSCC:     f.MaxSCC,
		dataset.ColMaxWCC:     f.MaxWCC,
		dataset.ColSingletons: float64(f.Singletons),
		dataset.ColNWCC:       float64(f.NWCC),
		dataset.ColNSCC:       float64(f.NSCC),
		dataset.ColCluster:    f.Cluster,
		dataset.ColAssort:     f.Assort,
		dataset.ColDiam:       float64(f.Diam),
	}}
	if f.UniformWeight {
		row.Numeric[dataset.ColEdgeWeight] = f.EdgeWeight
	}

	return row
}

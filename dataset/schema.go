// SPDX-License-Identifier: MIT

package dataset

// Kind is the value type of a column.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Label columns hold strings.
	Label
	// Sequence columns hold []float64 (one value per orbit).
	Sequence
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Label:
		return "label"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Column names of the trial record (written by jobs).
const (
	ColMeanPred   = "mean_pred"
	ColMeanErr    = "mean_err"
	ColAdjSize    = "adj_size"
	ColNet        = "net"
	ColTopoP      = "topo_p"
	ColGamma      = "gamma"
	ColSigma      = "sigma"
	ColSpectRad   = "spect_rad"
	ColRidgeAlpha = "ridge_alpha"
	ColRemoveP    = "remove_p"
	ColPred       = "pred"
	ColErr        = "err"
)

// Column names of the derived network features.
const (
	ColMaxSCC     = "max_scc"
	ColMaxWCC     = "max_wcc"
	ColSingletons = "singletons"
	ColNWCC       = "nwcc"
	ColNSCC       = "nscc"
	ColCluster    = "cluster"
	ColAssort     = "assort"
	ColDiam       = "diam"
	ColEdgeWeight = "edge_weight"
)

// Field declares one column.
type Field struct {
	Name string `msgpack:"name"`
	Kind Kind   `msgpack:"kind"`
}

// Schema is an ordered list of columns.
type Schema []Field

// RecordSchema lists the columns copied from job result files.
var RecordSchema = Schema{
	{ColMeanPred, Numeric},
	{ColMeanErr, Numeric},
	{ColAdjSize, Numeric},
	{ColNet, Label},
	{ColTopoP, Numeric},
	{ColGamma, Numeric},
	{ColSigma, Numeric},
	{ColSpectRad, Numeric},
	{ColRidgeAlpha, Numeric},
	{ColRemoveP, Numeric},
	{ColPred, Sequence},
	{ColErr, Sequence},
}

// NetworkSchema lists the columns derived from adjacency matrices.
var NetworkSchema = Schema{
	{ColMaxSCC, Numeric},
	{ColMaxWCC, Numeric},
	{ColSingletons, Numeric},
	{ColNWCC, Numeric},
	{ColNSCC, Numeric},
	{ColCluster, Numeric},
	{ColAssort, Numeric},
	{ColDiam, Numeric},
	{ColEdgeWeight, Numeric},
}

// DefaultSchema is RecordSchema followed by NetworkSchema.
func DefaultSchema() Schema {
	out := make(Schema, 0, len(RecordSchema)+len(NetworkSchema))
	out = append(out, RecordSchema...)

	return append(out, NetworkSchema...)
}

// Lookup returns the field named name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Equal reports whether both schemas declare the same columns in the same order.
func (s Schema) Equal(o Schema) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the pipeline's Prometheus collectors. They are safe to share
// between concurrently compiled partitions.
type Metrics struct {
	Files         *prometheus.CounterVec
	Trials        *prometheus.CounterVec
	Snapshots     *prometheus.CounterVec
	FilledSlots   *prometheus.GaugeVec
	FileDuration  prometheus.Histogram
	StatsDuration prometheus.Histogram
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Files: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rcsweep_files_total",
				Help: "Job files processed, by outcome",
			},
			[]string{"partition", "outcome"}, // outcome: ok/missing_data/unexpected
		),
		Trials: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rcsweep_trials_total",
				Help: "Trials written into compiled datasets",
			},
			[]string{"partition"},
		),
		Snapshots: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rcsweep_snapshots_total",
				Help: "Partial snapshots written",
			},
			[]string{"partition"},
		),
		FilledSlots: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rcsweep_filled_slots",
				Help: "Slots holding data in the final dataset",
			},
			[]string{"partition"},
		),
		FileDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rcsweep_file_duration_seconds",
				Help:    "Time to ingest one job file",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		StatsDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rcsweep_netstats_duration_seconds",
				Help:    "Time to compute the network features of one trial",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
	}
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

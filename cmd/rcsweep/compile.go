// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/rcsweep/config"
	"github.com/katalvlaran/rcsweep/pipeline"
)

type compileCommand struct {
	config.Flags
}

// Execute implements flags.Commander.
func (c *compileCommand) Execute([]string) error {
	boot := logger()
	cfg, err := config.Load(&c.Flags, boot)
	if err != nil {
		boot.WithError(err).Error("could not load config")
		return err
	}
	log := config.NewLogger(cfg.Log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	compiler := &pipeline.Compiler{Logger: log, Metrics: pipeline.NewMetrics(reg)}

	ctx, cancel := signalContext()
	defer cancel()

	results, err := compiler.CompileAll(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("action", "compile").Error("compile failed")
		return err
	}
	for _, r := range results {
		log.WithField("action", "compile").WithField("partition", r.Report.Partition).
			Infof("%d/%d files compiled (%.1f%%), report at %s",
				r.Report.Successes, r.Report.TotalExpected, r.Report.SuccessPercent(), r.ReportPath)
	}

	if cfg.MetricsTextfile != "" {
		if err := pipeline.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			log.WithError(err).WithField("path", cfg.MetricsTextfile).Warn("could not write metrics textfile")
		}
	}

	return nil
}

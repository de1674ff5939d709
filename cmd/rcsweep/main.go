// SPDX-License-Identifier: MIT

// Command rcsweep compiles the result archives of a reservoir-computing
// hyperparameter sweep into columnar datasets, merges compiled partitions
// and exports them.
//
//	rcsweep compile -c sweep.yaml --partition 3
//	rcsweep merge --out all.msgpack part0.msgpack part1.msgpack
//	rcsweep export --db sweep.db all.msgpack
//	rcsweep stats results/erdos_137.msgpack
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rcsweep/config"
)

// Global options shared by every command.
type Global struct {
	LogLevel  string `long:"log-level" default:"info" description:"log level for commands without a config"`
	LogFormat string `long:"log-format" default:"text" choice:"text" choice:"json" description:"log format"`
}

var global Global

func logger() *logrus.Logger {
	return config.NewLogger(config.Log{Level: global.LogLevel, Format: global.LogFormat})
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	parser := flags.NewParser(&global, flags.Default)

	mustAdd(parser, "compile", "Compile partition archives", "Extract, decode and compile the job files of one or more partitions.", &compileCommand{})
	mustAdd(parser, "merge", "Merge compiled datasets", "Concatenate compiled partitions, renumbering job indices.", &mergeCommand{})
	mustAdd(parser, "export", "Export a dataset to SQLite", "Write one row per slot of a compiled dataset into a SQLite table.", &exportCommand{})
	mustAdd(parser, "stats", "Network features of a job file", "Decode one job file and print the network features of each trial.", &statsCommand{})

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

func mustAdd(p *flags.Parser, name, short, long string, data any) {
	if _, err := p.AddCommand(name, short, long, data); err != nil {
		panic(err)
	}
}

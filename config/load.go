// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "RCSWEEP_"

// Flags are the command line options overriding file and environment.
// Pointer fields distinguish "not given" from zero.
type Flags struct {
	ConfigFile        string `long:"config" short:"c" description:"YAML config file"`
	TestID            string `long:"test-id" description:"test identifier prepended to output names"`
	Prefix            string `long:"prefix" description:"sweep filename prefix"`
	Partition         *int   `long:"partition" description:"partition index"`
	Partitions        []int  `long:"partitions" description:"compile several partitions (repeatable)"`
	Parallel          int    `long:"parallel" description:"partitions compiled concurrently"`
	Archive           string `long:"archive" description:"archive path, {prefix} and {partition} are expanded"`
	WorkDir           string `long:"work-dir" description:"directory the archive is extracted into"`
	OutputDir         string `long:"output-dir" description:"directory for datasets and reports"`
	NetsPerExperiment int    `long:"nets-per-experiment" description:"trials per job file"`
	NumJobsPerFile    int    `long:"num-jobs-per-file" description:"job files per cluster submission"`
	StartExperiment   *int   `long:"start-experiment" description:"first experiment number"`
	EndExperiment     *int   `long:"end-experiment" description:"experiment number past the last"`
	PartitionSize     int    `long:"partition-size" description:"experiments per partition, 0 for the whole range"`
	IndexMode         string `long:"index-mode" choice:"name" choice:"position" description:"member to job index mapping"`
	PartialData       bool   `long:"partial-data" description:"write partial snapshots"`
	Verbose           bool   `long:"verbose" short:"v" description:"log progress every 1000 files"`
	DiameterMode      string `long:"diameter" choice:"exact" choice:"sampled" choice:"auto" description:"diameter strategy"`
	DiameterWorkers   int    `long:"diameter-workers" description:"BFS workers for exact diameter"`
	MetricsTextfile   string `long:"metrics-textfile" description:"write Prometheus metrics to this file"`
	LogLevel          string `long:"log-level" description:"log level"`
	LogFormat         string `long:"log-format" choice:"text" choice:"json" description:"log format"`
}

// Load builds a Config from defaults, the config file named by flags (if
// any), the environment and flags, then validates it.
func Load(flags *Flags, logger logrus.FieldLogger) (Config, error) {
	c := Default()
	if flags == nil {
		flags = &Flags{}
	}

	if flags.ConfigFile != "" {
		file, err := os.ReadFile(flags.ConfigFile)
		if err != nil {
			return c, configErr(errors.Wrapf(err, "read config file %q", flags.ConfigFile))
		}
		if err := yaml.Unmarshal(file, &c); err != nil {
			return c, configErr(errors.Wrapf(err, "unmarshal config file %q", flags.ConfigFile))
		}
		logger.WithField("action", "config_load").WithField("config_file_path", flags.ConfigFile).
			Debug("loaded config file")
	}

	if err := FromEnv(&c); err != nil {
		return c, configErr(err)
	}
	fromFlags(&c, flags)

	if err := c.Validate(); err != nil {
		return c, configErr(err)
	}

	return c, nil
}

// FromEnv overrides c with the RCSWEEP_* variables that are set.
func FromEnv(c *Config) error {
	str := func(name string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}

	str("TEST_ID", &c.TestID)
	str("PREFIX", &c.Prefix)
	str("ARCHIVE", &c.Archive)
	str("WORK_DIR", &c.WorkDir)
	str("OUTPUT_DIR", &c.OutputDir)
	str("METRICS_TEXTFILE", &c.MetricsTextfile)
	str("DIAMETER_MODE", &c.Diameter.Mode)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	var mode string
	str("INDEX_MODE", &mode)
	if mode != "" {
		c.IndexMode = IndexMode(mode)
	}

	for name, dst := range map[string]*int{
		"PARTITION":           &c.Partition,
		"PARALLEL":            &c.Parallel,
		"NETS_PER_EXPERIMENT": &c.NetsPerExperiment,
		"NUM_JOBS_PER_FILE":   &c.NumJobsPerFile,
		"START_EXPERIMENT":    &c.StartExperiment,
		"END_EXPERIMENT":      &c.EndExperiment,
		"PARTITION_SIZE":      &c.PartitionSize,
		"DIAMETER_WORKERS":    &c.Diameter.Workers,
		"DIAMETER_THRESHOLD":  &c.Diameter.Threshold,
	} {
		if err := num(name, dst); err != nil {
			return err
		}
	}

	if v := os.Getenv(EnvPrefix + "PARTITIONS"); v != "" {
		parts, err := parseInts(v)
		if err != nil {
			return fmt.Errorf("%sPARTITIONS: %w", EnvPrefix, err)
		}
		c.Partitions = parts
	}
	if enabled(os.Getenv(EnvPrefix + "PARTIAL_DATA")) {
		c.PartialData = true
	}
	if enabled(os.Getenv(EnvPrefix + "VERBOSE")) {
		c.Verbose = true
	}

	return nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

func enabled(value string) bool {
	switch strings.ToLower(value) {
	case "on", "1", "true", "yes":
		return true
	default:
		return false
	}
}

func fromFlags(c *Config, f *Flags) {
	if f.TestID != "" {
		c.TestID = f.TestID
	}
	if f.Prefix != "" {
		c.Prefix = f.Prefix
	}
	if f.Partition != nil {
		c.Partition = *f.Partition
	}
	if len(f.Partitions) > 0 {
		c.Partitions = f.Partitions
	}
	if f.Parallel > 0 {
		c.Parallel = f.Parallel
	}
	if f.Archive != "" {
		c.Archive = f.Archive
	}
	if f.WorkDir != "" {
		c.WorkDir = f.WorkDir
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.NetsPerExperiment > 0 {
		c.NetsPerExperiment = f.NetsPerExperiment
	}
	if f.NumJobsPerFile > 0 {
		c.NumJobsPerFile = f.NumJobsPerFile
	}
	if f.StartExperiment != nil {
		c.StartExperiment = *f.StartExperiment
	}
	if f.EndExperiment != nil {
		c.EndExperiment = *f.EndExperiment
	}
	if f.PartitionSize > 0 {
		c.PartitionSize = f.PartitionSize
	}
	if f.IndexMode != "" {
		c.IndexMode = IndexMode(f.IndexMode)
	}
	if f.PartialData {
		c.PartialData = true
	}
	if f.Verbose {
		c.Verbose = true
	}
	if f.DiameterMode != "" {
		c.Diameter.Mode = f.DiameterMode
	}
	if f.DiameterWorkers > 0 {
		c.Diameter.Workers = f.DiameterWorkers
	}
	if f.MetricsTextfile != "" {
		c.MetricsTextfile = f.MetricsTextfile
	}
	if f.LogLevel != "" {
		c.Log.Level = f.LogLevel
	}
	if f.LogFormat != "" {
		c.Log.Format = f.LogFormat
	}
}

func configErr(err error) error {
	return fmt.Errorf("invalid config: %w", err)
}

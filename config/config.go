// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rcsweep/checkpoint"
	"github.com/katalvlaran/rcsweep/netstats"
)

// IndexMode selects how an archive member is mapped to its job index.
type IndexMode string

const (
	// IndexByName parses the trailing integer of the member's base name and
	// subtracts StartExperiment.
	IndexByName IndexMode = "name"
	// IndexByPosition uses the member's position in the archive (entry 0
	// excluded).
	IndexByPosition IndexMode = "position"
)

// Diameter modes.
const (
	DiameterExact   = "exact"
	DiameterSampled = "sampled"
	DiameterAuto    = "auto"
)

// Diameter configures the diameter computation.
type Diameter struct {
	Mode string `yaml:"mode"`
	// Threshold is the component size above which auto mode samples.
	Threshold int   `yaml:"threshold"`
	Sources   int   `yaml:"sources"`
	Workers   int   `yaml:"workers"`
	Seed      int64 `yaml:"seed"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the configuration of a compile pass.
type Config struct {
	TestID    string `yaml:"test_id"`
	Prefix    string `yaml:"prefix"`
	Partition int    `yaml:"partition"`
	// Partitions, when set, compiles several partitions concurrently.
	Partitions []int `yaml:"partitions"`
	// Parallel bounds the number of partitions compiled at once.
	Parallel int `yaml:"parallel"`

	// Archive is the archive path; "{prefix}" and "{partition}" are expanded.
	Archive   string `yaml:"archive"`
	WorkDir   string `yaml:"work_dir"`
	OutputDir string `yaml:"output_dir"`

	NetsPerExperiment int       `yaml:"nets_per_experiment"`
	NumJobsPerFile    int       `yaml:"num_jobs_per_file"`
	StartExperiment   int       `yaml:"start_experiment"`
	EndExperiment     int       `yaml:"end_experiment"`
	// PartitionSize, when positive, gives partition p the experiments
	// [StartExperiment+p*PartitionSize, StartExperiment+(p+1)*PartitionSize),
	// clipped to EndExperiment. Zero gives every partition the whole range.
	PartitionSize int       `yaml:"partition_size"`
	IndexMode     IndexMode `yaml:"index_mode"`

	PartialData bool `yaml:"partial_data"`
	Verbose     bool `yaml:"verbose"`

	Diameter        Diameter `yaml:"diameter"`
	MetricsTextfile string   `yaml:"metrics_textfile"`
	Log             Log      `yaml:"log"`
}

// Default returns the configuration every load starts from.
func Default() Config {
	return Config{
		Archive:        "{prefix}_results/{prefix}_result_files_{partition}.tar",
		WorkDir:        ".",
		OutputDir:      ".",
		NumJobsPerFile: 1,
		IndexMode:      IndexByName,
		Parallel:       1,
		Diameter: Diameter{
			Mode:      DiameterAuto,
			Threshold: 5000,
			Sources:   16,
			Workers:   1,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// PartitionRange is the half-open experiment range of the configured partition.
func (c Config) PartitionRange() (start, end int) {
	return c.rangeOf(c.Partition)
}

func (c Config) rangeOf(p int) (start, end int) {
	if c.PartitionSize <= 0 {
		return c.StartExperiment, c.EndExperiment
	}
	start = c.StartExperiment + p*c.PartitionSize

	return start, min(start+c.PartitionSize, c.EndExperiment)
}

// TotalJobs is the number of jobs, and so of job files, in the partition.
func (c Config) TotalJobs() int {
	start, end := c.PartitionRange()

	return end - start
}

// ArchivePath expands the archive template for the configured partition.
func (c Config) ArchivePath() string {
	return strings.NewReplacer(
		"{prefix}", c.Prefix,
		"{partition}", strconv.Itoa(c.Partition),
	).Replace(c.Archive)
}

// PartitionWorkDir is the directory the configured partition's archive is
// extracted into.
func (c Config) PartitionWorkDir() string {
	return filepath.Join(c.WorkDir, fmt.Sprintf("%s_partition_%d", c.Prefix, c.Partition))
}

// PartitionList returns Partitions, or the single Partition when unset.
func (c Config) PartitionList() []int {
	if len(c.Partitions) == 0 {
		return []int{c.Partition}
	}

	return append([]int(nil), c.Partitions...)
}

// ForPartition returns a copy of c for partition p.
func (c Config) ForPartition(p int) Config {
	c.Partition = p
	c.Partitions = nil

	return c
}

// Names returns the checkpoint names of the configured partition.
func (c Config) Names() checkpoint.Names {
	return checkpoint.Names{TestID: c.TestID, Prefix: c.Prefix, Partition: c.Partition}
}

// DiameterFunc builds the configured diameter strategy.
func (c Config) DiameterFunc() netstats.DiameterFunc {
	exact := netstats.Exact{Workers: c.Diameter.Workers}
	sampled := netstats.Sampled{Sources: c.Diameter.Sources, Seed: c.Diameter.Seed}
	switch c.Diameter.Mode {
	case DiameterExact:
		return exact
	case DiameterSampled:
		return sampled
	default:
		return netstats.Auto{Threshold: c.Diameter.Threshold, Small: exact, Large: sampled}
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Prefix == "" {
		return fmt.Errorf("prefix must be set")
	}
	if c.Archive == "" {
		return fmt.Errorf("archive must be set")
	}
	if c.NetsPerExperiment <= 0 {
		return fmt.Errorf("nets_per_experiment must be more than 0, got %d", c.NetsPerExperiment)
	}
	if c.NumJobsPerFile <= 0 {
		return fmt.Errorf("num_jobs_per_file must be more than 0, got %d", c.NumJobsPerFile)
	}
	if c.StartExperiment < 0 || c.EndExperiment <= c.StartExperiment {
		return fmt.Errorf("experiment range [%d,%d) is empty or negative", c.StartExperiment, c.EndExperiment)
	}
	if c.Partition < 0 {
		return fmt.Errorf("partition must not be negative, got %d", c.Partition)
	}
	for _, p := range c.Partitions {
		if p < 0 {
			return fmt.Errorf("partitions must not be negative, got %d", p)
		}
	}
	if c.PartitionSize < 0 {
		return fmt.Errorf("partition_size must not be negative, got %d", c.PartitionSize)
	}
	for _, p := range c.PartitionList() {
		if start, end := c.rangeOf(p); end <= start {
			return fmt.Errorf("partition %d starts at experiment %d, past end_experiment %d", p, start, c.EndExperiment)
		}
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("parallel must be more than 0, got %d", c.Parallel)
	}
	switch c.IndexMode {
	case IndexByName, IndexByPosition:
	default:
		return fmt.Errorf("index_mode must be %q or %q, got %q", IndexByName, IndexByPosition, c.IndexMode)
	}
	switch c.Diameter.Mode {
	case DiameterExact, DiameterSampled, DiameterAuto:
	default:
		return fmt.Errorf("diameter.mode must be one of exact, sampled, auto, got %q", c.Diameter.Mode)
	}
	if c.Diameter.Workers < 0 || c.Diameter.Sources < 0 || c.Diameter.Threshold < 0 {
		return fmt.Errorf("diameter settings must not be negative")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

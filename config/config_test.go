// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rcsweep/config"
	"github.com/katalvlaran/rcsweep/netstats"
)

const yamlConfig = `
test_id: "2"
prefix: erdos
partition: 1
nets_per_experiment: 3
num_jobs_per_file: 50
start_experiment: 100
end_experiment: 200
partial_data: true
diameter:
  mode: exact
  workers: 4
log:
  level: debug
  format: json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rcsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_File(t *testing.T) {
	logger, _ := test.NewNullLogger()
	c, err := config.Load(&config.Flags{ConfigFile: writeConfig(t, yamlConfig)}, logger)
	require.NoError(t, err)

	assert.Equal(t, "erdos", c.Prefix)
	assert.Equal(t, 100, c.TotalJobs())
	assert.True(t, c.PartialData)
	assert.Equal(t, config.IndexByName, c.IndexMode)
	assert.Equal(t, "erdos_results/erdos_result_files_1.tar", c.ArchivePath())
	assert.Equal(t, netstats.Exact{Workers: 4}, c.DiameterFunc())
	assert.Equal(t, "2compiled_tarball_output_erdos_1.msgpack", c.Names().Final())
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("RCSWEEP_PREFIX", "watts")
	t.Setenv("RCSWEEP_NETS_PER_EXPERIMENT", "7")
	t.Setenv("RCSWEEP_PARTITIONS", "0, 1,2")
	t.Setenv("RCSWEEP_VERBOSE", "on")

	zero := 0
	logger, _ := test.NewNullLogger()
	c, err := config.Load(&config.Flags{
		ConfigFile:        writeConfig(t, yamlConfig),
		NetsPerExperiment: 9,
		Partition:         &zero,
		IndexMode:         "position",
	}, logger)
	require.NoError(t, err)

	assert.Equal(t, "watts", c.Prefix)      // env over file
	assert.Equal(t, 9, c.NetsPerExperiment) // flag over env
	assert.Equal(t, 0, c.Partition)         // explicit zero flag
	assert.True(t, c.Verbose)
	assert.Equal(t, []int{0, 1, 2}, c.PartitionList())
	assert.Equal(t, config.IndexByPosition, c.IndexMode)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("RCSWEEP_END_EXPERIMENT", "many")
	logger, _ := test.NewNullLogger()
	_, err := config.Load(&config.Flags{ConfigFile: writeConfig(t, yamlConfig)}, logger)
	assert.ErrorContains(t, err, "RCSWEEP_END_EXPERIMENT")
}

func TestLoad_MissingFile(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := config.Load(&config.Flags{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}, logger)
	assert.Error(t, err)
}

func valid() config.Config {
	c := config.Default()
	c.Prefix = "erdos"
	c.NetsPerExperiment = 2
	c.EndExperiment = 10

	return c
}

func TestValidate(t *testing.T) {
	require.NoError(t, valid().Validate())

	cases := map[string]func(*config.Config){
		"no prefix":        func(c *config.Config) { c.Prefix = "" },
		"zero nets":        func(c *config.Config) { c.NetsPerExperiment = 0 },
		"zero jobs/file":   func(c *config.Config) { c.NumJobsPerFile = 0 },
		"empty range":      func(c *config.Config) { c.EndExperiment = c.StartExperiment },
		"bad index mode":   func(c *config.Config) { c.IndexMode = "hash" },
		"bad diameter":     func(c *config.Config) { c.Diameter.Mode = "guess" },
		"bad log level":    func(c *config.Config) { c.Log.Level = "loud" },
		"bad log format":   func(c *config.Config) { c.Log.Format = "xml" },
		"negative part":    func(c *config.Config) { c.Partitions = []int{1, -1} },
		"zero parallelism": func(c *config.Config) { c.Parallel = 0 },
		"negative size":    func(c *config.Config) { c.PartitionSize = -1 },
		"past the end":     func(c *config.Config) { c.PartitionSize, c.Partitions = 5, []int{0, 1, 2} },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(&c)
		assert.Error(t, c.Validate(), name)
	}
}

func TestDiameterFunc(t *testing.T) {
	c := valid()
	c.Diameter = config.Diameter{Mode: config.DiameterSampled, Sources: 3, Seed: 9}
	assert.Equal(t, netstats.Sampled{Sources: 3, Seed: 9}, c.DiameterFunc())

	c.Diameter = config.Diameter{Mode: config.DiameterAuto, Threshold: 10, Sources: 2, Workers: 1}
	assert.Equal(t, netstats.Auto{
		Threshold: 10,
		Small:     netstats.Exact{Workers: 1},
		Large:     netstats.Sampled{Sources: 2},
	}, c.DiameterFunc())
}

func TestForPartition(t *testing.T) {
	c := valid()
	c.Partitions = []int{3, 4}
	p := c.ForPartition(4)
	assert.Equal(t, 4, p.Partition)
	assert.Equal(t, []int{4}, p.PartitionList())
	assert.Equal(t, "erdos_results/erdos_result_files_4.tar", p.ArchivePath())
	assert.Equal(t, filepath.Join(".", "erdos_partition_4"), p.PartitionWorkDir())
}

func TestPartitionRange(t *testing.T) {
	c := valid()
	c.StartExperiment = 10
	c.EndExperiment = 17
	start, end := c.PartitionRange()
	assert.Equal(t, [2]int{10, 17}, [2]int{start, end}, "whole range without partition_size")
	assert.Equal(t, 7, c.ForPartition(3).TotalJobs())

	c.PartitionSize = 3
	c.Partitions = []int{0, 1, 2}
	require.NoError(t, c.Validate())
	for p, want := range [][2]int{{10, 13}, {13, 16}, {16, 17}} {
		start, end := c.ForPartition(p).PartitionRange()
		assert.Equal(t, want, [2]int{start, end}, p)
	}
	assert.Equal(t, 1, c.ForPartition(2).TotalJobs())
}

func TestLoad_PartitionSize(t *testing.T) {
	t.Setenv("RCSWEEP_PARTITION_SIZE", "25")
	logger, _ := test.NewNullLogger()
	c, err := config.Load(&config.Flags{ConfigFile: writeConfig(t, yamlConfig)}, logger)
	require.NoError(t, err)
	start, end := c.PartitionRange()
	assert.Equal(t, 125, start)
	assert.Equal(t, 150, end)

	c, err = config.Load(&config.Flags{ConfigFile: writeConfig(t, yamlConfig), PartitionSize: 60}, logger)
	require.NoError(t, err)
	assert.Equal(t, 40, c.TotalJobs())
}

func TestNewLogger(t *testing.T) {
	l := config.NewLogger(config.Log{Level: "debug", Format: "json"})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	l = config.NewLogger(config.Log{Level: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

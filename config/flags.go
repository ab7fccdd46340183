package config

import (
	"flag"
	"fmt"
	"strconv"
)

// RegisterFlags defines the configuration flags on fs and returns a
// pointer to the -config path. Flag defaults come from Defaults; only flags
// set explicitly are applied by ApplyFlags.
func RegisterFlags(fs *flag.FlagSet) *string {
	d := Defaults()

	path := fs.String("config", "", "path to a YAML config file")
	fs.Int("max-iterations", d.MaxIterations, "stop after this many reclustering passes")
	fs.Int("max-partition-attempts", d.MaxPartitionAttempts, "give up after this many empty-cluster restarts")
	fs.String("empty-cluster-policy", d.EmptyClusterPolicy, "centroid for an empty cluster: keep or reseed")
	fs.String("seed", "", "random seed for a reproducible run")
	fs.String("log-level", d.LogLevel, "debug, info, warn or error")
	fs.String("log-format", d.LogFormat, "text or json")
	fs.Int64("memory-limit", d.MemoryLimitBytes, "max bytes of decoded points (0 = unlimited)")
	fs.Int64("io-limit", d.IOLimitBytesPerSec, "max input read rate in bytes/s (0 = unlimited)")
	fs.String("codec", d.Codec, "JSON codec for reports: json or go-json")
	fs.String("json-out", "", "write a JSON report to this location")
	fs.String("plot-out", "", "write an HTML scatter plot to this location")
	fs.String("metrics-out", "", "write Prometheus metrics to this textfile")
	fs.String("runs-table", "", "record the run in this DynamoDB table")

	return path
}

// ApplyFlags copies every flag set on the command line into c.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		err = c.applyFlag(f.Name, f.Value.String())
	})
	return err
}

func (c *Config) applyFlag(name, value string) error {
	var err error
	switch name {
	case "max-iterations":
		c.MaxIterations, err = strconv.Atoi(value)
	case "max-partition-attempts":
		c.MaxPartitionAttempts, err = strconv.Atoi(value)
	case "empty-cluster-policy":
		c.EmptyClusterPolicy = value
	case "seed":
		var v uint64
		if v, err = strconv.ParseUint(value, 10, 64); err == nil {
			c.Seed = &v
		}
	case "log-level":
		c.LogLevel = value
	case "log-format":
		c.LogFormat = value
	case "memory-limit":
		c.MemoryLimitBytes, err = strconv.ParseInt(value, 10, 64)
	case "io-limit":
		c.IOLimitBytesPerSec, err = strconv.ParseInt(value, 10, 64)
	case "codec":
		c.Codec = value
	case "json-out":
		c.JSONOut = value
	case "plot-out":
		c.PlotOut = value
	case "metrics-out":
		c.MetricsOut = value
	case "runs-table":
		c.RunsTable = value
	}
	if err != nil {
		return fmt.Errorf("%w: -%s=%q: %v", ErrInvalid, name, value, err)
	}
	return nil
}

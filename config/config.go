// Package config loads settings for the kmeans command.
//
// Values are layered in this order, later layers winning:
//
//  1. Defaults
//  2. YAML file (-config)
//  3. KMEANS_* environment variables (MinIO uses MINIO_*)
//  4. Command-line flags
//
// The merged Config is checked with struct-tag validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// MinIO holds connection settings for minio:// locations.
type MinIO struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Config holds all command configuration.
type Config struct {
	// Clustering
	MaxIterations        int     `yaml:"max_iterations" validate:"min=1"`
	MaxPartitionAttempts int     `yaml:"max_partition_attempts" validate:"min=1"`
	EmptyClusterPolicy   string  `yaml:"empty_cluster_policy" validate:"oneof=keep reseed"`
	Seed                 *uint64 `yaml:"seed"`

	// Logging
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Input limits
	MemoryLimitBytes   int64 `yaml:"memory_limit_bytes" validate:"min=0"`
	IOLimitBytesPerSec int64 `yaml:"io_limit_bytes_per_sec" validate:"min=0"`

	// Outputs
	Codec      string `yaml:"codec" validate:"oneof=json go-json"`
	JSONOut    string `yaml:"json_out"`
	PlotOut    string `yaml:"plot_out"`
	MetricsOut string `yaml:"metrics_out"`
	RunsTable  string `yaml:"runs_table" validate:"omitempty,min=3,max=255"`

	MinIO MinIO `yaml:"minio"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		MaxIterations:        1000,
		MaxPartitionAttempts: 1000,
		EmptyClusterPolicy:   "reseed",
		LogLevel:             "info",
		LogFormat:            "text",
		Codec:                "go-json",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. Flags are applied separately with
// ApplyFlags; call Validate once all layers are in.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		// An empty document leaves the defaults in place.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks all fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kmeans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults_Valid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.MaxIterations)
	assert.Equal(t, "reseed", cfg.EmptyClusterPolicy)
	assert.Nil(t, cfg.Seed)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, `
max_iterations: 50
empty_cluster_policy: keep
seed: 42
log_format: json
codec: json
minio:
  endpoint: localhost:9000
  secure: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.MaxIterations)
	assert.Equal(t, 1000, cfg.MaxPartitionAttempts)
	assert.Equal(t, "keep", cfg.EmptyClusterPolicy)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "localhost:9000", cfg.MinIO.Endpoint)
	assert.True(t, cfg.MinIO.Secure)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(writeFile(t, "max_iteratons: 5\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("KMEANS_MAX_ITERATIONS", "7")
	t.Setenv("KMEANS_SEED", "99")
	t.Setenv("KMEANS_LOG_LEVEL", "debug")
	t.Setenv("KMEANS_MEMORY_LIMIT_BYTES", "4096")
	t.Setenv("KMEANS_RUNS_TABLE", "kmeans-runs")
	t.Setenv("KMEANS_MAX_PARTITION_ATTEMPTS", "not-a-number")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_SECURE", "yes")

	cfg, err := Load(writeFile(t, "max_iterations: 50\n"))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.MaxIterations, "env wins over file")
	assert.Equal(t, 1000, cfg.MaxPartitionAttempts, "unparsable env keeps the previous value")
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(99), *cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(4096), cfg.MemoryLimitBytes)
	assert.Equal(t, "kmeans-runs", cfg.RunsTable)
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.True(t, cfg.MinIO.Secure)
}

func TestApplyFlags(t *testing.T) {
	t.Setenv("KMEANS_MAX_ITERATIONS", "7")

	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	path := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-max-iterations", "3",
		"-seed", "5",
		"-json-out", "s3://bucket/report.json",
		"2", "points.txt",
	}))
	assert.Empty(t, *path)
	assert.Equal(t, []string{"2", "points.txt"}, fs.Args())

	cfg, err := Load(*path)
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyFlags(fs))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.MaxIterations, "flags win over env")
	assert.Equal(t, uint64(5), *cfg.Seed)
	assert.Equal(t, "s3://bucket/report.json", cfg.JSONOut)
	assert.Equal(t, "go-json", cfg.Codec, "unset flags keep lower layers")
}

func TestApplyFlags_BadSeed(t *testing.T) {
	fs := flag.NewFlagSet("kmeans", flag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "-1"}))

	cfg := Defaults()
	err := cfg.ApplyFlags(fs)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"zero attempts", func(c *Config) { c.MaxPartitionAttempts = 0 }},
		{"unknown policy", func(c *Config) { c.EmptyClusterPolicy = "drop" }},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }},
		{"unknown format", func(c *Config) { c.LogFormat = "xml" }},
		{"negative memory", func(c *Config) { c.MemoryLimitBytes = -1 }},
		{"unknown codec", func(c *Config) { c.Codec = "msgpack" }},
		{"bad minio endpoint", func(c *Config) { c.MinIO.Endpoint = "not a host" }},
		{"short table", func(c *Config) { c.RunsTable = "ab" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

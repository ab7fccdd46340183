package config

import (
	"os"
	"strconv"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv, except
// the MinIO settings.
const EnvPrefix = "KMEANS_"

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	c.MaxIterations = getEnvInt(EnvPrefix+"MAX_ITERATIONS", c.MaxIterations)
	c.MaxPartitionAttempts = getEnvInt(EnvPrefix+"MAX_PARTITION_ATTEMPTS", c.MaxPartitionAttempts)
	c.EmptyClusterPolicy = getEnv(EnvPrefix+"EMPTY_CLUSTER_POLICY", c.EmptyClusterPolicy)
	if v, ok := getEnvUint64(EnvPrefix + "SEED"); ok {
		c.Seed = &v
	}

	c.LogLevel = getEnv(EnvPrefix+"LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv(EnvPrefix+"LOG_FORMAT", c.LogFormat)

	c.MemoryLimitBytes = getEnvInt64(EnvPrefix+"MEMORY_LIMIT_BYTES", c.MemoryLimitBytes)
	c.IOLimitBytesPerSec = getEnvInt64(EnvPrefix+"IO_LIMIT_BYTES_PER_SEC", c.IOLimitBytesPerSec)

	c.Codec = getEnv(EnvPrefix+"CODEC", c.Codec)
	c.JSONOut = getEnv(EnvPrefix+"JSON_OUT", c.JSONOut)
	c.PlotOut = getEnv(EnvPrefix+"PLOT_OUT", c.PlotOut)
	c.MetricsOut = getEnv(EnvPrefix+"METRICS_OUT", c.MetricsOut)
	c.RunsTable = getEnv(EnvPrefix+"RUNS_TABLE", c.RunsTable)

	c.MinIO.Endpoint = getEnv("MINIO_ENDPOINT", c.MinIO.Endpoint)
	c.MinIO.AccessKey = getEnv("MINIO_ACCESS_KEY", c.MinIO.AccessKey)
	c.MinIO.SecretKey = getEnv("MINIO_SECRET_KEY", c.MinIO.SecretKey)
	c.MinIO.Secure = getEnvBool("MINIO_SECURE", c.MinIO.Secure)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func getEnvUint64(key string) (uint64, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(value, 10, 64)
	return v, err == nil
}

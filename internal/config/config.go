// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// GeocodeQueueSize bounds the in-memory geocoding queue.
	GeocodeQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of geocoding workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the in-flight geocode dedupe cache.
	DedupeSize int `koanf:"dedupe_size"`

	// ShardCount configures the number of shards in the profile store.
	ShardCount int `koanf:"shard_count"`

	// TopK is the default number of matches returned by recommendations.
	TopK int `koanf:"top_k"`

	// MaxTopK caps GET /recommend?limit.
	MaxTopK int `koanf:"max_top_k"`

	// RankConcurrency bounds concurrent candidate evaluation per request.
	RankConcurrency int `koanf:"rank_concurrency"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:         "info",
		Addr:             ":8080",
		GeocodeQueueSize: 10_000,
		WorkerCount:      2,
		DedupeSize:       50_000,
		ShardCount:       8,
		TopK:             10,
		MaxTopK:          50,
		RankConcurrency:  runtime.NumCPU() * 2,
	}
	return c
}

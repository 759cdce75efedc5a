// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// CatalogCSV is imported into the titles table at start-up when the table is empty.
	CatalogCSV string `koanf:"catalog_csv"`

	// MaxQueriesPerSecond throttles catalog queries across all sessions. 0 disables throttling.
	MaxQueriesPerSecond float64 `koanf:"max_queries_per_second"`
	QueryBurst          int     `koanf:"query_burst"`
}

// RecommendConfig holds recommendation request limits
type RecommendConfig struct {
	DefaultN        int  `koanf:"default_n"`
	MaxN            int  `koanf:"max_n"`
	MaxSeeds        int  `koanf:"max_seeds"`
	MaxWeight       int  `koanf:"max_weight"`
	ConcurrentSeeds bool `koanf:"concurrent_seeds"`
	MaxConcurrency  int  `koanf:"max_concurrency"`
}

// EngineConfig converts the section into the engine's configuration.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		MaxSeeds:        r.MaxSeeds,
		MaxN:            r.MaxN,
		ConcurrentSeeds: r.ConcurrentSeeds,
		MaxConcurrency:  r.MaxConcurrency,
	}
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for ReelMatch.

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, or config.yaml / /etc/reelmatch/config.yaml)
 3. Environment variables, mapped explicitly by envTransformFunc

# Sections

  - ServerConfig: HTTP listen address and timeouts
  - DatabaseConfig: DuckDB file, tuning, catalog import and query budget
  - RecommendConfig: request limits for the recommendation engine
  - SecurityConfig: CORS origins and per-IP rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
	DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS, CATALOG_CSV
	DB_MAX_QPS, DB_QUERY_BURST
	RECOMMEND_DEFAULT_N, RECOMMEND_MAX_N, RECOMMEND_MAX_SEEDS,
	RECOMMEND_MAX_WEIGHT, RECOMMEND_CONCURRENT_SEEDS, RECOMMEND_MAX_CONCURRENCY
	CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
	LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config

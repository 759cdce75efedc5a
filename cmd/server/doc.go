// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the ReelMatch server.

ReelMatch recommends movies similar to one or more seed titles, ranking
the catalog by release year, rating, shared genres and shared cast.

# Application Architecture

Components are built in this order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment variables)
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB with the titles schema, plus an optional CSV import
 4. Store: DuckDB title store behind a gobreaker circuit breaker
 5. Engine: recommendation engine over the store
 6. HTTP: Chi router with CORS, rate limiting and Prometheus middleware
 7. Supervisor tree: suture v4

	reelmatch
	├── data-layer
	│   └── catalog-monitor
	└── api-layer
	    └── http-server

# Configuration

Common environment variables:

	HTTP_PORT=8080
	DUCKDB_PATH=/data/reelmatch.duckdb
	CATALOG_CSV=/data/imdb.csv
	LOG_LEVEL=info
	LOG_FORMAT=json
	RECOMMEND_MAX_N=100

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests within the shutdown timeout before the database closes.
*/
package main

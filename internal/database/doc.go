// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package database provides the DuckDB-backed title catalog for ReelMatch.
//
// # Overview
//
// The package owns the single `titles` table and exposes it two ways:
//
//   - As a recommend.TitleStore (TitleStore), serving the reference-row,
//     ordered-by-distance and similarity-candidate queries the engine issues
//     while ranking. Each engine request holds one session, backed by one
//     pooled connection.
//   - As a catalog for the HTTP layer: GetTitle, GetCatalogBounds and
//     CountTitles.
//
// # Architecture
//
//   - database.go: lifecycle (open, schema, optional CSV import, close)
//   - database_connection.go: pool configuration and error classification
//   - database_schema.go: titles table, CSV import and upserts
//   - database_utils.go: context defaults, checkpointing and tag helpers
//   - titles.go: TitleStore and its session queries
//   - catalog.go: catalog lookups for the API
//   - breaker.go: gobreaker circuit breaker around any TitleStore
//   - errors.go: sentinel errors and close helpers
//
// # Filtering
//
// Filter bounds are rendered into SQL by predicateWhere using the query
// builder in internal/database/query. Every bound is inclusive and a NULL
// column never satisfies a bound on that column; the SQL admits exactly
// the titles recommend.Predicate.Admits accepts. Titles with no genres or
// no cast are never candidates.
//
// # Ordering
//
// Distance queries order by ABS(column - reference) ascending with NULL
// distances last, then by votes descending and identifier ascending. When
// the reference value itself is NULL, ordering falls back to votes and
// identifier.
//
// # Throttling
//
// DatabaseConfig.MaxQueriesPerSecond applies a golang.org/x/time/rate
// limiter shared by every query. A request whose context ends while
// waiting for budget fails with the context error.
//
// # Circuit Breaker
//
// BreakerStore trips after a configurable failure ratio and then rejects
// sessions with ErrCircuitOpen until the open timeout elapses. Missing titles
// and cancelled contexts do not count as failures. State changes are
// exported through the reelmatch_circuit_breaker_* metrics.
//
// # Thread Safety
//
// DB and TitleStore are safe for concurrent use. A session is used by one
// request at a time and must be closed by its owner.
package database

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
database_schema.go - Catalog Schema Management

Tables:
  - titles: one row per title. genres and nconsts hold comma-separated tags
    in stored order; year and rating may be NULL when unknown.

The identifier is the primary key, which also serves reference-row lookups.
Range predicates on votes, year and rating rely on DuckDB zonemaps; secondary
ART indexes are not created because they block INSERT OR REPLACE upserts.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

const createTitlesTable = `
CREATE TABLE IF NOT EXISTS titles (
	tconst  VARCHAR PRIMARY KEY,
	year    INTEGER,
	genres  VARCHAR,
	nconsts VARCHAR,
	rating  DOUBLE,
	votes   BIGINT
)`

// createTables creates the catalog tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, createTitlesTable); err != nil {
		return fmt.Errorf("failed to create titles table: %w", err)
	}
	return nil
}

// CountTitles returns the number of rows in the catalog.
func (db *DB) CountTitles(ctx context.Context) (int64, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int64
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM titles").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count titles: %w", err)
	}
	return n, nil
}

// ImportCatalogCSV loads a headered CSV with the titles columns into an empty
// catalog. It returns 0 without touching the table when rows already exist.
func (db *DB) ImportCatalogCSV(ctx context.Context, path string) (int64, error) {
	existing, err := db.CountTitles(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	// read_csv_auto does not accept a bind parameter for the path.
	query := fmt.Sprintf(`
		INSERT INTO titles
		SELECT tconst,
		       TRY_CAST(year AS INTEGER),
		       CAST(genres AS VARCHAR),
		       CAST(nconsts AS VARCHAR),
		       TRY_CAST(rating AS DOUBLE),
		       TRY_CAST(votes AS BIGINT)
		FROM read_csv_auto(%s, header = true, all_varchar = true)
		WHERE tconst IS NOT NULL`, quoteLiteral(path))

	res, err := db.conn.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to import catalog %s: %w", path, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read import row count: %w", err)
	}
	return n, nil
}

// InsertTitles upserts titles in a single transaction.
func (db *DB) InsertTitles(ctx context.Context, titles []recommend.Title) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO titles (tconst, year, genres, nconsts, rating, votes)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := range titles {
		t := &titles[i]
		var year sql.NullInt64
		if t.Year != nil {
			year = sql.NullInt64{Int64: int64(*t.Year), Valid: true}
		}
		var rating sql.NullFloat64
		if t.Rating != nil {
			rating = sql.NullFloat64{Float64: *t.Rating, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, t.ID, year, joinTags(t.Genres), joinTags(t.Cast), rating, t.Votes); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert title %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit titles: %w", err)
	}
	return nil
}

func joinTags(tags []string) sql.NullString {
	if len(tags) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: strings.Join(tags, ","), Valid: true}
}

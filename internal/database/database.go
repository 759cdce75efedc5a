// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// DB wraps the DuckDB connection pool holding the title catalog.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	limiter *rate.Limiter // nil when throttling is disabled
}

// New opens the DuckDB database, creates the schema and, when configured,
// imports the catalog CSV into an empty titles table.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	dbDir := filepath.Dir(cfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn: conn,
		cfg:  cfg,
	}
	if cfg.MaxQueriesPerSecond > 0 {
		db.limiter = rate.NewLimiter(rate.Limit(cfg.MaxQueriesPerSecond), cfg.QueryBurst)
	}

	db.configureConnectionPool()

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return db, nil
}

// Close checkpoints the WAL and closes the connection pool.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}
	cancel()

	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return ErrDatabaseUnavailable
	}
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}

// initialize creates the schema and runs the optional catalog import.
func (db *DB) initialize() error {
	if err := db.createTables(); err != nil {
		return err
	}

	if db.cfg.CatalogCSV != "" {
		ctx, cancel := schemaContext()
		defer cancel()
		imported, err := db.ImportCatalogCSV(ctx, db.cfg.CatalogCSV)
		if err != nil {
			return err
		}
		if imported > 0 {
			logging.Info().Int64("rows", imported).Str("path", db.cfg.CatalogCSV).Msg("Imported title catalog")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint after schema initialization")
	}

	return nil
}

// wait blocks until the query budget admits one more query.
func (db *DB) wait(ctx context.Context) error {
	if db.limiter == nil {
		return nil
	}
	if err := db.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("query budget: %w", err)
	}
	return nil
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// CatalogBounds holds the observed range of each filterable column.
// Fields are nil when the catalog has no non-NULL value for the column.
type CatalogBounds struct {
	Titles    int64    `json:"titles"`
	MinVotes  *int64   `json:"min_votes"`
	MaxVotes  *int64   `json:"max_votes"`
	MinYear   *int     `json:"min_year"`
	MaxYear   *int     `json:"max_year"`
	MinRating *float64 `json:"min_rating"`
	MaxRating *float64 `json:"max_rating"`
}

// GetCatalogBounds returns min/max of votes, year and rating across the catalog.
func (db *DB) GetCatalogBounds(ctx context.Context) (*CatalogBounds, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	var (
		count                int64
		minVotes, maxVotes   sql.NullInt64
		minYear, maxYear     sql.NullInt64
		minRating, maxRating sql.NullFloat64
	)
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(votes), MAX(votes), MIN(year), MAX(year), MIN(rating), MAX(rating)
		FROM titles`).Scan(&count, &minVotes, &maxVotes, &minYear, &maxYear, &minRating, &maxRating)
	metrics.RecordDBQuery("catalog_bounds", time.Since(start), 1, err)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to query catalog bounds: %w", err))
	}

	return &CatalogBounds{
		Titles:    count,
		MinVotes:  nullInt64(minVotes),
		MaxVotes:  nullInt64(maxVotes),
		MinYear:   nullInt(minYear),
		MaxYear:   nullInt(maxYear),
		MinRating: nullFloat(minRating),
		MaxRating: nullFloat(maxRating),
	}, nil
}

// GetTitle returns one title by identifier, or an error wrapping recommend.ErrNotFound.
func (db *DB) GetTitle(ctx context.Context, id string) (*recommend.Title, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	if err := db.wait(ctx); err != nil {
		return nil, err
	}

	title, err := scanTitle(db.conn.QueryRowContext(ctx, referenceRowQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get_title", time.Since(start), 0, nil)
		return nil, fmt.Errorf("%w: tconst '%s' not found", recommend.ErrNotFound, id)
	}
	metrics.RecordDBQuery("get_title", time.Since(start), 1, err)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to get title %s: %w", id, err))
	}
	return &title, nil
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

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
	"sync"
	"time"

	"github.com/tomtom215/reelmatch/internal/database/query"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// TitleStore serves recommendation sessions from the titles table.
type TitleStore struct {
	db *DB
}

// NewTitleStore creates a store over db.
func NewTitleStore(db *DB) *TitleStore {
	return &TitleStore{db: db}
}

// Session pins one pooled connection for the duration of a request.
func (s *TitleStore) Session(ctx context.Context) (recommend.TitleSession, error) {
	conn, err := s.db.conn.Conn(ctx)
	if err != nil {
		return nil, classify(fmt.Errorf("acquire connection: %w", err))
	}
	metrics.DBSessionsOpen.Inc()
	return &titleSession{db: s.db, conn: conn}, nil
}

type titleSession struct {
	db        *DB
	conn      *sql.Conn
	closeOnce sync.Once
	closeErr  error
}

const referenceRowQuery = `
	SELECT tconst, year, genres, nconsts, rating, votes
	FROM titles
	WHERE tconst = ?`

// FetchReferenceRow returns the full row for id.
func (s *titleSession) FetchReferenceRow(ctx context.Context, id string) (recommend.Title, error) {
	start := time.Now()
	if err := s.db.wait(ctx); err != nil {
		return recommend.Title{}, err
	}

	row := s.conn.QueryRowContext(ctx, referenceRowQuery, id)
	title, err := scanTitle(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("reference_row", time.Since(start), 0, nil)
		return recommend.Title{}, fmt.Errorf("%w: tconst '%s' not found", recommend.ErrNotFound, id)
	}
	metrics.RecordDBQuery("reference_row", time.Since(start), 1, err)
	if err != nil {
		return recommend.Title{}, classify(fmt.Errorf("fetch reference row %s: %w", id, err))
	}
	return title, nil
}

// FetchOrderedByYearDistance orders admitted titles by |year - refYear|.
func (s *titleSession) FetchOrderedByYearDistance(ctx context.Context, pred recommend.Predicate, refYear *int) ([]string, error) {
	var ref interface{}
	if refYear != nil {
		ref = *refYear
	}
	return s.fetchOrderedByDistance(ctx, "year_distance", "year", pred, ref)
}

// FetchOrderedByRatingDistance orders admitted titles by |rating - refRating|.
func (s *titleSession) FetchOrderedByRatingDistance(ctx context.Context, pred recommend.Predicate, refRating *float64) ([]string, error) {
	var ref interface{}
	if refRating != nil {
		ref = *refRating
	}
	return s.fetchOrderedByDistance(ctx, "rating_distance", "rating", pred, ref)
}

func (s *titleSession) fetchOrderedByDistance(ctx context.Context, op, column string, pred recommend.Predicate, ref interface{}) ([]string, error) {
	start := time.Now()
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	whereClause, args := predicateWhere(pred)
	orderBy := "COALESCE(votes, 0) DESC, tconst ASC"
	if ref != nil {
		orderBy = fmt.Sprintf("ABS(%s - ?) ASC NULLS LAST, %s", column, orderBy)
		args = append(args, ref)
	}
	sqlQuery := fmt.Sprintf("SELECT tconst FROM titles %s ORDER BY %s", whereClause, orderBy)

	rows, err := s.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		metrics.RecordDBQuery(op, time.Since(start), 0, err)
		return nil, classify(fmt.Errorf("%s query: %w", op, err))
	}
	defer closeWithLog(rows, "rows")

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			metrics.RecordDBQuery(op, time.Since(start), len(ids), err)
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		ids = append(ids, id)
	}
	err = rows.Err()
	metrics.RecordDBQuery(op, time.Since(start), len(ids), err)
	if err != nil {
		return nil, classify(fmt.Errorf("%s rows: %w", op, err))
	}
	return ids, nil
}

// FetchCandidatesForSimilarity returns every admitted title with its tag lists.
func (s *titleSession) FetchCandidatesForSimilarity(ctx context.Context, pred recommend.Predicate) ([]recommend.Candidate, error) {
	const op = "similarity_candidates"
	start := time.Now()
	if err := s.db.wait(ctx); err != nil {
		return nil, err
	}

	whereClause, args := predicateWhere(pred)
	sqlQuery := fmt.Sprintf(`
		SELECT tconst, genres, nconsts, COALESCE(votes, 0)
		FROM titles
		%s
		ORDER BY tconst`, whereClause)

	rows, err := s.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		metrics.RecordDBQuery(op, time.Since(start), 0, err)
		return nil, classify(fmt.Errorf("%s query: %w", op, err))
	}
	defer closeWithLog(rows, "rows")

	var candidates []recommend.Candidate
	for rows.Next() {
		var c recommend.Candidate
		var genres, nconsts string
		if err := rows.Scan(&c.ID, &genres, &nconsts, &c.Votes); err != nil {
			metrics.RecordDBQuery(op, time.Since(start), len(candidates), err)
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		c.Genres = splitTags(genres)
		c.Cast = splitTags(nconsts)
		candidates = append(candidates, c)
	}
	err = rows.Err()
	metrics.RecordDBQuery(op, time.Since(start), len(candidates), err)
	if err != nil {
		return nil, classify(fmt.Errorf("%s rows: %w", op, err))
	}
	return candidates, nil
}

// Close returns the pinned connection to the pool. Safe to call more than once.
func (s *titleSession) Close() error {
	s.closeOnce.Do(func() {
		metrics.DBSessionsOpen.Dec()
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

// predicateWhere renders a Predicate as a parameterized WHERE clause, including
// the WHERE keyword. It admits exactly the rows recommend.Predicate.Admits
// accepts once the tag columns are parsed with splitTags.
func predicateWhere(pred recommend.Predicate) (string, []interface{}) {
	wb := query.NewWhereBuilder()
	wb.AddNonEmptyList("genres")
	wb.AddNonEmptyList("nconsts")
	wb.AddNotIn("tconst", pred.Excluded())

	b := pred.Bounds()
	if b.MinVotes != nil {
		wb.AddMin("COALESCE(votes, 0)", *b.MinVotes)
	}
	if b.MaxVotes != nil {
		wb.AddMax("COALESCE(votes, 0)", *b.MaxVotes)
	}
	if b.MinYear != nil {
		wb.AddMin("year", *b.MinYear)
	}
	if b.MaxYear != nil {
		wb.AddMax("year", *b.MaxYear)
	}
	if b.MinRating != nil {
		wb.AddMin("rating", *b.MinRating)
	}
	if b.MaxRating != nil {
		wb.AddMax("rating", *b.MaxRating)
	}
	return wb.BuildWithPrefix()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTitle(row rowScanner) (recommend.Title, error) {
	var (
		t       recommend.Title
		year    sql.NullInt64
		genres  sql.NullString
		nconsts sql.NullString
		rating  sql.NullFloat64
		votes   sql.NullInt64
	)
	if err := row.Scan(&t.ID, &year, &genres, &nconsts, &rating, &votes); err != nil {
		return recommend.Title{}, err
	}
	if year.Valid {
		y := int(year.Int64)
		t.Year = &y
	}
	if rating.Valid {
		r := rating.Float64
		t.Rating = &r
	}
	t.Genres = splitTags(genres.String)
	t.Cast = splitTags(nconsts.String)
	t.Votes = votes.Int64
	return t, nil
}

// classify marks connection-level failures with ErrDatabaseUnavailable.
func classify(err error) error {
	if err != nil && isConnectionError(err) && !errors.Is(err, ErrDatabaseUnavailable) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return err
}

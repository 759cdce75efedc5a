// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
)

// Note: This package has no dependencies on the database package. The
// TitleStore interface below is implemented by internal/database, which
// imports this package for the shared types.

// Title is a read-only snapshot of one catalog row.
type Title struct {
	// ID is the stable title identifier (tconst).
	ID string `json:"tconst"`

	// Year is the release year, nil when unknown.
	Year *int `json:"year,omitempty"`

	// Rating is the average rating on a 0-10 scale, nil when unknown.
	Rating *float64 `json:"rating,omitempty"`

	// Genres holds the genre tags in stored order.
	Genres []string `json:"genres"`

	// Cast holds the cast/crew identifiers (nconsts) in stored order.
	Cast []string `json:"nconsts"`

	// Votes is the number of votes, used as the popularity tie-break.
	Votes int64 `json:"votes"`
}

// Candidate is the projection of a title used by the similarity rankers.
type Candidate struct {
	ID     string
	Genres []string
	Cast   []string
	Votes  int64
}

// Request is the input to Engine.GetRecommendations.
type Request struct {
	// Filter restricts the candidate set.
	Filter Filter

	// Weights selects and weighs the active features.
	Weights WeightSet

	// Seeds are the reference titles, non-empty and distinct.
	Seeds []string

	// N is the maximum number of recommendations to return.
	N int
}

// Recommendation is one ranked result.
type Recommendation struct {
	// ID is the recommended title identifier.
	ID string `json:"tconst"`

	// Score is the composite (or seed-averaged composite) score. Lower is better.
	Score float64 `json:"score"`

	// Features lists the feature names ordered by contribution, best match first.
	Features []string `json:"features"`

	// Seeds lists the seed identifiers ordered by per-seed composite, closest seed first.
	Seeds []string `json:"seeds"`
}

// TitleStore hands out per-request sessions against the catalog.
type TitleStore interface {
	// Session acquires a store connection for the duration of one request.
	// The caller must Close the session on every exit path.
	Session(ctx context.Context) (TitleSession, error)
}

// TitleSession exposes the query shapes the engine consumes. All methods use
// the connection acquired by TitleStore.Session.
type TitleSession interface {
	// FetchReferenceRow returns the row for id, or an error wrapping ErrNotFound.
	FetchReferenceRow(ctx context.Context, id string) (Title, error)

	// FetchOrderedByYearDistance returns identifiers admitted by pred, ordered by
	// |year - refYear| ascending, then votes descending, then identifier ascending.
	// Rows with unknown distance sort last.
	FetchOrderedByYearDistance(ctx context.Context, pred Predicate, refYear *int) ([]string, error)

	// FetchOrderedByRatingDistance is the rating analogue of FetchOrderedByYearDistance.
	FetchOrderedByRatingDistance(ctx context.Context, pred Predicate, refRating *float64) ([]string, error)

	// FetchCandidatesForSimilarity returns every row admitted by pred.
	FetchCandidatesForSimilarity(ctx context.Context, pred Predicate) ([]Candidate, error)

	// Close releases the underlying connection.
	Close() error
}

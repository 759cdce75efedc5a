// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"

	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
)

// rankFunc builds the ranking of one feature for one seed.
type rankFunc func(ctx context.Context, r *featureRanker) ([]string, error)

// rankers dispatches each feature to its ranking strategy.
var rankers = map[Feature]rankFunc{
	FeatureYear:   rankByYear,
	FeatureRating: rankByRating,
	FeatureGenres: rankByGenres,
	FeatureCast:   rankByCast,
}

// featureRanker produces the per-feature rankings of a single seed. The
// similarity candidate set is pulled from the store at most once and shared
// by the genre and cast rankers.
type featureRanker struct {
	session    TitleSession
	pred       Predicate
	reference  Title
	candidates []Candidate
	pulled     bool
}

func newFeatureRanker(session TitleSession, pred Predicate, reference Title) *featureRanker {
	return &featureRanker{session: session, pred: pred, reference: reference}
}

// Rank builds the ranking for f.
func (r *featureRanker) Rank(ctx context.Context, f Feature) (FeatureRanking, error) {
	fn, ok := rankers[f]
	if !ok {
		return FeatureRanking{}, invalidArgument("no ranking strategy for feature %d", f)
	}
	ordered, err := fn(ctx, r)
	if err != nil {
		return FeatureRanking{}, err
	}
	return NewFeatureRanking(f, ordered), nil
}

func (r *featureRanker) similarityCandidates(ctx context.Context) ([]Candidate, error) {
	if r.pulled {
		return r.candidates, nil
	}
	candidates, err := r.session.FetchCandidatesForSimilarity(ctx, r.pred)
	if err != nil {
		return nil, internalError("fetch similarity candidates", err)
	}
	r.candidates, r.pulled = candidates, true
	return candidates, nil
}

func rankByYear(ctx context.Context, r *featureRanker) ([]string, error) {
	ids, err := r.session.FetchOrderedByYearDistance(ctx, r.pred, r.reference.Year)
	if err != nil {
		return nil, internalError("fetch year ranking", err)
	}
	return ids, nil
}

func rankByRating(ctx context.Context, r *featureRanker) ([]string, error) {
	ids, err := r.session.FetchOrderedByRatingDistance(ctx, r.pred, r.reference.Rating)
	if err != nil {
		return nil, internalError("fetch rating ranking", err)
	}
	return ids, nil
}

func rankByGenres(ctx context.Context, r *featureRanker) ([]string, error) {
	return rankBySimilarity(ctx, r, r.reference.Genres, func(c *Candidate) []string { return c.Genres })
}

func rankByCast(ctx context.Context, r *featureRanker) ([]string, error) {
	return rankBySimilarity(ctx, r, r.reference.Cast, func(c *Candidate) []string { return c.Cast })
}

func rankBySimilarity(ctx context.Context, r *featureRanker, reference []string, field func(*Candidate) []string) ([]string, error) {
	candidates, err := r.similarityCandidates(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]algorithms.Document, len(candidates))
	for i := range candidates {
		docs[i] = algorithms.Document{
			ID:    candidates[i].ID,
			Tags:  field(&candidates[i]),
			Votes: candidates[i].Votes,
		}
	}

	ordered, err := algorithms.RankBySimilarity(ctx, docs, reference)
	if err != nil {
		return nil, internalError("rank by similarity", err)
	}
	return ordered, nil
}

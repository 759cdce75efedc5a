// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendationsParams holds the parsed query of GET /api/v1/recommendations.
// The validate tags check shape; configured limits are checked separately.
type RecommendationsParams struct {
	Seeds []string `query:"tconst" validate:"min=1,dive,tconst"`
	N     int      `query:"n" validate:"gte=1"`

	MinVotes  *int64   `query:"min_votes" validate:"omitempty,gte=0"`
	MaxVotes  *int64   `query:"max_votes" validate:"omitempty,gte=0"`
	MinYear   *int     `query:"min_year" validate:"omitempty,gte=0"`
	MaxYear   *int     `query:"max_year" validate:"omitempty,gte=0"`
	MinRating *float64 `query:"min_rating" validate:"omitempty,gte=0,lte=10"`
	MaxRating *float64 `query:"max_rating" validate:"omitempty,gte=0,lte=10"`

	YearWeight    *int `query:"year_weight" validate:"omitempty,gte=0"`
	RatingWeight  *int `query:"rating_weight" validate:"omitempty,gte=0"`
	GenresWeight  *int `query:"genres_weight" validate:"omitempty,gte=0"`
	NconstsWeight *int `query:"nconsts_weight" validate:"omitempty,gte=0"`
}

// parseRecommendationsParams decodes and validates the query string.
func parseRecommendationsParams(q url.Values, limits config.RecommendConfig) (*RecommendationsParams, *models.APIError) {
	p := &RecommendationsParams{
		Seeds: dedupe(q["tconst"]),
		N:     limits.DefaultN,
	}

	var err error
	if v := q.Get("n"); v != "" {
		if p.N, err = strconv.Atoi(v); err != nil {
			return nil, parseError("n", "an integer")
		}
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"min_year", &p.MinYear},
		{"max_year", &p.MaxYear},
		{"year_weight", &p.YearWeight},
		{"rating_weight", &p.RatingWeight},
		{"genres_weight", &p.GenresWeight},
		{"nconsts_weight", &p.NconstsWeight},
	}
	for _, f := range ints {
		if *f.dst, err = optionalInt(q, f.name); err != nil {
			return nil, parseError(f.name, "an integer")
		}
	}

	if p.MinVotes, err = optionalInt64(q, "min_votes"); err != nil {
		return nil, parseError("min_votes", "an integer")
	}
	if p.MaxVotes, err = optionalInt64(q, "max_votes"); err != nil {
		return nil, parseError("max_votes", "an integer")
	}
	if p.MinRating, err = optionalFloat(q, "min_rating"); err != nil {
		return nil, parseError("min_rating", "a number")
	}
	if p.MaxRating, err = optionalFloat(q, "max_rating"); err != nil {
		return nil, parseError("max_rating", "a number")
	}

	if apiErr := validateRequest(p); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := p.checkLimits(limits); apiErr != nil {
		return nil, apiErr
	}
	return p, nil
}

// checkLimits enforces the configured upper bounds.
func (p *RecommendationsParams) checkLimits(limits config.RecommendConfig) *models.APIError {
	if limits.MaxSeeds > 0 && len(p.Seeds) > limits.MaxSeeds {
		return limitError("tconst", fmt.Sprintf("tconst must have between 1 and %d distinct values, got %d", limits.MaxSeeds, len(p.Seeds)))
	}
	if limits.MaxN > 0 && p.N > limits.MaxN {
		return limitError("n", fmt.Sprintf("n must be less than or equal to %d", limits.MaxN))
	}
	weights := []struct {
		name string
		v    *int
	}{
		{"year_weight", p.YearWeight},
		{"rating_weight", p.RatingWeight},
		{"genres_weight", p.GenresWeight},
		{"nconsts_weight", p.NconstsWeight},
	}
	for _, w := range weights {
		if limits.MaxWeight > 0 && w.v != nil && *w.v > limits.MaxWeight {
			return limitError(w.name, fmt.Sprintf("%s must be less than or equal to %d", w.name, limits.MaxWeight))
		}
	}
	return nil
}

// ToRequest builds the engine request. Filter and weight combination rules
// (min <= max, equal active weights) are enforced by the recommend package.
func (p *RecommendationsParams) ToRequest() (recommend.Request, error) {
	filter, err := recommend.NewFilter(recommend.FilterBounds{
		MinVotes:  p.MinVotes,
		MaxVotes:  p.MaxVotes,
		MinYear:   p.MinYear,
		MaxYear:   p.MaxYear,
		MinRating: p.MinRating,
		MaxRating: p.MaxRating,
	})
	if err != nil {
		return recommend.Request{}, err
	}

	weights := recommend.DefaultWeightSet()
	if p.YearWeight != nil || p.RatingWeight != nil || p.GenresWeight != nil || p.NconstsWeight != nil {
		weights, err = recommend.NewWeightSet(
			valueOrZero(p.YearWeight),
			valueOrZero(p.RatingWeight),
			valueOrZero(p.GenresWeight),
			valueOrZero(p.NconstsWeight),
		)
		if err != nil {
			return recommend.Request{}, err
		}
	}

	return recommend.Request{
		Filter:  filter,
		Weights: weights,
		Seeds:   p.Seeds,
		N:       p.N,
	}, nil
}

// dedupe drops repeated values, keeping first occurrences in order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func optionalInt(q url.Values, key string) (*int, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalInt64(q url.Values, key string) (*int64, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func parseError(field, kind string) *models.APIError {
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: fmt.Sprintf("%s must be %s", field, kind),
		Details: map[string]interface{}{"field": field},
	}
}

func limitError(field, message string) *models.APIError {
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

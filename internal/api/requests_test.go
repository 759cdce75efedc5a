// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testLimits() config.RecommendConfig {
	return config.RecommendConfig{
		DefaultN:  5,
		MaxN:      20,
		MaxSeeds:  5,
		MaxWeight: 400,
	}
}

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", raw, err)
	}
	return q
}

func TestParseRecommendationsParams_Valid(t *testing.T) {
	p, apiErr := parseRecommendationsParams(
		mustQuery(t, "tconst=tt0000002&tconst=tt0000001&tconst=tt0000002&min_rating=6.5&max_votes=1000&year_weight=100"),
		testLimits())
	if apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}

	if want := []string{"tt0000002", "tt0000001"}; !reflect.DeepEqual(p.Seeds, want) {
		t.Errorf("Seeds = %v, want %v (first occurrence order)", p.Seeds, want)
	}
	if p.N != 5 {
		t.Errorf("N = %d, want default 5", p.N)
	}
	if p.MinRating == nil || *p.MinRating != 6.5 {
		t.Errorf("MinRating = %v", p.MinRating)
	}
	if p.MaxVotes == nil || *p.MaxVotes != 1000 {
		t.Errorf("MaxVotes = %v", p.MaxVotes)
	}
	if p.YearWeight == nil || *p.YearWeight != 100 || p.RatingWeight != nil {
		t.Errorf("weights = %v / %v", p.YearWeight, p.RatingWeight)
	}
}

func TestParseRecommendationsParams_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"no seeds", "n=5", "tconst"},
		{"malformed seed", "tconst=nm0000001", "tconst[0]"},
		{"short seed", "tconst=tt01", "tconst[0]"},
		{"too many distinct seeds", "tconst=tt0000001&tconst=tt0000002&tconst=tt0000003&tconst=tt0000004&tconst=tt0000005&tconst=tt0000006", "tconst"},
		{"n not integer", "tconst=tt0000001&n=five", "n"},
		{"n zero", "tconst=tt0000001&n=0", "n"},
		{"n above max", "tconst=tt0000001&n=21", "n"},
		{"votes not integer", "tconst=tt0000001&min_votes=1.5", "min_votes"},
		{"negative votes", "tconst=tt0000001&max_votes=-1", "max_votes"},
		{"negative year", "tconst=tt0000001&min_year=-1", "min_year"},
		{"rating above ten", "tconst=tt0000001&max_rating=10.5", "max_rating"},
		{"rating not a number", "tconst=tt0000001&min_rating=good", "min_rating"},
		{"negative weight", "tconst=tt0000001&genres_weight=-100", "genres_weight"},
		{"weight above max", "tconst=tt0000001&nconsts_weight=500", "nconsts_weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, apiErr := parseRecommendationsParams(mustQuery(t, tt.query), testLimits())
			if apiErr == nil {
				t.Fatal("expected validation error")
			}
			if apiErr.Code != "VALIDATION_ERROR" {
				t.Errorf("Code = %s", apiErr.Code)
			}
			if got := apiErr.Details["field"]; got != tt.wantField {
				t.Errorf("field = %v, want %s (message %q)", got, tt.wantField, apiErr.Message)
			}
		})
	}
}

func TestParseRecommendationsParams_DuplicatesCountOnce(t *testing.T) {
	q := mustQuery(t, "tconst=tt0000001&tconst=tt0000001&tconst=tt0000001&tconst=tt0000001&tconst=tt0000001&tconst=tt0000001")
	p, apiErr := parseRecommendationsParams(q, testLimits())
	if apiErr != nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if len(p.Seeds) != 1 {
		t.Errorf("Seeds = %v, want one", p.Seeds)
	}
}

func TestRecommendationsParams_ToRequest(t *testing.T) {
	t.Run("all weights omitted uses defaults", func(t *testing.T) {
		p, _ := parseRecommendationsParams(mustQuery(t, "tconst=tt0000001"), testLimits())
		req, err := p.ToRequest()
		if err != nil {
			t.Fatalf("ToRequest() error = %v", err)
		}
		if req.Weights != recommend.DefaultWeightSet() {
			t.Errorf("Weights = %+v, want defaults", req.Weights)
		}
	})

	t.Run("omitted weights are zero when any is given", func(t *testing.T) {
		p, _ := parseRecommendationsParams(mustQuery(t, "tconst=tt0000001&genres_weight=100"), testLimits())
		req, err := p.ToRequest()
		if err != nil {
			t.Fatalf("ToRequest() error = %v", err)
		}
		if got := req.Weights.ActiveFeatures(); len(got) != 1 || got[0] != recommend.FeatureGenres {
			t.Errorf("ActiveFeatures() = %v, want [genres]", got)
		}
	})

	tests := []struct {
		name  string
		query string
	}{
		{"unequal weights", "tconst=tt0000001&year_weight=100&rating_weight=200"},
		{"all weights zero", "tconst=tt0000001&year_weight=0"},
		{"inverted votes", "tconst=tt0000001&min_votes=10&max_votes=5"},
		{"inverted rating", "tconst=tt0000001&min_rating=8&max_rating=7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, apiErr := parseRecommendationsParams(mustQuery(t, tt.query), testLimits())
			if apiErr != nil {
				t.Fatalf("unexpected parse error: %+v", apiErr)
			}
			if _, err := p.ToRequest(); !errors.Is(err, recommend.ErrInvalidArgument) {
				t.Errorf("ToRequest() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"reflect"
	"testing"
)

func TestNewFeatureRanking(t *testing.T) {
	r := NewFeatureRanking(FeatureYear, []string{"a", "b", "a", "c"})

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	tests := map[string]int{"a": 0, "b": 1, "c": 2}
	for id, want := range tests {
		if got, ok := r.Rank(id); !ok || got != want {
			t.Errorf("Rank(%q) = %d, %v; want %d", id, got, ok, want)
		}
	}
	if _, ok := r.Rank("z"); ok {
		t.Error("Rank(z) reported present")
	}
	if r.At(1) != "b" {
		t.Errorf("At(1) = %q, want b", r.At(1))
	}
}

func TestComposite(t *testing.T) {
	t.Run("two features", func(t *testing.T) {
		rankings := []FeatureRanking{
			NewFeatureRanking(FeatureGenres, []string{"b", "a", "c"}),
			NewFeatureRanking(FeatureYear, []string{"a", "b", "c"}),
		}
		got := Composite(rankings, mustWeights(t, 100, 0, 100, 0))

		want := []ScoredCandidate{
			{ID: "a", Score: 0.5, Features: []FeatureScore{{FeatureYear, 0}, {FeatureGenres, 0.01}}},
			{ID: "b", Score: 0.5, Features: []FeatureScore{{FeatureGenres, 0}, {FeatureYear, 0.01}}},
			{ID: "c", Score: 2, Features: []FeatureScore{{FeatureYear, 0.02}, {FeatureGenres, 0.02}}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Composite() = %+v\nwant %+v", got, want)
		}
	})

	t.Run("inner join drops partial candidates", func(t *testing.T) {
		rankings := []FeatureRanking{
			NewFeatureRanking(FeatureYear, []string{"a", "b", "c"}),
			NewFeatureRanking(FeatureRating, []string{"c", "a"}),
		}
		got := Composite(rankings, mustWeights(t, 100, 100, 0, 0))

		var gotIDs []string
		for _, c := range got {
			gotIDs = append(gotIDs, c.ID)
		}
		if want := []string{"a", "c"}; !reflect.DeepEqual(gotIDs, want) {
			t.Errorf("ids = %v, want %v", gotIDs, want)
		}
	})

	t.Run("single feature uses raw rank", func(t *testing.T) {
		got := Composite([]FeatureRanking{NewFeatureRanking(FeatureCast, []string{"x", "y", "z"})}, mustWeights(t, 0, 0, 0, 100))
		for i, c := range got {
			if c.Score != float64(i) {
				t.Errorf("%s score = %v, want %d", c.ID, c.Score, i)
			}
		}
	})

	t.Run("no rankings", func(t *testing.T) {
		if got := Composite(nil, DefaultWeightSet()); got != nil {
			t.Errorf("Composite(nil) = %v, want nil", got)
		}
	})
}

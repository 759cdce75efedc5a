// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"
)

// FeatureScore is one feature's contribution to a composite: the candidate's
// rank divided by the feature's weight.
type FeatureScore struct {
	Feature Feature
	Value   float64
}

// ScoredCandidate is one candidate of one seed after the feature merge.
type ScoredCandidate struct {
	ID       string
	Score    float64
	Features []FeatureScore // ascending by Value, canonical feature order on ties
}

// Composite merges the available rankings of one seed into composite scores.
//
// Only candidates present in every ranking survive (inner join). The score is
// sum(rank(f) * weight(f)) / (len(rankings) * 100); with a single ranking it is
// the raw rank. The result is sorted by ascending score, then ascending ID.
//
//nolint:gocritic // hugeParam: WeightSet is small and immutable
func Composite(rankings []FeatureRanking, weights WeightSet) []ScoredCandidate {
	if len(rankings) == 0 {
		return nil
	}

	ordered := make([]FeatureRanking, len(rankings))
	copy(ordered, rankings)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Feature() < ordered[j].Feature() })

	denominator := float64(len(ordered) * WeightUnit)
	base := ordered[0]
	out := make([]ScoredCandidate, 0, base.Len())

	for i := 0; i < base.Len(); i++ {
		id := base.At(i)
		var sum float64
		features := make([]FeatureScore, 0, len(ordered))
		joined := true

		for _, ranking := range ordered {
			rank, ok := ranking.Rank(id)
			if !ok {
				joined = false
				break
			}
			weight := weights.Weight(ranking.Feature())
			sum += float64(rank * weight)
			features = append(features, FeatureScore{
				Feature: ranking.Feature(),
				Value:   normalizedRank(rank, weight),
			})
		}
		if !joined {
			continue
		}

		score := sum / denominator
		if len(ordered) == 1 {
			rank, _ := ordered[0].Rank(id)
			score = float64(rank)
		}

		sort.SliceStable(features, func(a, b int) bool { return features[a].Value < features[b].Value })
		out = append(out, ScoredCandidate{ID: id, Score: score, Features: features})
	}

	sortByScore(out, func(c ScoredCandidate) (float64, string) { return c.Score, c.ID })
	return out
}

func normalizedRank(rank, weight int) float64 {
	if weight == 0 {
		return float64(rank)
	}
	return float64(rank) / float64(weight)
}

// sortByScore sorts ascending by score, breaking ties by ascending identifier.
func sortByScore[T any](items []T, key func(T) (float64, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		si, idi := key(items[i])
		sj, idj := key(items[j])
		if si != sj {
			return si < sj
		}
		return idi < idj
	})
}

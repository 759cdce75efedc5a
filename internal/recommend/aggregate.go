// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"
)

// SeedResult holds the composite scores computed for one seed.
type SeedResult struct {
	Seed       string
	Candidates []ScoredCandidate
}

// AggregatedCandidate is a candidate after merging every seed.
type AggregatedCandidate struct {
	ID       string
	Score    float64
	Features []FeatureScore // per-feature values averaged over the seeds that produced them
	Seeds    []string       // ascending by per-seed composite, seed order on ties
}

// Aggregate inner-joins the per-seed composites by candidate identifier and
// averages them arithmetically. The output is sorted by ascending averaged
// score, then ascending identifier, so it does not depend on the order in
// which seeds were computed, only on the order of the seeds slice.
func Aggregate(seeds []SeedResult) []AggregatedCandidate {
	if len(seeds) == 0 {
		return nil
	}

	lookup := make([]map[string]*ScoredCandidate, len(seeds))
	for i := range seeds {
		m := make(map[string]*ScoredCandidate, len(seeds[i].Candidates))
		for j := range seeds[i].Candidates {
			c := &seeds[i].Candidates[j]
			m[c.ID] = c
		}
		lookup[i] = m
	}

	out := make([]AggregatedCandidate, 0, len(seeds[0].Candidates))
	for _, base := range seeds[0].Candidates {
		perSeed := make([]*ScoredCandidate, len(seeds))
		joined := true
		for i := range seeds {
			c, ok := lookup[i][base.ID]
			if !ok {
				joined = false
				break
			}
			perSeed[i] = c
		}
		if !joined {
			continue
		}
		out = append(out, mergeSeeds(base.ID, seeds, perSeed))
	}

	sortByScore(out, func(c AggregatedCandidate) (float64, string) { return c.Score, c.ID })
	return out
}

func mergeSeeds(id string, seeds []SeedResult, perSeed []*ScoredCandidate) AggregatedCandidate {
	var total float64
	var featureSum [len(AllFeatures)]float64
	var featureCount [len(AllFeatures)]int

	for _, c := range perSeed {
		total += c.Score
		for _, fs := range c.Features {
			featureSum[fs.Feature] += fs.Value
			featureCount[fs.Feature]++
		}
	}

	features := make([]FeatureScore, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		if featureCount[f] > 0 {
			features = append(features, FeatureScore{Feature: f, Value: featureSum[f] / float64(featureCount[f])})
		}
	}
	sort.SliceStable(features, func(a, b int) bool { return features[a].Value < features[b].Value })

	order := make([]int, len(seeds))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return perSeed[order[a]].Score < perSeed[order[b]].Score })
	seedIDs := make([]string, len(order))
	for i, idx := range order {
		seedIDs[i] = seeds[idx].Seed
	}

	return AggregatedCandidate{
		ID:       id,
		Score:    total / float64(len(perSeed)),
		Features: features,
		Seeds:    seedIDs,
	}
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// FeatureRanking assigns every eligible candidate a zero-based rank for one
// feature. Rank 0 is the best match.
type FeatureRanking struct {
	feature Feature
	ids     []string
	rank    map[string]int
}

// NewFeatureRanking builds a ranking from identifiers ordered best-first.
// Repeated identifiers keep their first position.
func NewFeatureRanking(feature Feature, ordered []string) FeatureRanking {
	r := FeatureRanking{
		feature: feature,
		ids:     make([]string, 0, len(ordered)),
		rank:    make(map[string]int, len(ordered)),
	}
	for _, id := range ordered {
		if _, dup := r.rank[id]; dup {
			continue
		}
		r.rank[id] = len(r.ids)
		r.ids = append(r.ids, id)
	}
	return r
}

// Feature returns the feature this ranking was built for.
func (r FeatureRanking) Feature() Feature { return r.feature }

// Len returns the number of ranked candidates.
func (r FeatureRanking) Len() int { return len(r.ids) }

// At returns the identifier at the given rank.
func (r FeatureRanking) At(rank int) string { return r.ids[rank] }

// Rank returns the rank of id and whether it is present.
func (r FeatureRanking) Rank(id string) (int, bool) {
	pos, ok := r.rank[id]
	return pos, ok
}

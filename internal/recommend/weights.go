// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// WeightUnit is the weight every active feature carries.
const WeightUnit = 100

// WeightSet is a validated, immutable set of per-feature weights.
// A feature is active when its weight is greater than zero.
type WeightSet struct {
	weights [len(AllFeatures)]int
}

// NewWeightSet validates and returns a WeightSet.
func NewWeightSet(year, rating, genres, cast int) (WeightSet, error) {
	w := WeightSet{}
	w.weights[FeatureYear] = year
	w.weights[FeatureRating] = rating
	w.weights[FeatureGenres] = genres
	w.weights[FeatureCast] = cast
	if err := w.Validate(); err != nil {
		return WeightSet{}, err
	}
	return w, nil
}

// DefaultWeightSet weighs all four features equally.
func DefaultWeightSet() WeightSet {
	return WeightSet{weights: [len(AllFeatures)]int{WeightUnit, WeightUnit, WeightUnit, WeightUnit}}
}

// Validate enforces the weight contract: no negative weights, a positive-weight
// sum of at least 100, all positive weights equal, and a sum of exactly
// 100 per active feature. The zero value is invalid.
func (w WeightSet) Validate() error {
	sum, count, first := 0, 0, 0
	for _, f := range AllFeatures {
		v := w.weights[f]
		if v < 0 {
			return invalidArgument("weight for %s must be greater than or equal to 0, got %d", f, v)
		}
		if v == 0 {
			continue
		}
		if count == 0 {
			first = v
		}
		sum += v
		count++
	}

	if sum < WeightUnit {
		return invalidArgument("total sum of weights must be at least %d, got %d", WeightUnit, sum)
	}
	for _, f := range AllFeatures {
		if v := w.weights[f]; v > 0 && v != first {
			return invalidArgument("active weights must be equal, got %d and %d", first, v)
		}
	}
	if sum != count*WeightUnit {
		return invalidArgument("total sum of weights must be %d, got %d", count*WeightUnit, sum)
	}
	return nil
}

// Weight returns the weight configured for f.
func (w WeightSet) Weight(f Feature) int {
	if int(f) >= len(w.weights) {
		return 0
	}
	return w.weights[f]
}

// ActiveFeatures returns the features with a positive weight in canonical order.
func (w WeightSet) ActiveFeatures() []Feature {
	active := make([]Feature, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		if w.weights[f] > 0 {
			active = append(active, f)
		}
	}
	return active
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// Feature identifies one of the four ranking dimensions.
type Feature uint8

const (
	// FeatureYear ranks by release-year proximity.
	FeatureYear Feature = iota
	// FeatureRating ranks by rating proximity.
	FeatureRating
	// FeatureGenres ranks by genre cosine similarity.
	FeatureGenres
	// FeatureCast ranks by cast/crew cosine similarity.
	FeatureCast
)

// AllFeatures lists every feature in canonical order.
var AllFeatures = [...]Feature{FeatureYear, FeatureRating, FeatureGenres, FeatureCast}

var featureNames = [...]string{
	FeatureYear:   "year",
	FeatureRating: "rating",
	FeatureGenres: "genres",
	FeatureCast:   "nconsts",
}

// String returns the wire name of the feature.
func (f Feature) String() string {
	if int(f) < len(featureNames) {
		return featureNames[f]
	}
	return "unknown"
}

// ParseFeature converts a wire name into a Feature.
func ParseFeature(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if featureNames[f] == name {
			return f, nil
		}
	}
	return 0, invalidArgument("unknown feature %q", name)
}

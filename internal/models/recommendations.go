// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

// RecommendationItem is one ranked title in a recommendations response.
type RecommendationItem struct {
	Tconst string `json:"tconst"`

	// Score is the composite score; lower means closer to the seeds.
	Score float64 `json:"score"`

	// Features are the active features, best match first.
	Features []string `json:"features"`

	// Seeds are the seed titles, closest seed first.
	Seeds []string `json:"seeds"`
}

// RecommendationsResponse is the data payload of GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Seeds           []string             `json:"seeds"`
	Count           int                  `json:"count"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// TitleResponse is the data payload of GET /api/v1/titles/{tconst}.
type TitleResponse struct {
	Tconst string   `json:"tconst"`
	Year   *int     `json:"year"`
	Rating *float64 `json:"rating"`
	Genres []string `json:"genres"`
	Cast   []string `json:"nconsts"`
	Votes  int64    `json:"votes"`
}

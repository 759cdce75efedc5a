// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Recommendations handles GET /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, apiErr := parseRecommendationsParams(r.URL.Query(), h.limits)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	req, err := params.ToRequest()
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	recs, err := h.engine.GetRecommendations(r.Context(), req)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	items := make([]models.RecommendationItem, len(recs))
	for i, rec := range recs {
		items[i] = models.RecommendationItem{
			Tconst:   rec.ID,
			Score:    rec.Score,
			Features: rec.Features,
			Seeds:    rec.Seeds,
		}
	}

	respondSuccess(w, r, models.RecommendationsResponse{
		Seeds:           req.Seeds,
		Count:           len(items),
		Recommendations: items,
	}, start)
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// CatalogBounds handles GET /api/v1/catalog/bounds.
func (h *Handler) CatalogBounds(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	bounds, err := h.catalog.GetCatalogBounds(r.Context())
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, bounds, start)
}

// Title handles GET /api/v1/titles/{tconst}.
func (h *Handler) Title(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := chi.URLParam(r, "tconst")
	if !validation.IsTconst(id) {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation,
			fmt.Sprintf("tconst must start with '%s' and be %d to %d characters long",
				validation.TconstPrefix, validation.TconstMinLength, validation.TconstMaxLength), nil)
		return
	}

	title, err := h.catalog.GetTitle(r.Context(), id)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, models.TitleResponse{
		Tconst: title.ID,
		Year:   title.Year,
		Rating: title.Rating,
		Genres: title.Genres,
		Cast:   title.Cast,
		Votes:  title.Votes,
	}, start)
}

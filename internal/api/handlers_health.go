// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// readyPingTimeout bounds the catalog ping of the readiness probe.
const readyPingTimeout = 2 * time.Second

// HealthLive reports that the process is serving HTTP, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, models.HealthStatus{
		Status:  "alive",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	}, time.Now())
}

// HealthReady returns 200 when the catalog answers a ping and the store
// breaker is not open, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	health := models.HealthStatus{
		Status:   "ready",
		Database: "connected",
		Version:  h.version,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.breaker != nil {
		health.Breaker = h.breaker.State()
	}

	pingErr := h.catalog.Ping(ctx)
	if pingErr != nil {
		health.Database = "unavailable"
	}

	if pingErr != nil || health.Breaker == "open" {
		health.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   models.StatusError,
			Data:     health,
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    &models.APIError{Code: models.ErrCodeUnavailable, Message: "Service not ready"},
		})
		return
	}
	respondSuccess(w, r, health, start)
}

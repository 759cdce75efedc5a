// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/database"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender produces recommendations. *recommend.Engine implements it.
type Recommender interface {
	GetRecommendations(ctx context.Context, req recommend.Request) ([]recommend.Recommendation, error)
}

// Catalog serves catalog lookups. *database.DB implements it.
type Catalog interface {
	GetCatalogBounds(ctx context.Context) (*database.CatalogBounds, error)
	GetTitle(ctx context.Context, id string) (*recommend.Title, error)
	Ping(ctx context.Context) error
}

// BreakerReporter exposes the store circuit breaker state.
type BreakerReporter interface {
	State() string
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	engine    Recommender
	catalog   Catalog
	breaker   BreakerReporter // optional
	limits    config.RecommendConfig
	version   string
	startTime time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithBreaker reports the breaker state in readiness responses.
func WithBreaker(b BreakerReporter) HandlerOption {
	return func(h *Handler) { h.breaker = b }
}

// WithVersion sets the version reported by the health endpoints.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// NewHandler creates the API handler. limits supplies the request defaults
// and bounds (DefaultN, MaxN, MaxSeeds, MaxWeight).
func NewHandler(engine Recommender, catalog Catalog, limits config.RecommendConfig, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:    engine,
		catalog:   catalog,
		limits:    limits,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/database"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func setupDuckDBRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", Threads: 1})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	year := func(v int) *int { return &v }
	rating := func(v float64) *float64 { return &v }
	titles := []recommend.Title{
		{ID: "tt0000001", Year: year(2001), Rating: rating(7.0), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 100},
		{ID: "tt0000002", Year: year(2000), Rating: rating(7.1), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 50},
		{ID: "tt0000003", Year: year(2005), Rating: rating(5.0), Genres: []string{"Comedy"}, Cast: []string{"nm0000002"}, Votes: 500},
		{ID: "tt0000004", Year: year(1990), Rating: rating(8.0), Genres: []string{"Drama", "Comedy"}, Cast: []string{"nm0000001", "nm0000003"}, Votes: 10},
	}
	if err := db.InsertTitles(context.Background(), titles); err != nil {
		t.Fatalf("InsertTitles() error = %v", err)
	}

	breaker := database.NewBreakerStore(database.NewTitleStore(db), database.DefaultBreakerConfig())
	engine, err := recommend.NewEngine(breaker, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	handler := NewHandler(engine, db, testLimits(), WithBreaker(breaker))
	return NewRouter(handler, NewChiMiddleware(mwCfg)).Setup()
}

func decodeRecommendations(t *testing.T, resp models.APIResponse) models.RecommendationsResponse {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out models.RecommendationsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return out
}

func TestIntegration_RecommendationsOverDuckDB(t *testing.T) {
	h := setupDuckDBRouter(t)

	rec, resp := doGet(t, h, "/api/v1/recommendations?tconst=tt0000001&year_weight=100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	data := decodeRecommendations(t, resp)
	var ids []string
	for _, item := range data.Recommendations {
		ids = append(ids, item.Tconst)
	}
	want := []string{"tt0000002", "tt0000003", "tt0000004"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}

	rec, resp = doGet(t, h, "/api/v1/recommendations?tconst=tt0000001&tconst=tt9999999")
	if rec.Code != http.StatusNotFound || resp.Error.Code != models.ErrCodeNotFound {
		t.Errorf("unknown seed: status = %d, envelope %+v", rec.Code, resp)
	}

	rec, resp = doGet(t, h, "/api/v1/recommendations?tconst=tt0000001&min_votes=1000000")
	if rec.Code != http.StatusNotFound || resp.Error.Code != models.ErrCodeNoRecommendations {
		t.Errorf("empty filter: status = %d, envelope %+v", rec.Code, resp)
	}

	if rec, _ := doGet(t, h, "/api/v1/health/ready"); rec.Code != http.StatusOK {
		t.Errorf("ready status = %d", rec.Code)
	}
	if rec, _ := doGet(t, h, "/api/v1/titles/tt0000004"); rec.Code != http.StatusOK {
		t.Errorf("title status = %d", rec.Code)
	}
}

// Ensure the concrete types satisfy the handler interfaces.
var (
	_ Recommender     = (*recommend.Engine)(nil)
	_ Catalog         = (*database.DB)(nil)
	_ BreakerReporter = (*database.BreakerStore)(nil)
)

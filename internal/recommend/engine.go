// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Engine computes content-based recommendations against a TitleStore.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	store  TitleStore
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(store TitleStore, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, errors.New("title store is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		store:  store,
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// GetRecommendations returns up to req.N titles similar to the seeds, best first.
// A req.N above Config.MaxN is capped at MaxN rather than rejected.
//
// Errors wrap ErrInvalidArgument (checked before any store access),
// ErrNotFound (a seed is missing), ErrNoRecommendations (nothing survives the
// filter) or ErrInternal (store failure). No partial results are returned.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) GetRecommendations(ctx context.Context, req Request) (recs []Recommendation, err error) {
	start := time.Now()
	logger := e.requestLogger(ctx, req)

	defer func() {
		metrics.RecordRecommendation(Outcome(err), len(req.Seeds), time.Since(start))
		if err != nil {
			logger.Debug().Err(err).Str("outcome", Outcome(err)).Msg("recommendation failed")
		}
	}()

	n, err := e.validateRequest(req)
	if err != nil {
		return nil, err
	}

	features := req.Weights.ActiveFeatures()
	pred := req.Filter.Predicate(req.Seeds)

	references, err := e.fetchReferences(ctx, req.Seeds)
	if err != nil {
		return nil, err
	}

	seedResults, err := e.scoreSeeds(ctx, pred, references, features, req.Weights)
	if err != nil {
		return nil, err
	}

	merged := Aggregate(seedResults)
	if len(merged) == 0 {
		return nil, ErrNoRecommendations
	}
	if len(merged) > n {
		merged = merged[:n]
	}

	recs = make([]Recommendation, len(merged))
	for i, c := range merged {
		names := make([]string, len(c.Features))
		for j, fs := range c.Features {
			names[j] = fs.Feature.String()
		}
		recs[i] = Recommendation{ID: c.ID, Score: c.Score, Features: names, Seeds: c.Seeds}
	}

	logger.Debug().
		Int("returned", len(recs)).
		Int("features", len(features)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return recs, nil
}

// validateRequest checks the request and returns the effective result count.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) validateRequest(req Request) (int, error) {
	if err := req.Filter.Validate(); err != nil {
		return 0, err
	}
	if err := req.Weights.Validate(); err != nil {
		return 0, err
	}

	if len(req.Seeds) == 0 {
		return 0, invalidArgument("at least one seed identifier is required")
	}
	if e.config.MaxSeeds > 0 && len(req.Seeds) > e.config.MaxSeeds {
		return 0, invalidArgument("at most %d seed identifiers are allowed, got %d", e.config.MaxSeeds, len(req.Seeds))
	}
	seen := make(map[string]struct{}, len(req.Seeds))
	for _, seed := range req.Seeds {
		if strings.TrimSpace(seed) == "" {
			return 0, invalidArgument("seed identifiers must not be empty")
		}
		if _, dup := seen[seed]; dup {
			return 0, invalidArgument("duplicate seed identifier %q", seed)
		}
		seen[seed] = struct{}{}
	}

	if req.N < 1 {
		return 0, invalidArgument("n must be a positive integer, got %d", req.N)
	}
	if e.config.MaxN > 0 && req.N > e.config.MaxN {
		return e.config.MaxN, nil
	}
	return req.N, nil
}

// fetchReferences loads every seed's reference row before any ranking work,
// so a missing seed fails the request without partial computation.
func (e *Engine) fetchReferences(ctx context.Context, seeds []string) ([]Title, error) {
	session, err := e.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer e.closeSession(session)

	references := make([]Title, len(seeds))
	for i, seed := range seeds {
		ref, err := session.FetchReferenceRow(ctx, seed)
		if err != nil {
			return nil, internalError("fetch reference row", err)
		}
		references[i] = ref
	}
	return references, nil
}

// scoreSeeds computes the composite of every seed. Results are indexed by seed
// position, so completion order never affects the merge.
//
//nolint:gocritic // hugeParam: WeightSet is small and immutable
func (e *Engine) scoreSeeds(ctx context.Context, pred Predicate, references []Title, features []Feature, weights WeightSet) ([]SeedResult, error) {
	results := make([]SeedResult, len(references))

	if !e.config.ConcurrentSeeds || len(references) == 1 {
		session, err := e.openSession(ctx)
		if err != nil {
			return nil, err
		}
		defer e.closeSession(session)

		for i := range references {
			res, err := e.scoreSeed(ctx, session, pred, references[i], features, weights)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxConcurrency)
	for i := range references {
		g.Go(func() error {
			session, err := e.openSession(gctx)
			if err != nil {
				return err
			}
			defer e.closeSession(session)

			res, err := e.scoreSeed(gctx, session, pred, references[i], features, weights)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// scoreSeed builds the rankings of every active feature for one seed and merges them.
// Features whose ranking comes back empty are dropped.
//
//nolint:gocritic // hugeParam: Title and WeightSet are read-only snapshots
func (e *Engine) scoreSeed(ctx context.Context, session TitleSession, pred Predicate, reference Title, features []Feature, weights WeightSet) (SeedResult, error) {
	ranker := newFeatureRanker(session, pred, reference)

	rankings := make([]FeatureRanking, 0, len(features))
	for _, f := range features {
		ranking, err := ranker.Rank(ctx, f)
		if err != nil {
			return SeedResult{}, err
		}
		if ranking.Len() == 0 {
			metrics.RecommendFeaturesDropped.WithLabelValues(f.String()).Inc()
			e.logger.Debug().Str("seed", reference.ID).Str("feature", f.String()).Msg("feature dropped, empty ranking")
			continue
		}
		rankings = append(rankings, ranking)
	}
	if len(rankings) == 0 {
		return SeedResult{}, fmt.Errorf("%w (seed %s)", ErrNoRecommendations, reference.ID)
	}

	candidates := Composite(rankings, weights)
	metrics.RecommendCandidates.Observe(float64(len(candidates)))
	return SeedResult{Seed: reference.ID, Candidates: candidates}, nil
}

func (e *Engine) openSession(ctx context.Context) (TitleSession, error) {
	session, err := e.store.Session(ctx)
	if err != nil {
		return nil, internalError("acquire store session", err)
	}
	return session, nil
}

func (e *Engine) closeSession(session TitleSession) {
	if err := session.Close(); err != nil {
		e.logger.Warn().Err(err).Msg("failed to release store session")
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) requestLogger(ctx context.Context, req Request) zerolog.Logger {
	logCtx := e.logger.With().Strs("seeds", req.Seeds).Int("n", req.N)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	return logCtx.Logger()
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// BreakerConfig tunes the store circuit breaker.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32        // probes allowed in half-open state
	Interval     time.Duration // count reset period in closed state
	Timeout      time.Duration // open period before probing
	MinRequests  uint32        // requests needed before the ratio is evaluated
	FailureRatio float64
}

// DefaultBreakerConfig opens after 60% failures over at least 10 requests
// and probes again after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "catalog-store",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerStore wraps a recommend.TitleStore with a circuit breaker. Session
// acquisition and every session query count towards the breaker.
//
// Caller-side outcomes (missing titles, cancelled contexts) are not failures.
type BreakerStore struct {
	next recommend.TitleStore
	cb   *gobreaker.CircuitBreaker[interface{}]
	name string
}

// NewBreakerStore creates a breaker-protected store.
func NewBreakerStore(next recommend.TitleStore, cfg BreakerConfig) *BreakerStore {
	name := cfg.Name
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, recommend.ErrNotFound)
		},
		IsExcluded: isContextError,
	})

	return &BreakerStore{next: next, cb: cb, name: name}
}

// State returns the breaker state: "closed", "half-open" or "open".
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

// Session acquires a session from the wrapped store.
func (b *BreakerStore) Session(ctx context.Context) (recommend.TitleSession, error) {
	session, err := execute(b, func() (recommend.TitleSession, error) {
		return b.next.Session(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &breakerSession{inner: session, breaker: b}, nil
}

// execute runs fn through the breaker and records the outcome.
func execute[T any](b *BreakerStore, fn func() (T, error)) (T, error) {
	var zero T
	result, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return zero, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return zero, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()

	typed, ok := result.(T)
	if !ok && result != nil {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

type breakerSession struct {
	inner   recommend.TitleSession
	breaker *BreakerStore
}

func (s *breakerSession) FetchReferenceRow(ctx context.Context, id string) (recommend.Title, error) {
	return execute(s.breaker, func() (recommend.Title, error) {
		return s.inner.FetchReferenceRow(ctx, id)
	})
}

func (s *breakerSession) FetchOrderedByYearDistance(ctx context.Context, pred recommend.Predicate, refYear *int) ([]string, error) {
	return execute(s.breaker, func() ([]string, error) {
		return s.inner.FetchOrderedByYearDistance(ctx, pred, refYear)
	})
}

func (s *breakerSession) FetchOrderedByRatingDistance(ctx context.Context, pred recommend.Predicate, refRating *float64) ([]string, error) {
	return execute(s.breaker, func() ([]string, error) {
		return s.inner.FetchOrderedByRatingDistance(ctx, pred, refRating)
	})
}

func (s *breakerSession) FetchCandidatesForSimilarity(ctx context.Context, pred recommend.Predicate) ([]recommend.Candidate, error) {
	return execute(s.breaker, func() ([]recommend.Candidate, error) {
		return s.inner.FetchCandidatesForSimilarity(ctx, pred)
	})
}

// Close always reaches the wrapped session so connections are never leaked.
func (s *breakerSession) Close() error {
	return s.inner.Close()
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging and metrics
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

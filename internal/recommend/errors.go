// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Callers match them with errors.Is.
var (
	// ErrInvalidArgument indicates a Filter, WeightSet or Request violates its contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a seed identifier does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrNoRecommendations indicates a valid request with an empty result space.
	ErrNoRecommendations = errors.New("no recommendations found, try changing the filter or weight")

	// ErrInternal indicates a store or infrastructure failure.
	ErrInternal = errors.New("internal error")
)

// invalidArgument builds an ErrInvalidArgument with a formatted message.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// internalError wraps a store failure as ErrInternal, keeping the cause in the chain.
// Errors that already carry an engine sentinel are returned unchanged.
func internalError(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrNoRecommendations) || errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}

// Outcome maps an engine error to a short label for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNoRecommendations):
		return "no_recommendations"
	default:
		return "internal"
	}
}

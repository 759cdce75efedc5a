// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"slices"
)

// FilterBounds is the raw input to NewFilter. A nil bound is absent.
type FilterBounds struct {
	MinVotes  *int64   `json:"min_votes,omitempty"`
	MaxVotes  *int64   `json:"max_votes,omitempty"`
	MinYear   *int     `json:"min_year,omitempty"`
	MaxYear   *int     `json:"max_year,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
	MaxRating *float64 `json:"max_rating,omitempty"`
}

// Filter is a validated, immutable set of inclusion bounds over votes, year and rating.
// The zero value applies no bounds.
type Filter struct {
	bounds FilterBounds
}

// NewFilter validates b and returns a Filter holding its own copy of the bounds.
//
//nolint:gocritic // hugeParam: bounds are copied on purpose
func NewFilter(b FilterBounds) (Filter, error) {
	f := Filter{bounds: cloneBounds(b)}
	if err := f.Validate(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// Validate checks that every present bound is non-negative and that each
// present minimum does not exceed its present maximum.
func (f Filter) Validate() error {
	b := f.bounds
	if err := checkRange("votes", b.MinVotes, b.MaxVotes); err != nil {
		return err
	}
	if err := checkRange("year", b.MinYear, b.MaxYear); err != nil {
		return err
	}
	if b.MinRating != nil && math.IsNaN(*b.MinRating) {
		return invalidArgument("min_rating must be a number")
	}
	if b.MaxRating != nil && math.IsNaN(*b.MaxRating) {
		return invalidArgument("max_rating must be a number")
	}
	return checkRange("rating", b.MinRating, b.MaxRating)
}

// Bounds returns a copy of the filter's bounds.
func (f Filter) Bounds() FilterBounds {
	return cloneBounds(f.bounds)
}

// Predicate builds the immutable predicate used by every store query of one
// request: the filter bounds, the mandatory non-empty genre and cast/crew
// clauses, and the exclusion of the given identifiers.
func (f Filter) Predicate(exclude []string) Predicate {
	return Predicate{
		bounds:  cloneBounds(f.bounds),
		exclude: slices.Clone(exclude),
	}
}

// Predicate is the store-facing form of a Filter plus the runtime exclusion list.
// Genres and cast/crew are always required to be non-empty.
type Predicate struct {
	bounds  FilterBounds
	exclude []string
}

// Bounds returns a copy of the predicate's bounds.
func (p Predicate) Bounds() FilterBounds {
	return cloneBounds(p.bounds)
}

// Excluded returns a copy of the excluded identifiers.
func (p Predicate) Excluded() []string {
	return slices.Clone(p.exclude)
}

// Admits reports whether t satisfies the predicate. Stores that evaluate
// predicates in memory use this; SQL stores translate the same rules.
//
//nolint:gocritic // hugeParam: Title is a read-only snapshot
func (p Predicate) Admits(t Title) bool {
	if len(t.Genres) == 0 || len(t.Cast) == 0 {
		return false
	}
	if slices.Contains(p.exclude, t.ID) {
		return false
	}
	b := p.bounds
	if !inRange(t.Votes, b.MinVotes, b.MaxVotes) {
		return false
	}
	if b.MinYear != nil || b.MaxYear != nil {
		if t.Year == nil || !inRange(*t.Year, b.MinYear, b.MaxYear) {
			return false
		}
	}
	if b.MinRating != nil || b.MaxRating != nil {
		if t.Rating == nil || !inRange(*t.Rating, b.MinRating, b.MaxRating) {
			return false
		}
	}
	return true
}

type ordered interface {
	~int | ~int64 | ~float64
}

func checkRange[T ordered](name string, minVal, maxVal *T) error {
	if minVal != nil && *minVal < 0 {
		return invalidArgument("min_%s must be greater than or equal to 0", name)
	}
	if maxVal != nil && *maxVal < 0 {
		return invalidArgument("max_%s must be greater than or equal to 0", name)
	}
	if minVal != nil && maxVal != nil && *minVal > *maxVal {
		return invalidArgument("min_%s must be less than or equal to max_%s", name, name)
	}
	return nil
}

func inRange[T ordered](v T, minVal, maxVal *T) bool {
	if minVal != nil && v < *minVal {
		return false
	}
	if maxVal != nil && v > *maxVal {
		return false
	}
	return true
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

//nolint:gocritic // hugeParam: bounds are copied on purpose
func cloneBounds(b FilterBounds) FilterBounds {
	return FilterBounds{
		MinVotes:  clonePtr(b.MinVotes),
		MaxVotes:  clonePtr(b.MaxVotes),
		MinYear:   clonePtr(b.MinYear),
		MaxYear:   clonePtr(b.MaxYear),
		MinRating: clonePtr(b.MinRating),
		MaxRating: clonePtr(b.MaxRating),
	}
}

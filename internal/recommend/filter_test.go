// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name    string
		bounds  FilterBounds
		wantErr bool
	}{
		{name: "empty", bounds: FilterBounds{}},
		{name: "all bounds", bounds: FilterBounds{
			MinVotes: int64Ptr(10), MaxVotes: int64Ptr(100),
			MinYear: intPtr(1990), MaxYear: intPtr(2000),
			MinRating: float64Ptr(5), MaxRating: float64Ptr(9),
		}},
		{name: "equal bounds", bounds: FilterBounds{MinYear: intPtr(2000), MaxYear: intPtr(2000)}},
		{name: "zero bounds", bounds: FilterBounds{MinVotes: int64Ptr(0), MaxRating: float64Ptr(0)}},
		{name: "negative min votes", bounds: FilterBounds{MinVotes: int64Ptr(-1)}, wantErr: true},
		{name: "negative max year", bounds: FilterBounds{MaxYear: intPtr(-5)}, wantErr: true},
		{name: "inverted votes", bounds: FilterBounds{MinVotes: int64Ptr(100), MaxVotes: int64Ptr(10)}, wantErr: true},
		{name: "inverted year", bounds: FilterBounds{MinYear: intPtr(2001), MaxYear: intPtr(2000)}, wantErr: true},
		{name: "inverted rating", bounds: FilterBounds{MinRating: float64Ptr(8), MaxRating: float64Ptr(7.5)}, wantErr: true},
		{name: "nan rating", bounds: FilterBounds{MinRating: float64Ptr(math.NaN())}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFilter(tt.bounds)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewFilter() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewFilter() unexpected error = %v", err)
			}
		})
	}
}

func TestFilterCopiesBounds(t *testing.T) {
	minYear := 1990
	f, err := NewFilter(FilterBounds{MinYear: &minYear})
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}
	minYear = 2050

	if got := *f.Bounds().MinYear; got != 1990 {
		t.Errorf("MinYear = %d after caller mutation, want 1990", got)
	}
}

func TestPredicateAdmits(t *testing.T) {
	base := Title{ID: "tt0000010", Year: intPtr(2000), Rating: float64Ptr(7.5), Genres: []string{"Drama"}, Cast: []string{"nm1"}, Votes: 500}

	tests := []struct {
		name    string
		bounds  FilterBounds
		exclude []string
		mutate  func(*Title)
		want    bool
	}{
		{name: "no bounds", want: true},
		{name: "excluded seed", exclude: []string{"tt0000010"}, want: false},
		{name: "missing genres", mutate: func(t *Title) { t.Genres = nil }, want: false},
		{name: "missing cast", mutate: func(t *Title) { t.Cast = nil }, want: false},
		{name: "votes inclusive", bounds: FilterBounds{MinVotes: int64Ptr(500), MaxVotes: int64Ptr(500)}, want: true},
		{name: "votes below", bounds: FilterBounds{MinVotes: int64Ptr(501)}, want: false},
		{name: "year above", bounds: FilterBounds{MaxYear: intPtr(1999)}, want: false},
		{name: "zero max year applies", bounds: FilterBounds{MaxYear: intPtr(0)}, want: false},
		{name: "rating in range", bounds: FilterBounds{MinRating: float64Ptr(7), MaxRating: float64Ptr(8)}, want: true},
		{name: "unknown year fails year bound", bounds: FilterBounds{MinYear: intPtr(1900)}, mutate: func(t *Title) { t.Year = nil }, want: false},
		{name: "unknown year without bound", mutate: func(t *Title) { t.Year = nil }, want: true},
		{name: "unknown rating fails rating bound", bounds: FilterBounds{MaxRating: float64Ptr(10)}, mutate: func(t *Title) { t.Rating = nil }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.bounds)
			if err != nil {
				t.Fatalf("NewFilter() error = %v", err)
			}
			title := base
			if tt.mutate != nil {
				tt.mutate(&title)
			}
			if got := f.Predicate(tt.exclude).Admits(title); got != tt.want {
				t.Errorf("Admits() = %v, want %v", got, tt.want)
			}
		})
	}
}

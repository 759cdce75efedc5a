// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// mockTitleStore implements TitleStore over an in-memory title slice,
// ordering rows the same way the DuckDB store does.
type mockTitleStore struct {
	titles []Title

	sessionErr error
	rankErr    error

	opened       int32
	closed       int32
	rankingCalls int32

	mu       sync.Mutex
	refCalls []string
}

func (m *mockTitleStore) Session(ctx context.Context) (TitleSession, error) {
	if m.sessionErr != nil {
		return nil, m.sessionErr
	}
	atomic.AddInt32(&m.opened, 1)
	return &mockSession{store: m}, nil
}

func (m *mockTitleStore) balanced() bool {
	return atomic.LoadInt32(&m.opened) == atomic.LoadInt32(&m.closed)
}

type mockSession struct {
	store  *mockTitleStore
	closed bool
}

func (s *mockSession) FetchReferenceRow(ctx context.Context, id string) (Title, error) {
	s.store.mu.Lock()
	s.store.refCalls = append(s.store.refCalls, id)
	s.store.mu.Unlock()

	for _, t := range s.store.titles {
		if t.ID == id {
			return t, nil
		}
	}
	return Title{}, fmt.Errorf("%w: tconst '%s' not found", ErrNotFound, id)
}

func (s *mockSession) FetchOrderedByYearDistance(ctx context.Context, pred Predicate, refYear *int) ([]string, error) {
	return s.orderedByDistance(pred, func(t Title) (float64, bool) {
		if refYear == nil || t.Year == nil {
			return 0, false
		}
		return math.Abs(float64(*t.Year - *refYear)), true
	})
}

func (s *mockSession) FetchOrderedByRatingDistance(ctx context.Context, pred Predicate, refRating *float64) ([]string, error) {
	return s.orderedByDistance(pred, func(t Title) (float64, bool) {
		if refRating == nil || t.Rating == nil {
			return 0, false
		}
		return math.Abs(*t.Rating - *refRating), true
	})
}

func (s *mockSession) FetchCandidatesForSimilarity(ctx context.Context, pred Predicate) ([]Candidate, error) {
	atomic.AddInt32(&s.store.rankingCalls, 1)
	if s.store.rankErr != nil {
		return nil, s.store.rankErr
	}
	var out []Candidate
	for _, t := range s.store.titles {
		if pred.Admits(t) {
			out = append(out, Candidate{ID: t.ID, Genres: t.Genres, Cast: t.Cast, Votes: t.Votes})
		}
	}
	return out, nil
}

func (s *mockSession) Close() error {
	if !s.closed {
		s.closed = true
		atomic.AddInt32(&s.store.closed, 1)
	}
	return nil
}

func (s *mockSession) orderedByDistance(pred Predicate, distance func(Title) (float64, bool)) ([]string, error) {
	atomic.AddInt32(&s.store.rankingCalls, 1)
	if s.store.rankErr != nil {
		return nil, s.store.rankErr
	}

	type row struct {
		title Title
		dist  float64
		known bool
	}
	var rows []row
	for _, t := range s.store.titles {
		if !pred.Admits(t) {
			continue
		}
		d, ok := distance(t)
		rows = append(rows, row{title: t, dist: d, known: ok})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.known != b.known {
			return a.known
		}
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.title.Votes != b.title.Votes {
			return a.title.Votes > b.title.Votes
		}
		return a.title.ID < b.title.ID
	})

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.title.ID
	}
	return ids, nil
}

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

// sampleTitles is a small catalog shared by the engine tests.
func sampleTitles() []Title {
	return []Title{
		{ID: "tt0000001", Year: intPtr(2001), Rating: float64Ptr(7.0), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 100},
		{ID: "tt0000002", Year: intPtr(2000), Rating: float64Ptr(7.1), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 50},
		{ID: "tt0000003", Year: intPtr(2005), Rating: float64Ptr(5.0), Genres: []string{"Comedy"}, Cast: []string{"nm0000002"}, Votes: 500},
		{ID: "tt0000004", Year: intPtr(1990), Rating: float64Ptr(8.0), Genres: []string{"Drama", "Comedy"}, Cast: []string{"nm0000001", "nm0000003"}, Votes: 10},
	}
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the content-based recommendation engine.
//
// # Pipeline
//
// A request carries a Filter, a WeightSet, one or more seed titles and a
// result count. For every seed the engine:
//
//  1. Looks up the seed's reference row (year, rating, genres, cast/crew).
//  2. Builds one FeatureRanking per active feature (weight > 0):
//     year and rating are ordered by absolute distance inside the store,
//     genres and cast are ordered by cosine similarity of token-count
//     vectors computed in-process over one shared candidate pull.
//  3. Merges the rankings into a composite score: the weighted average of
//     the candidate's rank positions (inner join across features).
//
// With several seeds the per-seed composites are inner-joined by title and
// averaged. Lower scores are better matches. Every result carries the
// feature names ordered best-first, so callers can explain each match.
//
// # Determinism
//
// Ties on distance or similarity are broken by descending vote count and
// then by ascending title identifier. Per-seed work may run concurrently;
// results are always joined in seed order.
//
// # Usage
//
//	filter, err := recommend.NewFilter(recommend.FilterBounds{MinVotes: ptr(int64(1000))})
//	weights, err := recommend.NewWeightSet(100, 0, 100, 100)
//
//	engine, err := recommend.NewEngine(store, recommend.DefaultConfig(), logger)
//	recs, err := engine.GetRecommendations(ctx, recommend.Request{
//	    Filter:  filter,
//	    Weights: weights,
//	    Seeds:   []string{"tt0133093"},
//	    N:       5,
//	})
//
// # Thread Safety
//
// The engine holds no per-request mutable state and is safe for concurrent
// use. Each request acquires its own store session and releases it on every
// exit path.
package recommend

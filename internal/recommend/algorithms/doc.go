// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package algorithms implements the in-process similarity primitives used by
// the recommendation engine.
//
// # Bag-of-tokens model
//
// Each document (a title's genre tags or cast/crew identifiers) is split into
// tokens with the pattern [\w'-]+ (Unicode letters, digits, underscore,
// apostrophe and hyphen). Tokens are case-sensitive. A CountVectorizer fitted
// on the candidate documents turns every document into a sparse term-count
// vector; the reference document is transformed with the same vocabulary, so
// reference tokens that no candidate uses are ignored.
//
// # Ranking
//
// RankBySimilarity orders candidates by descending cosine similarity to the
// reference, then by descending votes, then by ascending identifier:
//
//	order, err := algorithms.RankBySimilarity(ctx, docs, []string{"Drama", "Romance"})
//
// A reference with no usable tokens has similarity 0 to every candidate, so
// the order falls back to votes.
//
// # Thread Safety
//
// All functions are pure. A fitted CountVectorizer is read-only and safe for
// concurrent Transform calls.
package algorithms

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"context"
	"sort"
)

// cancelCheckInterval is how many documents are scored between context checks.
const cancelCheckInterval = 4096

// Document is one candidate for content similarity ranking.
type Document struct {
	ID    string
	Tags  []string
	Votes int64
}

// scored pairs a document with its similarity to the reference.
type scored struct {
	id    string
	votes int64
	sim   float32
}

// RankBySimilarity orders docs by descending cosine similarity between their
// tag vectors and the reference vector, then by descending votes, then by
// ascending ID. The vocabulary is fitted on docs only.
//
// Similarities are compared at float32 precision so that values differing
// only by floating-point noise tie and fall through to the vote count.
func RankBySimilarity(ctx context.Context, docs []Document, reference []string) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	corpus := make([][]string, len(docs))
	for i := range docs {
		corpus[i] = docs[i].Tags
	}
	vectorizer := FitCountVectorizer(corpus)
	refVec := vectorizer.Transform(reference)

	results := make([]scored, len(docs))
	for i := range docs {
		if i%cancelCheckInterval == 0 && ContextCancelled(ctx) {
			return nil, ctx.Err()
		}
		results[i] = scored{
			id:    docs[i].ID,
			votes: docs[i].Votes,
			sim:   float32(CosineSimilarity(refVec, vectorizer.Transform(docs[i].Tags))),
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].sim != results[j].sim {
			return results[i].sim > results[j].sim
		}
		if results[i].votes != results[j].votes {
			return results[i].votes > results[j].votes
		}
		return results[i].id < results[j].id
	})

	order := make([]string, len(results))
	for i, r := range results {
		order[i] = r.id
	}
	return order, nil
}

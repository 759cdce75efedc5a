// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package algorithms

import (
	"regexp"
	"sort"
)

// tokenPattern matches runs of Unicode word characters, apostrophes and hyphens.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_'-]+`)

// Tokenize splits every tag into tokens and returns them in order of appearance.
func Tokenize(tags []string) []string {
	var tokens []string
	for _, tag := range tags {
		tokens = append(tokens, tokenPattern.FindAllString(tag, -1)...)
	}
	return tokens
}

// SparseVector maps a vocabulary index to a term count.
type SparseVector map[int]float64

// CountVectorizer converts token lists to term-count vectors over a fixed vocabulary.
type CountVectorizer struct {
	vocabulary map[string]int
}

// FitCountVectorizer builds a vocabulary from the given documents. Indices are
// assigned in lexical token order so that the vocabulary is independent of
// document order.
func FitCountVectorizer(docs [][]string) *CountVectorizer {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, token := range Tokenize(doc) {
			seen[token] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}
	return &CountVectorizer{vocabulary: vocabulary}
}

// VocabularySize returns the number of distinct terms learned by Fit.
func (v *CountVectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Transform returns the term-count vector of doc. Tokens outside the
// vocabulary are dropped.
func (v *CountVectorizer) Transform(doc []string) SparseVector {
	vec := make(SparseVector)
	for _, token := range Tokenize(doc) {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx]++
		}
	}
	return vec
}

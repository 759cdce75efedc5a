// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package query

import (
	"fmt"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddMin("votes", 1000)
//	wb.AddNotIn("tconst", []string{"tt0111161"})
//	whereClause, args := wb.BuildWithPrefix()
//	// WHERE votes >= ? AND tconst NOT IN (?)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by helper methods.
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddMin adds "column >= ?". The column name is trusted; only the value is bound.
func (wb *WhereBuilder) AddMin(column string, value interface{}) *WhereBuilder {
	return wb.AddClause(column+" >= ?", value)
}

// AddMax adds "column <= ?".
func (wb *WhereBuilder) AddMax(column string, value interface{}) *WhereBuilder {
	return wb.AddClause(column+" <= ?", value)
}

// AddNotIn adds "column NOT IN (?, ?, ...)". An empty slice is skipped.
func (wb *WhereBuilder) AddNotIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = "?"
		wb.args = append(wb.args, v)
	}
	wb.clauses = append(wb.clauses, fmt.Sprintf("%s NOT IN (%s)", column, strings.Join(placeholders, ", ")))
	return wb
}

// ListBlank is the set of characters trimmed from each element of a
// comma-separated list column. It matches the RE2 \s class DuckDB uses.
const ListBlank = " \t\n\f\r"

// AddNonEmptyList requires a comma-separated list column to hold at least one
// element that is not blank after trimming ListBlank. A value made only of
// commas and whitespace, such as ", ,", is rejected.
func (wb *WhereBuilder) AddNonEmptyList(column string) *WhereBuilder {
	return wb.AddClause(fmt.Sprintf(`%s IS NOT NULL AND regexp_matches(%s, '[^,\t\n\f\r ]')`, column, column))
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

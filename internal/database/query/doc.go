// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package query provides SQL WHERE-clause building for the database package.
//
// WhereBuilder accumulates conditions with ? placeholders and returns the
// joined clause together with its bind arguments:
//
//	wb := query.NewWhereBuilder()
//	wb.AddNonEmptyList("genres")
//	wb.AddMin("year", 1990).AddMax("year", 1999)
//	whereClause, args := wb.BuildWithPrefix()
//	// WHERE genres IS NOT NULL AND regexp_matches(genres, '[^,\t\n\f\r ]')
//	//   AND year >= ? AND year <= ?
//
// Column names are always supplied by the caller's code, never by user input.
// WhereBuilder instances are not safe for concurrent use.
package query

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines the JSON shapes of the HTTP API.

Every /api/v1 endpoint wraps its payload in APIResponse. On failure the
Error field carries a machine-readable code:

  - VALIDATION_ERROR: malformed or out-of-range query parameters (400)
  - NOT_FOUND: a seed or title identifier does not exist (404)
  - NO_RECOMMENDATIONS: the filter and weights admit no candidate (404)
  - SERVICE_UNAVAILABLE: the catalog store is unreachable (503)
  - INTERNAL_ERROR: anything else (500)
*/
package models

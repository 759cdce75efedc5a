// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package middleware provides the HTTP middleware installed by the API router:
// request IDs propagated into the logging context, Prometheus request
// metrics labelled by chi route pattern, and a zerolog access log.
package middleware

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api exposes the recommendation engine and the title catalog over HTTP
using the Chi router.

Routes:

	GET /api/v1/recommendations      ranked titles similar to one or more seeds
	GET /api/v1/catalog/bounds       observed min/max of votes, year and rating
	GET /api/v1/titles/{tconst}      one catalog row
	GET /api/v1/health/live          liveness probe
	GET /api/v1/health/ready         readiness probe (pings the catalog)
	GET /metrics                     Prometheus exposition

Recommendation query parameters:

	tconst          seed title, repeatable (duplicates are dropped)
	n               number of results (default from config)
	min_votes, max_votes, min_year, max_year, min_rating, max_rating
	year_weight, rating_weight, genres_weight, nconsts_weight

When no weight parameter is present every feature is weighted equally.
When at least one is present, omitted weights are zero.

Every /api/v1 response is a models.APIResponse. Engine errors map to
status codes as follows:

	recommend.ErrInvalidArgument     400 VALIDATION_ERROR
	recommend.ErrNotFound            404 NOT_FOUND
	recommend.ErrNoRecommendations   404 NO_RECOMMENDATIONS
	database.ErrCircuitOpen          503 SERVICE_UNAVAILABLE
	database.ErrDatabaseUnavailable  503 SERVICE_UNAVAILABLE
	anything else                    500 INTERNAL_ERROR

Middleware stack, outermost first: request ID, RealIP, Recoverer, CORS,
then on /api/v1 the IP rate limiter, Prometheus metrics and the access log.
*/
package api

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: binds the API listener and serves with graceful shutdown
//   - CatalogMonitorService: periodic catalog probe feeding Prometheus gauges
package services

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the long-lived services of ReelMatch under suture v4.

The tree has two layers so that a failing component is restarted in
isolation:

	reelmatch
	├── data-layer
	│   └── CatalogMonitorService
	└── api-layer
	    └── HTTPServerService

Services that return an error are restarted with suture's failure
decay and backoff. Cancelling the context passed to Serve stops every
service, each within ShutdownTimeout; UnstoppedServiceReport names any
that did not.

Supervisor events (restarts, backoff, panics) are logged through zerolog
by way of the slog bridge in internal/logging and sutureslog.
*/
package supervisor

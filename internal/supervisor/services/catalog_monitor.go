// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// CatalogCounter is the subset of *database.DB the monitor probes.
type CatalogCounter interface {
	CountTitles(ctx context.Context) (int64, error)
}

// CatalogMonitorService periodically counts the catalog and publishes the
// result as reelmatch_catalog_titles and reelmatch_catalog_up.
//
// Probe failures are logged and reflected in the gauge; they never stop the
// service, so the supervisor does not restart it on a flapping database.
type CatalogMonitorService struct {
	catalog  CatalogCounter
	interval time.Duration
	timeout  time.Duration
}

// NewCatalogMonitorService creates the monitor. A non-positive interval defaults to one minute.
func NewCatalogMonitorService(catalog CatalogCounter, interval time.Duration) *CatalogMonitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	timeout := 5 * time.Second
	if interval < timeout {
		timeout = interval
	}
	return &CatalogMonitorService{catalog: catalog, interval: interval, timeout: timeout}
}

// Serve implements suture.Service.
func (c *CatalogMonitorService) Serve(ctx context.Context) error {
	c.probe(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.probe(ctx)
		}
	}
}

func (c *CatalogMonitorService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	n, err := c.catalog.CountTitles(probeCtx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Msg("Catalog probe failed")
		}
		metrics.CatalogUp.Set(0)
		return
	}
	metrics.CatalogUp.Set(1)
	metrics.CatalogTitles.Set(float64(n))
}

func (c *CatalogMonitorService) String() string {
	return "catalog-monitor"
}

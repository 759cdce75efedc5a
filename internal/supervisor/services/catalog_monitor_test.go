// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

type fakeCounter struct {
	n     atomic.Int64
	err   atomic.Value // error
	calls atomic.Int32
}

func (f *fakeCounter) CountTitles(context.Context) (int64, error) {
	f.calls.Add(1)
	if err, ok := f.err.Load().(error); ok && err != nil {
		return 0, err
	}
	return f.n.Load(), nil
}

func TestCatalogMonitor_PublishesCount(t *testing.T) {
	counter := &fakeCounter{}
	counter.n.Store(42)
	svc := NewCatalogMonitorService(counter, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.After(time.Second)
	for counter.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("monitor probed %d times, want at least 3", counter.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}

	if got := testutil.ToFloat64(metrics.CatalogTitles); got != 42 {
		t.Errorf("catalog titles gauge = %v, want 42", got)
	}
	if got := testutil.ToFloat64(metrics.CatalogUp); got != 1 {
		t.Errorf("catalog up gauge = %v, want 1", got)
	}
}

func TestCatalogMonitor_ProbeFailureKeepsRunning(t *testing.T) {
	counter := &fakeCounter{}
	counter.err.Store(errors.New("database is locked"))
	svc := NewCatalogMonitorService(counter, time.Hour)

	svc.probe(context.Background())
	if got := testutil.ToFloat64(metrics.CatalogUp); got != 0 {
		t.Errorf("catalog up gauge = %v, want 0 after failure", got)
	}
	if svc.String() != "catalog-monitor" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestNewCatalogMonitorService_Defaults(t *testing.T) {
	svc := NewCatalogMonitorService(&fakeCounter{}, 0)
	if svc.interval != time.Minute || svc.timeout != 5*time.Second {
		t.Errorf("interval=%v timeout=%v", svc.interval, svc.timeout)
	}
	if short := NewCatalogMonitorService(&fakeCounter{}, time.Second); short.timeout != time.Second {
		t.Errorf("timeout = %v, want capped at interval", short.timeout)
	}
}

// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/reelmatch/internal/logging"
)

func captureIDs(t *testing.T, header string) (requestID, correlationID, responseID string) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return requestID, correlationID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generated when absent", header: "", wantSame: false},
		{name: "upstream id preserved", header: "upstream-123", wantSame: true},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1), wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requestID, correlationID, responseID := captureIDs(t, tt.header)

			if requestID == "" || requestID != responseID {
				t.Fatalf("context id %q, response header %q: want equal and non-empty", requestID, responseID)
			}
			if correlationID == "" {
				t.Error("expected correlation ID in context")
			}
			if tt.wantSame {
				if requestID != tt.header {
					t.Errorf("request id = %q, want %q", requestID, tt.header)
				}
				return
			}
			if _, err := uuid.Parse(requestID); err != nil {
				t.Errorf("generated request id %q is not a UUID: %v", requestID, err)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	first, _, _ := captureIDs(t, "")
	second, _, _ := captureIDs(t, "")
	if first == second {
		t.Errorf("two requests share id %s", first)
	}
}

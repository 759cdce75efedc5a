// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	Seeds     []string `query:"tconst" validate:"min=1,max=3,dive,tconst"`
	N         int      `query:"n" validate:"gte=1,lte=20"`
	MinRating *float64 `query:"min_rating" validate:"omitempty,gte=0,lte=10"`
	Label     string   `validate:"omitempty,max=4"`
}

func ratingPtr(v float64) *float64 { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return the same non-nil instance")
	}
}

func TestIsTconst(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"tt0111161", true},
		{"tt011116112", true},
		{"tt0111161123", true},
		{"tt011116", false},
		{"tt01111611234", false},
		{"nm0000151", false},
		{"", false},
		{"TT0111161", false},
	}
	for _, tt := range tests {
		if got := IsTconst(tt.in); got != tt.want {
			t.Errorf("IsTconst(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantTag   string
	}{
		{
			name: "valid",
			req:  testRequest{Seeds: []string{"tt0111161"}, N: 5, MinRating: ratingPtr(7)},
		},
		{
			name:      "no seeds",
			req:       testRequest{N: 5},
			wantField: "tconst",
			wantTag:   "min",
		},
		{
			name:      "too many seeds",
			req:       testRequest{Seeds: []string{"tt0000001", "tt0000002", "tt0000003", "tt0000004"}, N: 5},
			wantField: "tconst",
			wantTag:   "max",
		},
		{
			name:      "malformed seed",
			req:       testRequest{Seeds: []string{"tt0000001", "nm0000001"}, N: 5},
			wantField: "tconst[1]",
			wantTag:   "tconst",
		},
		{
			name:      "n out of range",
			req:       testRequest{Seeds: []string{"tt0000001"}, N: 21},
			wantField: "n",
			wantTag:   "lte",
		},
		{
			name:      "rating out of range",
			req:       testRequest{Seeds: []string{"tt0000001"}, N: 1, MinRating: ratingPtr(-0.5)},
			wantField: "min_rating",
			wantTag:   "gte",
		},
		{
			name:      "untagged field keeps struct name",
			req:       testRequest{Seeds: []string{"tt0000001"}, N: 1, Label: "toolong"},
			wantField: "Label",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors (%v), want 1", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field=%s tag=%s, want field=%s tag=%s",
					errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestTranslateError_Messages(t *testing.T) {
	tests := []struct {
		name string
		req  testRequest
		want string
	}{
		{
			name: "tconst shape",
			req:  testRequest{Seeds: []string{"x"}, N: 1},
			want: "tconst[0] must start with 'tt' and be 9 to 12 characters long",
		},
		{
			name: "slice max",
			req:  testRequest{Seeds: []string{"tt0000001", "tt0000002", "tt0000003", "tt0000004"}, N: 1},
			want: "tconst must have at most 3 values",
		},
		{
			name: "string max",
			req:  testRequest{Seeds: []string{"tt0000001"}, N: 1, Label: "abcde"},
			want: "Label must have at most 4 characters",
		},
		{
			name: "numeric bound",
			req:  testRequest{Seeds: []string{"tt0000001"}, N: 0},
			want: "n must be greater than or equal to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := verr.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		verr := ValidateStruct(&testRequest{Seeds: []string{"tt0000001"}, N: 0})
		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %s", apiErr.Code)
		}
		if apiErr.Details["field"] != "n" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		verr := ValidateStruct(&testRequest{N: 0})
		apiErr := verr.ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Fatalf("Details = %v, want two fields", apiErr.Details)
		}
		if !strings.Contains(apiErr.Message, "; ") {
			t.Errorf("Message = %q, want joined messages", apiErr.Message)
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

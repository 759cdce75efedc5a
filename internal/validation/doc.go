// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation validates HTTP request structs with go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in error messages
// are taken from the `query` struct tag so they match the parameter the
// client sent.
//
// Custom tags:
//   - tconst: a title identifier, "tt" prefix and 9 to 12 characters
//
// Example:
//
//	type request struct {
//	    Seeds []string `query:"tconst" validate:"min=1,max=5,dive,tconst"`
//	    N     int      `query:"n" validate:"gte=1,lte=20"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code / apiErr.Message
//	}
package validation

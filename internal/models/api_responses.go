// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints. It provides a consistent structure for both successful and
// error responses, with metadata for observability and caching.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"question": "...", "options": [...]},
//	  "metadata": {"timestamp": "2026-09-01T12:00:00Z", "cached": true}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "INVALID_PATH", "message": "no option \"x\" at step 1"},
//	  "metadata": {"timestamp": "2026-09-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when the response was generated (RFC3339)
//   - ResolveTimeMS: Path resolution time in milliseconds (0 if cached)
//   - Cached: Whether the response was served from cache (omitted if false)
type Metadata struct {
	Timestamp     time.Time `json:"timestamp"`
	ResolveTimeMS int64     `json:"resolve_time_ms,omitempty"`
	Cached        bool      `json:"cached,omitempty"`
}

// APIError carries structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: malformed request body or parameters
//   - DOMAIN_NOT_FOUND: no loaded domain with the requested name
//   - CONTENT_INVALID: the domain exists but was withheld at load time
//   - INVALID_PATH: a path token matches no option at its step
//   - PATH_EXHAUSTED: the path continues past a terminal
//   - PATH_TOO_LONG: more tokens than matcher questions
//   - INCOMPLETE_PATH: scoring requested before the required questions
//   - UNKNOWN_SELECTION: a selection names an undeclared option
//   - SELECTION_COUNT: wrong number of multi-select choices
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SuccessResponse builds a success-status wrapper around data.
func SuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
	}
}

// ErrorResponse builds an error-status wrapper with the given code and message.
func ErrorResponse(code, message string) APIResponse {
	return APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now().UTC()},
		Error:    &APIError{Code: code, Message: message},
	}
}

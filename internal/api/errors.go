// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package api

import (
	"errors"
	"net/http"

	"github.com/gatorguide/gatorguide/internal/knowledge"
	"github.com/gatorguide/gatorguide/internal/match"
	"github.com/gatorguide/gatorguide/internal/navigate"
)

// mapDomainError translates engine and store errors into HTTP status and
// API error code. Path and selection problems are client state errors
// (422): the request was well-formed but names things the current content
// does not have.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, knowledge.ErrDomainNotFound):
		return http.StatusNotFound, "DOMAIN_NOT_FOUND"
	case errors.Is(err, knowledge.ErrMalformedContent):
		// The domain exists but its content failed validation at load
		// time; it is withheld until the content is fixed.
		return http.StatusNotFound, "CONTENT_INVALID"
	case errors.Is(err, navigate.ErrInvalidPath):
		return http.StatusUnprocessableEntity, "INVALID_PATH"
	case errors.Is(err, navigate.ErrPathExhausted):
		return http.StatusUnprocessableEntity, "PATH_EXHAUSTED"
	case errors.Is(err, match.ErrPathTooLong):
		return http.StatusUnprocessableEntity, "PATH_TOO_LONG"
	case errors.Is(err, match.ErrIncompletePath):
		return http.StatusUnprocessableEntity, "INCOMPLETE_PATH"
	case errors.Is(err, match.ErrUnknownSelection):
		return http.StatusUnprocessableEntity, "UNKNOWN_SELECTION"
	case errors.Is(err, match.ErrSelectionCount):
		return http.StatusUnprocessableEntity, "SELECTION_COUNT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

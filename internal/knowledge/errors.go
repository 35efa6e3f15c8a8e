// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the knowledge store.
var (
	// ErrMalformedContent indicates a content file violated a structural
	// invariant at load time. Fatal for the affected domain only.
	ErrMalformedContent = errors.New("malformed content")

	// ErrDomainNotFound indicates no domain with the requested name exists.
	ErrDomainNotFound = errors.New("domain not found")
)

// ContentError describes a load-time validation failure, naming the
// offending domain and field so content authors can locate the problem.
type ContentError struct {
	// Domain is the domain whose content file failed validation.
	Domain string

	// Field is the JSON field or tree position at fault.
	Field string

	// Reason describes the violated invariant.
	Reason string
}

// Error implements the error interface.
func (e *ContentError) Error() string {
	return fmt.Sprintf("domain %q: field %q: %s", e.Domain, e.Field, e.Reason)
}

// Unwrap makes ContentError match ErrMalformedContent via errors.Is.
func (e *ContentError) Unwrap() error {
	return ErrMalformedContent
}

// contentErrorf builds a ContentError.
func contentErrorf(domain, field, format string, args ...any) *ContentError {
	return &ContentError{
		Domain: domain,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

// Entity is a recommendable result: a residence hall, a library, a club.
// Identity is the Name string, unique within a domain. Entities are
// immutable once loaded.
type Entity struct {
	// Name uniquely identifies the entity within its domain.
	Name string `json:"name"`

	// Description is free text shown on terminal pages.
	Description string `json:"description,omitempty"`

	// Variants is the ordered list of room/variant types, possibly empty.
	Variants []string `json:"variants,omitempty"`

	// Price is a display price or range string (e.g. "$3000-$3600/semester").
	Price string `json:"price,omitempty"`

	// Tags is the entity's feature set: short tag strings such as
	// "Near Athletics" or "Study Lounge". Order is not meaningful.
	Tags []string `json:"tags,omitempty"`

	// tagSet indexes Tags for O(1) membership checks. Built by seal().
	tagSet map[string]struct{}
}

// seal builds the internal tag index. Called once by the loader; entities
// constructed directly in tests must call it before using HasTag.
func (e *Entity) seal() {
	e.tagSet = make(map[string]struct{}, len(e.Tags))
	for _, tag := range e.Tags {
		e.tagSet[tag] = struct{}{}
	}
}

// HasTag reports whether the entity carries the given tag (exact match).
func (e *Entity) HasTag(tag string) bool {
	if e.tagSet == nil {
		// Unsealed entity (hand-built in tests): fall back to a scan.
		for _, t := range e.Tags {
			if t == tag {
				return true
			}
		}
		return false
	}
	_, ok := e.tagSet[tag]
	return ok
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package models

// MenuRequest is the body of POST /api/v1/menu. The client holds the full
// dialogue state: Path is every answer chosen so far, and Selection, when
// present, is the answer being chosen now and is appended server-side.
// Sending a pre-extended Path with no Selection resolves identically.
//
// Back-navigation never hits a dedicated endpoint: the client truncates
// Path and re-sends.
type MenuRequest struct {
	// Category is the domain name ("housing", "clubs", ...).
	Category string `json:"category" validate:"required,domainname,max=64"`

	// Path is the ordered answer tokens chosen so far. Multi-select steps
	// join their choices with commas into one token.
	Path []string `json:"path" validate:"max=32,dive,min=1,max=512"`

	// Selection is the answer being chosen at this step, if any.
	Selection string `json:"selection,omitempty" validate:"max=512"`

	// Finish asks for results now, skipping any remaining optional
	// questions. Rejected if required questions are still unanswered.
	Finish bool `json:"finish,omitempty"`
}

// Option is one selectable answer at the current step. Label is shown to
// the user; Value is the token to append to the path. They are currently
// identical, but the split keeps the wire contract stable if display
// labels ever diverge from path tokens.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MenuView is the data payload of a menu response: either the next
// question with its options, or rendered terminal content, never both.
type MenuView struct {
	// Question is the prompt for the current step. Empty at a terminal.
	Question string `json:"question,omitempty"`

	// Options are the selectable answers. Empty at a terminal.
	Options []Option `json:"options,omitempty"`

	// Multiple marks a multi-select step; SelectCount is the exact number
	// of choices it requires (0 when unconstrained). Optional marks a step
	// the client may skip by finishing early.
	Multiple    bool `json:"multiple,omitempty"`
	SelectCount int  `json:"select_count,omitempty"`
	Optional    bool `json:"optional,omitempty"`

	// Content is the rendered HTML for a terminal step.
	Content string `json:"content,omitempty"`

	// Breadcrumbs are the answer labels consumed along the path, in order.
	Breadcrumbs []string `json:"breadcrumbs"`

	// IsTerminal reports whether the dialogue has ended.
	IsTerminal bool `json:"is_terminal"`
}

// DomainInfo describes one loaded domain for the directory endpoint.
type DomainInfo struct {
	// Name is the domain's unique name.
	Name string `json:"name"`

	// Shape is "tree" or "taxonomy".
	Shape string `json:"shape"`

	// Questions is the dialogue length: the declared question count for a
	// taxonomy, the maximum depth for a tree.
	Questions int `json:"questions"`

	// Entities is the number of entities the domain can recommend.
	Entities int `json:"entities"`
}

// DomainList is the payload of GET /api/v1/domains.
type DomainList struct {
	Domains []DomainInfo `json:"domains"`
	Total   int          `json:"total"`
}

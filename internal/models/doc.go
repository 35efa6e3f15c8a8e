// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

/*
Package models defines the wire-level data structures of the GatorGuide API.

It is the single source of truth for the request and response contracts:

  - APIResponse: standardized response wrapper (status/data/metadata/error)
  - MenuRequest: the client-held dialogue state (category, path, selection)
  - MenuView: next question + options, or rendered terminal content
  - DomainInfo/DomainList: the domain directory payload

The package has no behavior beyond small response constructors; handlers in
internal/api produce these types and the presenter in internal/presenter
fills MenuView.
*/
package models

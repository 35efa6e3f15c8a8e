// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package knowledge implements the knowledge store: the immutable-at-runtime
// collection of guided-navigation domains that the path interpreter and
// matching engine operate on.
//
// A domain is loaded from a single JSON content file and takes one of two
// shapes:
//
//   - Tree: a rooted decision tree of question nodes whose option edges
//     carry either a child node or a terminal entity list (housing).
//   - Taxonomy: category groups, categories with subcategory tags, and a
//     fixed matcher-question dialogue over them (clubs, libraries).
//
// All structural invariants are enforced at load time; a domain that fails
// validation is withheld from serving while other domains remain available.
// After loading, nothing is ever mutated: concurrent reads require no
// locking, and a reload replaces the whole domain set through an atomic
// pointer swap so in-flight requests see either the old or the new store in
// full.
package knowledge

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package supervisor builds the suture/v4 supervision tree: a content
// layer (file watcher) and an api layer (HTTP server) under one root, with
// supervisor events logged through sutureslog.
package supervisor

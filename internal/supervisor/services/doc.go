// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package services provides suture.Service wrappers for the supervised
// components: the HTTP server and the content-directory watcher.
package services

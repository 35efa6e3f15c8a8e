// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package middleware provides HTTP middleware shared by the API router:
// request ID propagation (with logging integration) and Prometheus request
// instrumentation. Rate limiting and CORS come from go-chi's httprate and
// cors packages and are wired directly in the router.
package middleware

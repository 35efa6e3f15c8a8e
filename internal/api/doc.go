// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

/*
Package api provides the HTTP surface of the recommendation engine.

Routes:

	POST /api/v1/menu          resolve one dialogue step (question or results)
	GET  /api/v1/domains       list loaded domains
	GET  /api/v1/health/live   liveness probe
	GET  /api/v1/health/ready  readiness probe (>=1 loaded domain)
	POST /api/v1/admin/reload  swap in a fresh content generation
	GET  /metrics              Prometheus metrics

All responses use the models.APIResponse envelope. Request-scoped failures
map to stable error codes (INVALID_PATH, UNKNOWN_SELECTION, ...) so the UI
can react without parsing messages. The router wires chi with request ID
propagation, real-IP resolution, panic recovery, Prometheus
instrumentation, CORS and per-group httprate limits.
*/
package api

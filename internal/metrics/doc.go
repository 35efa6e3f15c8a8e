// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

/*
Package metrics provides Prometheus instrumentation.

All collectors are registered with the default registry via promauto and
exposed on /metrics by the API router. Four concern areas are covered:
API requests (count, latency, in-flight, rate-limit rejections), menu
resolutions (per domain/shape/outcome), the response cache (hits, misses,
purges) and the knowledge store (reloads by trigger, loaded/withheld
domain gauges).
*/
package metrics

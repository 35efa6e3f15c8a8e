// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/gatorguide/gatorguide/internal/cache"
	"github.com/gatorguide/gatorguide/internal/knowledge"
	"github.com/gatorguide/gatorguide/internal/logging"
	"github.com/gatorguide/gatorguide/internal/models"
	"github.com/gatorguide/gatorguide/internal/presenter"
)

// maxMenuBodyBytes bounds the menu request body. Paths are short answer
// token lists; anything larger is abuse.
const maxMenuBodyBytes = 64 << 10

// ReloadFunc reloads the knowledge store and reports the loaded and
// withheld domain counts of the new generation.
type ReloadFunc func() (loaded, withheld int, err error)

// Handler serves the GatorGuide API endpoints.
type Handler struct {
	store     *knowledge.Store
	presenter *presenter.Presenter

	// cache is nil when the response cache is disabled.
	cache *cache.Cache

	// reload swaps the store; throttled by reloadLimiter.
	reload        ReloadFunc
	reloadLimiter *rate.Limiter
}

// NewHandler creates the API handler. reloadCooldown throttles admin
// reloads to one per window with no burst carry-over.
func NewHandler(store *knowledge.Store, p *presenter.Presenter, c *cache.Cache, reload ReloadFunc, reloadCooldown time.Duration) *Handler {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if reloadCooldown > 0 {
		limiter = rate.NewLimiter(rate.Every(reloadCooldown), 1)
	}
	return &Handler{
		store:         store,
		presenter:     p,
		cache:         c,
		reload:        reload,
		reloadLimiter: limiter,
	}
}

// Menu resolves one step of the guided dialogue.
//
// POST /api/v1/menu
//
// The request carries the client-held state: the domain name, the path of
// answers so far, and optionally the answer being selected now, which is
// appended server-side. The response is either the next question with its
// options or rendered terminal content.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	var req models.MenuRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxMenuBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body is not valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error:    apiErr,
		})
		return
	}

	path := req.Path
	if req.Selection != "" {
		path = append(append([]string{}, req.Path...), req.Selection)
	}

	if h.cache != nil {
		if view, err := h.cache.Get(req.Category, path, req.Finish); err == nil {
			response := models.SuccessResponse(view)
			response.Metadata.Cached = true
			respondJSON(w, http.StatusOK, &response)
			return
		}
	}

	start := time.Now()
	view, err := h.presenter.Advance(r.Context(), req.Category, path, req.Finish)
	if err != nil {
		status, code := mapDomainError(err)
		respondError(w, status, code, err.Error(), err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(req.Category, path, req.Finish, view); err != nil {
			// Serving uncached is always correct; log and move on.
			logging.Ctx(r.Context()).Warn().Err(err).Msg("failed to cache menu view")
		}
	}

	response := models.SuccessResponse(view)
	response.Metadata.ResolveTimeMS = time.Since(start).Milliseconds()
	respondJSON(w, http.StatusOK, &response)
}

// Domains lists the loaded domains.
//
// GET /api/v1/domains
func (h *Handler) Domains(w http.ResponseWriter, r *http.Request) {
	descriptors := h.store.Descriptors()

	infos := make([]models.DomainInfo, len(descriptors))
	for i, d := range descriptors {
		infos[i] = models.DomainInfo{
			Name:      d.Name,
			Shape:     d.Shape,
			Questions: d.Questions,
			Entities:  d.Entities,
		}
	}

	response := models.SuccessResponse(models.DomainList{Domains: infos, Total: len(infos)})
	respondJSON(w, http.StatusOK, &response)
}

// HealthLive reports process liveness.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	response := models.SuccessResponse(map[string]string{"status": "alive"})
	respondJSON(w, http.StatusOK, &response)
}

// HealthReady reports readiness: the service is ready once at least one
// domain is loaded and serveable.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	loaded := h.store.Len()
	if loaded == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "no domains loaded", nil)
		return
	}
	response := models.SuccessResponse(map[string]interface{}{
		"status":    "ready",
		"domains":   loaded,
		"loaded_at": h.store.LoadedAt().UTC(),
	})
	respondJSON(w, http.StatusOK, &response)
}

// Reload swaps in a fresh knowledge store generation from disk.
//
// POST /api/v1/admin/reload
//
// Throttled to one reload per cooldown window; a reload that fails leaves
// the current generation serving.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.reloadLimiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "reload cooldown in effect", nil)
		return
	}

	loaded, withheld, err := h.reload()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RELOAD_FAILED", "content reload failed", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int("loaded", loaded).Int("withheld", withheld).Msg("knowledge store reloaded by admin")
	response := models.SuccessResponse(map[string]int{
		"loaded":   loaded,
		"withheld": withheld,
	})
	respondJSON(w, http.StatusOK, &response)
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package presenter normalizes both domain shapes into the single menu
// contract the UI renders: the next question with its options, or rendered
// terminal content, plus breadcrumbs and a terminal flag. The UI never
// learns whether a domain is a decision tree or a taxonomy matcher.
package presenter

import (
	"context"
	"time"

	"github.com/gatorguide/gatorguide/internal/knowledge"
	"github.com/gatorguide/gatorguide/internal/logging"
	"github.com/gatorguide/gatorguide/internal/match"
	"github.com/gatorguide/gatorguide/internal/metrics"
	"github.com/gatorguide/gatorguide/internal/models"
	"github.com/gatorguide/gatorguide/internal/navigate"
)

// Presenter resolves menu requests against the knowledge store.
type Presenter struct {
	store *knowledge.Store
}

// New creates a Presenter backed by the given store.
func New(store *knowledge.Store) *Presenter {
	return &Presenter{store: store}
}

// Advance resolves one menu step: it looks up the domain, replays the path,
// and returns the normalized view. finish requests results immediately,
// skipping remaining optional questions; it is ignored for tree domains,
// where terminals are structural.
//
// Errors from the store and the engines propagate typed so the API layer
// can map them to distinct codes.
func (p *Presenter) Advance(ctx context.Context, category string, path []string, finish bool) (*models.MenuView, error) {
	domain, err := p.store.Domain(category)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var view *models.MenuView
	switch domain.Shape {
	case knowledge.ShapeTree:
		view, err = p.advanceTree(domain, path)
	default:
		view, err = p.advanceTaxonomy(domain, path, finish)
	}
	if err != nil {
		metrics.RecordResolution(category, domain.Shape.String(), "error", time.Since(start))
		return nil, err
	}
	outcome := "question"
	if view.IsTerminal {
		outcome = "terminal"
	}
	metrics.RecordResolution(category, domain.Shape.String(), outcome, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("domain", category).
		Int("path_len", len(path)).
		Bool("terminal", view.IsTerminal).
		Msg("menu step resolved")
	return view, nil
}

// advanceTree resolves a step in a decision-tree domain.
func (p *Presenter) advanceTree(domain *knowledge.Domain, path []string) (*models.MenuView, error) {
	res, err := navigate.Resolve(domain.Tree, path)
	if err != nil {
		return nil, err
	}

	if res.IsTerminal() {
		return &models.MenuView{
			Content:     renderEntities(res.Terminal),
			Breadcrumbs: res.Breadcrumbs,
			IsTerminal:  true,
		}, nil
	}

	return &models.MenuView{
		Question:    res.Question,
		Options:     asOptions(res.Options),
		Breadcrumbs: res.Breadcrumbs,
		IsTerminal:  false,
	}, nil
}

// advanceTaxonomy resolves a step in a taxonomy matcher domain. The
// breadcrumbs of a matcher dialogue are the path tokens themselves.
func (p *Presenter) advanceTaxonomy(domain *knowledge.Domain, path []string, finish bool) (*models.MenuView, error) {
	step, err := match.NextStep(domain.Taxonomy, path)
	if err != nil {
		return nil, err
	}

	if step == nil || (finish && step.Optional) {
		results, err := match.Score(domain.Taxonomy, path)
		if err != nil {
			return nil, err
		}
		return &models.MenuView{
			Content:     renderResults(results),
			Breadcrumbs: breadcrumbs(path),
			IsTerminal:  true,
		}, nil
	}

	return &models.MenuView{
		Question:    step.Question,
		Options:     asOptions(step.Options),
		Multiple:    step.Multiple,
		SelectCount: step.SelectCount,
		Optional:    step.Optional,
		Breadcrumbs: breadcrumbs(path),
		IsTerminal:  false,
	}, nil
}

// asOptions pairs each answer token with itself as the display label.
func asOptions(values []string) []models.Option {
	options := make([]models.Option, len(values))
	for i, v := range values {
		options[i] = models.Option{Label: v, Value: v}
	}
	return options
}

// breadcrumbs copies path so the view never aliases request memory.
func breadcrumbs(path []string) []string {
	crumbs := make([]string, len(path))
	copy(crumbs, path)
	return crumbs
}

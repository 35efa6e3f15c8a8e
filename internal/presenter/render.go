// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package presenter

import (
	"fmt"
	"html"
	"strings"

	"github.com/gatorguide/gatorguide/internal/knowledge"
	"github.com/gatorguide/gatorguide/internal/match"
)

// renderEntities renders a terminal entity list as an HTML fragment. All
// content-file text is escaped; the only markup is ours.
func renderEntities(entities []knowledge.Entity) string {
	if len(entities) == 0 {
		return `<p class="no-results">No recommendations match this path. Go back a step and try another option.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="results">`)
	for i := range entities {
		writeEntityBlock(&b, &entities[i])
	}
	b.WriteString(`</div>`)
	return b.String()
}

// renderResults renders ranked match results, each with its score and the
// selected tags it matched so the UI can show why it was recommended.
func renderResults(results []match.Result) string {
	if len(results) == 0 {
		return `<p class="no-results">No recommendations match your selections. Go back a step and broaden them.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="results">`)
	for _, r := range results {
		b.WriteString(`<div class="result">`)
		fmt.Fprintf(&b, `<h3>%s</h3>`, html.EscapeString(r.Entity.Name))
		fmt.Fprintf(&b, `<p class="score">Match score: %d</p>`, r.Score)
		if r.Entity.Description != "" {
			fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(r.Entity.Description))
		}
		if len(r.MatchedTags) > 0 {
			b.WriteString(`<ul class="reasons">`)
			for _, tag := range r.MatchedTags {
				fmt.Fprintf(&b, `<li>Matches your interest in %s</li>`, html.EscapeString(tag))
			}
			b.WriteString(`</ul>`)
		}
		if r.Entity.Price != "" {
			fmt.Fprintf(&b, `<p class="price">%s</p>`, html.EscapeString(r.Entity.Price))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func writeEntityBlock(b *strings.Builder, e *knowledge.Entity) {
	b.WriteString(`<div class="result">`)
	fmt.Fprintf(b, `<h3>%s</h3>`, html.EscapeString(e.Name))
	if e.Description != "" {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(e.Description))
	}
	if len(e.Variants) > 0 {
		b.WriteString(`<ul class="variants">`)
		for _, v := range e.Variants {
			fmt.Fprintf(b, `<li>%s</li>`, html.EscapeString(v))
		}
		b.WriteString(`</ul>`)
	}
	if e.Price != "" {
		fmt.Fprintf(b, `<p class="price">%s</p>`, html.EscapeString(e.Price))
	}
	b.WriteString(`</div>`)
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import (
	"errors"
	"strings"
	"testing"
)

const validTreeJSON = `{
	"root": {
		"question": "What style of housing are you looking for?",
		"options": [
			{
				"answer": "Traditional Style",
				"node": {
					"question": "What is your budget per semester?",
					"options": [
						{
							"answer": "Lower ($3000-$3600)",
							"results": [
								{"name": "Buckman Hall", "tags": ["Historic District"]},
								{"name": "Thomas Hall", "tags": ["Historic District"]}
							]
						},
						{"answer": "Higher ($3600-$4200)", "results": []}
					]
				}
			},
			{
				"answer": "Apartment Style",
				"results": [{"name": "Lakeside Complex", "price": "$4300/semester"}]
			}
		]
	}
}`

const validTaxonomyJSON = `{
	"category_groups": [
		{"group_name": "Academic & Intellectual", "categories": ["Coding"]}
	],
	"categories": [
		{"name": "Coding", "subcategories": ["Hackathons", "Game Development"]}
	],
	"matcher_questions": [
		{"id": "category_group", "question": "Pick a group", "kind": "category_group"},
		{"id": "primary_interest", "question": "Pick a category", "kind": "category"},
		{"id": "subcategory_interests", "question": "Pick interests", "kind": "subcategories", "multiple": true, "select_count": 2},
		{"id": "commitment_level", "question": "Commitment?", "kind": "soft", "options": ["Casual", "Dedicated"], "optional": true}
	],
	"entities": [
		{"name": "Gator Hack Society", "tags": ["Coding", "Hackathons"]}
	]
}`

func TestLoadTreeDomain(t *testing.T) {
	t.Parallel()

	domain, err := Load("housing", []byte(validTreeJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if domain.Shape != ShapeTree {
		t.Errorf("Shape = %v, want ShapeTree", domain.Shape)
	}
	if domain.Tree == nil || domain.Taxonomy != nil {
		t.Error("tree domain must carry Tree and not Taxonomy")
	}

	desc := domain.Describe()
	if desc.Entities != 3 {
		t.Errorf("Entities = %d, want 3", desc.Entities)
	}
	if desc.Questions != 2 {
		t.Errorf("Questions (depth) = %d, want 2", desc.Questions)
	}
}

func TestLoadTaxonomyDomain(t *testing.T) {
	t.Parallel()

	domain, err := Load("clubs", []byte(validTaxonomyJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if domain.Shape != ShapeTaxonomy {
		t.Errorf("Shape = %v, want ShapeTaxonomy", domain.Shape)
	}
	if domain.Taxonomy.RequiredQuestions() != 3 {
		t.Errorf("RequiredQuestions = %d, want 3", domain.Taxonomy.RequiredQuestions())
	}
	if domain.Taxonomy.Group("Academic & Intellectual") == nil {
		t.Error("expected group lookup to succeed")
	}
	if domain.Taxonomy.Category("Coding") == nil {
		t.Error("expected category lookup to succeed")
	}
	if !domain.Taxonomy.Entities[0].HasTag("Hackathons") {
		t.Error("expected sealed entity tag lookup to succeed")
	}
}

func TestLoadRejectsMalformedContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		json    string
		wantSub string
	}{
		{
			name:    "edge with both child and terminal",
			json:    `{"root": {"question": "q", "options": [{"answer": "a", "node": {"question": "q2", "options": [{"answer": "b", "results": []}]}, "results": []}]}}`,
			wantSub: "both a child node and a terminal list",
		},
		{
			name:    "edge with neither child nor terminal",
			json:    `{"root": {"question": "q", "options": [{"answer": "a"}]}}`,
			wantSub: "neither a child node nor a terminal list",
		},
		{
			name:    "internal node without options",
			json:    `{"root": {"question": "q", "options": []}}`,
			wantSub: "no option edges",
		},
		{
			name:    "duplicate answer labels",
			json:    `{"root": {"question": "q", "options": [{"answer": "a", "results": []}, {"answer": "a", "results": []}]}}`,
			wantSub: "duplicate answer label",
		},
		{
			name:    "duplicate entity names across terminals",
			json:    `{"root": {"question": "q", "options": [{"answer": "a", "results": [{"name": "X"}]}, {"answer": "b", "results": [{"name": "X"}]}]}}`,
			wantSub: "duplicate entity name",
		},
		{
			name:    "neither shape",
			json:    `{"entities": [{"name": "X"}]}`,
			wantSub: "neither tree-shaped",
		},
		{
			name:    "mixed shapes",
			json:    `{"root": {"question": "q", "options": [{"answer": "a", "results": []}]}, "category_groups": [{"group_name": "G", "categories": ["C"]}]}`,
			wantSub: "mixes tree and taxonomy",
		},
		{
			name:    "invalid JSON",
			json:    `{"root": `,
			wantSub: "invalid JSON",
		},
		{
			name: "zero selection count",
			json: `{
				"category_groups": [{"group_name": "G", "categories": ["C"]}],
				"categories": [{"name": "C", "subcategories": ["s"]}],
				"matcher_questions": [
					{"id": "g", "question": "q", "kind": "category_group"},
					{"id": "c", "question": "q", "kind": "category"},
					{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 0}
				]
			}`,
			wantSub: "selection count must be >= 1",
		},
		{
			name: "group references undeclared category",
			json: `{
				"category_groups": [{"group_name": "G", "categories": ["Ghost"]}],
				"categories": [{"name": "C", "subcategories": ["s"]}],
				"matcher_questions": [
					{"id": "g", "question": "q", "kind": "category_group"},
					{"id": "c", "question": "q", "kind": "category"},
					{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 1}
				]
			}`,
			wantSub: "undeclared category",
		},
		{
			name: "required question after optional",
			json: `{
				"category_groups": [{"group_name": "G", "categories": ["C"]}],
				"categories": [{"name": "C", "subcategories": ["s"]}],
				"matcher_questions": [
					{"id": "g", "question": "q", "kind": "category_group"},
					{"id": "c", "question": "q", "kind": "category"},
					{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 1},
					{"id": "soft1", "question": "q", "kind": "soft", "options": ["x"], "optional": true},
					{"id": "soft2", "question": "q", "kind": "soft", "options": ["y"]}
				]
			}`,
			wantSub: "required question after optional",
		},
		{
			name: "non-soft question after core steps",
			json: `{
				"category_groups": [{"group_name": "G", "categories": ["C"]}],
				"categories": [{"name": "C", "subcategories": ["s"]}],
				"matcher_questions": [
					{"id": "g", "question": "q", "kind": "category_group"},
					{"id": "c", "question": "q", "kind": "category"},
					{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 1},
					{"id": "g2", "question": "q", "kind": "category_group"}
				]
			}`,
			wantSub: "only soft questions may follow",
		},
		{
			name: "core steps out of order",
			json: `{
				"category_groups": [{"group_name": "G", "categories": ["C"]}],
				"categories": [{"name": "C", "subcategories": ["s"]}],
				"matcher_questions": [
					{"id": "c", "question": "q", "kind": "category"},
					{"id": "g", "question": "q", "kind": "category_group"},
					{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 1}
				]
			}`,
			wantSub: "expected \"category_group\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load("testdomain", []byte(tt.json))
			if err == nil {
				t.Fatal("Load() succeeded, want malformed content error")
			}
			if !errors.Is(err, ErrMalformedContent) {
				t.Errorf("error %v does not match ErrMalformedContent", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantSub)
			}
			if !strings.Contains(err.Error(), "testdomain") {
				t.Errorf("error %q does not name the domain", err.Error())
			}
		})
	}
}

func TestContentErrorNamesDomainAndField(t *testing.T) {
	t.Parallel()

	_, err := Load("housing", []byte(`{"root": {"question": "q", "options": [{"answer": "a"}]}}`))
	if err == nil {
		t.Fatal("expected error")
	}

	var contentErr *ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("error %T is not a *ContentError", err)
	}
	if contentErr.Domain != "housing" {
		t.Errorf("Domain = %q, want housing", contentErr.Domain)
	}
	if contentErr.Field != "root.options[0]" {
		t.Errorf("Field = %q, want root.options[0]", contentErr.Field)
	}
}

func TestEmptyTerminalListIsValid(t *testing.T) {
	t.Parallel()

	domain, err := Load("d", []byte(`{"root": {"question": "q", "options": [{"answer": "a", "results": []}]}}`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	edge := &domain.Tree.Options[0]
	if !edge.Terminal() {
		t.Error("empty results list must mark the edge terminal")
	}
	if len(edge.Results) != 0 {
		t.Errorf("expected empty terminal list, got %d entities", len(edge.Results))
	}
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gatorguide/gatorguide/internal/knowledge"
)

const clubsTaxonomyJSON = `{
	"category_groups": [
		{"group_name": "Academic & Intellectual", "categories": ["Coding", "Debate"]},
		{"group_name": "Arts & Performance", "categories": ["Music"]}
	],
	"categories": [
		{"name": "Coding", "subcategories": ["Hackathons", "Open Source Contributions", "Game Development", "Competitive Programming"]},
		{"name": "Debate", "subcategories": ["Policy Debate", "Mock Trial"]},
		{"name": "Music", "subcategories": ["A Cappella", "Orchestra"]}
	],
	"matcher_questions": [
		{"id": "category_group", "question": "Which area interests you most?", "kind": "category_group"},
		{"id": "primary_interest", "question": "Pick your main interest.", "kind": "category"},
		{"id": "subcategory_interests", "question": "Which of these appeal to you?", "kind": "subcategories", "multiple": true, "select_count": 4},
		{"id": "commitment_level", "question": "How much time can you commit?", "kind": "soft", "options": ["Casual", "Regular", "Dedicated"], "optional": true},
		{"id": "experience_level", "question": "What is your experience level?", "kind": "soft", "options": ["Beginner Friendly", "Experienced"], "optional": true}
	],
	"entities": [
		{"name": "Gator Hack Society", "tags": ["Coding", "Hackathons", "Open Source Contributions", "Game Development", "Dedicated"]},
		{"name": "Open Source Club", "tags": ["Coding", "Open Source Contributions", "Casual", "Beginner Friendly"]},
		{"name": "Algo Gators", "tags": ["Coding", "Competitive Programming", "Dedicated", "Experienced"]},
		{"name": "Mock Trial Team", "tags": ["Debate", "Mock Trial"]},
		{"name": "Retro Game Makers", "tags": ["Coding", "Game Development"]},
		{"name": "Board Game Guild", "tags": ["Tabletop Gaming"]}
	]
}`

var allCodingSubcats = "Hackathons,Open Source Contributions,Game Development,Competitive Programming"

func loadClubsTaxonomy(t *testing.T) *knowledge.Taxonomy {
	t.Helper()
	domain, err := knowledge.Load("clubs", []byte(clubsTaxonomyJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return domain.Taxonomy
}

func TestNextStepRoot(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	step, err := NextStep(taxonomy, nil)
	if err != nil {
		t.Fatalf("NextStep() error = %v", err)
	}
	if step.Index != 0 || step.ID != "category_group" {
		t.Errorf("step = %+v, want index 0 category_group", step)
	}
	want := []string{"Academic & Intellectual", "Arts & Performance"}
	if !reflect.DeepEqual(step.Options, want) {
		t.Errorf("Options = %v, want %v", step.Options, want)
	}
	if step.Multiple {
		t.Error("group question must be single-select")
	}
	if step.Total != 5 {
		t.Errorf("Total = %d, want 5", step.Total)
	}
}

func TestNextStepDynamicOptions(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	// Category options come from the chosen group.
	step, err := NextStep(taxonomy, []string{"Academic & Intellectual"})
	if err != nil {
		t.Fatalf("NextStep() error = %v", err)
	}
	if !reflect.DeepEqual(step.Options, []string{"Coding", "Debate"}) {
		t.Errorf("category options = %v", step.Options)
	}

	// Subcategory options come from the chosen category.
	step, err = NextStep(taxonomy, []string{"Academic & Intellectual", "Coding"})
	if err != nil {
		t.Fatalf("NextStep() error = %v", err)
	}
	if !step.Multiple || step.SelectCount != 4 {
		t.Errorf("subcategory step = %+v, want multi-select of 4", step)
	}
	wantSubs := []string{"Hackathons", "Open Source Contributions", "Game Development", "Competitive Programming"}
	if !reflect.DeepEqual(step.Options, wantSubs) {
		t.Errorf("subcategory options = %v", step.Options)
	}
}

func TestNextStepCompleteDialogue(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	path := []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Casual", "Beginner Friendly"}
	step, err := NextStep(taxonomy, path)
	if err != nil {
		t.Fatalf("NextStep() error = %v", err)
	}
	if step != nil {
		t.Errorf("step = %+v, want nil after final question", step)
	}
}

func TestNextStepPathTooLong(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	path := []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Casual", "Beginner Friendly", "extra"}
	if _, err := NextStep(taxonomy, path); !errors.Is(err, ErrPathTooLong) {
		t.Errorf("error = %v, want ErrPathTooLong", err)
	}
}

func TestNextStepRejectsInvalidTokens(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	tests := []struct {
		name    string
		path    []string
		wantErr error
	}{
		{"unknown group", []string{"Sports"}, ErrUnknownSelection},
		{"category outside group", []string{"Academic & Intellectual", "Music"}, ErrUnknownSelection},
		{"undeclared subcategory", []string{"Academic & Intellectual", "Coding", "Hackathons,Open Source Contributions,Game Development,Knitting"}, ErrUnknownSelection},
		{"too few selections", []string{"Academic & Intellectual", "Coding", "Hackathons"}, ErrSelectionCount},
		{"duplicate selection", []string{"Academic & Intellectual", "Coding", "Hackathons,Hackathons,Game Development,Competitive Programming"}, ErrSelectionCount},
		{"unknown soft option", []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Obsessive"}, ErrUnknownSelection},
		{"multi-select on single soft", []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Casual,Regular"}, ErrSelectionCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NextStep(taxonomy, tt.path); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// The club scenario: selecting all four coding subcategories must rank a
// club matching three of them above a club matching only one.
func TestScoreOverlapRanking(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	path := []string{"Academic & Intellectual", "Coding", allCodingSubcats}
	results, err := Score(taxonomy, path)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	var names []string
	for _, r := range results {
		names = append(names, r.Entity.Name)
	}
	// Gator Hack Society matches 3 subcategories; the three single-match
	// clubs tie at 1 and fall back to name order.
	want := []string{"Gator Hack Society", "Algo Gators", "Open Source Club", "Retro Game Makers"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ranking = %v, want %v", names, want)
	}

	if results[0].Score != 3 {
		t.Errorf("top score = %d, want 3", results[0].Score)
	}
	wantTags := []string{"Hackathons", "Open Source Contributions", "Game Development"}
	if !reflect.DeepEqual(results[0].MatchedTags, wantTags) {
		t.Errorf("MatchedTags = %v, want %v", results[0].MatchedTags, wantTags)
	}
}

func TestScoreHardFilters(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	results, err := Score(taxonomy, []string{"Academic & Intellectual", "Coding", allCodingSubcats})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	for _, r := range results {
		// Mock Trial Team lacks the Coding tag; Board Game Guild matches
		// nothing at all. Neither may appear with partial credit.
		if r.Entity.Name == "Mock Trial Team" || r.Entity.Name == "Board Game Guild" {
			t.Errorf("entity %q must be excluded by the hard filter", r.Entity.Name)
		}
	}
}

func TestScoreSoftBonusCapped(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	// Algo Gators carries both Dedicated and Experienced. With both soft
	// questions answered in its favor the bonus is one point per dimension,
	// not per tag.
	path := []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Dedicated", "Experienced"}
	results, err := Score(taxonomy, path)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Entity.Name] = r
	}

	algo := byName["Algo Gators"]
	if algo.Score != 3 { // 1 overlap + 1 commitment + 1 experience
		t.Errorf("Algo Gators score = %d, want 3", algo.Score)
	}
	hack := byName["Gator Hack Society"]
	if hack.Score != 4 { // 3 overlap + 1 commitment
		t.Errorf("Gator Hack Society score = %d, want 4", hack.Score)
	}
	// Soft bonuses never rescue a zero-overlap entity.
	if _, ok := byName["Board Game Guild"]; ok {
		t.Error("soft dimensions must not admit entities with no subcategory overlap")
	}
}

func TestScoreOptionalQuestionsSkippable(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	// Required questions only.
	if _, err := Score(taxonomy, []string{"Academic & Intellectual", "Coding", allCodingSubcats}); err != nil {
		t.Errorf("Score() with optional questions skipped: error = %v", err)
	}

	// One of two optional softs answered.
	if _, err := Score(taxonomy, []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Casual"}); err != nil {
		t.Errorf("Score() with one soft answered: error = %v", err)
	}
}

func TestScoreIncompletePath(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)

	if _, err := Score(taxonomy, []string{"Academic & Intellectual", "Coding"}); !errors.Is(err, ErrIncompletePath) {
		t.Errorf("error = %v, want ErrIncompletePath", err)
	}
}

func TestScoreEmptyResultIsNotError(t *testing.T) {
	t.Parallel()

	// The only debate entity lacks the selected subcategory, so the result
	// list is empty without being an error.
	soloJSON := `{
		"category_groups": [{"group_name": "G", "categories": ["Debate"]}],
		"categories": [{"name": "Debate", "subcategories": ["Policy Debate", "Mock Trial"]}],
		"matcher_questions": [
			{"id": "g", "question": "q", "kind": "category_group"},
			{"id": "c", "question": "q", "kind": "category"},
			{"id": "s", "question": "q", "kind": "subcategories", "multiple": true, "select_count": 1}
		],
		"entities": [{"name": "Mock Trial Team", "tags": ["Debate", "Mock Trial"]}]
	}`
	solo, err := knowledge.Load("solo", []byte(soloJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	results, err := Score(solo.Taxonomy, []string{"G", "Debate", "Policy Debate"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v, want empty", results)
	}
}

func TestScoreDeterministic(t *testing.T) {
	t.Parallel()
	taxonomy := loadClubsTaxonomy(t)
	path := []string{"Academic & Intellectual", "Coding", allCodingSubcats, "Dedicated"}

	first, err := Score(taxonomy, path)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	second, err := Score(taxonomy, path)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated scoring of the same path produced different rankings")
	}
}

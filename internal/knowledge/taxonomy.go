// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import "fmt"

// QuestionKind discriminates the role of a matcher question within the
// fixed dialogue. The original content expressed dynamically-populated
// steps with placeholder strings; here the role is an explicit tag
// validated at load time.
type QuestionKind string

const (
	// QuestionCategoryGroup asks the user to pick one category group.
	QuestionCategoryGroup QuestionKind = "category_group"

	// QuestionCategory asks for one category within the chosen group.
	// Options are populated from the group answered earlier.
	QuestionCategory QuestionKind = "category"

	// QuestionSubcategories asks for exactly SelectCount subcategory tags
	// of the chosen category.
	QuestionSubcategories QuestionKind = "subcategories"

	// QuestionSoft is a soft dimension (commitment, schedule, experience):
	// it contributes a bounded score bonus but never excludes an entity.
	QuestionSoft QuestionKind = "soft"
)

// CategoryGroup is a named set of category names.
type CategoryGroup struct {
	Name       string   `json:"group_name"`
	Categories []string `json:"categories"`
}

// Category is a named, ordered list of subcategory tags.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// MatcherQuestion is one step of a taxonomy domain's fixed dialogue.
// The i-th path token answers the i-th question.
type MatcherQuestion struct {
	// ID names the dimension (e.g. "commitment_level").
	ID string `json:"id"`

	// Question is the prompt shown to the user.
	Question string `json:"question"`

	// Kind is the question's role in the dialogue.
	Kind QuestionKind `json:"kind"`

	// Options are the static choices for soft questions. Group, category
	// and subcategory questions derive options from the taxonomy and must
	// leave this empty.
	Options []string `json:"options,omitempty"`

	// Multiple marks a multi-select question. Subcategory questions are
	// always multi-select; soft questions may be.
	Multiple bool `json:"multiple,omitempty"`

	// SelectCount is the exact number of selections required by a
	// subcategory question. Selecting fewer or more is a request error,
	// never silently truncated or padded.
	SelectCount int `json:"select_count,omitempty"`

	// Optional marks a trailing soft question that may be left unanswered
	// when scoring.
	Optional bool `json:"optional,omitempty"`
}

// Taxonomy is a flat matcher domain: groups of categories with subcategory
// tags, a matcher dialogue, and the entity pool scored against it.
type Taxonomy struct {
	Groups     []CategoryGroup   `json:"category_groups"`
	Categories []Category        `json:"categories"`
	Questions  []MatcherQuestion `json:"matcher_questions"`
	Entities   []Entity          `json:"entities"`

	// Lookup indexes, built by seal().
	groupsByName     map[string]*CategoryGroup
	categoriesByName map[string]*Category
}

// Group returns the category group with the given name, or nil.
func (t *Taxonomy) Group(name string) *CategoryGroup {
	return t.groupsByName[name]
}

// Category returns the category with the given name, or nil.
func (t *Taxonomy) Category(name string) *Category {
	return t.categoriesByName[name]
}

// RequiredQuestions returns the number of questions that must be answered
// before scoring. Optional questions are trailing by validation, so this is
// the count of non-optional questions.
func (t *Taxonomy) RequiredQuestions() int {
	n := 0
	for i := range t.Questions {
		if !t.Questions[i].Optional {
			n++
		}
	}
	return n
}

// seal builds lookup indexes and entity tag sets.
func (t *Taxonomy) seal() {
	t.groupsByName = make(map[string]*CategoryGroup, len(t.Groups))
	for i := range t.Groups {
		t.groupsByName[t.Groups[i].Name] = &t.Groups[i]
	}
	t.categoriesByName = make(map[string]*Category, len(t.Categories))
	for i := range t.Categories {
		t.categoriesByName[t.Categories[i].Name] = &t.Categories[i]
	}
	for i := range t.Entities {
		t.Entities[i].seal()
	}
}

// validateTaxonomy checks the structural invariants of a taxonomy domain:
// referential integrity between groups, categories and questions; exactly
// one group/category/subcategory step in dialogue order; a positive
// select count; static options only on soft questions; optional questions
// trailing; and unique entity names.
func validateTaxonomy(domain string, t *Taxonomy) error {
	if len(t.Groups) == 0 {
		return contentErrorf(domain, "category_groups", "taxonomy has no category groups")
	}

	groupNames := make(map[string]struct{}, len(t.Groups))
	for i, g := range t.Groups {
		if g.Name == "" {
			return contentErrorf(domain, fmt.Sprintf("category_groups[%d].group_name", i), "group has empty name")
		}
		if _, dup := groupNames[g.Name]; dup {
			return contentErrorf(domain, fmt.Sprintf("category_groups[%d].group_name", i), "duplicate group %q", g.Name)
		}
		groupNames[g.Name] = struct{}{}
		if len(g.Categories) == 0 {
			return contentErrorf(domain, fmt.Sprintf("category_groups[%d].categories", i), "group %q has no categories", g.Name)
		}
	}

	categoryNames := make(map[string]struct{}, len(t.Categories))
	for i, c := range t.Categories {
		if c.Name == "" {
			return contentErrorf(domain, fmt.Sprintf("categories[%d].name", i), "category has empty name")
		}
		if _, dup := categoryNames[c.Name]; dup {
			return contentErrorf(domain, fmt.Sprintf("categories[%d].name", i), "duplicate category %q", c.Name)
		}
		categoryNames[c.Name] = struct{}{}
		if len(c.Subcategories) == 0 {
			return contentErrorf(domain, fmt.Sprintf("categories[%d].subcategories", i), "category %q has no subcategories", c.Name)
		}
	}

	// Every category referenced by a group must be declared.
	for i, g := range t.Groups {
		for _, name := range g.Categories {
			if _, ok := categoryNames[name]; !ok {
				return contentErrorf(domain, fmt.Sprintf("category_groups[%d].categories", i),
					"group %q references undeclared category %q", g.Name, name)
			}
		}
	}

	if err := validateQuestions(domain, t.Questions); err != nil {
		return err
	}

	entityNames := make(map[string]struct{}, len(t.Entities))
	for i, e := range t.Entities {
		if e.Name == "" {
			return contentErrorf(domain, fmt.Sprintf("entities[%d].name", i), "entity has empty name")
		}
		if _, dup := entityNames[e.Name]; dup {
			return contentErrorf(domain, fmt.Sprintf("entities[%d].name", i), "duplicate entity name %q within domain", e.Name)
		}
		entityNames[e.Name] = struct{}{}
	}

	return nil
}

// validateQuestions enforces the dialogue structure: group, then category,
// then subcategories, then zero or more soft dimensions, with optional
// questions only in the trailing positions.
func validateQuestions(domain string, questions []MatcherQuestion) error {
	if len(questions) < 3 {
		return contentErrorf(domain, "matcher_questions", "dialogue needs at least group, category and subcategory steps")
	}

	wantKinds := []QuestionKind{QuestionCategoryGroup, QuestionCategory, QuestionSubcategories}
	for i, want := range wantKinds {
		if questions[i].Kind != want {
			return contentErrorf(domain, fmt.Sprintf("matcher_questions[%d].kind", i),
				"expected %q at step %d, got %q", want, i, questions[i].Kind)
		}
	}

	optionalSeen := false
	for i, q := range questions {
		field := fmt.Sprintf("matcher_questions[%d]", i)
		if q.ID == "" {
			return contentErrorf(domain, field+".id", "question has empty id")
		}
		if q.Question == "" {
			return contentErrorf(domain, field+".question", "question has empty prompt")
		}

		if i >= len(wantKinds) && q.Kind != QuestionSoft {
			return contentErrorf(domain, field+".kind", "only soft questions may follow the core dialogue steps, got %q", q.Kind)
		}

		switch q.Kind {
		case QuestionCategoryGroup, QuestionCategory:
			if len(q.Options) != 0 {
				return contentErrorf(domain, field+".options", "%s question derives options from the taxonomy", q.Kind)
			}
			if q.Multiple {
				return contentErrorf(domain, field+".multiple", "%s question is single-select", q.Kind)
			}
		case QuestionSubcategories:
			if len(q.Options) != 0 {
				return contentErrorf(domain, field+".options", "subcategory question derives options from the chosen category")
			}
			if q.SelectCount < 1 {
				return contentErrorf(domain, field+".select_count", "selection count must be >= 1, got %d", q.SelectCount)
			}
		case QuestionSoft:
			if i < len(wantKinds) {
				return contentErrorf(domain, field+".kind", "soft question before core dialogue steps")
			}
			if len(q.Options) == 0 {
				return contentErrorf(domain, field+".options", "soft question has no options")
			}
		default:
			return contentErrorf(domain, field+".kind", "unknown question kind %q", q.Kind)
		}

		if q.Kind != QuestionSoft && q.Optional {
			return contentErrorf(domain, field+".optional", "%s question cannot be optional", q.Kind)
		}
		if optionalSeen && !q.Optional {
			return contentErrorf(domain, field+".optional", "required question after optional question")
		}
		if q.Optional {
			optionalSeen = true
		}
	}

	return nil
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package match implements the matching engine for taxonomy-shaped domains.
//
// The dialogue is position-indexed: the i-th path token answers the i-th
// matcher question. Multi-select steps encode their selections as one
// comma-joined token in selection order. Once the required questions are
// answered, Score turns the path into a ranked entity list: a hard
// categorical filter, mandatory subcategory overlap, and a bounded bonus
// from soft dimensions.
package match

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gatorguide/gatorguide/internal/knowledge"
)

// Sentinel errors for the matching engine. All are request-scoped.
var (
	// ErrPathTooLong indicates the path has more tokens than declared questions.
	ErrPathTooLong = errors.New("path too long")

	// ErrIncompletePath indicates scoring was requested before all required
	// questions were answered.
	ErrIncompletePath = errors.New("incomplete path")

	// ErrUnknownSelection indicates a path token names an option not
	// declared for its question.
	ErrUnknownSelection = errors.New("unknown selection")

	// ErrSelectionCount indicates a multi-select token carries a number of
	// selections different from the question's declared count.
	ErrSelectionCount = errors.New("wrong selection count")
)

// MultiSelectSeparator joins multi-select choices into one path token.
const MultiSelectSeparator = ","

// QuestionSpec describes the next unanswered question, with its options
// already resolved against prior answers (categories within the chosen
// group, subcategories within the chosen category).
type QuestionSpec struct {
	// Index is the question's position in the dialogue.
	Index int

	// ID names the dimension being asked.
	ID string

	// Question is the prompt to show.
	Question string

	// Options are the selectable values at this step.
	Options []string

	// Multiple marks multi-select questions.
	Multiple bool

	// SelectCount is the exact selection count for subcategory questions,
	// zero otherwise.
	SelectCount int

	// Optional marks a trailing-skippable soft question.
	Optional bool

	// Total is the number of questions in the dialogue.
	Total int
}

// Result is one ranked entity: the entity, its score, and the selected
// subcategory tags it matched (in selection order).
type Result struct {
	Entity      *knowledge.Entity
	Score       int
	MatchedTags []string
}

// NextStep returns the first unanswered question for the given path, with
// dynamic options resolved. Returns (nil, nil) when every question is
// answered. All consumed tokens are validated, so a stale client path
// fails here rather than producing a question with impossible options.
func NextStep(taxonomy *knowledge.Taxonomy, path []string) (*QuestionSpec, error) {
	if len(path) > len(taxonomy.Questions) {
		return nil, fmt.Errorf("%w: %d tokens for %d questions", ErrPathTooLong, len(path), len(taxonomy.Questions))
	}

	answers, err := parseAnswers(taxonomy, path)
	if err != nil {
		return nil, err
	}
	if len(path) == len(taxonomy.Questions) {
		return nil, nil
	}

	index := len(path)
	question := &taxonomy.Questions[index]
	options, err := optionsFor(taxonomy, question, answers)
	if err != nil {
		return nil, err
	}

	return &QuestionSpec{
		Index:       index,
		ID:          question.ID,
		Question:    question.Question,
		Options:     options,
		Multiple:    question.Multiple || question.Kind == knowledge.QuestionSubcategories,
		SelectCount: question.SelectCount,
		Optional:    question.Optional,
		Total:       len(taxonomy.Questions),
	}, nil
}

// Score ranks the taxonomy's entities against a completed answer path.
//
// Hard filter: an entity lacking the chosen category tag is excluded with
// no partial credit. Core score: the subcategory overlap; zero overlap
// excludes the entity. Soft dimensions add at most one point each. The
// list is sorted by score descending, then name ascending, and is never
// truncated here: an empty result is a valid outcome, not an error.
func Score(taxonomy *knowledge.Taxonomy, path []string) ([]Result, error) {
	if len(path) > len(taxonomy.Questions) {
		return nil, fmt.Errorf("%w: %d tokens for %d questions", ErrPathTooLong, len(path), len(taxonomy.Questions))
	}
	if len(path) < taxonomy.RequiredQuestions() {
		return nil, fmt.Errorf("%w: %d of %d required questions answered",
			ErrIncompletePath, len(path), taxonomy.RequiredQuestions())
	}

	answers, err := parseAnswers(taxonomy, path)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(taxonomy.Entities))
	for i := range taxonomy.Entities {
		entity := &taxonomy.Entities[i]

		// Hard filter: categorical match on the chosen category.
		if !entity.HasTag(answers.category) {
			continue
		}

		// Core score: overlap with the selected subcategories.
		var matched []string
		for _, sub := range answers.subcategories {
			if entity.HasTag(sub) {
				matched = append(matched, sub)
			}
		}
		if len(matched) == 0 {
			continue
		}

		// Soft dimensions: +1 per dimension with any tag match, capped at
		// one point each so no dimension can outweigh the core overlap.
		softBonus := 0
		for _, selections := range answers.soft {
			for _, sel := range selections {
				if entity.HasTag(sel) {
					softBonus++
					break
				}
			}
		}

		results = append(results, Result{
			Entity:      entity,
			Score:       len(matched) + softBonus,
			MatchedTags: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entity.Name < results[j].Entity.Name
	})
	return results, nil
}

// parsedAnswers is the typed view of a validated answer path.
type parsedAnswers struct {
	group         string
	category      string
	subcategories []string
	// soft holds the selections of each answered soft question.
	soft [][]string
}

// parseAnswers validates every token in path against its question and
// returns the typed answers accumulated so far.
func parseAnswers(taxonomy *knowledge.Taxonomy, path []string) (*parsedAnswers, error) {
	answers := &parsedAnswers{}

	for i, token := range path {
		question := &taxonomy.Questions[i]

		switch question.Kind {
		case knowledge.QuestionCategoryGroup:
			if taxonomy.Group(token) == nil {
				return nil, fmt.Errorf("%w: category group %q", ErrUnknownSelection, token)
			}
			answers.group = token

		case knowledge.QuestionCategory:
			group := taxonomy.Group(answers.group)
			if !contains(group.Categories, token) {
				return nil, fmt.Errorf("%w: category %q not in group %q", ErrUnknownSelection, token, answers.group)
			}
			answers.category = token

		case knowledge.QuestionSubcategories:
			category := taxonomy.Category(answers.category)
			selections, err := splitMultiSelect(token, question, category.Subcategories)
			if err != nil {
				return nil, err
			}
			answers.subcategories = selections

		case knowledge.QuestionSoft:
			selections := strings.Split(token, MultiSelectSeparator)
			if !question.Multiple && len(selections) > 1 {
				return nil, fmt.Errorf("%w: question %q is single-select", ErrSelectionCount, question.ID)
			}
			for _, sel := range selections {
				if !contains(question.Options, sel) {
					return nil, fmt.Errorf("%w: %q for question %q", ErrUnknownSelection, sel, question.ID)
				}
			}
			answers.soft = append(answers.soft, selections)
		}
	}

	return answers, nil
}

// splitMultiSelect decodes a composite subcategory token, enforcing the
// exact declared selection count and rejecting duplicates and undeclared
// values. Selections keep their client order; that order is deterministic
// because it is part of the path itself.
func splitMultiSelect(token string, question *knowledge.MatcherQuestion, declared []string) ([]string, error) {
	selections := strings.Split(token, MultiSelectSeparator)
	if len(selections) != question.SelectCount {
		return nil, fmt.Errorf("%w: question %q requires exactly %d selections, got %d",
			ErrSelectionCount, question.ID, question.SelectCount, len(selections))
	}

	seen := make(map[string]struct{}, len(selections))
	for _, sel := range selections {
		if !contains(declared, sel) {
			return nil, fmt.Errorf("%w: subcategory %q", ErrUnknownSelection, sel)
		}
		if _, dup := seen[sel]; dup {
			return nil, fmt.Errorf("%w: duplicate selection %q", ErrSelectionCount, sel)
		}
		seen[sel] = struct{}{}
	}
	return selections, nil
}

// optionsFor resolves the selectable values for a question given prior answers.
func optionsFor(taxonomy *knowledge.Taxonomy, question *knowledge.MatcherQuestion, answers *parsedAnswers) ([]string, error) {
	switch question.Kind {
	case knowledge.QuestionCategoryGroup:
		names := make([]string, len(taxonomy.Groups))
		for i := range taxonomy.Groups {
			names[i] = taxonomy.Groups[i].Name
		}
		return names, nil
	case knowledge.QuestionCategory:
		return taxonomy.Group(answers.group).Categories, nil
	case knowledge.QuestionSubcategories:
		return taxonomy.Category(answers.category).Subcategories, nil
	default:
		return question.Options, nil
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package navigate implements the path interpreter for tree-shaped domains.
//
// The interpreter is stateless: the client holds the full path (the ordered
// answer tokens picked so far) and every request replays it from the
// domain's root. Back-navigation is a client-side truncation of the path;
// the server never stores session state, which makes resolution idempotent
// and cacheable by path value.
package navigate

import (
	"errors"
	"fmt"

	"github.com/gatorguide/gatorguide/internal/knowledge"
)

// Sentinel errors for path resolution. Both are request-scoped: they mean
// the client sent stale or tampered state, never that the server is broken.
var (
	// ErrInvalidPath indicates a path token matches no edge at the current node.
	ErrInvalidPath = errors.New("invalid path")

	// ErrPathExhausted indicates the path continues past a terminal edge.
	ErrPathExhausted = errors.New("path exhausted")
)

// Resolution is the interpreter's answer to "where is the user now".
// Either Question/Options are populated (an internal node) or Terminal is
// non-nil (a terminal entity list); never both.
type Resolution struct {
	// Question is the current node's prompt. Empty at a terminal.
	Question string

	// Options are the answer labels selectable at the current node.
	Options []string

	// Terminal is the entity list if the path ended on a terminal edge,
	// nil otherwise. An empty non-nil slice is a valid empty terminal.
	Terminal []knowledge.Entity

	// Breadcrumbs are the answer labels consumed along the path, in order.
	Breadcrumbs []string
}

// IsTerminal reports whether the resolution ended the dialogue.
func (r *Resolution) IsTerminal() bool {
	return r.Terminal != nil
}

// Resolve replays path from root and returns the current position.
// Pure and deterministic: the same root and path always produce the same
// resolution.
func Resolve(root *knowledge.TreeNode, path []string) (*Resolution, error) {
	node := root
	var terminal []knowledge.Entity

	for i, token := range path {
		if node == nil {
			// The previous token landed on a terminal edge; entities have
			// no further options to descend into.
			return nil, fmt.Errorf("%w: token %d %q continues past a terminal", ErrPathExhausted, i, token)
		}

		edge := findEdge(node, token)
		if edge == nil {
			return nil, fmt.Errorf("%w: no option %q at step %d", ErrInvalidPath, token, i)
		}

		if edge.Terminal() {
			node = nil
			terminal = edge.Results
			if terminal == nil {
				terminal = []knowledge.Entity{}
			}
		} else {
			node = edge.Node
		}
	}

	breadcrumbs, err := Breadcrumbs(root, path)
	if err != nil {
		return nil, err
	}

	if node == nil {
		return &Resolution{Terminal: terminal, Breadcrumbs: breadcrumbs}, nil
	}

	options := make([]string, len(node.Options))
	for i := range node.Options {
		options[i] = node.Options[i].Answer
	}
	return &Resolution{
		Question:    node.Question,
		Options:     options,
		Breadcrumbs: breadcrumbs,
	}, nil
}

// Breadcrumbs replays path and collects the answer labels chosen at each
// step. The trail the client renders is the labels, not the question text.
// Satisfies the truncation law: Breadcrumbs(root, p[:n]) is always a prefix
// of Breadcrumbs(root, p).
func Breadcrumbs(root *knowledge.TreeNode, path []string) ([]string, error) {
	crumbs := make([]string, 0, len(path))
	node := root

	for i, token := range path {
		if node == nil {
			return nil, fmt.Errorf("%w: token %d %q continues past a terminal", ErrPathExhausted, i, token)
		}
		edge := findEdge(node, token)
		if edge == nil {
			return nil, fmt.Errorf("%w: no option %q at step %d", ErrInvalidPath, token, i)
		}
		crumbs = append(crumbs, edge.Answer)
		if edge.Terminal() {
			node = nil
		} else {
			node = edge.Node
		}
	}
	return crumbs, nil
}

// findEdge returns the edge whose answer label equals token exactly, or nil.
func findEdge(node *knowledge.TreeNode, token string) *knowledge.OptionEdge {
	for i := range node.Options {
		if node.Options[i].Answer == token {
			return &node.Options[i]
		}
	}
	return nil
}

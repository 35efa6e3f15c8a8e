// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import "fmt"

// maxTreeDepth bounds tree validation. A guided dialogue is a handful of
// questions deep; anything past this indicates authoring error or a cyclic
// structure smuggled in through a future non-inline encoding.
const maxTreeDepth = 16

// TreeNode is an internal node of a strict decision tree: a question plus
// an ordered list of option edges.
type TreeNode struct {
	// Question is the prompt shown to the user at this node.
	Question string `json:"question"`

	// Options is the ordered list of answer edges. Always non-empty for a
	// valid node.
	Options []OptionEdge `json:"options"`
}

// OptionEdge is one selectable answer at a tree node. Exactly one of Node
// and Results is set: an edge either descends to a child question or
// terminates in an entity list, never both and never neither.
type OptionEdge struct {
	// Answer is the human-readable label the user picks. Path tokens match
	// against it exactly.
	Answer string `json:"answer"`

	// Node is the child question node, if the edge descends.
	Node *TreeNode `json:"node,omitempty"`

	// Results is the terminal entity list, if the edge terminates. An empty
	// but present list is a valid (empty) terminal.
	Results []Entity `json:"results,omitempty"`

	// terminal records that the content file carried a results key, so an
	// empty terminal list is distinguishable from an absent one.
	terminal bool
}

// Terminal reports whether this edge ends the dialogue.
func (e *OptionEdge) Terminal() bool {
	return e.terminal || e.Results != nil
}

// validateTree checks every structural invariant of a tree domain:
// non-empty nodes, exactly-one-of edge payloads, bounded depth, unique
// entity names across all terminals, and unique answer labels per node.
func validateTree(domain string, root *TreeNode) error {
	if root == nil {
		return contentErrorf(domain, "root", "tree domain has no root node")
	}
	seen := make(map[string]struct{})
	return validateNode(domain, root, "root", 0, seen)
}

func validateNode(domain string, node *TreeNode, pos string, depth int, entityNames map[string]struct{}) error {
	if depth > maxTreeDepth {
		return contentErrorf(domain, pos, "tree exceeds maximum depth %d (cycle or runaway nesting)", maxTreeDepth)
	}
	if node.Question == "" {
		return contentErrorf(domain, pos+".question", "internal node has empty question")
	}
	if len(node.Options) == 0 {
		return contentErrorf(domain, pos+".options", "internal node has no option edges")
	}

	answers := make(map[string]struct{}, len(node.Options))
	for i := range node.Options {
		edge := &node.Options[i]
		edgePos := fmt.Sprintf("%s.options[%d]", pos, i)

		if edge.Answer == "" {
			return contentErrorf(domain, edgePos+".answer", "option edge has empty answer label")
		}
		if _, dup := answers[edge.Answer]; dup {
			return contentErrorf(domain, edgePos+".answer", "duplicate answer label %q", edge.Answer)
		}
		answers[edge.Answer] = struct{}{}

		hasChild := edge.Node != nil
		hasResults := edge.Terminal()
		switch {
		case hasChild && hasResults:
			return contentErrorf(domain, edgePos, "edge carries both a child node and a terminal list")
		case !hasChild && !hasResults:
			return contentErrorf(domain, edgePos, "edge carries neither a child node nor a terminal list")
		case hasChild:
			if err := validateNode(domain, edge.Node, edgePos+".node", depth+1, entityNames); err != nil {
				return err
			}
		default:
			for j := range edge.Results {
				entity := &edge.Results[j]
				if entity.Name == "" {
					return contentErrorf(domain, fmt.Sprintf("%s.results[%d].name", edgePos, j), "entity has empty name")
				}
				if _, dup := entityNames[entity.Name]; dup {
					return contentErrorf(domain, fmt.Sprintf("%s.results[%d].name", edgePos, j),
						"duplicate entity name %q within domain", entity.Name)
				}
				entityNames[entity.Name] = struct{}{}
			}
		}
	}
	return nil
}

// sealTree builds entity tag indexes throughout the tree.
func sealTree(node *TreeNode) {
	for i := range node.Options {
		edge := &node.Options[i]
		if edge.Node != nil {
			sealTree(edge.Node)
			continue
		}
		edge.terminal = true
		for j := range edge.Results {
			edge.Results[j].seal()
		}
	}
}

// countTreeEntities returns the number of entities across all terminals.
func countTreeEntities(node *TreeNode) int {
	n := 0
	for i := range node.Options {
		edge := &node.Options[i]
		if edge.Node != nil {
			n += countTreeEntities(edge.Node)
		} else {
			n += len(edge.Results)
		}
	}
	return n
}

// treeDepth returns the maximum question depth from this node.
func treeDepth(node *TreeNode) int {
	deepest := 0
	for i := range node.Options {
		if child := node.Options[i].Node; child != nil {
			if d := treeDepth(child); d > deepest {
				deepest = d
			}
		}
	}
	return deepest + 1
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gatorguide/gatorguide/internal/logging"
)

// Shape discriminates the two domain encodings. Downstream components
// dispatch on it: tree domains go to the path interpreter, taxonomy
// domains to the matching engine.
type Shape int

const (
	// ShapeTree is a strict decision-tree domain.
	ShapeTree Shape = iota
	// ShapeTaxonomy is a flat matcher domain.
	ShapeTaxonomy
)

// String returns the wire name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeTree:
		return "tree"
	case ShapeTaxonomy:
		return "taxonomy"
	default:
		return "unknown"
	}
}

// Domain is one loaded, validated guided-navigation subject area.
// Exactly one of Tree and Taxonomy is non-nil, per Shape.
type Domain struct {
	Name     string
	Shape    Shape
	Tree     *TreeNode
	Taxonomy *Taxonomy
}

// Descriptor summarizes a domain for the directory endpoint and for
// presenter dispatch.
type Descriptor struct {
	Name      string `json:"name"`
	Shape     string `json:"shape"`
	Questions int    `json:"questions"`
	Entities  int    `json:"entities"`
}

// Describe builds the domain's descriptor. For tree domains Questions is
// the maximum dialogue depth; for taxonomy domains it is the declared
// question count.
func (d *Domain) Describe() Descriptor {
	desc := Descriptor{Name: d.Name, Shape: d.Shape.String()}
	switch d.Shape {
	case ShapeTree:
		desc.Questions = treeDepth(d.Tree)
		desc.Entities = countTreeEntities(d.Tree)
	case ShapeTaxonomy:
		desc.Questions = len(d.Taxonomy.Questions)
		desc.Entities = len(d.Taxonomy.Entities)
	}
	return desc
}

// contentFile is the raw superset of both content encodings. Shape is
// sniffed from which keys are present: a tree file carries "root", a
// taxonomy file carries "category_groups". Carrying both, or neither,
// is malformed.
type contentFile struct {
	Root       *TreeNode         `json:"root"`
	Groups     []CategoryGroup   `json:"category_groups"`
	Categories []Category        `json:"categories"`
	Questions  []MatcherQuestion `json:"matcher_questions"`
	Entities   []Entity          `json:"entities"`
}

// Load parses and validates one domain's content. The domain name is used
// only for diagnostics and the resulting Domain's identity.
func Load(name string, data []byte) (*Domain, error) {
	var raw contentFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, contentErrorf(name, "", "invalid JSON: %v", err)
	}

	hasRoot := raw.Root != nil
	hasTaxonomy := raw.Groups != nil || raw.Categories != nil || raw.Questions != nil

	switch {
	case hasRoot && hasTaxonomy:
		return nil, contentErrorf(name, "root", "content mixes tree and taxonomy shapes")
	case hasRoot:
		if err := validateTree(name, raw.Root); err != nil {
			return nil, err
		}
		sealTree(raw.Root)
		return &Domain{Name: name, Shape: ShapeTree, Tree: raw.Root}, nil
	case hasTaxonomy:
		taxonomy := &Taxonomy{
			Groups:     raw.Groups,
			Categories: raw.Categories,
			Questions:  raw.Questions,
			Entities:   raw.Entities,
		}
		if err := validateTaxonomy(name, taxonomy); err != nil {
			return nil, err
		}
		taxonomy.seal()
		return &Domain{Name: name, Shape: ShapeTaxonomy, Taxonomy: taxonomy}, nil
	default:
		return nil, contentErrorf(name, "", "content is neither tree-shaped (root) nor taxonomy-shaped (category_groups)")
	}
}

// LoadFile loads one domain from disk. The domain name is the file's base
// name without extension (housing.json -> housing).
func LoadFile(path string) (*Domain, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(path) //nolint:gosec // content paths come from config, not requests
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(name, data)
}

// LoadDir loads every *.json file in dir as a domain. Domains that fail
// validation are reported in the failures map and withheld; the remaining
// domains still load. A missing or unreadable directory is an error.
func LoadDir(dir string) ([]*Domain, map[string]error, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading content dir: %w", err)
	}

	var domains []*Domain
	failures := make(map[string]error)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		domain, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logging.Error().Err(err).Str("domain", name).Msg("domain failed validation, withholding")
			failures[name] = err
			continue
		}
		logging.Info().
			Str("domain", domain.Name).
			Str("shape", domain.Shape.String()).
			Int("entities", domain.Describe().Entities).
			Msg("domain loaded")
		domains = append(domains, domain)
	}

	sort.Slice(domains, func(i, j int) bool { return domains[i].Name < domains[j].Name })
	return domains, failures, nil
}

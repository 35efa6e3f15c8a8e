// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Store holds the loaded domain set behind an atomic pointer. Reads are
// lock-free; Replace swaps the entire snapshot so concurrent requests see
// either the old or the new content in full, never a mix.
type Store struct {
	snapshot atomic.Pointer[snapshot]
}

// snapshot is one immutable generation of loaded content.
type snapshot struct {
	domains  map[string]*Domain
	ordered  []*Domain
	failures map[string]error
	loadedAt time.Time
}

// NewStore creates an empty store. Call Replace before serving.
func NewStore() *Store {
	s := &Store{}
	s.snapshot.Store(&snapshot{
		domains:  map[string]*Domain{},
		failures: map[string]error{},
		loadedAt: time.Now(),
	})
	return s
}

// Replace atomically installs a new domain set. Failures records domains
// whose content was rejected at load time; requests for those names get a
// wrapped ErrMalformedContent instead of ErrDomainNotFound.
func (s *Store) Replace(domains []*Domain, failures map[string]error) {
	byName := make(map[string]*Domain, len(domains))
	for _, d := range domains {
		byName[d.Name] = d
	}
	if failures == nil {
		failures = map[string]error{}
	}
	s.snapshot.Store(&snapshot{
		domains:  byName,
		ordered:  domains,
		failures: failures,
		loadedAt: time.Now(),
	})
}

// Domain returns the named domain. ErrDomainNotFound for unknown names;
// the original load error (matching ErrMalformedContent) for domains that
// were withheld at load time.
func (s *Store) Domain(name string) (*Domain, error) {
	snap := s.snapshot.Load()
	if d, ok := snap.domains[name]; ok {
		return d, nil
	}
	if loadErr, ok := snap.failures[name]; ok {
		return nil, fmt.Errorf("domain %q unavailable: %w", name, loadErr)
	}
	return nil, fmt.Errorf("%w: %q", ErrDomainNotFound, name)
}

// Descriptors lists the loaded domains in name order.
func (s *Store) Descriptors() []Descriptor {
	snap := s.snapshot.Load()
	descriptors := make([]Descriptor, 0, len(snap.ordered))
	for _, d := range snap.ordered {
		descriptors = append(descriptors, d.Describe())
	}
	return descriptors
}

// Len returns the number of served domains.
func (s *Store) Len() int {
	return len(s.snapshot.Load().domains)
}

// LoadedAt returns when the current snapshot was installed.
func (s *Store) LoadedAt() time.Time {
	return s.snapshot.Load().loadedAt
}

// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package knowledge

import (
	"errors"
	"sync"
	"testing"
)

func testDomain(t *testing.T, name string) *Domain {
	t.Helper()
	domain, err := Load(name, []byte(validTreeJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return domain
}

func TestStoreDomainLookup(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Replace([]*Domain{testDomain(t, "housing")}, map[string]error{
		"clubs": contentErrorf("clubs", "entities[0]", "broken"),
	})

	if _, err := store.Domain("housing"); err != nil {
		t.Errorf("Domain(housing) error = %v", err)
	}

	_, err := store.Domain("nonexistent")
	if !errors.Is(err, ErrDomainNotFound) {
		t.Errorf("Domain(nonexistent) error = %v, want ErrDomainNotFound", err)
	}

	// A withheld domain surfaces its load failure, not not-found.
	_, err = store.Domain("clubs")
	if !errors.Is(err, ErrMalformedContent) {
		t.Errorf("Domain(clubs) error = %v, want ErrMalformedContent", err)
	}
}

func TestStoreDescriptors(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Replace([]*Domain{testDomain(t, "housing")}, nil)

	descriptors := store.Descriptors()
	if len(descriptors) != 1 {
		t.Fatalf("len(Descriptors) = %d, want 1", len(descriptors))
	}
	if descriptors[0].Name != "housing" || descriptors[0].Shape != "tree" {
		t.Errorf("descriptor = %+v", descriptors[0])
	}
}

func TestStoreEmptyBeforeReplace(t *testing.T) {
	t.Parallel()

	store := NewStore()
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if _, err := store.Domain("anything"); !errors.Is(err, ErrDomainNotFound) {
		t.Errorf("error = %v, want ErrDomainNotFound", err)
	}
}

// TestStoreAtomicReplace hammers the store with concurrent readers during
// replacement. Each reader must observe a complete generation: either the
// old name set or the new one, never a blend.
func TestStoreAtomicReplace(t *testing.T) {
	t.Parallel()

	store := NewStore()
	oldGen := []*Domain{testDomain(t, "alpha"), testDomain(t, "beta")}
	newGen := []*Domain{testDomain(t, "gamma")}
	store.Replace(oldGen, nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errCh := make(chan string, 64)

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				_, alphaErr := store.Domain("alpha")
				_, gammaErr := store.Domain("gamma")
				// Exactly one generation should be visible.
				if (alphaErr == nil) == (gammaErr == nil) {
					select {
					case errCh <- "observed mixed store generations":
					default:
					}
					return
				}
			}
		}()
	}

	for range 100 {
		store.Replace(newGen, nil)
		store.Replace(oldGen, nil)
	}
	close(stop)
	wg.Wait()

	select {
	case msg := <-errCh:
		t.Fatal(msg)
	default:
	}
}

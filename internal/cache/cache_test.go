// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package cache

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/gatorguide/gatorguide/internal/models"
)

func testCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c, err := New(Options{TTL: ttl})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()
	c := testCache(t, time.Minute)

	view := &models.MenuView{
		Question:    "What style of housing are you looking for?",
		Options:     []models.Option{{Label: "Traditional Style", Value: "Traditional Style"}},
		Breadcrumbs: []string{},
	}
	if err := c.Set("housing", nil, false, view); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := c.Get("housing", nil, false)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Question != view.Question || !reflect.DeepEqual(got.Options, view.Options) {
		t.Errorf("Get() = %+v, want %+v", got, view)
	}
}

func TestCacheMiss(t *testing.T) {
	t.Parallel()
	c := testCache(t, time.Minute)

	if _, err := c.Get("housing", []string{"Traditional Style"}, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCacheKeysDoNotCollide(t *testing.T) {
	t.Parallel()
	c := testCache(t, time.Minute)

	a := &models.MenuView{Question: "a"}
	b := &models.MenuView{Question: "b"}

	// Tokens that would collide under naive concatenation.
	if err := c.Set("housing", []string{"ab", "c"}, false, a); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set("housing", []string{"a", "bc"}, false, b); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := c.Get("housing", []string{"ab", "c"}, false)
	if err != nil || got.Question != "a" {
		t.Errorf("Get(ab,c) = %+v, %v", got, err)
	}

	// finish is part of the key.
	if _, err := c.Get("housing", []string{"ab", "c"}, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("finish variant error = %v, want ErrNotFound", err)
	}
}

func TestCachePurge(t *testing.T) {
	t.Parallel()
	c := testCache(t, time.Minute)

	if err := c.Set("clubs", []string{"Academic & Intellectual"}, false, &models.MenuView{Question: "q"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Purge(); err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if _, err := c.Get("clubs", []string{"Academic & Intellectual"}, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("error after purge = %v, want ErrNotFound", err)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()
	c := testCache(t, 50*time.Millisecond)

	if err := c.Set("housing", nil, false, &models.MenuView{Question: "q"}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(120 * time.Millisecond)
	if _, err := c.Get("housing", nil, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("error after TTL = %v, want ErrNotFound", err)
	}
}

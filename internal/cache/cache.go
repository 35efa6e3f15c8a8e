// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package cache provides the menu response cache.
//
// Path resolution is pure, so a menu view is cacheable by (domain, path,
// finish) value alone. The cache is a BadgerDB instance running fully
// in memory: entries expire by TTL and the whole cache is dropped when the
// knowledge store reloads, so a stale view can never outlive its content
// generation.
package cache

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/gatorguide/gatorguide/internal/metrics"
	"github.com/gatorguide/gatorguide/internal/models"
)

// ErrNotFound indicates no live cache entry for the key.
var ErrNotFound = errors.New("cache entry not found")

// keySeparator joins key parts. Unit separator cannot appear in answer
// tokens that survive JSON string decoding of sane content.
const keySeparator = "\x1f"

// Options configures a Cache.
type Options struct {
	// TTL is the lifetime of one cached view.
	TTL time.Duration
}

// Cache stores rendered menu views keyed by domain and path.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// New opens an in-memory Badger instance for the cache.
func New(opts Options) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	return &Cache{db: db, ttl: opts.TTL}, nil
}

// Get returns the cached view for the key, or ErrNotFound.
func (c *Cache) Get(domain string, path []string, finish bool) (*models.MenuView, error) {
	var view models.MenuView

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(domain, path, finish))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get cached view: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &view)
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.CacheMisses.Inc()
		}
		return nil, err
	}

	metrics.CacheHits.Inc()
	return &view, nil
}

// Set stores a view under the key with the configured TTL. Cache write
// failures are returned for logging but callers treat them as non-fatal:
// serving uncached is always correct.
func (c *Cache) Set(domain string, path []string, finish bool, view *models.MenuView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal view: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(key(domain, path, finish), data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Purge drops every entry. Called on store reload so no response from the
// previous content generation survives.
func (c *Cache) Purge() error {
	metrics.CachePurges.Inc()
	return c.db.DropAll()
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// key builds the cache key. Paths with equal joined forms are equal paths
// because the separator never occurs inside a token.
func key(domain string, path []string, finish bool) []byte {
	k := domain + keySeparator + strings.Join(path, keySeparator)
	if finish {
		k += keySeparator + "!"
	}
	return []byte(k)
}

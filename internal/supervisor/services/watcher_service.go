// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gatorguide/gatorguide/internal/logging"
)

// ReloadFunc swaps in a fresh knowledge store generation and reports the
// loaded and withheld domain counts.
type ReloadFunc func() (loaded, withheld int, err error)

// ContentWatcherService watches the content directory and triggers a store
// reload when a domain file changes. Editor save patterns produce bursts
// of events (create, write, rename), so events are debounced into a single
// reload per burst.
//
// A reload that fails leaves the previous generation serving; the watcher
// itself stays up and will retry on the next change.
type ContentWatcherService struct {
	dir      string
	debounce time.Duration
	reload   ReloadFunc
}

// NewContentWatcherService creates a watcher for dir.
func NewContentWatcherService(dir string, debounce time.Duration, reload ReloadFunc) *ContentWatcherService {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &ContentWatcherService{
		dir:      dir,
		debounce: debounce,
		reload:   reload,
	}
}

// Serve implements suture.Service. Runs until ctx is canceled; a watcher
// setup failure is returned so the supervisor can back off and retry.
func (s *ContentWatcherService) Serve(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	logging.Info().Str("dir", s.dir).Msg("content watcher started")

	// The timer is created stopped; the first relevant event arms it.
	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if !relevantEvent(event) {
				continue
			}
			logging.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("content change detected")
			// Re-arm; bursts collapse into one reload.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			logging.Warn().Err(err).Msg("content watcher error")

		case <-timer.C:
			loaded, withheld, err := s.reload()
			if err != nil {
				logging.Error().Err(err).Msg("content reload failed, keeping previous generation")
				continue
			}
			logging.Info().Int("loaded", loaded).Int("withheld", withheld).Msg("content reloaded by watcher")
		}
	}
}

// relevantEvent reports whether the event can change domain content.
func relevantEvent(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".json") {
		return false
	}
	return event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}

// String identifies the service in supervisor logs.
func (s *ContentWatcherService) String() string {
	return "content-watcher"
}

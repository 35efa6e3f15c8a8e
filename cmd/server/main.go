// GatorGuide - Campus Guided Recommendation Engine
// Copyright 2026 GatorGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gatorguide/gatorguide

// Package main is the entry point for the GatorGuide server.
//
// GatorGuide serves a guided recommendation dialogue for campus subject
// areas (housing, clubs, libraries). Knowledge lives in JSON content
// files; the server holds no session state, so every request replays the
// client-held answer path against an immutable in-memory store.
//
// # Startup order
//
//  1. Configuration: Koanf v2 layered load (defaults, YAML file, env)
//  2. Logging: zerolog, level/format from config
//  3. Knowledge store: load and validate every domain in content.dir
//  4. Response cache: in-memory BadgerDB keyed by domain+path
//  5. Supervisor tree: content watcher and HTTP server under suture
//
// # Signal handling
//
// SIGINT/SIGTERM cancel the supervisor context; the HTTP server drains
// in-flight requests within server.shutdown_timeout before exit.
//
// # Example
//
//	export GATORGUIDE_CONTENT_DIR=/srv/gatorguide/content
//	export GATORGUIDE_PORT=8470
//	export LOG_LEVEL=debug
//	./gatorguide
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gatorguide/gatorguide/internal/api"
	"github.com/gatorguide/gatorguide/internal/cache"
	"github.com/gatorguide/gatorguide/internal/config"
	"github.com/gatorguide/gatorguide/internal/knowledge"
	"github.com/gatorguide/gatorguide/internal/logging"
	"github.com/gatorguide/gatorguide/internal/metrics"
	"github.com/gatorguide/gatorguide/internal/presenter"
	"github.com/gatorguide/gatorguide/internal/supervisor"
	"github.com/gatorguide/gatorguide/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; stderr is all we have.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().Str("content_dir", cfg.Content.Dir).Msg("Starting GatorGuide")

	store := knowledge.NewStore()
	reload := makeReload(store, cfg.Content.Dir)

	loaded, withheld, err := reload()
	if err != nil {
		logging.Fatal().Err(err).Msg("Initial content load failed")
	}
	if loaded == 0 {
		// Not fatal: the watcher or an admin reload can bring domains in,
		// and readiness reports the store state honestly.
		logging.Warn().Msg("No domains loaded at startup")
	}
	logging.Info().Int("loaded", loaded).Int("withheld", withheld).Msg("Knowledge store initialized")
	metrics.RecordReload("startup", loaded, withheld, nil)

	var responseCache *cache.Cache
	if cfg.Cache.Enabled {
		responseCache, err = cache.New(cache.Options{TTL: cfg.Cache.TTL})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open response cache")
		}
		defer responseCache.Close()
	}

	// Reloads triggered at runtime must also drop the response cache so no
	// view from the previous generation survives.
	runtimeReload := func() (int, int, error) {
		loaded, withheld, err := reload()
		if err == nil && responseCache != nil {
			if purgeErr := responseCache.Purge(); purgeErr != nil {
				logging.Warn().Err(purgeErr).Msg("Failed to purge response cache after reload")
			}
		}
		return loaded, withheld, err
	}

	handler := api.NewHandler(store, presenter.New(store), responseCache,
		func() (int, int, error) {
			loaded, withheld, err := runtimeReload()
			metrics.RecordReload("admin", loaded, withheld, err)
			return loaded, withheld, err
		},
		cfg.Content.ReloadCooldown,
	)
	router := api.NewRouter(handler, cfg)

	slogLogger := slog.New(logging.NewSlogHandler())
	tree := supervisor.NewTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	if cfg.Content.Watch {
		tree.AddContentService(services.NewContentWatcherService(
			cfg.Content.Dir,
			cfg.Content.WatchDebounce,
			func() (int, int, error) {
				loaded, withheld, err := runtimeReload()
				metrics.RecordReload("watcher", loaded, withheld, err)
				return loaded, withheld, err
			},
		))
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", cfg.Addr()).Msg("Serving")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree failed")
	}
	logging.Info().Msg("Shutdown complete")
}

// makeReload builds the store reload function: load every domain from dir
// and atomically swap the new generation in. Failures of individual
// domains withhold only those domains; a failure to read the directory
// leaves the current generation untouched.
func makeReload(store *knowledge.Store, dir string) func() (int, int, error) {
	return func() (int, int, error) {
		domains, failures, err := knowledge.LoadDir(dir)
		if err != nil {
			return 0, 0, err
		}
		store.Replace(domains, failures)
		return len(domains), len(failures), nil
	}
}

// Command metcat is the interactive console browser for the Met Museum
// collection. All lookups go through one shared in-memory cache; an
// optional diagnostics HTTP server exposes the cache counters.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/catalog"
	"github.com/adeilh/metcat/config"
	"github.com/adeilh/metcat/diag"
	"github.com/adeilh/metcat/metapi"
	"github.com/adeilh/metcat/nationality"
	"github.com/adeilh/metcat/ui"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "metcat: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath        = flag.String("config", "", "path to YAML config file (defaults apply when empty)")
		nationalitiesPath = flag.String("nationalities", "", "override for the nationalities list file")
		diagEnabled       = flag.Bool("diag", false, "enable the diagnostics HTTP server")
		verbose           = flag.Bool("verbose", false, "log at debug level")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *nationalitiesPath != "" {
		cfg.Nationalities = *nationalitiesPath
	}
	if *diagEnabled {
		cfg.Diag.Enabled = true
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := cache.New(
		cache.WithMaxEntries(cfg.Cache.MaxEntries),
		cache.WithTTL(cache.Artworks, cfg.Cache.ArtworkTTL),
		cache.WithTTL(cache.Departments, cfg.Cache.DepartmentTTL),
		cache.WithTTL(cache.Searches, cfg.Cache.SearchTTL),
		cache.WithTTL(cache.DepartmentIDs, cfg.Cache.DepartmentIDsTTL),
	)
	if err != nil {
		return err
	}

	client := metapi.NewClient(
		metapi.WithBaseURL(cfg.API.BaseURL),
		metapi.WithTimeout(cfg.API.Timeout),
		metapi.WithUserAgent(cfg.API.UserAgent),
		metapi.WithRetry(cfg.API.RetryCount, cfg.API.RetryWait),
		metapi.WithRateLimit(cfg.API.RequestsPerSecond, 8),
	)

	nationalities := nationality.NewManager(cfg.Nationalities)
	if err := nationalities.Load(); err != nil {
		log.Warn("nationality list unavailable, nationality search disabled", "error", err)
	} else {
		log.Debug("nationality list loaded", "entries", nationalities.Len())
	}

	artworks := catalog.NewArtworkService(client, store, catalog.WithLogger(log))
	search := catalog.NewSearchService(client, artworks, nationalities, store, catalog.WithLogger(log))
	console := ui.NewConsole(search, artworks, nationalities, store, ui.WithConsoleLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop() // leaving the menu shuts the diag server down too
		return console.Run(ctx)
	})
	if cfg.Diag.Enabled {
		server := diag.NewServer(store, diag.WithAddress(cfg.Diag.Address), diag.WithLogger(log))
		g.Go(func() error {
			if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

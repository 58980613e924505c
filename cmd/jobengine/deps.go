package main

import (
	"context"
	"fmt"
	"log"

	"github.com/purplesquirrel/jobengine/internal/aggregate"
	"github.com/purplesquirrel/jobengine/internal/catalog"
	"github.com/purplesquirrel/jobengine/internal/config"
	"github.com/purplesquirrel/jobengine/internal/embedding"
	"github.com/purplesquirrel/jobengine/internal/matching"
	"github.com/purplesquirrel/jobengine/internal/sources"
)

// deps holds the wired application components shared by the commands.
type deps struct {
	cfg        *config.Config
	catalog    catalog.Catalog
	aggregator *aggregate.Service
	engine     *matching.Engine

	closers []func()
}

func (d *deps) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// buildDeps wires the catalog, embedding provider, and pipeline from the
// environment. With no DATABASE_URL the catalog is in-memory and seeded
// with demo data; with no GEMINI_API_KEY matching runs the fallback
// variant.
func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	d := &deps{cfg: cfg}

	if cfg.DatabaseURL != "" {
		pg, err := catalog.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		d.catalog = pg
		d.closers = append(d.closers, pg.Close)
	} else {
		log.Printf("[main] DATABASE_URL not set, using in-memory catalog with demo data")
		mem := catalog.NewMemory()
		if err := catalog.SeedDemoData(ctx, mem); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		d.catalog = mem
	}

	var provider embedding.Provider
	if cfg.GeminiAPIKey != "" {
		gemini, err := embedding.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbeddingModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedding provider: %w", err)
		}
		d.closers = append(d.closers, func() { _ = gemini.Close() })
		provider = gemini

		if cfg.RedisURL != "" {
			client, err := embedding.NewRedisClient(ctx, cfg.RedisURL)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to redis: %w", err)
			}
			d.closers = append(d.closers, func() { _ = client.Close() })
			provider = embedding.NewCached(provider, client)
		}
	} else {
		log.Printf("[main] GEMINI_API_KEY not set, matching uses the fallback scoring variant")
	}

	d.aggregator = aggregate.NewService(d.catalog, sources.Defaults()...)
	d.engine = matching.NewEngine(provider)
	return d, nil
}

package cli

import (
	"fmt"

	"github.com/ppiankov/capsule/internal/fetch"
	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/model"
	prov "github.com/ppiankov/capsule/internal/provenance"
	"github.com/ppiankov/capsule/internal/resolve"
	"github.com/ppiankov/capsule/internal/sources"
	"github.com/ppiankov/capsule/internal/worker"
)

// app holds the wired components shared by every command
type app struct {
	cfg      *model.Config
	logger   logging.Logger
	resolver *resolve.Resolver
	batch    *worker.BatchProcessor
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return buildApp(cfg)
}

func buildApp(cfg *model.Config) (*app, error) {
	logger := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)

	fetcher := fetch.NewFetcher(fetch.OptionsFromConfig(cfg, logger))
	registry, err := sources.Build(sources.Options{
		Config:  cfg,
		Fetcher: fetcher,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build sources: %w", err)
	}

	resolver := resolve.NewResolver(registry, prov.NewAuthorityClassifier(&cfg.Authority), logger)
	return &app{
		cfg:      cfg,
		logger:   logger,
		resolver: resolver,
		batch:    worker.NewBatchProcessor(resolver, cfg.Concurrency.Workers, logger),
	}, nil
}

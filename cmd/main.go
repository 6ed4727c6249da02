package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/resonate/internal/metadata"
	"github.com/desertthunder/resonate/internal/repositories"
	"github.com/desertthunder/resonate/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	extractor := metadata.Extractor(metadata.NewTagExtractor(logger))
	opts := RunnerOpts{Config: config, Logger: logger}

	// A broken cache database degrades to uncached extraction.
	if db, err := shared.NewDatabase(config.Cache.Path); err != nil {
		logger.Warn("extraction cache unavailable", "path", config.Cache.Path, "err", err)
	} else if err := shared.RunMigrations(db); err != nil {
		logger.Warn("extraction cache migration failed", "err", err)
		db.Close()
	} else {
		shared.ConfigureDatabase(db, config.Cache.MaxOpenConns, config.Cache.MaxIdleConns)
		extractor = metadata.NewCachedExtractor(extractor, repositories.NewExtractionRepository(db), logger)
		opts.DB = db
	}

	opts.Extractor = extractor
	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "resonate",
		Usage:    "Local playlist library and player",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}

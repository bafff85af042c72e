package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/config"
	"github.com/kdimtricp/reelmatch/internal/database"
	"github.com/kdimtricp/reelmatch/internal/logging"
)

var errFetchLogDisabled = errors.New("fetch log is disabled; set FETCH_LOG_ENABLED=true or database.enabled in the config file")

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		level := "warn"
		if c.verbose != nil && *c.verbose {
			level = cfg.Logging.Level
		}
		logging.Init(logging.Config{Level: level, Format: "console"})

		c.config = cfg
	})
	return c.config, c.configErr
}

// withFetcher builds the catalog chain, recording into the fetch log when
// it is enabled.
func (c *commandContext) withFetcher(ctx context.Context, fn func(catalog.Fetcher) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	var recorder catalog.FetchRecorder
	if cfg.Database.Enabled {
		db, err := database.Open(ctx, database.ConfigFrom(cfg.Database))
		if err != nil {
			return err
		}
		defer db.Close()
		recorder = database.NewFetchLogRepository(db)
	}

	return fn(catalog.NewFromConfig(cfg.TMDB, recorder))
}

func (c *commandContext) withFetchLog(ctx context.Context, fn func(*database.FetchLogRepository) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled {
		return errFetchLogDisabled
	}

	db, err := database.Open(ctx, database.ConfigFrom(cfg.Database))
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(database.NewFetchLogRepository(db))
}

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kdimtricp/reelmatch/internal/api"
	"github.com/kdimtricp/reelmatch/internal/catalog"
	"github.com/kdimtricp/reelmatch/internal/config"
	"github.com/kdimtricp/reelmatch/internal/database"
	"github.com/kdimtricp/reelmatch/internal/logging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		recorder catalog.FetchRecorder
		fetchLog api.FetchLogReader
	)
	if cfg.Database.Enabled {
		db, err := database.Open(ctx, database.ConfigFrom(cfg.Database))
		if err != nil {
			logging.Fatal().Err(err).Str("db", cfg.Database.Type).Msg("Failed to initialize fetch log database")
		}
		defer db.Close()

		repo := database.NewFetchLogRepository(db)
		recorder, fetchLog = repo, repo
		logging.Info().Str("db", cfg.Database.Type).Msg("Fetch log enabled")
	}

	app, err := api.NewApp(catalog.NewFromConfig(cfg.TMDB, recorder), fetchLog, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(app, cfg),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       2 * cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Str("tmdb", cfg.TMDB.BaseURL).
			Int("top_n", cfg.Recommend.TopN).
			Msg("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	case <-ctx.Done():
		logging.Info().Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// Command server runs the CineStream catalog service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mstrand/cinestream/internal/ai"
	"github.com/mstrand/cinestream/internal/config"
	"github.com/mstrand/cinestream/internal/db"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", false)
		logger.Log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	sqlDB, err := database.GetSQLDB()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to access database connection")
	}
	if err := db.RunMigrations(sqlDB, "file://./migrations"); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	var fetcher ai.CandidateFetcher
	if cfg.AI.APIKey != "" {
		client, err := ai.NewClient(context.Background(), cfg.AI)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to create AI client")
		}
		fetcher = ai.NewGeminiFetcher(client, cfg.AI)
		logger.Log.Info().Str("model", cfg.AI.Model).Msg("AI candidate source enabled")
	} else {
		logger.Log.Info().Msg("No AI API key configured, search is local-only")
	}

	srv, err := server.New(cfg, database, fetcher)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to create server")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Log.Fatal().Err(err).Msg("Server failed")
	case sig := <-quit:
		logger.Log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// Package main is the entry point for Warband.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/samdwyer/warband/internal/cli"
	"github.com/samdwyer/warband/internal/config"
	"github.com/samdwyer/warband/internal/game"
	"github.com/samdwyer/warband/internal/store"
	"github.com/samdwyer/warband/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Error: %v", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := context.Background()

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, continuing without tracing", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	s, closeStore, err := openStore(cfg)
	if err != nil {
		logger.Error("open store", "store", cfg.Store, "error", err)
		return 1
	}
	defer closeStore()

	engine := game.New(s, game.Config{Seed: cfg.Seed}, game.WithLogger(logger))

	if err := cli.NewRootCmd(engine).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openStore builds the configured backend and a matching close func.
func openStore(cfg config.Config) (game.Store, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := store.OpenSQLite(cfg.SQLitePath, cfg.Slot)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				slog.Warn("close sqlite store", "error", err)
			}
		}, nil
	default:
		return store.NewFileStore(afero.NewOsFs(), cfg.SaveFile), func() {}, nil
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_WARBAND_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_WARBAND_DATASET")
	if dataset == "" {
		dataset = "warband"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

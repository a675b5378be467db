// Package config loads warband settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds every environment-driven setting.
type Config struct {
	Store      string `env:"WARBAND_STORE" envDefault:"json" validate:"oneof=json sqlite"`
	SaveFile   string `env:"WARBAND_SAVE_FILE" envDefault:"game_history.json" validate:"required"`
	SQLitePath string `env:"WARBAND_SQLITE_PATH" envDefault:"warband.db" validate:"required"`
	Slot       string `env:"WARBAND_SLOT" envDefault:"default" validate:"required"`
	Seed       int64  `env:"WARBAND_SEED"`
	LogLevel   string `env:"WARBAND_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	Telemetry  bool   `env:"WARBAND_TELEMETRY" envDefault:"false"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads settings from vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/factory"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ApiConfig struct {
	LogLevel slog.Level
	Search   search.Config
	factory.StorageConfig
}

// Load reads the .env file first so that both the server and the search
// settings see its values.
func (as *AppConfig) Load() (*ApiConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/faq_api/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	var level slog.Level
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	searchCfg, err := search.LoadConfig()
	if err != nil {
		return nil, err
	}

	return &ApiConfig{
		LogLevel:      level,
		Search:        *searchCfg,
		StorageConfig: *storageCfg,
	}, nil
}

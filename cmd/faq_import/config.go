package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

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

type BulkOptions struct {
	Enabled bool
	Size    int
}

type ImportConfig struct {
	FixturePath string
	Bulk        BulkOptions
	factory.StorageConfig
}

func (as *AppConfig) Load() (*ImportConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/faq_import/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	fixturePath := os.Getenv("FIXTURE_PATH")
	if fixturePath == "" {
		return nil, fmt.Errorf("FIXTURE_PATH environment variable is not set")
	}

	bulkSize, err := strconv.Atoi(os.Getenv("BULK_SIZE"))
	if err != nil || bulkSize < 1 {
		bulkSize = 5_000
	}

	return &ImportConfig{
		FixturePath: fixturePath,
		Bulk: BulkOptions{
			Enabled: os.Getenv("BULK_ENABLED") == "true",
			Size:    bulkSize,
		},
		StorageConfig: *storageCfg,
	}, nil
}

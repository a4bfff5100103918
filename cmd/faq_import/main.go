package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/faq-hunter/internal/collector"
	"github.com/DjordjeVuckovic/faq-hunter/internal/processor"
	"github.com/DjordjeVuckovic/faq-hunter/internal/reader"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/factory"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := os.Open(cfg.FixturePath)
	if err != nil {
		slog.Error("failed to open fixture", "path", cfg.FixturePath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	fixture, err := reader.NewYAMLConfigLoader(file).Load(true)
	if err != nil {
		slog.Error("failed to load fixture", "error", err)
		os.Exit(1)
	}

	backend, _, err := factory.NewBackend(ctx, &cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create storer", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	c := collector.NewFixtureCollector(fixture)
	opts := []processor.PipelineOption{processor.WithCategories(c.Categories())}
	if cfg.Bulk.Enabled {
		opts = append(opts, processor.WithBulk(cfg.Bulk.Size))
	}

	slog.Info("Creating pipeline", "storageType", cfg.StorageConfig.Type, "fixture", fixture.Metadata.Name)
	stats, err := processor.NewPipeline(c, backend, opts...).Run(ctx)
	if err != nil {
		slog.Error("failed to run pipeline", "error", err)
		os.Exit(1)
	}
	if stats.Errors > 0 {
		slog.Warn("Import finished with errors", "processed", stats.Processed, "errors", stats.Errors)
		os.Exit(2)
	}
}

// Package main FAQ Hunter API
// @title FAQ Hunter API
// @version 1.0
// @description Full-text search over a multilingual FAQ knowledge base with category scoping and record permissions
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/faq-hunter/docs"
	"github.com/DjordjeVuckovic/faq-hunter/internal/render"
	"github.com/DjordjeVuckovic/faq-hunter/internal/router"
	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
	"github.com/DjordjeVuckovic/faq-hunter/internal/server"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 30 * time.Second

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	backend, healthChecker, err := factory.NewBackend(startCtx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "storageType", cfg.StorageConfig.Type)
		os.Exit(1)
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/search")
	})

	engine := search.NewEngineFromBackend(cfg.Search, backend)
	router.NewSearchRouter(s.Echo, engine, render.NewRenderer(render.EnglishMessages())).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	backend.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

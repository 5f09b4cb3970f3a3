package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpadapter "cv-builder/internal/adapter/http"
	repo "cv-builder/internal/adapter/repository"
	"cv-builder/internal/config"
	"cv-builder/internal/infrastructure/migration"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/ai"
	infra "cv-builder/pkg/infrastructure"
	"cv-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	logger.Setup()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("database not available, rendering without persistence", "error", err)
		pool = nil
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
	}

	var enhancer usecase.Enhancer
	if c := ai.NewClient(cfg.AIServiceURL, cfg.AILanguage); c != nil {
		enhancer = c
	}

	letters := infra.NewChromedpRenderer(cfg.TemplatesDir)
	renders := repo.NewRendersRepo(pool)
	aggregator := repo.NewCVAggregator(pool)
	entitlements := repo.NewEntitlementsRepo(pool)

	processor := usecase.NewProcessor(renders, enhancer, letters, cfg.TemplatesDir, cfg.MediaRoot)

	app := fiber.New(fiber.Config{AppName: "cv-builder"})
	h := httpadapter.NewHandler(processor, aggregator, entitlements)
	h.Register(app)

	go func() {
		slog.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	_ = app.Shutdown()
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vietkitchen/recipes-api/internal/app"
	"github.com/vietkitchen/recipes-api/internal/app/httpapi"
	"github.com/vietkitchen/recipes-api/internal/config"
	"github.com/vietkitchen/recipes-api/internal/httpserver"
	"github.com/vietkitchen/recipes-api/internal/middleware"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // allow .env for local runs

	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault("main").WithError(err).Fatal("load config")
	}

	log := logger.New(logger.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	application := app.New(app.Stores{}, log.WithModule("app"))

	opts := httpapi.Options{}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			log.WithModule("ratelimit"),
		)
	}

	handler := httpapi.NewHandler(application, log.WithModule("httpapi"), opts)
	srv := httpserver.New(cfg.Server, log.WithModule("httpserver"), handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.WithError(err).Error("HTTP server failed")
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
	}
}

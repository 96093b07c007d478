package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpserver "usertasks/internal/adapter/http"
	"usertasks/internal/adapter/telemetry"
	"usertasks/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()

	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := config.NewLogger(cfg.Telemetry.ServiceName, cfg.Environment)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Sync()
}

func run(cfg *config.AppConfig, logger *config.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.NewContainer(ctx, cfg.Telemetry, cfg.Environment)

	if err != nil {
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown telemetry", zap.Error(err))
		}
	}()

	return httpserver.StartServer(ctx, cfg, logger, tel)
}

package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"usertasks/internal/adapter/database"
	"usertasks/internal/adapter/http/routes"
	"usertasks/internal/adapter/telemetry"
	"usertasks/pkg/config"
)

// StartServer opens the store, serves the API and blocks until ctx is
// canceled, then drains in-flight requests within the shutdown timeout.
func StartServer(ctx context.Context, cfg *config.AppConfig, logger *config.Logger, tel *telemetry.Container) error {
	store, err := database.Open(ctx, cfg.Database, tel.NewTelemetryProbe(logger))

	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	defer store.Close()

	if cfg.Telemetry.MetricsEnabled {
		if err := store.RegisterPoolMetrics(tel.PrometheusRegistry); err != nil {
			return fmt.Errorf("register pool metrics: %w", err)
		}
	}

	container := NewContainer(store)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
	}, routes.ObservabilityConfig{
		Metrics:  tel.AppMetrics,
		Registry: tel.PrometheusRegistry,
		Logger:   logger,
	}, cfg)

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	listener, err := net.Listen("tcp", ":"+cfg.Server.Port)

	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Server.Port, err)
	}

	logger.Info(fmt.Sprintf("Servidor rodando na porta %s", cfg.Server.Port),
		zap.String("environment", cfg.Environment),
		zap.String("database", store.Driver),
	)

	serveErr := make(chan error, 1)

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"usertasks/internal/adapter/http/handler"
	"usertasks/internal/adapter/http/middleware"
	"usertasks/internal/core/telemetry"
	"usertasks/pkg/config"
)

type HandlersConfig struct {
	UserHandler *handler.UserHandler
	TaskHandler *handler.TaskHandler
}

type ObservabilityConfig struct {
	Metrics  *telemetry.AppMetrics
	Registry *prometheus.Registry
	Logger   *config.Logger
}

func SetupRouterWithConfig(handlers HandlersConfig, observability ObservabilityConfig, cfg *config.AppConfig) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CurrentMiddleware())
	router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))

	if observability.Logger != nil {
		router.Use(middleware.LoggingMiddleware(observability.Logger))
	}

	if cfg.Telemetry.MetricsEnabled && observability.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(observability.Metrics))
	}

	router.Use(middleware.CORSMiddleware())

	if cfg.Telemetry.MetricsEnabled && observability.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(observability.Registry, promhttp.HandlerOpts{})))
	}

	setupRoutes(router, handlers)

	return router
}

func setupRoutes(router *gin.Engine, handlers HandlersConfig) {
	if handlers.UserHandler != nil {
		router.GET("/ping", handlers.UserHandler.Ping)
		router.GET("/users", handlers.UserHandler.GetUsers)
		router.POST("/users", handlers.UserHandler.CreateUser)
		router.DELETE("/users/:id", handlers.UserHandler.DeleteUser)
	}

	if handlers.TaskHandler != nil {
		router.GET("/tasks", handlers.TaskHandler.GetTasks)
	}
}

func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CurrentMiddleware())
	router.Use(middleware.CORSMiddleware())

	setupRoutes(router, handlers)

	return router
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes the environment variables read by LoadConfig. A double
// underscore separates nested keys: USERTASKS_SERVER__PORT -> server.port.
const EnvPrefix = "USERTASKS_"

type AppConfig struct {
	Environment string          `koanf:"environment" validate:"required"`
	Server      ServerConfig    `koanf:"server" validate:"required"`
	Database    DatabaseConfig  `koanf:"database" validate:"required"`
	Telemetry   TelemetryConfig `koanf:"telemetry" validate:"required"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

type DatabaseConfig struct {
	// Path is the sqlite file, ":memory:" for a throwaway database.
	Path string `koanf:"path" validate:"required"`
	// URL selects postgres instead of sqlite when set.
	URL      string `koanf:"url"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=trace debug info warn error disabled"`
}

type TelemetryConfig struct {
	ServiceName    string `koanf:"service_name" validate:"required"`
	ServiceVersion string `koanf:"service_version"`
	// OTLPEndpoint is a host:port of an OTLP gRPC collector. Spans are not
	// exported when empty.
	OTLPEndpoint   string `koanf:"otlp_endpoint"`
	MetricsEnabled bool   `koanf:"metrics_enabled"`
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Environment: "development",
		Server: ServerConfig{
			Port:            "3003",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:     "usertasks.db",
			LogLevel: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "usertasks",
			ServiceVersion: "1.0.0",
			MetricsEnabled: true,
		},
	}
}

func defaults() map[string]interface{} {
	d := GetDefaultConfig()

	return map[string]interface{}{
		"environment":               d.Environment,
		"server.port":               d.Server.Port,
		"server.read_timeout":       d.Server.ReadTimeout,
		"server.write_timeout":      d.Server.WriteTimeout,
		"server.shutdown_timeout":   d.Server.ShutdownTimeout,
		"database.path":             d.Database.Path,
		"database.url":              d.Database.URL,
		"database.log_level":        d.Database.LogLevel,
		"telemetry.service_name":    d.Telemetry.ServiceName,
		"telemetry.service_version": d.Telemetry.ServiceVersion,
		"telemetry.otlp_endpoint":   d.Telemetry.OTLPEndpoint,
		"telemetry.metrics_enabled": d.Telemetry.MetricsEnabled,
	}
}

// LoadConfig layers USERTASKS_* environment variables (and a .env file, if
// present) over the defaults and validates the result.
func LoadConfig() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load default config: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)

	if err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := &AppConfig{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

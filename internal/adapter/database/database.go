package database

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"usertasks/internal/adapter/database/postgres"
	pgrepository "usertasks/internal/adapter/database/postgres/repository"
	"usertasks/internal/adapter/database/sqlite"
	sqliterepository "usertasks/internal/adapter/database/sqlite/repository"
	"usertasks/internal/core/port"
	"usertasks/pkg/config"
)

// Store bundles the repositories of one open database.
type Store struct {
	Driver string
	Users  port.UserRepository
	Tasks  port.TaskRepository
	sqlDB  *sql.DB
	close  func()
}

// Open connects to postgres when cfg.URL is set and to sqlite otherwise.
// Migrations are applied before Open returns.
func Open(ctx context.Context, cfg config.DatabaseConfig, telemetry port.Telemetry) (*Store, error) {
	if cfg.URL != "" {
		db, err := postgres.NewDB(ctx, cfg.URL)

		if err != nil {
			return nil, err
		}

		slog.Info("Database connected", "driver", "postgres")

		return &Store{
			Driver: "postgres",
			Users:  pgrepository.NewUserRepository(db, telemetry),
			Tasks:  pgrepository.NewTaskRepository(db, telemetry),
			close:  db.Close,
		}, nil
	}

	db, err := sqlite.NewDB(sqlite.Options{Path: cfg.Path, LogLevel: cfg.LogLevel})

	if err != nil {
		return nil, err
	}

	slog.Info("Database connected", "driver", "sqlite", "path", cfg.Path)

	return &Store{
		Driver: "sqlite",
		Users:  sqliterepository.NewUserRepository(db, telemetry),
		Tasks:  sqliterepository.NewTaskRepository(db, telemetry),
		sqlDB:  db.DB,
		close:  func() { db.Close() },
	}, nil
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// RegisterPoolMetrics exports connection pool statistics of a database/sql
// backed store. Other stores register nothing.
func (s *Store) RegisterPoolMetrics(registry prometheus.Registerer) error {
	if s.sqlDB == nil {
		return nil
	}

	return registry.Register(collectors.NewDBStatsCollector(s.sqlDB, s.Driver))
}

package database

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/core/telemetry"
	"usertasks/pkg/config"
)

func TestOpen_DefaultsToSQLite(t *testing.T) {
	store, err := Open(context.Background(), config.DatabaseConfig{Path: sqlite.MemoryPath, LogLevel: "error"}, telemetry.NewNoOpProbe())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "sqlite", store.Driver)

	users, err := store.Users.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, users)

	tasks, err := store.Tasks.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, tasks)

	registry := prometheus.NewRegistry()
	require.NoError(t, store.RegisterPoolMetrics(registry))

	count, err := testutil.GatherAndCount(registry, "go_sql_max_open_connections")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpen_InvalidPostgresURL(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{URL: "postgres://%zz"}, nil)

	assert.Error(t, err)
}

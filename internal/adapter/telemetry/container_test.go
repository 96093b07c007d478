package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usertasks/pkg/config"
)

func TestNewContainer_WithoutExporter(t *testing.T) {
	ctx := context.Background()

	container, err := NewContainer(ctx, config.TelemetryConfig{ServiceName: "usertasks-test"}, "test")
	require.NoError(t, err)

	assert.NotNil(t, container.AppMetrics)
	assert.NotNil(t, container.PrometheusRegistry)

	probe := container.NewTelemetryProbe(config.NewNopLogger())
	spanCtx, span := probe.StartRepositorySpan(ctx, "GetAll", "user", nil)
	span.End()

	assert.NotNil(t, spanCtx)
	assert.NoError(t, container.Shutdown(ctx))
}

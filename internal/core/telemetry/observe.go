package telemetry

import (
	"context"
	"time"

	"usertasks/internal/core/port"
)

// Observe starts a repository span and returns the context to run the
// operation with and a func that closes the span and records the outcome.
func Observe(ctx context.Context, probe port.Telemetry, operation, entity string, attrs map[string]interface{}) (context.Context, func(err error)) {
	if probe == nil {
		probe = NewNoOpProbe()
	}

	ctx, span := probe.StartRepositorySpan(ctx, operation, entity, attrs)
	startTime := time.Now()

	return ctx, func(err error) {
		duration := time.Since(startTime)

		span.SetAttributes(map[string]interface{}{
			"operation.duration_ns": duration.Nanoseconds(),
		})

		if err != nil {
			span.SetStatus("error", err.Error())
			span.RecordError(err)
		} else {
			span.SetStatus("ok", "")
		}

		probe.RecordRepositoryOperation(ctx, operation, entity, duration, err)
		span.End()
	}
}

package otel

import (
	"context"
	"log/slog"
	"os"
)

const instrumentationName = "github.com/adrianliechti/tryon"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

// Setup configures telemetry for the process. Without TELEMETRY set it only
// installs a plain slog handler; with it, logs, traces and metrics are
// exported via OTLP.
func Setup(ctx context.Context) error {
	if !EnableTelemetry {
		level := slog.LevelInfo

		if EnableDebug {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		return nil
	}

	resource, err := newResource(ctx)

	if err != nil {
		return err
	}

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/adrianliechti/tryon/config"
	"github.com/adrianliechti/tryon/pkg/otel"
	"github.com/adrianliechti/tryon/server"
)

func main() {
	ctx := context.Background()

	if err := otel.Setup(ctx); err != nil {
		slog.Error("unable to configure telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnvironment()

	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("unable to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("starting server", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

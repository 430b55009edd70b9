package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/VeeVeeOficial/photoclound/internal/adapters/eventbroker/nats"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/storage/minio"
	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/service/cleanuphook"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	hookService := cleanuphook.NewCleanupHookService(minioAdapter, logger)

	natsConsumer, err := nats.NewConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	if err := natsConsumer.Subscribe(ctx, hookService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	<-ctx.Done()
	logger.Info("gracefully shutting down cleanup worker")

	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}
	logger.Info("cleanup worker shutdown complete")
}

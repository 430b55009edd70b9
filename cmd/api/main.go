package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/VeeVeeOficial/photoclound/internal/adapters/eventbroker/nats"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/handlers/http/chi"
	albumhandler "github.com/VeeVeeOficial/photoclound/internal/adapters/handlers/http/chi/v1/album"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/remote"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/repository/postgres"
	"github.com/VeeVeeOficial/photoclound/internal/adapters/storage/minio"
	"github.com/VeeVeeOficial/photoclound/internal/config"
	"github.com/VeeVeeOficial/photoclound/internal/core/port"
	albumservice "github.com/VeeVeeOficial/photoclound/internal/core/service/album"
	"github.com/VeeVeeOficial/photoclound/internal/core/service/sweep"
	_ "github.com/lib/pq"
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

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	// payload storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	// delete-trigger events
	publisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	// repositories and services
	unitOfWork := postgres.NewUnitOfWork(db)
	uploader := remote.NewClient(cfg.Remote)

	albumService := albumservice.NewAlbumService(unitOfWork, minioAdapter, publisher, cfg.Remote, cfg.Upload, logger)
	sweepService := sweep.NewSweepService(unitOfWork, minioAdapter, publisher, logger)

	// http
	albumHandler := albumhandler.NewAlbumHandlerV1(albumService, uploader, cfg.Upload, logger)

	router := chi.NewRouter(logger, albumHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// scheduled jobs: hourly expiration sweep, daily empty-album reclaim
	wg.Add(1)
	go func() {
		defer wg.Done()
		runSweepTask(ctx, sweepService, cfg.Sweep.SweepInterval, logger)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		runReclaimTask(ctx, sweepService, cfg.Sweep.ReclaimInterval, logger)
	}()

	// wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func runSweepTask(ctx context.Context, service port.SweepService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("expiration sweep task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("expiration sweep starting")
			if err := service.SweepExpired(ctx, time.Now()); err != nil {
				logger.Error("expiration sweep failed", "error", err)
			}
		case <-ctx.Done():
			logger.Info("expiration sweep task stopped")
			return
		}
	}
}

func runReclaimTask(ctx context.Context, service port.SweepService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("empty album reclaim task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("empty album reclaim starting")
			if err := service.ReclaimEmptyAlbums(ctx); err != nil {
				logger.Error("empty album reclaim failed", "error", err)
			}
		case <-ctx.Done():
			logger.Info("empty album reclaim task stopped")
			return
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/farellandr/hostspot/config"
	"github.com/farellandr/hostspot/internal/cache"
	"github.com/farellandr/hostspot/internal/handlers"
	"github.com/farellandr/hostspot/internal/repository"
	"github.com/farellandr/hostspot/internal/server"
	"github.com/farellandr/hostspot/internal/service"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var snapshots service.SnapshotCache
	if cfg.RedisURL != "" && cfg.ExportCacheTTL > 0 {
		client, err := cache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("redis unavailable, export cache disabled")
		} else {
			defer client.Close()
			snapshots = cache.NewSnapshotCache(client, cfg.ExportCacheTTL)
			logger.WithField("ttl", cfg.ExportCacheTTL.String()).Info("export cache enabled")
		}
	}

	h := handlers.New(repository.NewStore(db), service.NewPasswordHasher(cfg.BcryptCost), snapshots, logger)
	srv := server.New(cfg, h, logger)

	go func() {
		logger.WithField("port", cfg.Port).Infof("server starting http://localhost:%s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

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

	"animal-registry/internal/adapters/storage"
	"animal-registry/internal/config"
	"animal-registry/internal/platform/logger"
	"animal-registry/internal/router"
	"animal-registry/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	log.Info("storage ready", map[string]any{"driver": cfg.StorageDriver})

	svcs := router.NewServices(ctx, store, log, cfg.VaccinationInterval())

	sched := scheduler.New(cfg.AlertSweepCron, svcs.Bovinos, log)
	if err := sched.Start(); err != nil {
		_ = closeStore(context.Background())
		return err
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(router.Options{Logger: log, Services: svcs}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
	case serveErr = <-errCh:
		if serveErr != nil {
			log.Error("server error", map[string]any{"error": serveErr})
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", map[string]any{"error": err})
	}
	sched.Stop(shutdownCtx)
	if err := closeStore(shutdownCtx); err != nil {
		log.Warn("storage close failed", map[string]any{"error": err})
	}

	log.Info("bye", nil)
	return serveErr
}

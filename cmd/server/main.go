package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/config"
	"github.com/bloghub/bloghub-be/internal/logging"
	"github.com/bloghub/bloghub-be/internal/server"
	"github.com/bloghub/bloghub-be/internal/service"
	"github.com/bloghub/bloghub-be/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}
	defer store.Close()

	hasher := auth.NewCredentialHasher(0)
	err = service.SeedDefaultAdmin(ctx, store, hasher,
		cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.DisplayName, logger)
	if err != nil {
		logger.Fatal("seed admin user", zap.Error(err))
	}

	srv := server.New(cfg, server.Stores{
		Users:      store,
		Posts:      store,
		Categories: store,
		Comments:   store,
	}, logger)

	go func() {
		logger.Info("bloghub backend listening", zap.String("addr", cfg.HTTPAddress()))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}

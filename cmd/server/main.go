package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platformbuilds/athlos-core/internal/api"
	"github.com/platformbuilds/athlos-core/internal/auth"
	"github.com/platformbuilds/athlos-core/internal/config"
	"github.com/platformbuilds/athlos-core/internal/repo"
	"github.com/platformbuilds/athlos-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logger.New(cfg.LogLevel)
	logger.Info("Starting athlos-core", "environment", cfg.Environment)

	tokens, err := auth.NewTokenService(cfg.Auth.JWT.Secret, time.Duration(cfg.Auth.JWT.ExpiryMinutes)*time.Minute)
	if err != nil {
		logger.Fatal("Failed to initialize token service", "error", err)
	}

	store, err := repo.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("Failed to ensure database schema", "error", err)
	}
	logger.Info("Database ready")

	apiServer := api.NewServer(cfg, logger, store, tokens)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutdown signal received")
		cancel()
	}()

	if err := apiServer.Start(ctx); err != nil {
		logger.Fatal("Server failed", "error", err)
	}

	logger.Info("athlos-core shutdown complete")
}

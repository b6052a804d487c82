package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/api"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/config"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/database"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider/oriagent"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting Oriboard API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	// Database pool
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	staffRepo := repository.NewStaffUserRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)
	snapshotRepo := repository.NewSnapshotRepository(pool)

	// Provider client; the token stored in settings wins over the env var
	tokens := repository.NewSettingTokenSource(settingRepo, cfg.ProviderToken)
	providerClient := oriagent.NewClient(oriagent.Config{
		BaseURL:    cfg.ProviderURL,
		Timeout:    cfg.ProviderTimeout,
		RetryCount: 2,
	}, tokens, logger)

	jwtService := auth.NewJWTService(cfg.JWTSecret, "oriboard-api", cfg.JWTExpiresIn)

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		StaffRepo:    staffRepo,
		SettingRepo:  settingRepo,
		SnapshotRepo: snapshotRepo,
		Provider:     providerClient,
		JWTService:   jwtService,
		SnapshotTTL:  cfg.SnapshotTTL,
		SecureCookie: cfg.IsProduction(),
		DB:           pool,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	logger.Info("server stopped")

	return nil
}

package fraud_api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/grpc"
	"crypto-fraud-detector/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// StartFraudAPIService запускает HTTP и gRPC серверы и блокирует до SIGINT/SIGTERM
func StartFraudAPIService(cfg *config.Config) error {
	ctx := context.Background()

	deps, err := InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Log.Warnw("Failed to close dependencies", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: deps.Router,
	}

	serverErr := make(chan error, 2)

	go func() {
		logger.Log.Infow("Fraud API starting", "port", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	go func() {
		if err := grpc.StartGRPCServer(cfg.Server.GRPCPort, deps.GRPCServer); err != nil {
			serverErr <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Log.Infow("Shutting down server...", "signal", sig.String())
	case runErr = <-serverErr:
		logger.Log.Errorw("Server failed, shutting down", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	deps.GRPCServer.GracefulStop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exited")
	return runErr
}

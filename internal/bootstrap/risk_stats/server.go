package risk_stats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crypto-fraud-detector/internal/api/rest"
	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
)

// StartRiskStatsService читает события анализа из Kafka и отдает статистику по HTTP
func StartRiskStatsService(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Close()

	consumerDone := make(chan error, 1)
	go func() {
		logger.Log.Info("Starting Kafka consumer...")
		consumerDone <- deps.KafkaConsumer.Start(ctx)
	}()

	router := rest.NewEngine()
	rest.SetupCommonEndpoints(router, deps.RedisClient)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.StatsPort),
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Infow("Risk stats service starting", "port", cfg.Server.StatsPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		logger.Log.Info("Shutting down services...")
	case runErr = <-serverErr:
		logger.Log.Errorw("HTTP server failed", "error", runErr)
	case runErr = <-consumerDone:
		logger.Log.Errorw("Kafka consumer stopped", "error", runErr)
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Services exited")
	return runErr
}

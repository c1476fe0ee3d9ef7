package main

import (
	"context"
	"log"

	"crypto-fraud-detector/internal/bootstrap/risk_stats"
	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/traces"
)

func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	shutdown, err := traces.Init(context.Background(), cfg.Tracing.OTLPEndpoint, "risk-stats-service")
	if err != nil {
		logger.Log.Warnw("Tracing disabled", "error", err)
	} else {
		defer shutdown(context.Background())
	}

	if err := risk_stats.StartRiskStatsService(cfg); err != nil {
		logger.Log.Fatalw("Risk stats service stopped with error", "error", err)
	}
}

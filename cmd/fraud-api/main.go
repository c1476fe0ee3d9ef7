package main

import (
	"context"
	"log"

	_ "crypto-fraud-detector/docs" // Swagger docs
	"crypto-fraud-detector/internal/bootstrap/fraud_api"
	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/traces"
)

// @title Crypto Fraud Detector API
// @version 1.0
// @description Оценка риска мошенничества для криптовалютных транзакций
// @host localhost:8000
// @BasePath /api
func main() {
	cfg := config.Load()

	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	shutdown, err := traces.Init(context.Background(), cfg.Tracing.OTLPEndpoint, cfg.Tracing.ServiceName)
	if err != nil {
		logger.Log.Warnw("Tracing disabled", "error", err)
	} else {
		defer shutdown(context.Background())
	}

	if err := fraud_api.StartFraudAPIService(cfg); err != nil {
		logger.Log.Fatalw("Fraud API stopped with error", "error", err)
	}
}

package fraud_api

import (
	"context"
	"errors"
	"time"

	"crypto-fraud-detector/internal/api/rest"
	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/fraud"
	"crypto-fraud-detector/internal/gemini"
	"crypto-fraud-detector/internal/generator"
	"crypto-fraud-detector/internal/grpc"
	"crypto-fraud-detector/internal/kafka"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/redis"
	"crypto-fraud-detector/internal/services"
	"crypto-fraud-detector/internal/storage"

	"github.com/gin-gonic/gin"
	grpcLib "google.golang.org/grpc"
)

const connectTimeout = 5 * time.Second

// Dependencies содержит все зависимости для fraud API.
// StorageRepo, RedisClient и KafkaProducer могут быть nil: сервис работает без них.
type Dependencies struct {
	StorageRepo        storage.TransactionRepository
	RedisClient        *redis.Client
	KafkaProducer      kafka.Producer
	AnalysisService    services.AnalysisService
	TransactionService services.TransactionService
	Router             *gin.Engine
	GRPCServer         *grpcLib.Server
}

// InitializeDependencies инициализирует все зависимости для fraud API.
// Недоступные хранилище, Redis и Kafka логируются и пропускаются.
func InitializeDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Хранилище результатов
	storageCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	repo, err := storage.Open(storageCtx, cfg.Storage)
	cancel()
	if err != nil {
		logger.Log.Warnw("Storage not available, results will not be persisted", "driver", cfg.Storage.Driver, "error", err)
	} else {
		deps.StorageRepo = repo
		logger.Log.Infow("Storage connected", "driver", repo.Driver())
	}

	// Redis кэш
	redisCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	redisClient, err := redis.NewClient(redisCtx, cfg.Redis)
	cancel()
	if err != nil {
		logger.Log.Warnw("Redis not available, cache disabled", "error", err)
	} else {
		deps.RedisClient = redisClient
		logger.Log.Info("Redis connection established")
	}

	// Kafka producer
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			logger.Log.Warnw("Kafka producer not available, events disabled", "error", err)
		} else {
			deps.KafkaProducer = producer
			logger.Log.Infow("Kafka producer connected successfully", "topic", cfg.Kafka.AnalyzedTopic)
		}
	}

	// Анализаторы
	var textGenerator gemini.TextGenerator
	if cfg.GeminiConfigured() {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey)
		if err != nil {
			logger.Log.Warnw("Gemini client not available, using fallback analysis", "error", err)
		} else {
			textGenerator = client
		}
	} else {
		logger.Log.Info("GEMINI_API_KEY not set, using fallback analysis")
	}

	deps.AnalysisService = services.NewAnalysisService(
		gemini.NewAnalyzer(cfg.Gemini, textGenerator),
		fraud.NewEngine(nil),
	)
	deps.TransactionService = services.NewTransactionService(
		deps.AnalysisService,
		deps.StorageRepo,
		deps.cache(),
		deps.KafkaProducer,
		services.TransactionServiceConfig{
			WriteTimeout:     cfg.Storage.WriteTimeout,
			GeminiConfigured: cfg.GeminiConfigured(),
		},
	)

	handlers := rest.NewHandlers(deps.TransactionService, generator.NewTransactionGenerator())
	deps.Router = rest.SetupRouter(handlers, deps.stats())
	deps.GRPCServer = grpc.NewServer(grpc.NewTransactionGRPCServer(deps.TransactionService))

	return deps, nil
}

// cache возвращает nil интерфейс, если Redis недоступен
func (d *Dependencies) cache() redis.ClientInterface {
	if d.RedisClient == nil {
		return nil
	}
	return d.RedisClient
}

func (d *Dependencies) stats() rest.RiskStatsSource {
	if d.RedisClient == nil {
		return nil
	}
	return d.RedisClient
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	var errs []error
	if d.KafkaProducer != nil {
		errs = append(errs, d.KafkaProducer.Close())
	}
	if d.RedisClient != nil {
		errs = append(errs, d.RedisClient.Close())
	}
	if d.StorageRepo != nil {
		errs = append(errs, d.StorageRepo.Close())
	}
	return errors.Join(errs...)
}

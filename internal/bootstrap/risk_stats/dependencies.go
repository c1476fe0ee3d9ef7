package risk_stats

import (
	"context"
	"errors"
	"fmt"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/kafka"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/redis"
)

// Dependencies содержит все зависимости для risk stats service
type Dependencies struct {
	RedisClient   *redis.Client
	KafkaConsumer kafka.Consumer
}

// InitializeDependencies подключает Redis и Kafka. Без них сервис не имеет смысла.
func InitializeDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	logger.Log.Info("Connecting to Redis...")
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Log.Info("Redis connection established")

	logger.Log.Info("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg.Kafka, newEventHandler(redisClient, cfg.Kafka.AnalyzedTopic))
	if err != nil {
		redisClient.Close()
		return nil, err
	}
	logger.Log.Info("Kafka consumer connected successfully")

	return &Dependencies{
		RedisClient:   redisClient,
		KafkaConsumer: consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	var errs []error
	if d.KafkaConsumer != nil {
		errs = append(errs, d.KafkaConsumer.Close())
	}
	if d.RedisClient != nil {
		errs = append(errs, d.RedisClient.Close())
	}
	return errors.Join(errs...)
}

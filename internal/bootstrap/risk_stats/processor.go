package risk_stats

import (
	"context"
	"fmt"

	"crypto-fraud-detector/internal/kafka"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/redis"
)

const serviceName = "risk-stats-service"

// newEventHandler увеличивает счетчик статуса в Redis для каждого события анализа
func newEventHandler(stats redis.ClientInterface, topic string) kafka.EventHandler {
	return func(ctx context.Context, event *models.AnalyzedTransactionEvent) error {
		logger.LogEvent(logger.EventKafkaReceived, serviceName, "kafka", map[string]interface{}{
			"transaction_id": event.Data.TransactionID,
			"event_id":       event.EventID,
			"topic":          topic,
		})

		if err := stats.IncrementRiskStats(ctx, string(event.Data.Status)); err != nil {
			return fmt.Errorf("failed to update risk stats: %w", err)
		}

		logger.LogEvent(logger.EventStatsUpdated, serviceName, "redis", map[string]interface{}{
			"transaction_id": event.Data.TransactionID,
			"status":         event.Data.Status,
			"score":          event.Data.Score,
		})
		return nil
	}
}

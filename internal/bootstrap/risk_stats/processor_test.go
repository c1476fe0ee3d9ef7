package risk_stats

import (
	"context"
	"errors"
	"testing"

	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
	redismocks "crypto-fraud-detector/internal/redis/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func analyzedEvent(status models.Status) *models.AnalyzedTransactionEvent {
	return &models.AnalyzedTransactionEvent{
		EventID:   "evt_1",
		EventType: "transaction_analyzed",
		Data: models.AnalyzedTransactionData{
			TransactionID: "tx-1",
			Status:        status,
			Score:         0.9,
		},
	}
}

func TestEventHandler_IncrementsStats(t *testing.T) {
	stats := new(redismocks.MockClientInterface)
	stats.On("IncrementRiskStats", mock.Anything, "Fraudulent").Return(nil)

	handler := newEventHandler(stats, "crypto.transactions.analyzed")
	err := handler(context.Background(), analyzedEvent(models.StatusFraudulent))

	assert.NoError(t, err)
	stats.AssertExpectations(t)

	events := logger.GetEvents(10)
	var types []logger.EventType
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, logger.EventKafkaReceived)
	assert.Contains(t, types, logger.EventStatsUpdated)
}

func TestEventHandler_RedisError(t *testing.T) {
	stats := new(redismocks.MockClientInterface)
	stats.On("IncrementRiskStats", mock.Anything, "Clear").Return(errors.New("redis down"))

	handler := newEventHandler(stats, "crypto.transactions.analyzed")
	err := handler(context.Background(), analyzedEvent(models.StatusClear))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"crypto-fraud-detector/internal/models"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *models.AnalyzedTransactionEvent {
	return &models.AnalyzedTransactionEvent{
		EventID:   "evt-1",
		EventType: "transaction_analyzed",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Data: models.AnalyzedTransactionData{
			TransactionID: "tx-1",
			Status:        models.StatusFraudulent,
			Score:         0.9,
			RiskFactors:   []string{"Invalid sender address format"},
			Source:        models.SourceFallback,
			Amount:        100,
		},
	}
}

func TestProducer_SendAnalyzedEvent(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer sp.Close()

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "crypto.transactions.analyzed", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "tx-1", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)
		var event models.AnalyzedTransactionEvent
		require.NoError(t, json.Unmarshal(value, &event))
		assert.Equal(t, models.StatusFraudulent, event.Data.Status)
		return nil
	})

	producer := NewProducerFromSarama(sp, "crypto.transactions.analyzed")
	assert.NoError(t, producer.SendAnalyzedEvent(context.Background(), testEvent()))
}

func TestProducer_SendAnalyzedEventFails(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer sp.Close()

	sp.ExpectSendMessageAndFail(errors.New("broker down"))

	producer := NewProducerFromSarama(sp, "crypto.transactions.analyzed")
	err := producer.SendAnalyzedEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"crypto-fraud-detector/internal/models"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	data, err := json.Marshal(testEvent())
	require.NoError(t, err)

	event, err := decodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", event.Data.TransactionID)
	assert.Equal(t, models.StatusFraudulent, event.Data.Status)
}

func TestDecodeEvent_Invalid(t *testing.T) {
	_, err := decodeEvent([]byte("not json"))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`{"event_id":"e","data":{}}`))
	assert.Error(t, err)
}

func TestConsumerGroupHandler_HandleMessage(t *testing.T) {
	data, err := json.Marshal(testEvent())
	require.NoError(t, err)

	var received []*models.AnalyzedTransactionEvent
	h := &consumerGroupHandler{handler: func(ctx context.Context, event *models.AnalyzedTransactionEvent) error {
		received = append(received, event)
		return nil
	}}

	h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: data})
	h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{broken")})

	require.Len(t, received, 1)
	assert.Equal(t, "tx-1", received[0].Data.TransactionID)
}

func TestConsumerGroupHandler_HandlerErrorIsNotFatal(t *testing.T) {
	data, err := json.Marshal(testEvent())
	require.NoError(t, err)

	calls := 0
	h := &consumerGroupHandler{handler: func(ctx context.Context, event *models.AnalyzedTransactionEvent) error {
		calls++
		return errors.New("redis down")
	}}

	assert.NotPanics(t, func() {
		h.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: data})
	})
	assert.Equal(t, 1, calls)
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"

	"github.com/IBM/sarama"
)

type ConsumerImpl struct {
	consumer sarama.ConsumerGroup
	topic    string
	handler  EventHandler
}

func NewConsumer(cfg config.KafkaConfig, handler EventHandler) (Consumer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaCfg.Consumer.Return.Errors = true
	saramaCfg.Version = sarama.V2_8_0_0

	consumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroupID, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Log.Infow("Kafka consumer created", "group", cfg.ConsumerGroupID, "topic", cfg.AnalyzedTopic)
	return &ConsumerImpl{
		consumer: consumer,
		topic:    cfg.AnalyzedTopic,
		handler:  handler,
	}, nil
}

// Start блокирует до отмены ctx, затем закрывает группу
func (c *ConsumerImpl) Start(ctx context.Context) error {
	topics := []string{c.topic}
	groupHandler := &consumerGroupHandler{handler: c.handler}

	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			if err := c.consumer.Consume(ctx, topics, groupHandler); err != nil {
				logger.Log.Errorw("Error from consumer", "error", err)
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case err, ok := <-c.consumer.Errors():
				if !ok {
					return
				}
				logger.Log.Warnw("Consumer error", "error", err)
			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()
	logger.Log.Infow("Consumer context cancelled, shutting down")
	wg.Wait()
	return c.consumer.Close()
}

func (c *ConsumerImpl) Close() error {
	return c.consumer.Close()
}

type consumerGroupHandler struct {
	handler EventHandler
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}
			h.handleMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

// handleMessage ошибки декодирования и обработки только логируются, сообщение все равно подтверждается
func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	event, err := decodeEvent(message.Value)
	if err != nil {
		logger.Log.Warnw("Error unmarshaling message", "offset", message.Offset, "error", err)
		return
	}

	if err := h.handler(ctx, event); err != nil {
		logger.Log.Errorw("Error handling message", "transaction_id", event.Data.TransactionID, "error", err)
	}
}

func decodeEvent(data []byte) (*models.AnalyzedTransactionEvent, error) {
	var event models.AnalyzedTransactionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.Data.TransactionID == "" {
		return nil, fmt.Errorf("event has no transaction id")
	}
	return &event, nil
}

package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/traces"

	"github.com/IBM/sarama"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Log.Infow("Kafka producer created", "brokers", cfg.Brokers, "topic", cfg.AnalyzedTopic)
	return NewProducerFromSarama(producer, cfg.AnalyzedTopic), nil
}

// NewProducerFromSarama оборачивает готовый SyncProducer
func NewProducerFromSarama(producer sarama.SyncProducer, topic string) *ProducerImpl {
	return &ProducerImpl{producer: producer, topic: topic}
}

// SendAnalyzedEvent публикует событие с ключом по идентификатору транзакции
func (p *ProducerImpl) SendAnalyzedEvent(ctx context.Context, event *models.AnalyzedTransactionEvent) error {
	_, span := traces.StartSpan(ctx, "kafka.send_analyzed_event", traces.TransactionID(event.Data.TransactionID))
	defer span.End()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.Data.TransactionID),
		Value:     sarama.StringEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Log.Debugw("Message sent", "topic", p.topic, "partition", partition, "offset", offset)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}

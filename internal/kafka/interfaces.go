package kafka

import (
	"context"

	"crypto-fraud-detector/internal/models"
)

// Producer определяет интерфейс для отправки событий анализа в Kafka
type Producer interface {
	SendAnalyzedEvent(ctx context.Context, event *models.AnalyzedTransactionEvent) error

	Close() error
}

// Consumer читает события анализа до отмены контекста
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}

// EventHandler обрабатывает одно событие анализа
type EventHandler func(ctx context.Context, event *models.AnalyzedTransactionEvent) error

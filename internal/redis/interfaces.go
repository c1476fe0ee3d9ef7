package redis

import (
	"context"

	"crypto-fraud-detector/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Реализуется типом Client
type ClientInterface interface {
	// CacheRecord кэширует результат анализа
	CacheRecord(ctx context.Context, record *models.TransactionRecord) error

	// GetCachedRecord получает результат анализа из кэша
	GetCachedRecord(ctx context.Context, id string) (*models.TransactionRecord, error)

	// IncrementRiskStats увеличивает счетчик статистики по статусу
	IncrementRiskStats(ctx context.Context, status string) error

	// GetRiskStats возвращает счетчики статистики
	GetRiskStats(ctx context.Context) (map[string]int64, error)

	// ClearTransactionData очищает кэш и статистику
	ClearTransactionData(ctx context.Context) error

	Ping(ctx context.Context) error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)

package storage

import (
	"context"

	"crypto-fraud-detector/internal/models"
)

// TransactionRepository определяет интерфейс хранилища результатов анализа
type TransactionRepository interface {
	// Save сохраняет запись. Записи не обновляются после создания.
	Save(ctx context.Context, record *models.TransactionRecord) error

	// GetByID возвращает запись по идентификатору или nil, если записи нет
	GetByID(ctx context.Context, id string) (*models.TransactionRecord, error)

	// Ping проверяет соединение с хранилищем
	Ping(ctx context.Context) error

	// CollectionAvailable сообщает, существует ли таблица или коллекция транзакций
	CollectionAvailable(ctx context.Context) bool

	// Driver возвращает имя драйвера хранилища
	Driver() string

	// Close закрывает соединение
	Close() error
}

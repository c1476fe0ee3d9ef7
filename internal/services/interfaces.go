package services

import (
	"context"

	"crypto-fraud-detector/internal/models"
)

// RemoteAnalyzer анализ через внешнюю модель. Может завершиться ошибкой.
type RemoteAnalyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// FallbackAnalyzer детерминированный анализ, всегда возвращает результат
type FallbackAnalyzer interface {
	Analyze(req models.AnalysisRequest) models.AnalysisResult
}

// AnalysisService единая точка анализа транзакции
type AnalysisService interface {
	// Analyze всегда возвращает результат: при сбое удаленного анализа используется резервный
	Analyze(ctx context.Context, req models.AnalysisRequest) models.AnalysisResult
}

// TransactionService определяет интерфейс для работы с транзакциями
type TransactionService interface {
	// ProcessTransaction анализирует транзакцию и сохраняет результат
	ProcessTransaction(ctx context.Context, req models.AnalysisRequest) (*models.TransactionRecord, error)

	// GetTransaction возвращает сохраненный результат анализа
	GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error)

	// Health возвращает состояние зависимостей сервиса
	Health(ctx context.Context) (*models.HealthResponse, error)
}

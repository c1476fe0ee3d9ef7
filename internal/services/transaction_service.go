package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"crypto-fraud-detector/internal/kafka"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/metrics"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/redis"
	"crypto-fraud-detector/internal/storage"
	"crypto-fraud-detector/internal/traces"
)

const (
	defaultWriteTimeout   = 3 * time.Second
	analyzedEventType     = "transaction_analyzed"
	geminiConfiguredLabel = "configured"
	geminiMissingLabel    = "not configured"
)

// TransactionServiceConfig параметры сервиса транзакций
type TransactionServiceConfig struct {
	WriteTimeout     time.Duration
	GeminiConfigured bool
}

// TransactionServiceImpl реализует интерфейс TransactionService.
// repo, cache и producer опциональны: без них запись пропускается.
type TransactionServiceImpl struct {
	analysis AnalysisService
	repo     storage.TransactionRepository
	cache    redis.ClientInterface
	producer kafka.Producer
	cfg      TransactionServiceConfig
	now      func() time.Time
}

var _ TransactionService = (*TransactionServiceImpl)(nil)

// NewTransactionService создает новый сервис транзакций
func NewTransactionService(
	analysis AnalysisService,
	repo storage.TransactionRepository,
	cache redis.ClientInterface,
	producer kafka.Producer,
	cfg TransactionServiceConfig,
) *TransactionServiceImpl {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	return &TransactionServiceImpl{
		analysis: analysis,
		repo:     repo,
		cache:    cache,
		producer: producer,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ProcessTransaction анализирует транзакцию. Ошибки записи не влияют на ответ.
func (s *TransactionServiceImpl) ProcessTransaction(ctx context.Context, req models.AnalysisRequest) (record *models.TransactionRecord, err error) {
	id := uuid.New().String()

	ctx, span := traces.StartSpan(ctx, "transaction.process", traces.TransactionID(id))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("Unexpected error during analysis", "transaction_id", id, "panic", r)
			record = nil
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
		}
	}()

	logger.LogEvent(logger.EventTransactionReceived, serviceName, "api", map[string]interface{}{
		"transaction_id": id,
		"amount":         req.Amount,
	})

	result := s.analysis.Analyze(ctx, req)
	record = models.NewTransactionRecord(id, req, result, s.now())

	metrics.TransactionsTotal.WithLabelValues(string(record.Status)).Inc()
	metrics.RiskScore.Observe(record.Score)
	logger.LogEvent(logger.EventAnalysisCompleted, serviceName, result.Source, map[string]interface{}{
		"transaction_id": id,
		"status":         record.Status,
		"score":          record.Score,
	})
	logger.Log.Infow("Transaction analyzed",
		"transaction_id", id,
		"status", record.Status,
		"score", record.Score,
		"source", result.Source,
	)

	s.persist(ctx, record)
	return record, nil
}

// persist best-effort запись в хранилище, кэш и Kafka
func (s *TransactionServiceImpl) persist(ctx context.Context, record *models.TransactionRecord) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.WriteTimeout)
	defer cancel()

	if s.repo != nil {
		if err := s.repo.Save(writeCtx, record); err != nil {
			s.writeFailed(s.repo.Driver(), record.ID, err)
			logger.LogEvent(logger.EventStorageFailed, serviceName, s.repo.Driver(), map[string]interface{}{
				"transaction_id": record.ID,
				"error":          err.Error(),
			})
		} else {
			logger.LogEvent(logger.EventTransactionSaved, serviceName, s.repo.Driver(), map[string]interface{}{
				"transaction_id": record.ID,
			})
		}
	} else {
		logger.Log.Warnw("Storage not available, transaction not persisted", "transaction_id", record.ID)
	}

	if s.cache != nil {
		if err := s.cache.CacheRecord(writeCtx, record); err != nil {
			s.writeFailed("redis", record.ID, err)
		} else {
			logger.LogEvent(logger.EventRedisSaved, serviceName, "redis", map[string]interface{}{
				"transaction_id": record.ID,
			})
		}
	}

	if s.producer != nil {
		event := newAnalyzedEvent(record, s.now())
		if err := s.producer.SendAnalyzedEvent(writeCtx, event); err != nil {
			s.writeFailed("kafka", record.ID, err)
		} else {
			logger.LogEvent(logger.EventKafkaSent, serviceName, "kafka", map[string]interface{}{
				"transaction_id": record.ID,
				"event_id":       event.EventID,
			})
		}
	}
}

func (s *TransactionServiceImpl) writeFailed(backend, id string, err error) {
	metrics.PersistenceFailuresTotal.WithLabelValues(backend).Inc()
	logger.Log.Errorw("Failed to persist transaction", "backend", backend, "transaction_id", id, "error", err)
}

func newAnalyzedEvent(record *models.TransactionRecord, ts time.Time) *models.AnalyzedTransactionEvent {
	return &models.AnalyzedTransactionEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: analyzedEventType,
		Timestamp: ts.UTC(),
		Data: models.AnalyzedTransactionData{
			TransactionID: record.ID,
			Status:        record.Status,
			Score:         record.Score,
			RiskFactors:   record.RiskFactors,
			Source:        record.Source,
			Amount:        record.Amount,
		},
	}
}

// GetTransaction возвращает запись из кэша или хранилища.
// Недоступное хранилище (нет подключения или ping не проходит) дает ErrStorageUnavailable.
func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	if err := s.repo.Ping(ctx); err != nil {
		logger.Log.Warnw("Storage ping failed", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if s.cache != nil {
		cached, err := s.cache.GetCachedRecord(ctx, id)
		if err != nil {
			logger.Log.Warnw("Failed to read cached transaction", "transaction_id", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if record == nil {
		return nil, ErrTransactionNotFound
	}
	return record, nil
}

// Health проверяет хранилище, Redis и наличие ключа Gemini.
// healthy только если хранилище доступно и Gemini настроен.
func (s *TransactionServiceImpl) Health(ctx context.Context) (resp *models.HealthResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("Health check failed", "panic", r)
			resp = nil
			err = fmt.Errorf("health check failed: %v", r)
		}
	}()

	resp = &models.HealthResponse{
		Status:    "degraded",
		Gemini:    geminiMissingLabel,
		Timestamp: s.now().UTC(),
	}

	if s.repo != nil {
		resp.StorageDriver = s.repo.Driver()
		if pingErr := s.repo.Ping(ctx); pingErr == nil {
			resp.Storage.Connected = true
			resp.Storage.CollectionAvailable = s.repo.CollectionAvailable(ctx)
		} else {
			logger.Log.Warnw("Storage ping failed", "error", pingErr)
		}
	}

	if s.cache != nil {
		resp.Redis.Connected = s.cache.Ping(ctx) == nil
	}

	if s.cfg.GeminiConfigured {
		resp.Gemini = geminiConfiguredLabel
	}

	if resp.Storage.Connected && s.cfg.GeminiConfigured {
		resp.Status = "healthy"
	}
	return resp, nil
}

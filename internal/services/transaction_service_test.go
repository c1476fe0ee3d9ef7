package services

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkamocks "crypto-fraud-detector/internal/kafka/mocks"
	"crypto-fraud-detector/internal/models"
	redismocks "crypto-fraud-detector/internal/redis/mocks"
	"crypto-fraud-detector/internal/services/mocks"
	storagemocks "crypto-fraud-detector/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func analysisResult(score float64) models.AnalysisResult {
	return models.AnalysisResult{
		Score:       score,
		Explanation: "report",
		RiskFactors: models.RiskFactors{"Suspicious round number amount"},
		Source:      models.SourceFallback,
	}
}

type serviceFixture struct {
	analysis *mocks.MockAnalysisService
	repo     *storagemocks.MockTransactionRepository
	cache    *redismocks.MockClientInterface
	producer *kafkamocks.MockProducer
	service  *TransactionServiceImpl
}

func newFixture(geminiConfigured bool) *serviceFixture {
	f := &serviceFixture{
		analysis: new(mocks.MockAnalysisService),
		repo:     new(storagemocks.MockTransactionRepository),
		cache:    new(redismocks.MockClientInterface),
		producer: new(kafkamocks.MockProducer),
	}
	f.repo.On("Driver").Return("sqlite").Maybe()
	f.service = NewTransactionService(f.analysis, f.repo, f.cache, f.producer, TransactionServiceConfig{
		WriteTimeout:     time.Second,
		GeminiConfigured: geminiConfigured,
	})
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func TestNewTransactionService_DefaultTimeout(t *testing.T) {
	service := NewTransactionService(new(mocks.MockAnalysisService), nil, nil, nil, TransactionServiceConfig{})
	assert.Equal(t, defaultWriteTimeout, service.cfg.WriteTimeout)
}

func TestTransactionService_ProcessTransaction_Success(t *testing.T) {
	f := newFixture(true)
	req := suspiciousRequest()

	f.analysis.On("Analyze", mock.Anything, req).Return(analysisResult(0.65))
	f.repo.On("Save", mock.Anything, mock.AnythingOfType("*models.TransactionRecord")).Return(nil)
	f.cache.On("CacheRecord", mock.Anything, mock.AnythingOfType("*models.TransactionRecord")).Return(nil)
	f.producer.On("SendAnalyzedEvent", mock.Anything, mock.MatchedBy(func(e *models.AnalyzedTransactionEvent) bool {
		return e.EventType == "transaction_analyzed" && e.Data.Status == models.StatusSuspicious
	})).Return(nil)

	record, err := f.service.ProcessTransaction(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Len(t, record.ID, 36)
	assert.Equal(t, models.StatusSuspicious, record.Status)
	assert.Equal(t, 0.65, record.Score)
	assert.Equal(t, req.Sender, record.Sender)
	assert.Equal(t, req.Receiver, record.Receiver)
	assert.Equal(t, req.Amount, record.Amount)
	assert.Equal(t, fixedNow, record.Timestamp)

	f.analysis.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
	f.producer.AssertExpectations(t)
}

func TestTransactionService_ProcessTransaction_PersistenceErrorsAreSwallowed(t *testing.T) {
	f := newFixture(true)

	f.analysis.On("Analyze", mock.Anything, mock.Anything).Return(analysisResult(0.9))
	f.repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("database error"))
	f.cache.On("CacheRecord", mock.Anything, mock.Anything).Return(errors.New("redis error"))
	f.producer.On("SendAnalyzedEvent", mock.Anything, mock.Anything).Return(errors.New("kafka error"))

	record, err := f.service.ProcessTransaction(context.Background(), suspiciousRequest())

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.StatusFraudulent, record.Status)
	f.repo.AssertExpectations(t)
	f.producer.AssertExpectations(t)
}

func TestTransactionService_ProcessTransaction_WithoutBackends(t *testing.T) {
	analysis := new(mocks.MockAnalysisService)
	analysis.On("Analyze", mock.Anything, mock.Anything).Return(analysisResult(0.1))

	service := NewTransactionService(analysis, nil, nil, nil, TransactionServiceConfig{})
	record, err := service.ProcessTransaction(context.Background(), suspiciousRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusClear, record.Status)
	assert.NotNil(t, record.RiskFactors)
}

func TestTransactionService_ProcessTransaction_WriteSurvivesCancelledRequest(t *testing.T) {
	f := newFixture(true)
	ctx, cancel := context.WithCancel(context.Background())

	f.analysis.On("Analyze", mock.Anything, mock.Anything).Run(func(mock.Arguments) { cancel() }).Return(analysisResult(0.3))
	f.repo.On("Save", mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }), mock.Anything).Return(nil)
	f.cache.On("CacheRecord", mock.Anything, mock.Anything).Return(nil)
	f.producer.On("SendAnalyzedEvent", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.ProcessTransaction(ctx, suspiciousRequest())
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestTransactionService_ProcessTransaction_Panic(t *testing.T) {
	f := newFixture(true)
	f.analysis.On("Analyze", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(analysisResult(0))

	record, err := f.service.ProcessTransaction(context.Background(), suspiciousRequest())

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTransactionService_GetTransaction(t *testing.T) {
	stored := &models.TransactionRecord{ID: "tx-1", Status: models.StatusClear}

	t.Run("from cache", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.cache.On("GetCachedRecord", mock.Anything, "tx-1").Return(stored, nil)

		record, err := f.service.GetTransaction(context.Background(), "tx-1")
		require.NoError(t, err)
		assert.Equal(t, stored, record)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("from storage on cache miss", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.cache.On("GetCachedRecord", mock.Anything, "tx-1").Return(nil, nil)
		f.repo.On("GetByID", mock.Anything, "tx-1").Return(stored, nil)

		record, err := f.service.GetTransaction(context.Background(), "tx-1")
		require.NoError(t, err)
		assert.Equal(t, stored, record)
	})

	t.Run("cache error falls through", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.cache.On("GetCachedRecord", mock.Anything, "tx-1").Return(nil, errors.New("redis down"))
		f.repo.On("GetByID", mock.Anything, "tx-1").Return(stored, nil)

		record, err := f.service.GetTransaction(context.Background(), "tx-1")
		require.NoError(t, err)
		assert.Equal(t, stored, record)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.cache.On("GetCachedRecord", mock.Anything, "missing").Return(nil, nil)
		f.repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

		record, err := f.service.GetTransaction(context.Background(), "missing")
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.cache.On("GetCachedRecord", mock.Anything, "tx-1").Return(nil, nil)
		f.repo.On("GetByID", mock.Anything, "tx-1").Return(nil, errors.New("connection reset"))

		record, err := f.service.GetTransaction(context.Background(), "tx-1")
		assert.Nil(t, record)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrTransactionNotFound)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("storage down", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(errors.New("server selection timeout"))

		record, err := f.service.GetTransaction(context.Background(), "tx-1")
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.Contains(t, err.Error(), "server selection timeout")
		f.cache.AssertNotCalled(t, "GetCachedRecord", mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("storage unavailable", func(t *testing.T) {
		service := NewTransactionService(new(mocks.MockAnalysisService), nil, nil, nil, TransactionServiceConfig{})

		record, err := service.GetTransaction(context.Background(), "tx-1")
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestTransactionService_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.repo.On("CollectionAvailable", mock.Anything).Return(true)
		f.cache.On("Ping", mock.Anything).Return(nil)

		resp, err := f.service.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "sqlite", resp.StorageDriver)
		assert.True(t, resp.Storage.Connected)
		assert.True(t, resp.Storage.CollectionAvailable)
		assert.True(t, resp.Redis.Connected)
		assert.Equal(t, "configured", resp.Gemini)
		assert.Equal(t, fixedNow, resp.Timestamp)
	})

	t.Run("degraded without gemini", func(t *testing.T) {
		f := newFixture(false)
		f.repo.On("Ping", mock.Anything).Return(nil)
		f.repo.On("CollectionAvailable", mock.Anything).Return(true)
		f.cache.On("Ping", mock.Anything).Return(errors.New("redis down"))

		resp, err := f.service.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "not configured", resp.Gemini)
		assert.False(t, resp.Redis.Connected)
	})

	t.Run("degraded when storage down", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Return(errors.New("connection refused"))
		f.cache.On("Ping", mock.Anything).Return(nil)

		resp, err := f.service.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Status)
		assert.False(t, resp.Storage.Connected)
		assert.False(t, resp.Storage.CollectionAvailable)
		f.repo.AssertNotCalled(t, "CollectionAvailable", mock.Anything)
	})

	t.Run("internal error", func(t *testing.T) {
		f := newFixture(true)
		f.repo.On("Ping", mock.Anything).Run(func(mock.Arguments) { panic("driver bug") }).Return(nil)

		resp, err := f.service.Health(context.Background())
		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestNewAnalyzedEvent(t *testing.T) {
	record := models.NewTransactionRecord("tx-9", suspiciousRequest(), analysisResult(0.85), fixedNow)

	event := newAnalyzedEvent(record, fixedNow)

	assert.Contains(t, event.EventID, "evt_")
	assert.Equal(t, "tx-9", event.Data.TransactionID)
	assert.Equal(t, models.StatusFraudulent, event.Data.Status)
	assert.Equal(t, []string(record.RiskFactors), event.Data.RiskFactors)
	assert.Equal(t, record.Amount, event.Data.Amount)
}

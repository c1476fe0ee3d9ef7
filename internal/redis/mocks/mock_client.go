package mocks

import (
	"context"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// CacheRecord мок для CacheRecord
func (m *MockClientInterface) CacheRecord(ctx context.Context, record *models.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetCachedRecord мок для GetCachedRecord
func (m *MockClientInterface) GetCachedRecord(ctx context.Context, id string) (*models.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// IncrementRiskStats мок для IncrementRiskStats
func (m *MockClientInterface) IncrementRiskStats(ctx context.Context, status string) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

// GetRiskStats мок для GetRiskStats
func (m *MockClientInterface) GetRiskStats(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// ClearTransactionData мок для ClearTransactionData
func (m *MockClientInterface) ClearTransactionData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ping мок для Ping
func (m *MockClientInterface) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}

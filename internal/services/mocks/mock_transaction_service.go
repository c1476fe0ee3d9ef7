package mocks

import (
	"context"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для services.TransactionService интерфейса
type MockTransactionService struct {
	mock.Mock
}

// ProcessTransaction мок для ProcessTransaction
func (m *MockTransactionService) ProcessTransaction(ctx context.Context, req models.AnalysisRequest) (*models.TransactionRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// GetTransaction мок для GetTransaction
func (m *MockTransactionService) GetTransaction(ctx context.Context, id string) (*models.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// Health мок для Health
func (m *MockTransactionService) Health(ctx context.Context) (*models.HealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthResponse), args.Error(1)
}

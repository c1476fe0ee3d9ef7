package mocks

import (
	"context"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository является моком для storage.TransactionRepository интерфейса
type MockTransactionRepository struct {
	mock.Mock
}

// Save мок для Save
func (m *MockTransactionRepository) Save(ctx context.Context, record *models.TransactionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// GetByID мок для GetByID
func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*models.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionRecord), args.Error(1)
}

// Ping мок для Ping
func (m *MockTransactionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CollectionAvailable мок для CollectionAvailable
func (m *MockTransactionRepository) CollectionAvailable(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Driver мок для Driver
func (m *MockTransactionRepository) Driver() string {
	args := m.Called()
	return args.String(0)
}

// Close мок для Close
func (m *MockTransactionRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

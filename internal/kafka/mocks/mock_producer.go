package mocks

import (
	"context"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendAnalyzedEvent мок для SendAnalyzedEvent
func (m *MockProducer) SendAnalyzedEvent(ctx context.Context, event *models.AnalyzedTransactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

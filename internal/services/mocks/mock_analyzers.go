package mocks

import (
	"context"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRemoteAnalyzer является моком для services.RemoteAnalyzer интерфейса
type MockRemoteAnalyzer struct {
	mock.Mock
}

// Analyze мок для Analyze
func (m *MockRemoteAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

// MockAnalysisService является моком для services.AnalysisService интерфейса
type MockAnalysisService struct {
	mock.Mock
}

// Analyze мок для Analyze
func (m *MockAnalysisService) Analyze(ctx context.Context, req models.AnalysisRequest) models.AnalysisResult {
	args := m.Called(ctx, req)
	return args.Get(0).(models.AnalysisResult)
}

package mocks

import (
	"context"

	"crypto-fraud-detector/internal/gemini"

	"github.com/stretchr/testify/mock"
)

// MockTextGenerator является моком для gemini.TextGenerator интерфейса
type MockTextGenerator struct {
	mock.Mock
}

// GenerateContent мок для GenerateContent
func (m *MockTextGenerator) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

// ListModels мок для ListModels
func (m *MockTextGenerator) ListModels(ctx context.Context) ([]gemini.ModelInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gemini.ModelInfo), args.Error(1)
}

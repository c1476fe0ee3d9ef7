package gemini

import (
	"context"
	"strings"
	"time"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
)

const (
	defaultAttemptTimeout = 20 * time.Second
	defaultTotalTimeout   = 45 * time.Second
	previewLength         = 200
)

// Analyzer удаленный анализ транзакции через Gemini
type Analyzer struct {
	cfg       config.GeminiConfig
	generator TextGenerator
}

// NewAnalyzer создает анализатор. Пустой ключ или nil генератор допустимы:
// такой анализатор всегда возвращает ErrNotConfigured.
func NewAnalyzer(cfg config.GeminiConfig, generator TextGenerator) *Analyzer {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = defaultAttemptTimeout
	}
	if cfg.TotalTimeout <= 0 {
		cfg.TotalTimeout = defaultTotalTimeout
	}
	return &Analyzer{cfg: cfg, generator: generator}
}

// Configured сообщает, может ли анализатор обращаться к модели
func (a *Analyzer) Configured() bool {
	return a.cfg.APIKey != "" && a.generator != nil
}

// Analyze запрашивает оценку у модели и разбирает ответ
func (a *Analyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}

	model, text, err := a.runChain(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Log.Errorw("Empty response from Gemini", "model", model)
		return nil, ErrEmptyResponse
	}
	logger.Log.Infow("Received analysis from Gemini", "model", model, "preview", preview(text))

	score := ParseScore(text)
	factors := ParseRiskFactors(text)

	return &models.AnalysisResult{
		Score:       score,
		Explanation: RenderReport(req, score, factors),
		RiskFactors: factors,
		Source:      models.SourceGemini,
	}, nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

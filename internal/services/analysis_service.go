package services

import (
	"context"
	"errors"
	"fmt"

	"crypto-fraud-detector/internal/gemini"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/metrics"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/traces"
)

const serviceName = "fraud-api"

// AnalysisServiceImpl пробует удаленный анализ и переключается на резервный при любом сбое
type AnalysisServiceImpl struct {
	remote   RemoteAnalyzer
	fallback FallbackAnalyzer
}

var _ AnalysisService = (*AnalysisServiceImpl)(nil)

// NewAnalysisService создает оркестратор анализа. remote может быть nil.
func NewAnalysisService(remote RemoteAnalyzer, fallback FallbackAnalyzer) *AnalysisServiceImpl {
	return &AnalysisServiceImpl{remote: remote, fallback: fallback}
}

func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req models.AnalysisRequest) models.AnalysisResult {
	ctx, span := traces.StartSpan(ctx, "analysis.analyze")
	defer span.End()

	logger.LogEvent(logger.EventAnalysisStarted, serviceName, "analyzer", map[string]interface{}{
		"sender":   req.Sender,
		"receiver": req.Receiver,
		"amount":   req.Amount,
	})

	result, err := s.analyzeRemote(ctx, req)
	if err == nil {
		span.SetAttributes(traces.Source(result.Source))
		metrics.AnalysesTotal.WithLabelValues(models.SourceGemini).Inc()
		return *result
	}

	if errors.Is(err, gemini.ErrNotConfigured) {
		logger.Log.Debugw("Gemini not configured, using fallback analysis")
	} else {
		logger.Log.Warnw("Remote analysis failed, using fallback analysis", "error", err)
	}
	logger.LogEvent(logger.EventAnalysisFallback, serviceName, "fallback", map[string]interface{}{
		"reason": err.Error(),
	})

	fallback := s.fallback.Analyze(req)
	span.SetAttributes(traces.Source(fallback.Source))
	metrics.AnalysesTotal.WithLabelValues(models.SourceFallback).Inc()
	return fallback
}

// analyzeRemote превращает панику удаленного анализа в ошибку
func (s *AnalysisServiceImpl) analyzeRemote(ctx context.Context, req models.AnalysisRequest) (result *models.AnalysisResult, err error) {
	if s.remote == nil {
		return nil, gemini.ErrNotConfigured
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("remote analysis panicked: %v", r)
		}
	}()

	result, err = s.remote.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, gemini.ErrEmptyResponse
	}
	return result, nil
}

package gemini

import (
	"context"
	"fmt"
	"strings"

	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/metrics"
	"crypto-fraud-detector/internal/traces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Имена стратегий выбора модели
const (
	StrategyPrimary        = "primary"
	StrategySecondary      = "secondary"
	StrategyFirstAvailable = "first_available"
)

// strategy одна попытка получить ответ модели
type strategy struct {
	name string
	run  func(ctx context.Context, prompt string) (model, text string, err error)
}

// strategies порядок попыток: основная модель, запасная, первая доступная текстовая
func (a *Analyzer) strategies() []strategy {
	return []strategy{
		a.fixedModel(StrategyPrimary, a.cfg.PrimaryModel),
		a.fixedModel(StrategySecondary, a.cfg.SecondaryModel),
		a.firstAvailableModel(),
	}
}

func (a *Analyzer) fixedModel(name, model string) strategy {
	return strategy{
		name: name,
		run: func(ctx context.Context, prompt string) (string, string, error) {
			text, err := a.attempt(ctx, model, prompt)
			return model, text, err
		},
	}
}

func (a *Analyzer) firstAvailableModel() strategy {
	return strategy{
		name: StrategyFirstAvailable,
		run: func(ctx context.Context, prompt string) (string, string, error) {
			listCtx, cancel := context.WithTimeout(ctx, a.cfg.AttemptTimeout)
			available, err := a.generator.ListModels(listCtx)
			cancel()
			if err != nil {
				return "", "", err
			}

			names := make([]string, 0, len(available))
			for _, m := range available {
				names = append(names, m.Name)
			}
			logger.Log.Infow("Available gemini models", "models", strings.Join(names, ", "))

			for _, m := range available {
				if m.SupportsGenerateContent() {
					logger.Log.Infow("Trying available gemini model", "model", m.Name)
					text, err := a.attempt(ctx, m.Name, prompt)
					return m.Name, text, err
				}
			}
			return "", "", ErrNoTextModels
		},
	}
}

// attempt один вызов модели с собственным таймаутом
func (a *Analyzer) attempt(ctx context.Context, model, prompt string) (string, error) {
	ctx, span := traces.StartSpan(ctx, "gemini.generate_content", attribute.String("gemini.model", model))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.AttemptTimeout)
	defer cancel()

	text, err := a.generator.GenerateContent(ctx, model, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return text, nil
}

// runChain перебирает стратегии до первого успеха в пределах общего дедлайна
func (a *Analyzer) runChain(ctx context.Context, prompt string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.TotalTimeout)
	defer cancel()

	var attempts []AttemptError
	for _, s := range a.strategies() {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, AttemptError{Strategy: s.name, Err: fmt.Errorf("deadline reached before attempt: %w", err)})
			metrics.RemoteAttemptsTotal.WithLabelValues(s.name, "skipped").Inc()
			continue
		}

		logger.Log.Infow("Attempting gemini strategy", "strategy", s.name)
		model, text, err := s.run(ctx, prompt)
		if err == nil {
			metrics.RemoteAttemptsTotal.WithLabelValues(s.name, "success").Inc()
			return model, text, nil
		}

		metrics.RemoteAttemptsTotal.WithLabelValues(s.name, "failure").Inc()
		logger.Log.Warnw("Gemini strategy failed", "strategy", s.name, "model", model, "error", err)
		attempts = append(attempts, AttemptError{Strategy: s.name, Model: model, Err: err})
	}

	return "", "", &ExhaustedError{Attempts: attempts}
}

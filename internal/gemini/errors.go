package gemini

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotConfigured   = errors.New("gemini api key is not configured")
	ErrModelsExhausted = errors.New("all gemini models failed")
	ErrEmptyResponse   = errors.New("empty response from gemini")
	ErrNoTextModels    = errors.New("no models support generateContent")
)

// AttemptError ошибка одной стратегии выбора модели
type AttemptError struct {
	Strategy string
	Model    string
	Err      error
}

func (e AttemptError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Strategy, e.Model, e.Err)
}

func (e AttemptError) Unwrap() error { return e.Err }

// ExhaustedError возвращается, когда ни одна стратегия не дала ответа
type ExhaustedError struct {
	Attempts []AttemptError
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		parts = append(parts, attempt.Error())
	}
	return fmt.Sprintf("%v: %s", ErrModelsExhausted, strings.Join(parts, "; "))
}

// Unwrap позволяет проверять и ErrModelsExhausted, и причины отдельных попыток через errors.Is
func (e *ExhaustedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts)+1)
	errs = append(errs, ErrModelsExhausted)
	for _, attempt := range e.Attempts {
		errs = append(errs, attempt)
	}
	return errs
}

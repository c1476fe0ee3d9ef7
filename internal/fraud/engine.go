package fraud

import (
	"math/rand"

	"crypto-fraud-detector/internal/models"
)

const (
	BaseScore = 0.1
	MaxJitter = 0.3
	MaxScore  = 0.95
)

// Float64Source источник случайной добавки к базовому баллу. Значения в [0, 1).
type Float64Source interface {
	Float64() float64
}

// globalSource использует общий источник math/rand, безопасный для конкурентного доступа
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// rule возвращает фактор риска и его вес, если правило сработало
type rule func(req *models.AnalysisRequest) (factor string, weight float64, hit bool)

// Порядок правил определяет порядок факторов риска
var rules = []rule{
	checkSender,
	checkReceiver,
	checkLargeAmount,
	checkRoundAmount,
	checkKeywords,
}

// Engine детерминированный (с точностью до добавки) анализатор рисков
type Engine struct {
	jitter Float64Source
}

// NewEngine создает движок. При nil используется глобальный источник math/rand.
func NewEngine(jitter Float64Source) *Engine {
	if jitter == nil {
		jitter = globalSource{}
	}
	return &Engine{jitter: jitter}
}

// Compute рассчитывает балл риска и факторы. Не может завершиться ошибкой.
func (e *Engine) Compute(req models.AnalysisRequest) (float64, []string) {
	score := BaseScore + e.jitter.Float64()*MaxJitter
	factors := make([]string, 0, len(rules))

	for _, check := range rules {
		if factor, weight, hit := check(&req); hit {
			score += weight
			factors = append(factors, factor)
		}
	}

	return clamp(score, 0.0, MaxScore), factors
}

// Analyze рассчитывает балл и формирует пояснение
func (e *Engine) Analyze(req models.AnalysisRequest) models.AnalysisResult {
	score, factors := e.Compute(req)
	return models.AnalysisResult{
		Score:       score,
		Explanation: Compose(req, score, factors),
		RiskFactors: factors,
		Source:      models.SourceFallback,
	}
}

func checkSender(req *models.AnalysisRequest) (string, float64, bool) {
	return FactorInvalidSender, AddressPenalty, !IsValidAddress(req.Sender)
}

func checkReceiver(req *models.AnalysisRequest) (string, float64, bool) {
	return FactorInvalidReceiver, AddressPenalty, !IsValidAddress(req.Receiver)
}

func checkLargeAmount(req *models.AnalysisRequest) (string, float64, bool) {
	if !IsLargeAmount(req.Amount) {
		return "", 0, false
	}
	return LargeAmountFactor(req.Amount), LargeAmountPenalty, true
}

func checkRoundAmount(req *models.AnalysisRequest) (string, float64, bool) {
	return FactorRoundAmount, RoundAmountPenalty, IsRoundAmount(req.Amount)
}

func checkKeywords(req *models.AnalysisRequest) (string, float64, bool) {
	found := FindSuspiciousKeywords(req.Description)
	if len(found) == 0 {
		return "", 0, false
	}
	return KeywordsFactor(found), KeywordPenalty * float64(len(found)), true
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

package models

// Status категория риска транзакции
type Status string

const (
	StatusClear      Status = "Clear"
	StatusSuspicious Status = "Suspicious"
	StatusFraudulent Status = "Fraudulent"
)

// Границы категорий риска
const (
	SuspiciousThreshold = 0.5
	FraudulentThreshold = 0.8
)

// StatusFromScore: score < 0.5 -> Clear, 0.5 <= score < 0.8 -> Suspicious, иначе Fraudulent
func StatusFromScore(score float64) Status {
	switch {
	case score < SuspiciousThreshold:
		return StatusClear
	case score < FraudulentThreshold:
		return StatusSuspicious
	default:
		return StatusFraudulent
	}
}

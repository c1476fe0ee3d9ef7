package fraud

import "strings"

const (
	SafeRecommendation   = "Transaction appears safe. Standard precautions apply."
	recommendationHeader = "Before proceeding with this transaction:"

	safeScoreThreshold = 0.3
	highRiskThreshold  = 0.7
)

// Recommend формирует текст рекомендаций по баллу и факторам риска.
// Адресные факторы ищутся с учетом регистра, сумма и ключевые слова без учета.
func Recommend(score float64, factors []string) string {
	if score < safeScoreThreshold {
		return SafeRecommendation
	}

	lines := []string{recommendationHeader}

	if anyFactor(factors, func(f string) bool { return strings.Contains(f, "Invalid sender address") }) {
		lines = append(lines, "• Verify the sender's address format and checksum")
	}
	if anyFactor(factors, func(f string) bool { return strings.Contains(f, "Invalid receiver address") }) {
		lines = append(lines, "• Double-check the recipient's address")
	}
	if anyFactor(factors, containsFold("amount")) {
		lines = append(lines,
			"• Consider splitting into smaller transactions",
			"• Verify the amount with the recipient through a separate channel",
		)
	}
	if anyFactor(factors, containsFold("keyword")) {
		lines = append(lines,
			"• Be cautious of urgent or pressure tactics",
			"• Verify the transaction purpose through trusted channels",
		)
	}

	if score > highRiskThreshold {
		lines = append(lines,
			"\nHIGH RISK ALERT:",
			"• Strongly recommended to delay this transaction",
			"• Contact your security team or blockchain advisor",
			"• Consider reporting to relevant authorities",
		)
	}

	return strings.Join(lines, "\n")
}

func anyFactor(factors []string, match func(string) bool) bool {
	for _, factor := range factors {
		if match(factor) {
			return true
		}
	}
	return false
}

func containsFold(substr string) func(string) bool {
	return func(s string) bool {
		return strings.Contains(strings.ToLower(s), substr)
	}
}

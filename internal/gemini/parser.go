package gemini

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore используется, если в ответе модели не нашлось числа
const DefaultScore = 0.5

var scorePattern = regexp.MustCompile(`(?s)(?:risk|score).*?([0-9]*\.?[0-9]+)`)

// ParseScore извлекает первое число после слова risk или score и ограничивает его отрезком [0, 1]
func ParseScore(text string) float64 {
	match := scorePattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return DefaultScore
	}

	// переполнение дает +Inf, которое ограничивается до 1
	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultScore
	}

	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}

// ParseRiskFactors собирает строки-пункты, начинающиеся с • или -.
// Снимаются ведущие •, затем ведущие -, затем пробелы. Пустой пункт сохраняется.
func ParseRiskFactors(text string) []string {
	factors := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
			continue
		}

		factor := strings.TrimLeft(line, "•")
		factor = strings.TrimLeft(factor, "-")
		factors = append(factors, strings.TrimSpace(factor))
	}
	return factors
}

package fraud

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Параметры эвристик
const (
	AddressLength        = 42
	AddressPrefix        = "0x"
	LargeAmountThreshold = 5.0 // ETH

	AddressPenalty     = 0.2
	LargeAmountPenalty = 0.2
	RoundAmountPenalty = 0.1
	KeywordPenalty     = 0.15
)

// SuspiciousKeywords проверяются в этом порядке, без учета регистра
var SuspiciousKeywords = []string{"urgent", "transfer", "investment", "opportunity", "quick"}

// Тексты факторов риска
const (
	FactorInvalidSender   = "Invalid sender address format"
	FactorInvalidReceiver = "Invalid receiver address format"
	FactorRoundAmount     = "Suspicious round number amount"
	largeAmountFactorFmt  = "Large transaction amount: %s ETH"
	keywordsFactorPrefix  = "Suspicious keywords found: "
)

// IsValidAddress проверяет только форму адреса: 42 символа (не байта) и префикс 0x.
// Шестнадцатеричность и контрольная сумма здесь не проверяются.
func IsValidAddress(addr string) bool {
	return utf8.RuneCountInString(addr) == AddressLength && strings.HasPrefix(addr, AddressPrefix)
}

// IsLargeAmount сумма строго больше 5 ETH
func IsLargeAmount(amount float64) bool {
	return amount > LargeAmountThreshold
}

// IsRoundAmount сумма равна своему округлению
func IsRoundAmount(amount float64) bool {
	return amount == math.Round(amount)
}

// FindSuspiciousKeywords возвращает найденные ключевые слова в порядке SuspiciousKeywords
func FindSuspiciousKeywords(description string) []string {
	lowered := strings.ToLower(description)
	var found []string
	for _, keyword := range SuspiciousKeywords {
		if strings.Contains(lowered, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// LargeAmountFactor текст фактора крупной суммы
func LargeAmountFactor(amount float64) string {
	return fmt.Sprintf(largeAmountFactorFmt, FormatAmount(amount))
}

// KeywordsFactor текст фактора подозрительных слов
func KeywordsFactor(keywords []string) string {
	return keywordsFactorPrefix + strings.Join(keywords, ", ")
}

// FormatAmount печатает сумму кратчайшим представлением; целые значения сохраняют
// один знак после точки (10.0), очень малые и очень большие печатаются в экспоненте
func FormatAmount(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs != 0 && (abs < 1e-4 || abs >= 1e16):
		return strconv.FormatFloat(amount, 'g', -1, 64)
	case amount == math.Trunc(amount):
		return strconv.FormatFloat(amount, 'f', 1, 64)
	default:
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
}

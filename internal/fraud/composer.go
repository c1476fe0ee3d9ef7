package fraud

import (
	"fmt"
	"strings"

	"crypto-fraud-detector/internal/models"
)

// Compose формирует пояснение из пяти нумерованных разделов
func Compose(req models.AnalysisRequest, score float64, factors []string) string {
	var b strings.Builder

	senderValid := IsValidAddress(req.Sender)
	receiverValid := IsValidAddress(req.Receiver)

	b.WriteString("1. Address Analysis:\n")
	if senderValid && receiverValid {
		b.WriteString("✓ Valid address formats\n")
	} else {
		b.WriteString("⚠ Invalid address format detected\n")
	}
	if !senderValid {
		fmt.Fprintf(&b, "- Sender address format issues: %s\n", req.Sender)
	}
	if !receiverValid {
		fmt.Fprintf(&b, "- Receiver address format issues: %s\n", req.Receiver)
	}

	b.WriteString("\n2. Amount Analysis:\n")
	fmt.Fprintf(&b, "- Amount: %s ETH\n", FormatAmount(req.Amount))
	if IsLargeAmount(req.Amount) {
		b.WriteString("- ⚠ Unusually large transaction\n")
	} else {
		b.WriteString("- ✓ Within normal range\n")
	}
	if IsRoundAmount(req.Amount) {
		b.WriteString("- ⚠ Round number detected - common in fraud schemes\n")
	}

	b.WriteString("\n3. Description Analysis:\n")
	if keywords := FindSuspiciousKeywords(req.Description); len(keywords) > 0 {
		fmt.Fprintf(&b, "- ⚠ Suspicious elements detected: %s\n", strings.Join(keywords, ", "))
	} else {
		b.WriteString("- ✓ No suspicious keywords detected\n")
	}
	fmt.Fprintf(&b, "- Description: %s\n", describe(req.Description))

	b.WriteString("\n4. Overall Risk Assessment:\n")
	fmt.Fprintf(&b, "- Risk Score: %.2f\n", score)
	if len(factors) == 0 {
		b.WriteString("- No significant risk factors identified\n")
	}
	for _, factor := range factors {
		fmt.Fprintf(&b, "- %s\n", factor)
	}

	b.WriteString("\n5. Recommendations:\n")
	b.WriteString(Recommend(score, factors))

	return b.String()
}

func describe(description string) string {
	if strings.TrimSpace(description) == "" {
		return "No description provided"
	}
	return description
}

package gemini

import (
	"fmt"
	"strings"

	"crypto-fraud-detector/internal/fraud"
	"crypto-fraud-detector/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// RemoteLargeAmountThreshold порог крупной суммы для отчета модели.
// Отличается от fraud.LargeAmountThreshold и намеренно не объединяется с ним.
const RemoteLargeAmountThreshold = 10.0

// RenderReport формирует Markdown отчет по результатам удаленного анализа
func RenderReport(req models.AnalysisRequest, score float64, factors []string) string {
	amount := fraud.FormatAmount(req.Amount)
	description := req.Description
	if description == "" {
		description = "Not provided"
	}

	var b strings.Builder

	b.WriteString("# Cryptocurrency Transaction Risk Assessment\n\n")

	b.WriteString("## Transaction Details\n")
	fmt.Fprintf(&b, "- **Sender Address:** %s\n", req.Sender)
	fmt.Fprintf(&b, "- **Receiver Address:** %s\n", req.Receiver)
	fmt.Fprintf(&b, "- **Amount:** %s ETH\n", amount)
	fmt.Fprintf(&b, "- **Description:** %s\n\n", description)

	b.WriteString("## 1. Address Analysis\n")
	b.WriteString("### Format Check\n")
	b.WriteString(formatCheck(req.Sender, req.Receiver) + "\n\n")
	b.WriteString("### Suspicious Patterns\n")
	b.WriteString("⚠️ Need to check both addresses against known databases of:\n")
	b.WriteString("- Scams\n- Hacks\n- Darknet marketplaces\n- Sanctioned addresses\n\n")
	b.WriteString("### Red Flags\n")
	b.WriteString(redFlags(req.Sender, req.Receiver) + "\n\n")

	b.WriteString("## 2. Amount Analysis\n")
	b.WriteString("### Transaction Size\n")
	if req.Amount > RemoteLargeAmountThreshold {
		fmt.Fprintf(&b, "⚠️ Large transaction amount detected (%s ETH)\n\n", amount)
	} else {
		fmt.Fprintf(&b, "✓ Amount within normal range (%s ETH)\n\n", amount)
	}
	b.WriteString("### Pattern Analysis\n")
	if fraud.IsRoundAmount(req.Amount) {
		b.WriteString("- ⚠️ Round number detected (higher risk)\n")
	} else {
		b.WriteString("- ✓ Non-round number (lower risk)\n")
	}
	fmt.Fprintf(&b, "- Transaction size relative to network average: %s\n\n", sizeAssessment(req.Amount))

	b.WriteString("## 3. Description Analysis\n")
	b.WriteString("### Keywords\n")
	b.WriteString(analyzeDescription(req.Description) + "\n\n")
	b.WriteString("### Context Assessment\n")
	b.WriteString(contextAssessment(req.Description) + "\n\n")

	b.WriteString("## 4. Overall Risk Assessment\n")
	fmt.Fprintf(&b, "Risk Score: %.2f\n", score)
	b.WriteString(riskSummary(score) + "\n\n")

	b.WriteString("## 5. Recommendations\n")
	b.WriteString(fraud.Recommend(score, factors))

	return b.String()
}

func formatCheck(sender, receiver string) string {
	if fraud.IsValidAddress(sender) && fraud.IsValidAddress(receiver) {
		return "✓ Both addresses appear to be valid Ethereum addresses, conforming to the standard hexadecimal format."
	}
	return "⚠️ One or both addresses do not conform to the standard format (42 characters, 0x prefix)."
}

func redFlags(sender, receiver string) string {
	var flags []string
	flags = append(flags, addressFlags("Sender", sender)...)
	flags = append(flags, addressFlags("Receiver", receiver)...)
	if sender != "" && strings.EqualFold(sender, receiver) {
		flags = append(flags, "⚠️ Sender and receiver addresses are identical")
	}

	if len(flags) == 0 {
		return "✓ No red flags detected in address formats"
	}
	return "- " + strings.Join(flags, "\n- ")
}

func addressFlags(role, addr string) []string {
	switch {
	case !fraud.IsValidAddress(addr):
		return []string{fmt.Sprintf("⚠️ %s address does not match the expected format (42 characters, 0x prefix)", role)}
	case !common.IsHexAddress(addr):
		return []string{fmt.Sprintf("⚠️ %s address contains non-hexadecimal characters", role)}
	case hasChecksumMismatch(addr):
		return []string{fmt.Sprintf("⚠️ %s address has an invalid EIP-55 checksum", role)}
	default:
		return nil
	}
}

// hasChecksumMismatch проверяет контрольную сумму EIP-55 для адресов в смешанном регистре.
// Адреса целиком в одном регистре контрольную сумму не несут.
func hasChecksumMismatch(addr string) bool {
	body := addr[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return false
	}
	return common.HexToAddress(addr).Hex() != addr
}

func sizeAssessment(amount float64) string {
	switch {
	case amount < 1:
		return "small (below 1 ETH)"
	case amount < 10:
		return "moderate (1-10 ETH)"
	case amount < 100:
		return "large (10-100 ETH)"
	default:
		return "very large (100+ ETH)"
	}
}

func analyzeDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return "No description provided"
	}
	if keywords := fraud.FindSuspiciousKeywords(description); len(keywords) > 0 {
		return "⚠️ " + fraud.KeywordsFactor(keywords)
	}
	return "✓ No suspicious keywords detected"
}

func contextAssessment(description string) string {
	switch {
	case strings.TrimSpace(description) == "":
		return "⚠️ No description provided; the purpose of the transaction cannot be verified"
	case len(fraud.FindSuspiciousKeywords(description)) > 0:
		return "⚠️ Wording suggests urgency or investment solicitation, common in social engineering scams"
	default:
		return "✓ Description does not contain common fraud indicators"
	}
}

func riskSummary(score float64) string {
	status := models.StatusFromScore(score)
	switch status {
	case models.StatusClear:
		return fmt.Sprintf("Status: %s. Low risk: no strong fraud indicators identified.", status)
	case models.StatusSuspicious:
		return fmt.Sprintf("Status: %s. Medium risk: several indicators warrant additional verification.", status)
	default:
		return fmt.Sprintf("Status: %s. High risk: multiple strong fraud indicators present.", status)
	}
}

package fraud

import (
	"regexp"
	"strings"
	"testing"

	"crypto-fraud-detector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sectionHeader = regexp.MustCompile(`(?m)^(\d)\. [A-Za-z ]+:$`)

func TestCompose_Sections(t *testing.T) {
	explanation := Compose(cleanRequest(), 0.2, nil)

	matches := sectionHeader.FindAllStringSubmatch(explanation, -1)
	require.Len(t, matches, 5)
	for i, m := range matches {
		assert.Equal(t, string(rune('1'+i)), m[1])
	}
	assert.True(t, strings.HasPrefix(explanation, "1. Address Analysis:"))
}

func TestCompose_CleanRequest(t *testing.T) {
	explanation := Compose(cleanRequest(), 0.2, nil)

	assert.Contains(t, explanation, "✓ Valid address formats")
	assert.Contains(t, explanation, "- Amount: 1.5 ETH")
	assert.Contains(t, explanation, "- ✓ Within normal range")
	assert.NotContains(t, explanation, "Round number detected")
	assert.Contains(t, explanation, "- ✓ No suspicious keywords detected")
	assert.Contains(t, explanation, "- Description: Monthly rent")
	assert.Contains(t, explanation, "- Risk Score: 0.20")
	assert.Contains(t, explanation, "- No significant risk factors identified")
	assert.True(t, strings.HasSuffix(explanation, SafeRecommendation))
}

func TestCompose_RiskyRequest(t *testing.T) {
	req := models.AnalysisRequest{Sender: "0xabc", Receiver: "0x12", Amount: 10}
	factors := []string{FactorInvalidSender, FactorInvalidReceiver, LargeAmountFactor(10), FactorRoundAmount}

	explanation := Compose(req, 0.95, factors)

	assert.Contains(t, explanation, "⚠ Invalid address format detected")
	assert.Contains(t, explanation, "- Sender address format issues: 0xabc")
	assert.Contains(t, explanation, "- Receiver address format issues: 0x12")
	assert.Contains(t, explanation, "- ⚠ Unusually large transaction")
	assert.Contains(t, explanation, "- ⚠ Round number detected - common in fraud schemes")
	assert.Contains(t, explanation, "- Description: No description provided")
	assert.Contains(t, explanation, "- Large transaction amount: 10.0 ETH")
	assert.Contains(t, explanation, "HIGH RISK ALERT:")
}

func TestCompose_Keywords(t *testing.T) {
	req := cleanRequest()
	req.Description = "Quick investment"

	explanation := Compose(req, 0.5, []string{KeywordsFactor([]string{"investment", "quick"})})

	assert.Contains(t, explanation, "- ⚠ Suspicious elements detected: investment, quick")
	assert.Contains(t, explanation, "• Be cautious of urgent or pressure tactics")
}

package fraud

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	validSender   = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	validReceiver = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"checksummed address", validSender, true},
		{"non hex body still accepted", "0x" + strings.Repeat("z", 40), true},
		{"multibyte character counts once", "0x" + strings.Repeat("a", 39) + "é", true},
		{"multibyte character too long", "0x" + strings.Repeat("a", 40) + "é", false},
		{"too short", "0xabc", false},
		{"too long", validSender + "0", false},
		{"missing prefix", "00" + validSender[2:], false},
		{"uppercase prefix", "0X" + validSender[2:], false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAddress(tt.addr))
		})
	}
}

func TestIsLargeAmount(t *testing.T) {
	assert.False(t, IsLargeAmount(5.0))
	assert.True(t, IsLargeAmount(5.0001))
	assert.False(t, IsLargeAmount(0))
}

func TestIsRoundAmount(t *testing.T) {
	assert.True(t, IsRoundAmount(10))
	assert.True(t, IsRoundAmount(0))
	assert.False(t, IsRoundAmount(1.5))
	assert.False(t, IsRoundAmount(0.0001))
}

func TestFindSuspiciousKeywords(t *testing.T) {
	assert.Equal(t, []string{"urgent", "investment", "opportunity"},
		FindSuspiciousKeywords("Opportunity! URGENT investment"))
	assert.Equal(t, []string{"transfer"}, FindSuspiciousKeywords("wire TRANSFERRED"))
	assert.Empty(t, FindSuspiciousKeywords("monthly rent"))
	assert.Empty(t, FindSuspiciousKeywords(""))
}

func TestFactorTexts(t *testing.T) {
	assert.Equal(t, "Large transaction amount: 10.0 ETH", LargeAmountFactor(10))
	assert.Equal(t, "Large transaction amount: 7.25 ETH", LargeAmountFactor(7.25))
	assert.Equal(t, "Suspicious keywords found: urgent, quick", KeywordsFactor([]string{"urgent", "quick"}))
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		0:       "0.0",
		10:      "10.0",
		1.5:     "1.5",
		0.1:     "0.1",
		1234.56: "1234.56",
		0.00001: "1e-05",
		1e16:    "1e+16",
	}
	for amount, want := range tests {
		assert.Equal(t, want, FormatAmount(amount))
	}
}

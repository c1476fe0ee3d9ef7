package generator

import (
	"sync"
	"testing"

	"crypto-fraud-detector/internal/fraud"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionGenerator(t *testing.T) {
	gen := NewTransactionGenerator()
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
}

func TestTransactionGenerator_LowRisk(t *testing.T) {
	gen := NewTransactionGeneratorWithSeed(1)

	for i := 0; i < 100; i++ {
		req := gen.GenerateTransaction(RiskLow)

		assert.True(t, fraud.IsValidAddress(req.Sender))
		assert.True(t, fraud.IsValidAddress(req.Receiver))
		assert.True(t, common.IsHexAddress(req.Sender))
		assert.False(t, fraud.IsLargeAmount(req.Amount))
		assert.False(t, fraud.IsRoundAmount(req.Amount), "amount %v", req.Amount)
		assert.Empty(t, fraud.FindSuspiciousKeywords(req.Description))
		assert.Greater(t, req.Amount, 0.0)
	}
}

func TestTransactionGenerator_MediumRisk(t *testing.T) {
	gen := NewTransactionGeneratorWithSeed(2)

	for i := 0; i < 100; i++ {
		req := gen.GenerateTransaction(RiskMedium)

		assert.True(t, fraud.IsValidAddress(req.Sender))
		assert.True(t, fraud.IsValidAddress(req.Receiver))

		signals := 0
		if fraud.IsLargeAmount(req.Amount) {
			signals++
		}
		if len(fraud.FindSuspiciousKeywords(req.Description)) > 0 {
			signals++
		}
		assert.GreaterOrEqual(t, signals, 1)
	}
}

func TestTransactionGenerator_HighRisk(t *testing.T) {
	gen := NewTransactionGeneratorWithSeed(3)
	engine := fraud.NewEngine(nil)

	for i := 0; i < 100; i++ {
		req := gen.GenerateTransaction(RiskHigh)

		assert.False(t, fraud.IsValidAddress(req.Sender) && fraud.IsValidAddress(req.Receiver))
		assert.True(t, fraud.IsLargeAmount(req.Amount))
		assert.True(t, fraud.IsRoundAmount(req.Amount))
		assert.GreaterOrEqual(t, len(fraud.FindSuspiciousKeywords(req.Description)), 2)

		score, _ := engine.Compute(req)
		assert.GreaterOrEqual(t, score, 0.8)
	}
}

func TestTransactionGenerator_UnknownLevelIsLow(t *testing.T) {
	gen := NewTransactionGeneratorWithSeed(4)

	req := gen.GenerateTransaction("extreme")
	assert.True(t, fraud.IsValidAddress(req.Sender))
	assert.False(t, fraud.IsLargeAmount(req.Amount))
}

func TestTransactionGenerator_Random(t *testing.T) {
	gen := NewTransactionGeneratorWithSeed(5)
	seen := map[string]bool{}

	for i := 0; i < 60; i++ {
		level, req := gen.GenerateRandomTransaction()
		seen[level] = true
		assert.NotEmpty(t, req.Sender)
	}
	assert.Len(t, seen, 3)
}

func TestTransactionGenerator_Concurrent(t *testing.T) {
	gen := NewTransactionGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				gen.GenerateRandomTransaction()
			}
		}()
	}
	wg.Wait()
}

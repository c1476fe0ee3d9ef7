package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"crypto-fraud-detector/internal/models"

	"github.com/ethereum/go-ethereum/common"
)

// Уровни риска генерируемых транзакций
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

var riskLevels = []string{RiskLow, RiskMedium, RiskHigh}

var benignDescriptions = []string{
	"Monthly rent payment",
	"Invoice #4821 settlement",
	"Salary for October",
	"NFT marketplace purchase",
	"Refund for cancelled order",
	"",
}

var pressureDescriptions = []string{
	"Urgent transfer, reply asap",
	"Quick investment opportunity, guaranteed returns",
	"Urgent: investment opportunity closes today",
	"Quick transfer needed for opportunity",
}

// TransactionGenerator генерирует примеры транзакций для ручной проверки API.
// Безопасен для конкурентного использования.
type TransactionGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewTransactionGenerator() *TransactionGenerator {
	return NewTransactionGeneratorWithSeed(time.Now().UnixNano())
}

// NewTransactionGeneratorWithSeed генератор с воспроизводимой последовательностью
func NewTransactionGeneratorWithSeed(seed int64) *TransactionGenerator {
	return &TransactionGenerator{rand: rand.New(rand.NewSource(seed))}
}

// GenerateTransaction генерирует транзакцию с заданным уровнем риска.
// Неизвестный уровень считается низким.
func (g *TransactionGenerator) GenerateTransaction(riskLevel string) models.AnalysisRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch riskLevel {
	case RiskMedium:
		return g.generateMediumRisk()
	case RiskHigh:
		return g.generateHighRisk()
	default:
		return g.generateLowRisk()
	}
}

// GenerateRandomTransaction генерирует транзакцию со случайным уровнем риска
func (g *TransactionGenerator) GenerateRandomTransaction() (string, models.AnalysisRequest) {
	g.mu.Lock()
	level := riskLevels[g.rand.Intn(len(riskLevels))]
	g.mu.Unlock()

	return level, g.GenerateTransaction(level)
}

// generateLowRisk корректные адреса, небольшая дробная сумма, нейтральное описание
func (g *TransactionGenerator) generateLowRisk() models.AnalysisRequest {
	return models.AnalysisRequest{
		Sender:      g.randomAddress(),
		Receiver:    g.randomAddress(),
		Amount:      g.fractionalAmount(0.05, 4.9),
		Description: g.pick(benignDescriptions),
	}
}

// generateMediumRisk один или два сигнала: крупная сумма и/или подозрительные слова
func (g *TransactionGenerator) generateMediumRisk() models.AnalysisRequest {
	req := models.AnalysisRequest{
		Sender:   g.randomAddress(),
		Receiver: g.randomAddress(),
	}

	switch g.rand.Intn(3) {
	case 0:
		// Крупная сумма + одно подозрительное слово
		req.Amount = g.fractionalAmount(5.5, 40)
		req.Description = "Quick payment for services"
	case 1:
		// Крупная круглая сумма
		req.Amount = float64(6 + g.rand.Intn(20))
		req.Description = g.pick(benignDescriptions)
	case 2:
		// Небольшая сумма, давление в описании
		req.Amount = g.fractionalAmount(0.5, 4.5)
		req.Description = "Urgent transfer requested"
	}
	return req
}

// generateHighRisk некорректный адрес, крупная круглая сумма, несколько подозрительных слов
func (g *TransactionGenerator) generateHighRisk() models.AnalysisRequest {
	req := models.AnalysisRequest{
		Sender:      g.randomAddress(),
		Receiver:    g.randomAddress(),
		Amount:      float64(10 * (1 + g.rand.Intn(50))),
		Description: g.pick(pressureDescriptions),
	}

	// Обрезанный адрес отправителя или получателя
	if g.rand.Intn(2) == 0 {
		req.Sender = req.Sender[:2+g.rand.Intn(20)]
	} else {
		req.Receiver = req.Receiver[:2+g.rand.Intn(20)]
	}
	return req
}

// randomAddress случайный адрес с контрольной суммой EIP-55
func (g *TransactionGenerator) randomAddress() string {
	var b [common.AddressLength]byte
	g.rand.Read(b[:])
	return common.BytesToAddress(b[:]).Hex()
}

// fractionalAmount сумма в диапазоне [min, max) с двумя знаками, никогда не целая
func (g *TransactionGenerator) fractionalAmount(min, max float64) float64 {
	amount := roundToTwoDecimals(min + g.rand.Float64()*(max-min))
	if amount == math.Round(amount) {
		amount += 0.01
	}
	return amount
}

func (g *TransactionGenerator) pick(items []string) string {
	return items[g.rand.Intn(len(items))]
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

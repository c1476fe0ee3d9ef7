package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Источник результата анализа
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

// AnalysisRequest описание криптовалютной транзакции для анализа
type AnalysisRequest struct {
	Sender      string  `json:"sender"`
	Receiver    string  `json:"receiver"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// TransactionInput тело POST /api/transaction
type TransactionInput struct {
	Sender      string   `json:"sender" binding:"required" example:"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"`
	Receiver    string   `json:"receiver" binding:"required" example:"0x8ba1f109551bD432803012645Ac136ddd64DBA72"`
	Amount      *float64 `json:"amount" binding:"required,gte=0" example:"1.25"`
	Description string   `json:"description" example:"Payment for services"`
}

// ToRequest приводит входные данные к запросу анализа
func (in *TransactionInput) ToRequest() AnalysisRequest {
	req := AnalysisRequest{
		Sender:      in.Sender,
		Receiver:    in.Receiver,
		Description: in.Description,
	}
	if in.Amount != nil {
		req.Amount = *in.Amount
	}
	return req
}

// AnalysisResult итог анализа транзакции
type AnalysisResult struct {
	Score       float64     `json:"score"`
	Explanation string      `json:"explanation"`
	RiskFactors RiskFactors `json:"risk_factors"`
	Source      string      `json:"source"`
}

// RiskFactors упорядоченный список факторов риска.
// В SQL хранилищах сериализуется в JSON.
type RiskFactors []string

func (f RiskFactors) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *RiskFactors) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*f = RiskFactors{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported risk_factors type %T", src)
	}

	var factors []string
	if err := json.Unmarshal(data, &factors); err != nil {
		return fmt.Errorf("failed to unmarshal risk_factors: %w", err)
	}
	if factors == nil {
		factors = []string{}
	}
	*f = factors
	return nil
}

// TransactionRecord сохраненный результат анализа. Создается один раз и не изменяется.
type TransactionRecord struct {
	ID          string      `json:"id" db:"id" bson:"id"`
	Sender      string      `json:"sender" db:"sender" bson:"sender"`
	Receiver    string      `json:"receiver" db:"receiver" bson:"receiver"`
	Amount      float64     `json:"amount" db:"amount" bson:"amount"`
	Description string      `json:"description" db:"description" bson:"description"`
	Status      Status      `json:"status" db:"status" bson:"status"`
	Score       float64     `json:"score" db:"score" bson:"score"`
	Explanation string      `json:"explanation" db:"explanation" bson:"explanation"`
	RiskFactors RiskFactors `json:"risk_factors" db:"risk_factors" bson:"risk_factors"`
	Source      string      `json:"source" db:"source" bson:"source"`
	Timestamp   time.Time   `json:"timestamp" db:"analyzed_at" bson:"timestamp"`
}

// NewTransactionRecord собирает запись из запроса и результата анализа
func NewTransactionRecord(id string, req AnalysisRequest, result AnalysisResult, ts time.Time) *TransactionRecord {
	factors := result.RiskFactors
	if factors == nil {
		factors = RiskFactors{}
	}
	return &TransactionRecord{
		ID:          id,
		Sender:      req.Sender,
		Receiver:    req.Receiver,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      StatusFromScore(result.Score),
		Score:       result.Score,
		Explanation: result.Explanation,
		RiskFactors: factors,
		Source:      result.Source,
		Timestamp:   ts.UTC(),
	}
}

// TransactionResponse ответ POST /api/transaction
type TransactionResponse struct {
	ID          string      `json:"id"`
	Status      Status      `json:"status"`
	Score       float64     `json:"score"`
	Explanation string      `json:"explanation"`
	RiskFactors RiskFactors `json:"risk_factors"`
	Sender      string      `json:"sender"`
	Receiver    string      `json:"receiver"`
	Amount      float64     `json:"amount"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ToResponse формирует ответ API из записи
func (r *TransactionRecord) ToResponse() *TransactionResponse {
	return &TransactionResponse{
		ID:          r.ID,
		Status:      r.Status,
		Score:       r.Score,
		Explanation: r.Explanation,
		RiskFactors: r.RiskFactors,
		Sender:      r.Sender,
		Receiver:    r.Receiver,
		Amount:      r.Amount,
		Timestamp:   r.Timestamp,
	}
}

// AnalyzedTransactionEvent событие Kafka о завершенном анализе
type AnalyzedTransactionEvent struct {
	EventID   string                  `json:"event_id"`
	EventType string                  `json:"event_type"`
	Timestamp time.Time               `json:"timestamp"`
	Data      AnalyzedTransactionData `json:"data"`
}

type AnalyzedTransactionData struct {
	TransactionID string   `json:"transaction_id"`
	Status        Status   `json:"status"`
	Score         float64  `json:"score"`
	RiskFactors   []string `json:"risk_factors"`
	Source        string   `json:"source"`
	Amount        float64  `json:"amount"`
}

// StorageHealth состояние хранилища в ответе /api/health (ключ mongodb при любом драйвере)
type StorageHealth struct {
	Connected           bool   `json:"connected"`
	CollectionAvailable bool   `json:"collection_available"`
}

type RedisHealth struct {
	Connected bool `json:"connected"`
}

// HealthResponse ответ GET /api/health
type HealthResponse struct {
	Status        string        `json:"status"`
	Storage       StorageHealth `json:"mongodb"`
	StorageDriver string        `json:"storage_driver,omitempty"`
	Redis         RedisHealth   `json:"redis"`
	Gemini        string        `json:"gemini"`
	Timestamp     time.Time     `json:"timestamp"`
	Error         string        `json:"error,omitempty"`
}

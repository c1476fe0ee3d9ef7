package rest

import (
	"errors"
	"net/http"
	"time"

	"crypto-fraud-detector/internal/generator"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"
	"crypto-fraud-detector/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	transactionService services.TransactionService
	generator          *generator.TransactionGenerator
}

// Создает новые обработчики REST API
func NewHandlers(transactionService services.TransactionService, gen *generator.TransactionGenerator) *Handlers {
	if gen == nil {
		gen = generator.NewTransactionGenerator()
	}
	return &Handlers{
		transactionService: transactionService,
		generator:          gen,
	}
}

// HandleTransaction анализирует транзакцию и возвращает результат
// @Summary Проанализировать транзакцию
// @Description Оценивает риск мошенничества для криптовалютной транзакции. Используется Gemini, при его недоступности детерминированный анализ. Результат сохраняется, ошибки сохранения не влияют на ответ.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body models.TransactionInput true "Данные транзакции"
// @Success 200 {object} models.TransactionResponse "Результат анализа"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 500 {object} map[string]string "Analysis error"
// @Router /transaction [post]
func (h *Handlers) HandleTransaction(c *gin.Context) {
	var input models.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "detail": err.Error()})
		return
	}

	record, err := h.transactionService.ProcessTransaction(c.Request.Context(), input.ToRequest())
	if err != nil {
		logger.Log.Errorw("Transaction analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record.ToResponse())
}

// GetTransactionStatus возвращает сохраненный результат анализа
// @Summary Получить результат анализа
// @Description Возвращает полную запись анализа по идентификатору транзакции
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "ID транзакции"
// @Success 200 {object} models.TransactionRecord "Запись анализа"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status/{transaction_id} [get]
func (h *Handlers) GetTransactionStatus(c *gin.Context) {
	id := c.Param("transaction_id")

	record, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
		return
	case err != nil:
		logger.Log.Errorw("Failed to get transaction", "transaction_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction status"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// HealthCheck возвращает состояние хранилища, Redis и Gemini
// @Summary Проверка состояния
// @Description healthy, если хранилище доступно и ключ Gemini задан, иначе degraded
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 500 {object} models.HealthResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(c *gin.Context) {
	resp, err := h.transactionService.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.HealthResponse{
			Status:    "unhealthy",
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateTransaction генерирует пример транзакции
// @Summary Сгенерировать транзакцию
// @Description Генерирует пример транзакции с заданным уровнем риска (low, medium, high) или случайным
// @Tags transactions
// @Produce json
// @Param risk_level query string false "Уровень риска" Enums(low, medium, high)
// @Success 200 {object} map[string]interface{} "Сгенерированная транзакция"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /transactions/generate [get]
func (h *Handlers) GenerateTransaction(c *gin.Context) {
	level := c.Query("risk_level")

	var req models.AnalysisRequest
	switch level {
	case "":
		level, req = h.generator.GenerateRandomTransaction()
	case generator.RiskLow, generator.RiskMedium, generator.RiskHigh:
		req = h.generator.GenerateTransaction(level)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "risk_level must be one of low, medium, high"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"risk_level":  level,
		"transaction": req,
	})
}

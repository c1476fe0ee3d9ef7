package rest

import (
	"context"
	"net/http"
	"strconv"

	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RiskStatsSource источник счетчиков статистики рисков (Redis)
type RiskStatsSource interface {
	GetRiskStats(ctx context.Context) (map[string]int64, error)

	// ClearTransactionData сбрасывает кэш записей и счетчики
	ClearTransactionData(ctx context.Context) error
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру.
// stats может быть nil.
func SetupCommonEndpoints(router *gin.Engine, stats RiskStatsSource) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", metrics.Handler())

	// Events endpoint
	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		events := logger.GetEvents(limit)
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint
	router.GET("/api/v1/stats", func(c *gin.Context) {
		resp := gin.H{"events": logger.GetStats()}
		if stats != nil {
			counters, err := stats.GetRiskStats(c.Request.Context())
			if err != nil {
				logger.Log.Warnw("Failed to read risk stats", "error", err)
				resp["risk_stats_error"] = err.Error()
			} else {
				resp["risk_stats"] = counters
			}
		}
		c.JSON(http.StatusOK, resp)
	})

	// Сброс кэша и статистики
	router.DELETE("/api/v1/stats", func(c *gin.Context) {
		if stats == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Redis not available"})
			return
		}
		if err := stats.ClearTransactionData(c.Request.Context()); err != nil {
			logger.Log.Errorw("Failed to clear risk stats", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear stats", "detail": err.Error()})
			return
		}
		logger.Log.Info("Risk stats and cached records cleared")
		c.JSON(http.StatusOK, gin.H{"status": "cleared"})
	})
}

// NewEngine gin роутер с общими middleware
func NewEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(RequestLogger())
	router.Use(metrics.Middleware())
	return router
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers, stats RiskStatsSource) *gin.Engine {
	router := NewEngine()

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		api.POST("/transaction", handlers.HandleTransaction)
		api.GET("/status/:transaction_id", handlers.GetTransactionStatus)
		api.GET("/health", handlers.HealthCheck)
		api.GET("/transactions/generate", handlers.GenerateTransaction)
	}

	// Общие endpoints (health, metrics, events, stats)
	SetupCommonEndpoints(router, stats)

	return router
}

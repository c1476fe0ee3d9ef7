package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestStatusBucket(t *testing.T) {
	tests := map[int]string{
		200: "2xx",
		201: "2xx",
		404: "4xx",
		503: "5xx",
		42:  "unknown",
	}
	for code, want := range tests {
		assert.Equal(t, want, statusBucket(code))
	}
}

func TestMiddleware_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/status/:transaction_id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/status/:transaction_id", "4xx"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/status/abc", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/status/:transaction_id", "4xx"))
	assert.Equal(t, before+1, after)
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	AnalysesTotal.WithLabelValues("fallback").Inc()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "crypto_fraud_analyses_total"))
}

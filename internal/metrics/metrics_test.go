package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/cart", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/checkout", func(c *gin.Context) {
		c.String(http.StatusNotFound, "no checkout")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{name: "records matched route", path: "/api/cart", label: "/api/cart", expectedStatus: http.StatusOK},
		{name: "records error status", path: "/api/checkout", label: "/api/checkout", expectedStatus: http.StatusNotFound},
		{name: "collapses unmatched paths", path: "/does/not/exist", label: "unmatched", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordCartOperation(t *testing.T) {
	before := testutil.ToFloat64(CartOperationsTotal.WithLabelValues("add_product", "success"))

	RecordCartOperation("add_product", "success")

	assert.Equal(t, before+1, testutil.ToFloat64(CartOperationsTotal.WithLabelValues("add_product", "success")))
}

func TestUpdateCartMetrics(t *testing.T) {
	UpdateCartMetrics(3, 14.47)

	assert.Equal(t, 3.0, testutil.ToFloat64(CartLines))
	assert.Equal(t, 14.47, testutil.ToFloat64(CartSubtotal))
}

func TestRecordCheckoutTransition(t *testing.T) {
	before := testutil.ToFloat64(CheckoutTransitionsTotal.WithLabelValues("idle", "processing"))

	RecordCheckoutTransition("idle", "processing")
	RecordCheckoutProcessing(1500 * time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(CheckoutTransitionsTotal.WithLabelValues("idle", "processing")))
}

func TestRecordAuditWrite(t *testing.T) {
	before := testutil.ToFloat64(AuditWritesTotal.WithLabelValues("error"))

	RecordAuditWrite("error")

	assert.Equal(t, before+1, testutil.ToFloat64(AuditWritesTotal.WithLabelValues("error")))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("audit", 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("audit")))
}

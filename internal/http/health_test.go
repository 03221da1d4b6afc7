package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pos-service/internal/circuitbreaker"
)

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{Name: "mongodb", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name           string
		setup          func(*HealthHandler)
		expectedStatus int
		expectedChecks map[string]interface{}
	}{
		{
			name:           "no dependencies",
			setup:          func(*HealthHandler) {},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return nil }))
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb": "ok"},
		},
		{
			name: "failing checker",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckerFunc(func(context.Context) error { return errors.New("ping failed") }))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedChecks: map[string]interface{}{"mongodb": "ping failed"},
		},
		{
			name: "open breaker is reported only",
			setup: func(h *HealthHandler) {
				h.RegisterCircuitBreaker("mongodb", openBreaker())
			},
			expectedStatus: http.StatusOK,
			expectedChecks: map[string]interface{}{"mongodb_circuit": "open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler()
			tt.setup(h)
			router := gin.New()
			h.Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body struct {
				Status string                 `json:"status"`
				Checks map[string]interface{} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedChecks, body.Checks)
		})
	}
}

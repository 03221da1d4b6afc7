// Package middleware provides HTTP middleware components for the register API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/pos-service/internal/service"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength bounds client supplied request IDs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// CashierKey is the context key for the authenticated cashier.
	CashierKey ContextKey = "cashier"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is kept when it is not longer than 128 bytes;
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return getString(c, RequestIDKey)
}

// GetCashier retrieves the authenticated cashier from the gin context.
func GetCashier(c *gin.Context) string {
	return getString(c, CashierKey)
}

// ActorContext returns the request context carrying the request ID and cashier,
// so register operations can attribute their audit entries.
func ActorContext(c *gin.Context) context.Context {
	return service.WithActor(c.Request.Context(), service.Actor{
		RequestID: GetRequestID(c),
		Cashier:   GetCashier(c),
	})
}

func getString(c *gin.Context, key ContextKey) string {
	if v, exists := c.Get(string(key)); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/service"
)

// AuditLog records a request-scoped action such as a login.
// Register operations audit themselves; this covers actions outside the register.
func AuditLog(sink service.AuditSink, c *gin.Context, action, message string, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	sink.Log(newAuditEntry(c, "info", action, message, fields))
}

// AuditLogError records a failed request-scoped action.
func AuditLogError(sink service.AuditSink, c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	if sink == nil {
		return
	}
	entry := newAuditEntry(c, "error", action, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func newAuditEntry(c *gin.Context, level, action, message string, fields map[string]interface{}) *model.AuditEntry {
	return &model.AuditEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Action:    action,
		Cashier:   GetCashier(c),
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Fields:    fields,
	}
}

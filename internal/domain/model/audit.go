package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register actions recorded in the audit trail.
const (
	ActionAddProduct       = "add_product"
	ActionRemoveProduct    = "remove_product"
	ActionDecrementProduct = "decrement_product"
	ActionEditCell         = "edit_cell"
	ActionClearCart        = "clear_cart"
	ActionOpenCheckout     = "open_checkout"
	ActionConfirmCheckout  = "confirm_checkout"
	ActionAcknowledge      = "acknowledge_warning"
	ActionCloseCheckout    = "close_checkout"
	ActionPaymentComplete  = "payment_complete"
	ActionLogin            = "login"
	ActionHTTPRequest      = "http_request"
)

// AuditEntry is a single entry of the register audit trail.
// HTTP fields are filled for request logs; Fields carries action-specific data.
type AuditEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	Action     string                 `bson:"action,omitempty" json:"action,omitempty"`
	Cashier    string                 `bson:"cashier,omitempty" json:"cashier,omitempty"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry, initialising Fields when needed.
func (e *AuditEntry) WithField(key string, value interface{}) *AuditEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// AuditQuery filters audit entries.
type AuditQuery struct {
	Action    string
	Cashier   string
	RequestID string
	Level     string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

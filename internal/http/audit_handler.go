package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/i18n"
	"github.com/guttosm/pos-service/internal/service"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditHandler serves the persisted audit trail.
type AuditHandler struct {
	audit service.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(audit service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// AuditListResponse is a page of audit entries.
//
// @Description Audit trail page
type AuditListResponse struct {
	Entries []model.AuditEntry `json:"entries"`
	Total   int64              `json:"total" example:"42"`
	Limit   int                `json:"limit" example:"50"`
	Skip    int                `json:"skip" example:"0"`
} // @name AuditListResponse

// List handles GET /api/audit requests.
//
// @Summary      Query audit trail
// @Description  Lists register audit entries, newest first. Times are RFC 3339.
// @Tags         Audit
// @Produce      json
// @Param        action query string false "Action, e.g. add_product"
// @Param        cashier query string false "Cashier"
// @Param        request_id query string false "Request ID"
// @Param        level query string false "Level (info, warn, error)"
// @Param        since query string false "Earliest timestamp (RFC 3339)"
// @Param        until query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size (1-500)" default(50)
// @Param        skip query int false "Entries to skip" default(0)
// @Success      200 {object} dto.SuccessResponse{data=AuditListResponse} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Audit store unavailable"
// @Security     BearerAuth
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := parseAuditQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.audit.Query(ctx, q)
	if err != nil {
		builder.DomainError(err)
		return
	}
	total, err := h.audit.Count(ctx, q)
	if err != nil {
		builder.DomainError(err)
		return
	}

	if entries == nil {
		entries = []model.AuditEntry{}
	}
	builder.SuccessOK(AuditListResponse{
		Entries: entries,
		Total:   total,
		Limit:   q.Limit,
		Skip:    q.Skip,
	})
}

func parseAuditQuery(c *gin.Context) (model.AuditQuery, error) {
	q := model.AuditQuery{
		Action:    c.Query("action"),
		Cashier:   c.Query("cashier"),
		RequestID: c.Query("request_id"),
		Level:     c.Query("level"),
		Limit:     defaultAuditLimit,
	}

	var err error
	if q.StartTime, err = parseTimeParam(c, "since"); err != nil {
		return q, err
	}
	if q.EndTime, err = parseTimeParam(c, "until"); err != nil {
		return q, err
	}
	if q.StartTime != nil && q.EndTime != nil && q.EndTime.Before(*q.StartTime) {
		return q, fmt.Errorf("until is before since")
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxAuditLimit {
			return q, fmt.Errorf("limit must be between 1 and %d", maxAuditLimit)
		}
		q.Limit = limit
	}
	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return q, fmt.Errorf("skip must be a non-negative integer")
		}
		q.Skip = skip
	}
	return q, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/domain/dto"
	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/i18n"
	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// AuthHandler provides HTTP handlers for cashier sessions.
type AuthHandler struct {
	auth service.CashierAuth
	sink service.AuditSink
}

// NewAuthHandler creates a new authentication handler. sink may be nil.
func NewAuthHandler(auth service.CashierAuth, sink service.AuditSink) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		sink: sink,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Cashier login
// @Description  Checks the register PIN and returns a session token for the cashier.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Cashier and PIN"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Session token"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Invalid cashier or PIN"
// @Failure      503 {object} dto.ErrorResponse "Login not configured"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err,
				map[string]string{vErr.Field: vErr.Message})
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.Cashier, req.PIN)
	if err != nil {
		middleware.AuditLogError(h.sink, c, model.ActionLogin, "Cashier login failed", err, map[string]interface{}{
			"cashier": req.Cashier,
		})
		builder.DomainError(err)
		return
	}

	c.Set(string(middleware.CashierKey), resp.Cashier)
	middleware.AuditLog(h.sink, c, model.ActionLogin, "Cashier logged in", nil)

	builder.SuccessOK(resp)
}

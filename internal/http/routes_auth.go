package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
	auth    service.CashierAuth
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(auth service.CashierAuth, sink service.AuditSink) *AuthRoutes {
	return &AuthRoutes{
		handler: NewAuthHandler(auth, sink),
		auth:    auth,
	}
}

// RegisterPublicRoutes registers the login route, which needs no token.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", r.handler.Login)
}

// ProtectedGroup returns a router group that requires a cashier token
// and applies the per-cashier rate limit.
func (r *AuthRoutes) ProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(r.auth))

	if cfg.RateLimit > 0 {
		cashierLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(cashierLimiter.CashierRateLimit())
	}

	return protected
}

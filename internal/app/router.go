// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/http"
	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	pos service.PointOfSale,
	dbComponents *DatabaseComponents,
	auth service.CashierAuth,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(pos)
	healthHandler := http.NewHealthHandler()

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		IdempotencyTTL:    cfg.Register.IdempotencyTTL,
		IdempotencyCache:  middleware.NewIdempotencyCache(idempotencyTTL(cfg.Register)),
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		CashierAuth:       auth,
	}

	if dbComponents != nil {
		db := dbComponents.DB
		if db != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func(ctx context.Context) error {
				return db.HealthCheck(ctx)
			}))
		}
		if dbComponents.AuditCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_audit", dbComponents.AuditCircuitBreaker)
		}
		if dbComponents.AuditWriter != nil {
			routerCfg.AuditSink = dbComponents.AuditWriter
		}
		routerCfg.AuditService = dbComponents.AuditService
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

func idempotencyTTL(cfg config.RegisterConfig) time.Duration {
	if cfg.IdempotencyTTL > 0 {
		return cfg.IdempotencyTTL
	}
	return middleware.IdempotencyKeyTTL
}

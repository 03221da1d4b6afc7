// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/http"
	"github.com/guttosm/pos-service/internal/middleware"
	"github.com/guttosm/pos-service/internal/service"
)

// App is the wired register service.
type App struct {
	Router   *gin.Engine
	Register *service.Register

	db          *DatabaseComponents
	idempotency *middleware.IdempotencyCache
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Server)

	dbComponents := InitializeDatabase(cfg.Database)

	var sink service.AuditSink
	if dbComponents != nil && dbComponents.AuditWriter != nil {
		sink = dbComponents.AuditWriter
	}

	serviceComponents := InitializeServices(cfg.Register, sink)
	auth := InitializeAuth(cfg.Auth)
	routerComponents := InitializeRouter(serviceComponents.Register, dbComponents, auth, cfg)

	return &App{
		Router:      http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Register:    serviceComponents.Register,
		db:          dbComponents,
		idempotency: routerComponents.Config.IdempotencyCache,
	}
}

// Close releases background workers and the database connection.
func (a *App) Close(ctx context.Context) error {
	if a.idempotency != nil {
		a.idempotency.Stop()
	}
	if err := a.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close MongoDB connection")
		return err
	}
	return nil
}

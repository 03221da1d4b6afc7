// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/circuitbreaker"
	"github.com/guttosm/pos-service/internal/metrics"
	"github.com/guttosm/pos-service/internal/repository"
	"github.com/guttosm/pos-service/internal/service"
)

const auditCircuitName = "mongodb-audit"

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	AuditService        service.AuditService
	AuditWriter         *service.AuditWriter
	AuditCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the audit trail.
// Returns nil if the database is disabled or the connection fails; the
// register then runs without an audit trail.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without audit trail")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetAuditTTL(context.Background(), cfg.AuditTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit TTL index")
	}

	components := newAuditComponents(repository.NewAuditRepository(db), cfg)
	components.DB = db
	return components
}

// newAuditComponents wraps repo in a circuit breaker and starts the async writer.
func newAuditComponents(repo repository.AuditRepositoryInterface, cfg config.DatabaseConfig) *DatabaseComponents {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             auditCircuitName,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(auditCircuitName, int(circuitbreaker.StateClosed))

	auditService := service.NewAuditService(repository.NewAuditRepositoryWithCircuitBreaker(repo, cb))
	return &DatabaseComponents{
		AuditService:        auditService,
		AuditWriter:         service.NewAuditWriter(auditService, service.DefaultAuditWriterConfig()),
		AuditCircuitBreaker: cb,
	}
}

// Close flushes pending audit entries and disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	if d.AuditWriter != nil {
		d.AuditWriter.Stop()
	}
	if d.DB != nil {
		return d.DB.Close(ctx)
	}
	return nil
}

// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/pos-service/internal/circuitbreaker"
)

// AuditRepositoryWithCircuitBreaker wraps an audit repository with circuit breaker protection.
// Writes are dropped while the circuit is open: the register keeps selling when the
// audit store is down.
type AuditRepositoryWithCircuitBreaker struct {
	repo           AuditRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAuditRepositoryWithCircuitBreaker(repo AuditRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single audit document with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores audit documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves audit documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	var result []*AuditDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the number of audit documents with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

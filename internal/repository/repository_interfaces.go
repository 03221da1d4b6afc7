// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// AuditRepositoryInterface defines the interface for audit repository operations.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, doc *AuditDocument) error
	CreateMany(ctx context.Context, docs []*AuditDocument) error
	Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error)
	Count(ctx context.Context, opts AuditQueryOptions) (int64, error)
}

var (
	_ AuditRepositoryInterface = (*AuditRepository)(nil)
	_ AuditRepositoryInterface = (*AuditRepositoryWithCircuitBreaker)(nil)
)

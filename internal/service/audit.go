package service

import (
	"context"
	"time"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditService defines the interface for audit trail operations.
type AuditService interface {
	// Record stores a single audit entry.
	Record(ctx context.Context, entry *model.AuditEntry) error

	// RecordMany stores multiple audit entries in bulk.
	RecordMany(ctx context.Context, entries []*model.AuditEntry) error

	// Query retrieves audit entries matching q, newest first.
	Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error)

	// Count returns the number of audit entries matching q.
	Count(ctx context.Context, q model.AuditQuery) (int64, error)
}

// AuditServiceImpl implements the AuditService interface on top of a repository.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates a new audit service implementation.
func NewAuditService(repo repository.AuditRepositoryInterface) AuditService {
	return &AuditServiceImpl{repo: repo}
}

// Record stores a single audit entry.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) error {
	doc := toDocument(entry)
	if err := s.repo.Create(ctx, doc); err != nil {
		return err
	}
	entry.ID = doc.ID
	return nil
}

// RecordMany stores multiple audit entries in bulk.
func (s *AuditServiceImpl) RecordMany(ctx context.Context, entries []*model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.AuditDocument, len(entries))
	for i, entry := range entries {
		docs[i] = toDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// Query retrieves audit entries matching q, newest first.
func (s *AuditServiceImpl) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	docs, err := s.repo.Query(ctx, toQueryOptions(q))
	if err != nil {
		return nil, err
	}

	entries := make([]model.AuditEntry, len(docs))
	for i, doc := range docs {
		entries[i] = fromDocument(doc)
	}
	return entries, nil
}

// Count returns the number of audit entries matching q.
func (s *AuditServiceImpl) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	return s.repo.Count(ctx, toQueryOptions(q))
}

func toQueryOptions(q model.AuditQuery) repository.AuditQueryOptions {
	return repository.AuditQueryOptions{
		Action:    q.Action,
		Cashier:   q.Cashier,
		RequestID: q.RequestID,
		Level:     q.Level,
		StartTime: q.StartTime,
		EndTime:   q.EndTime,
		Limit:     q.Limit,
		Skip:      q.Skip,
	}
}

func toDocument(entry *model.AuditEntry) *repository.AuditDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	return &repository.AuditDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		Action:     entry.Action,
		Cashier:    entry.Cashier,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		Fields:     entry.Fields,
	}
}

func fromDocument(doc *repository.AuditDocument) model.AuditEntry {
	return model.AuditEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		Action:     doc.Action,
		Cashier:    doc.Cashier,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		Fields:     doc.Fields,
	}
}

package middleware

import (
	"sync"

	"github.com/guttosm/pos-service/internal/domain/model"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []*model.AuditEntry
}

func (s *recordingSink) Log(entry *model.AuditEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) all() []*model.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.AuditEntry(nil), s.entries...)
}

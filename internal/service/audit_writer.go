package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/pos-service/internal/domain/model"
	"github.com/guttosm/pos-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// AuditSink accepts audit entries without blocking the caller.
type AuditSink interface {
	// Log enqueues entry. It returns false when the entry was dropped.
	Log(entry *model.AuditEntry) bool
}

// AuditWriterConfig holds configuration for the async audit writer.
type AuditWriterConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of goroutines writing entries.
	NumWorkers int
	// WriteTimeout bounds a single store write.
	WriteTimeout time.Duration
}

// DefaultAuditWriterConfig returns defaults sized for one register.
func DefaultAuditWriterConfig() AuditWriterConfig {
	return AuditWriterConfig{
		BufferSize:   256,
		NumWorkers:   2,
		WriteTimeout: 5 * time.Second,
	}
}

// AuditWriter writes audit entries through a bounded worker pool.
// Entries are dropped, never blocked on, when the buffer is full.
type AuditWriter struct {
	audit        AuditService
	entryCh      chan *model.AuditEntry
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAuditWriter starts the worker pool. It returns nil when audit is nil.
func NewAuditWriter(audit AuditService, cfg AuditWriterConfig) *AuditWriter {
	if audit == nil {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultAuditWriterConfig().BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultAuditWriterConfig().WriteTimeout
	}

	w := &AuditWriter{
		audit:        audit,
		entryCh:      make(chan *model.AuditEntry, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		w.wg.Add(1)
		go w.worker()
	}
	return w
}

func (w *AuditWriter) worker() {
	defer w.wg.Done()

	for {
		select {
		case entry := <-w.entryCh:
			w.write(entry)
		case <-w.stopCh:
			for {
				select {
				case entry := <-w.entryCh:
					w.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (w *AuditWriter) write(entry *model.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), w.writeTimeout)
	defer cancel()

	if err := w.audit.Record(ctx, entry); err != nil {
		atomic.AddInt64(&w.errors, 1)
		metrics.RecordAuditWrite("error")
		log.Warn().Err(err).Str("action", entry.Action).Msg("Failed to write audit entry")
		return
	}
	atomic.AddInt64(&w.written, 1)
	metrics.RecordAuditWrite("success")
}

// Log enqueues entry for async storage.
func (w *AuditWriter) Log(entry *model.AuditEntry) bool {
	if w == nil {
		return false
	}
	select {
	case <-w.stopCh:
		atomic.AddInt64(&w.dropped, 1)
		return false
	default:
	}

	select {
	case w.entryCh <- entry:
		atomic.AddInt64(&w.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&w.dropped, 1)
		metrics.RecordAuditWrite("dropped")
		return false
	}
}

// Stop drains pending entries and waits for the workers to exit.
func (w *AuditWriter) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
	})
}

// Stats returns writer counters.
func (w *AuditWriter) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&w.enqueued),
		atomic.LoadInt64(&w.dropped),
		atomic.LoadInt64(&w.written),
		atomic.LoadInt64(&w.errors)
}

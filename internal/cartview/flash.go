package cartview

import (
	"sync"
	"time"

	"github.com/guttosm/pos-service/internal/scheduler"
)

// DefaultFlashDuration is how long a row stays highlighted after an add.
const DefaultFlashDuration = 500 * time.Millisecond

// Flash highlights the most recently touched row for a short time.
// Triggering again resets the phase instead of queueing another highlight.
// It follows row deletions so the highlight stays on the same line.
type Flash struct {
	mu       sync.Mutex
	sched    scheduler.Scheduler
	duration time.Duration
	now      func() time.Time
	row      int
	started  time.Time
	task     scheduler.Task
	// gen identifies the armed task; expiries from older tasks are ignored.
	gen uint64
}

// NewFlash returns an idle highlight. now defaults to time.Now.
func NewFlash(sched scheduler.Scheduler, duration time.Duration, now func() time.Time) *Flash {
	if duration <= 0 {
		duration = DefaultFlashDuration
	}
	if now == nil {
		now = time.Now
	}
	return &Flash{sched: sched, duration: duration, now: now, row: -1}
}

// Trigger highlights row, restarting the effect if one is running.
func (f *Flash) Trigger(row int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.row = row
	f.started = f.now()
	if f.task != nil {
		f.task.Stop()
	}
	f.gen++
	gen := f.gen
	f.task = f.sched.AfterFunc(f.duration, func() { f.expire(gen) })
}

// State returns the highlighted row and its phase in [0, 1].
// ok is false when nothing is highlighted.
func (f *Flash) State() (row int, phase float64, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.row < 0 {
		return -1, 0, false
	}
	phase = float64(f.now().Sub(f.started)) / float64(f.duration)
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	return f.row, phase, true
}

// Cancel stops the effect.
func (f *Flash) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flash) expire(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		return
	}
	f.row = -1
	f.task = nil
}

// reset must be called with f.mu held.
func (f *Flash) reset() {
	if f.task != nil {
		f.task.Stop()
		f.task = nil
	}
	f.gen++
	f.row = -1
}

// RowInserted is a no-op; inserts append after the highlighted row.
func (f *Flash) RowInserted(int) {}

// RowUpdated is a no-op.
func (f *Flash) RowUpdated(int) {}

// RowDeleted cancels the highlight of a deleted row and shifts it past earlier deletions.
func (f *Flash) RowDeleted(row int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.row < 0:
	case row == f.row:
		f.reset()
	case row < f.row:
		f.row--
	}
}

// TableChanged cancels the highlight.
func (f *Flash) TableChanged() {
	f.Cancel()
}

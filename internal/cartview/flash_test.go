package cartview

import (
	"testing"
	"time"

	"github.com/guttosm/pos-service/internal/scheduler"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestFlash_TriggerAndExpire(t *testing.T) {
	sched := scheduler.NewManual()
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := NewFlash(sched, time.Second, clock.now)

	_, _, ok := f.State()
	assert.False(t, ok)

	f.Trigger(2)
	row, phase, ok := f.State()
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0.0, phase)

	clock.t = clock.t.Add(500 * time.Millisecond)
	sched.Advance(500 * time.Millisecond)
	_, phase, ok = f.State()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, phase, 1e-9)

	sched.Advance(500 * time.Millisecond)
	_, _, ok = f.State()
	assert.False(t, ok)
}

func TestFlash_RetriggerResetsPhase(t *testing.T) {
	sched := scheduler.NewManual()
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := NewFlash(sched, time.Second, clock.now)

	f.Trigger(0)
	clock.t = clock.t.Add(800 * time.Millisecond)
	sched.Advance(800 * time.Millisecond)

	f.Trigger(1)
	row, phase, ok := f.State()
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0.0, phase)
	assert.Equal(t, 1, sched.Pending(), "retrigger restarts instead of queueing")

	sched.Advance(800 * time.Millisecond)
	_, _, ok = f.State()
	assert.True(t, ok)

	sched.Advance(200 * time.Millisecond)
	_, _, ok = f.State()
	assert.False(t, ok)
}

func TestFlash_FollowsDeletions(t *testing.T) {
	sched := scheduler.NewManual()
	f := NewFlash(sched, time.Second, nil)

	f.Trigger(2)
	f.RowDeleted(0)
	row, _, ok := f.State()
	assert.True(t, ok)
	assert.Equal(t, 1, row)

	f.RowDeleted(3)
	row, _, _ = f.State()
	assert.Equal(t, 1, row)

	f.RowDeleted(1)
	_, _, ok = f.State()
	assert.False(t, ok)
	assert.Equal(t, 0, sched.Pending())
}

func TestFlash_TableChangedCancels(t *testing.T) {
	sched := scheduler.NewManual()
	f := NewFlash(sched, 0, nil)

	f.Trigger(0)
	f.RowInserted(1)
	f.RowUpdated(0)
	f.TableChanged()

	_, _, ok := f.State()
	assert.False(t, ok)
	assert.Equal(t, 0, sched.Pending())
}

type capturedTask struct{}

func (capturedTask) Stop() bool { return false }
func (capturedTask) Restart() {}

// captureScheduler never fires on its own; tests run the callbacks explicitly.
type captureScheduler struct {
	fns []func()
}

func (s *captureScheduler) AfterFunc(_ time.Duration, fn func()) scheduler.Task {
	s.fns = append(s.fns, fn)
	return capturedTask{}
}

func TestFlash_StaleExpiryKeepsNewHighlight(t *testing.T) {
	sched := &captureScheduler{}
	f := NewFlash(sched, time.Second, nil)

	f.Trigger(0)
	f.Trigger(1)
	assert.Len(t, sched.fns, 2)

	// The first timer fires after the retrigger already took the lock.
	sched.fns[0]()
	row, _, ok := f.State()
	assert.True(t, ok)
	assert.Equal(t, 1, row)

	sched.fns[1]()
	_, _, ok = f.State()
	assert.False(t, ok)
}

func TestFlash_ExpiryAfterCancelIsIgnored(t *testing.T) {
	sched := &captureScheduler{}
	f := NewFlash(sched, time.Second, nil)

	f.Trigger(0)
	f.Cancel()
	f.Trigger(2)

	sched.fns[0]()
	row, _, ok := f.State()
	assert.True(t, ok)
	assert.Equal(t, 2, row)
}
